// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger built on log/slog.
//
// The logger travels in a context.Context. Logger(ctx) returns it, or
// DefaultLogger when the context carries none. DefaultLogger writes through a
// PrettyHandler to stderr. The level is read once from the CMDREG_LOG_LEVEL
// environment variable ("DEBUG", "INFO", "WARN" or "ERROR", default "WARN")
// and can be changed at runtime through LevelVar.
package ctxlog
