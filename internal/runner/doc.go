// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runner invokes a sequence of named commands and records the outcome of each.
//
// Commands run one at a time in the order given. After the first failure the
// remaining names are skipped. A panicking command is recovered and reported
// as an *ErrCommandPanic.
package runner
