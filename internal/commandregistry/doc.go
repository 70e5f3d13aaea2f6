// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandregistry provides a registry of named, deferred commands.
//
// A Command is a parameterless function captured at declaration time.
// Commands are declared into a Registry under a name and later invoked by that name.
// Declaring a name that already exists replaces the previous command.
// Invoking a name that has not been declared returns an *ErrCommandNotFound,
// which matches ErrUnknownCommand with errors.Is.
//
// A Registry is not safe for concurrent use.
package commandregistry
