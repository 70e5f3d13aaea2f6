// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/cmdreg/internal/ctxlog"
)

// ErrSkipOnError is recorded for names that were not invoked because an earlier invocation failed.
var ErrSkipOnError = errors.New("skipped due to previous error")

// ErrCommandPanic is the error recorded when a command panics.
// It is constructed with the value that caused the panic.
type ErrCommandPanic struct {
	v any
}

// Error implements the error interface for ErrCommandPanic.
func (e *ErrCommandPanic) Error() string {
	return fmt.Sprintf("command panic: %v", e.v)
}

// Unwrap returns the panic value if it is an error.
func (e *ErrCommandPanic) Unwrap() error {
	err, _ := e.v.(error)
	return err
}

// NewErrCommandPanic creates a new ErrCommandPanic with the given value.
func NewErrCommandPanic(v any) error {
	return &ErrCommandPanic{v: v}
}

// Invoker runs the command declared under a name.
// *commandregistry.Registry satisfies this interface.
type Invoker interface {
	Invoke(name string) error
}

// Run invokes each of names through inv, in order, and returns one Result per name.
func Run(ctx context.Context, inv Invoker, names ...string) Results {
	logger := ctxlog.Logger(ctx).With("runner", "serial")
	results := make(Results, 0, len(names))
	failed := false

	for _, name := range names {
		if failed {
			results = append(results, &Result{Name: name, Status: StatusSkipped, Error: ErrSkipOnError})
			continue
		}

		logger.Debug("invoking command", "command", name)

		if err := invoke(ctx, inv, name); err != nil {
			logger.Debug("command failed", "command", name, "error", err)
			results = append(results, &Result{Name: name, Status: StatusError, Error: err})
			failed = true

			continue
		}

		results = append(results, &Result{Name: name, Status: StatusSuccess})
	}

	return results
}

// invoke runs a single command in its own goroutine so that a panic can be
// recovered and a cancelled context returns promptly.
// A command that ignores cancellation keeps running until it returns.
func invoke(ctx context.Context, inv Invoker, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	errCh := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.Error(ctx, "command panicked", "command", name, "panic", fmt.Sprint(r))
				errCh <- NewErrCommandPanic(r)
			}
		}()

		errCh <- inv.Invoke(name)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
