// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/cmdreg/internal/color"
)

// Status is the outcome of a single invocation.
type Status int

const (
	// StatusSuccess means the command ran and returned.
	StatusSuccess Status = iota
	// StatusError means the command could not be found, panicked or was cancelled.
	StatusError
	// StatusSkipped means the command was not invoked because an earlier one failed.
	StatusSkipped
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result is the outcome of invoking one name.
type Result struct {
	Name   string
	Status Status
	Error  error
}

// Results is the ordered outcome of a Run.
type Results []*Result

// HasError reports whether any invocation failed.
func (r Results) HasError() bool {
	for _, res := range r {
		if res.Status == StatusError {
			return true
		}
	}

	return false
}

// Err returns the errors of the failed invocations joined together, or nil.
func (r Results) Err() error {
	var errs []error

	for _, res := range r {
		if res.Status == StatusError {
			errs = append(errs, fmt.Errorf("%s: %w", res.Name, res.Error))
		}
	}

	return errors.Join(errs...)
}

// OutputOptions controls what is included in the summary.
type OutputOptions struct {
	OnlyFailures bool // Omit successful invocations
}

// Write writes a one line summary per result to w.
func (r Results) Write(w io.Writer, opts *OutputOptions) error {
	if opts == nil {
		opts = &OutputOptions{}
	}

	for _, res := range r {
		if opts.OnlyFailures && res.Status == StatusSuccess {
			continue
		}

		if err := writeResult(w, res); err != nil {
			return err
		}
	}

	return nil
}

func writeResult(w io.Writer, res *Result) error {
	var mark string

	var c color.Code

	switch res.Status {
	case StatusSuccess:
		mark, c = "✓", color.FgGreen
	case StatusError:
		mark, c = "✗", color.FgRed
	case StatusSkipped:
		mark, c = "~", color.FgYellow
	default:
		mark, c = "?", color.FgWhite
	}

	name := res.Name
	if name == "" {
		name = "[unnamed]"
	}

	if _, err := fmt.Fprintf(w, "%s %s\n", color.Colorize(mark, c), color.Colorize(name, color.Bold, c)); err != nil {
		return err
	}

	if res.Error == nil {
		return nil
	}

	_, err := fmt.Fprintf(w, "  %s %s\n", color.Colorize("➜", c), res.Error.Error())

	return err
}
