// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package definition

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrUnsupportedFormat is returned when a file extension is not a known definition format.
	ErrUnsupportedFormat = errors.New("unsupported definition format, use .yaml, .yml or .hcl")
	// ErrYamlDecode is returned when a YAML definition file cannot be decoded.
	ErrYamlDecode = errors.New("failed to decode YAML definition file")
	// ErrHclDecode is returned when an HCL definition file cannot be decoded.
	ErrHclDecode = errors.New("failed to decode HCL definition file")
	// ErrEmptyName is returned when a definition has no name.
	ErrEmptyName = errors.New("command name must not be empty")
	// ErrInvalidDefinition is returned when a file or catalog fails validation.
	ErrInvalidDefinition = errors.New("invalid command definition")
)

// ErrActionCount is returned when a definition does not have exactly one action.
type ErrActionCount struct {
	Name  string
	Count int
}

// Error implements the error interface for ErrActionCount.
func (e *ErrActionCount) Error() string {
	return fmt.Sprintf("command %q must have exactly one of print or invoke, found %d", e.Name, e.Count)
}

// NewErrActionCount creates a new ErrActionCount.
func NewErrActionCount(name string, count int) error {
	return &ErrActionCount{Name: name, Count: count}
}

// Definition describes a single named command.
type Definition struct {
	// Name is the name the command is declared under.
	Name string `yaml:"name" hcl:"name,label"`
	// Description is shown when listing commands.
	Description string `yaml:"description,omitempty" hcl:"description,optional"`
	// Print is a message written, followed by a newline, when the command is invoked.
	Print *string `yaml:"print,omitempty" hcl:"print,optional"`
	// Invoke is the list of command names run in order when the command is invoked.
	Invoke []string `yaml:"invoke,omitempty" hcl:"invoke,optional"`
}

// File is the decoded content of a single definition file.
type File struct {
	Source   string
	Commands []*Definition
}

// Parse decodes data as a definition file. The format is chosen from the extension of source.
// The decoded file is validated before it is returned.
func Parse(ctx context.Context, source string, data []byte) (*File, error) {
	var (
		f   *File
		err error
	)

	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		f, err = decodeYAML(data)
	case ".hcl":
		f, err = decodeHCL(ctx, source, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, source)
	}

	if err != nil {
		return nil, err
	}

	f.Source = source

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate checks that every definition has a name and exactly one action.
// References to other commands are checked by Catalog.Validate.
func (f *File) Validate() error {
	var result error

	for i, d := range f.Commands {
		if d == nil {
			result = multierror.Append(result, fmt.Errorf("%w: entry %d", ErrEmptyName, i))
			continue
		}

		if d.Name == "" {
			result = multierror.Append(result, fmt.Errorf("%w: entry %d", ErrEmptyName, i))
		}

		if n := d.actionCount(); n != 1 {
			result = multierror.Append(result, NewErrActionCount(d.Name, n))
		}
	}

	if result != nil {
		return fmt.Errorf("%w in %s: %w", ErrInvalidDefinition, f.Source, result)
	}

	return nil
}

func (d *Definition) actionCount() int {
	n := 0

	if d.Print != nil {
		n++
	}

	if len(d.Invoke) > 0 {
		n++
	}

	return n
}
