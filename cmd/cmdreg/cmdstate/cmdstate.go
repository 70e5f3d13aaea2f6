// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate holds the flag and registry setup shared by the cmdreg subcommands.
package cmdstate

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/matt-FFFFFF/cmdreg/internal/commandregistry"
	"github.com/matt-FFFFFF/cmdreg/internal/definition"
	"github.com/urfave/cli/v3"
)

// FileFlagName is the name of the flag that selects definition files.
const FileFlagName = "file"

// ErrNoDefinitionFiles is returned when a subcommand that needs definitions is given none.
var ErrNoDefinitionFiles = errors.New("specify at least one definition file with --file or -f")

// FileFlag returns the flag that selects definition files.
func FileFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    FileFlagName,
		Aliases: []string{"f"},
		Usage: "Definition file (.yaml, .yml or .hcl) to declare commands from. " +
			"Supports Hashicorp's go-getter syntax for fetching files from various sources. " +
			"Specify multiple times to merge files, later definitions replace earlier ones.",
	}
}

// Registry loads the definition files named by the file flag and declares them into a new registry.
// Print commands write to out.
func Registry(ctx context.Context, cmd *cli.Command, out io.Writer) (*commandregistry.Registry, *definition.Catalog, error) {
	srcs := cmd.StringSlice(FileFlagName)
	if len(srcs) == 0 {
		return nil, nil, ErrNoDefinitionFiles
	}

	catalog, err := definition.LoadCatalog(ctx, srcs...)
	if err != nil {
		return nil, nil, err
	}

	reg := commandregistry.New()
	if err := catalog.Declare(ctx, reg, out); err != nil {
		return nil, nil, err
	}

	return reg, catalog, nil
}

// Writer returns the writer of the root command, or stdout.
func Writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}

// ErrWriter returns the error writer of the root command, or stderr.
func ErrWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}

	return os.Stderr
}
