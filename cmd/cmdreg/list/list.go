// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package list contains the list subcommand.
package list

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/cmdreg/cmd/cmdreg/cmdstate"
	"github.com/matt-FFFFFF/cmdreg/internal/commandregistry"
	"github.com/matt-FFFFFF/cmdreg/internal/definition"
	"github.com/urfave/cli/v3"
)

const columnGap = 2

// NewCmd returns the list subcommand.
func NewCmd() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "List commands declared in definition files",
		Flags:  []cli.Flag{cmdstate.FileFlag()},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	out := cmdstate.Writer(cmd)

	reg, catalog, err := cmdstate.Registry(ctx, cmd, io.Discard)
	if err != nil {
		return err
	}

	return write(out, reg, catalog)
}

// write lists the registry names in sorted order, each followed by its description if it has one.
func write(out io.Writer, reg *commandregistry.Registry, catalog *definition.Catalog) error {
	names := reg.Names()

	width := 0
	for _, name := range names {
		width = max(width, lipgloss.Width(name))
	}

	r := lipgloss.NewRenderer(out)
	nameStyle := r.NewStyle().Bold(true)
	padded := nameStyle.Width(width + columnGap)
	descStyle := r.NewStyle().Faint(true)

	for _, name := range names {
		line := nameStyle.Render(name)

		if d, ok := catalog.Get(name); ok && d.Description != "" {
			line = padded.Render(name) + descStyle.Render(d.Description)
		}

		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}
