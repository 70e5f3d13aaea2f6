// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package demo contains the demo subcommand, which declares two commands and invokes them.
package demo

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/cmdreg/cmd/cmdreg/cmdstate"
	"github.com/matt-FFFFFF/cmdreg/internal/commandregistry"
	"github.com/matt-FFFFFF/cmdreg/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

// NewCmd returns the demo subcommand.
func NewCmd() *cli.Command {
	return &cli.Command{
		Name:      "demo",
		Usage:     "Declare commands a and b and invoke them",
		ArgsUsage: "[NAME...]",
		Description: `Declares two commands, a which prints "Calling a" and b which prints "Calling b",
then invokes the given names in order. Without arguments a and then b are invoked.`,
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	out := cmdstate.Writer(cmd)

	reg := commandregistry.New()
	reg.Declare("a", func() { fmt.Fprintln(out, "Calling a") }) //nolint:errcheck
	reg.Declare("b", func() { fmt.Fprintln(out, "Calling b") }) //nolint:errcheck

	names := cmd.Args().Slice()
	if len(names) == 0 {
		names = []string{"a", "b"}
	}

	for _, name := range names {
		ctxlog.Debug(ctx, "invoking command", "command", name)

		if err := reg.Invoke(name); err != nil {
			return err
		}
	}

	return nil
}
