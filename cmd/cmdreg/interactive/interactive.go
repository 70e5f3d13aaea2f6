// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package interactive contains the shell subcommand.
package interactive

import (
	"context"

	"github.com/matt-FFFFFF/cmdreg/cmd/cmdreg/cmdstate"
	"github.com/matt-FFFFFF/cmdreg/internal/shell"
	"github.com/urfave/cli/v3"
)

// NewCmd returns the shell subcommand.
func NewCmd() *cli.Command {
	return &cli.Command{
		Name:    "shell",
		Aliases: []string{"repl"},
		Usage:   "Invoke commands declared in definition files from an interactive prompt",
		Flags:   []cli.Flag{cmdstate.FileFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := cmdstate.Writer(cmd)

			reg, _, err := cmdstate.Registry(ctx, cmd, out)
			if err != nil {
				return err
			}

			return shell.Run(ctx, shell.NewSession(reg, out))
		},
	}
}
