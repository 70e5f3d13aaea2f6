// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run contains the run subcommand.
package run

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/cmdreg/cmd/cmdreg/cmdstate"
	"github.com/matt-FFFFFF/cmdreg/internal/ctxlog"
	"github.com/matt-FFFFFF/cmdreg/internal/runner"
	"github.com/urfave/cli/v3"
)

const (
	onlyFailuresFlag = "only-failures"
	noSummaryFlag    = "no-summary"
)

var (
	// ErrNoCommandNames is returned when no command names are given.
	ErrNoCommandNames = errors.New("specify at least one command name to invoke")
	// ErrCommandsFailed is returned when one or more invocations fail.
	ErrCommandsFailed = errors.New("one or more commands failed")
)

// NewCmd returns the run subcommand.
func NewCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Invoke commands declared in definition files",
		ArgsUsage: "NAME...",
		Description: `Declare the commands in the given definition files and invoke NAMEs in order.
Command output is written to stdout, the summary of results to stderr.
Invocation stops at the first failure and the remaining names are reported as skipped.

Definition file URLs use Hashicorp's go-getter syntax, which allows for fetching files from various sources.
See https://github.com/hashicorp/go-getter.`,
		Flags: []cli.Flag{
			cmdstate.FileFlag(),
			&cli.BoolFlag{
				Name:     onlyFailuresFlag,
				Usage:    "Only include failed and skipped commands in the summary",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     noSummaryFlag,
				Usage:    "Do not write the summary",
				OnlyOnce: true,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	names := cmd.Args().Slice()
	if len(names) == 0 {
		return ErrNoCommandNames
	}

	reg, _, err := cmdstate.Registry(ctx, cmd, cmdstate.Writer(cmd))
	if err != nil {
		return err
	}

	logger.Debug("declared commands", "count", reg.Len())

	res := runner.Run(ctx, reg, names...)

	if !cmd.Bool(noSummaryFlag) {
		opts := &runner.OutputOptions{OnlyFailures: cmd.Bool(onlyFailuresFlag)}
		if err := res.Write(cmdstate.ErrWriter(cmd), opts); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}

	if res.HasError() {
		return errors.Join(ErrCommandsFailed, res.Err())
	}

	return nil
}
