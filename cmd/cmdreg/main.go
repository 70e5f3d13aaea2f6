// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the cmdreg command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/cmdreg"
	"github.com/matt-FFFFFF/cmdreg/cmd/cmdreg/demo"
	"github.com/matt-FFFFFF/cmdreg/cmd/cmdreg/interactive"
	"github.com/matt-FFFFFF/cmdreg/cmd/cmdreg/list"
	"github.com/matt-FFFFFF/cmdreg/cmd/cmdreg/run"
	"github.com/matt-FFFFFF/cmdreg/internal/ctxlog"
	"github.com/matt-FFFFFF/cmdreg/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

// newRootCmd returns the root command for the CLI.
// Errors are returned from Run rather than handled by the cli framework,
// so the caller decides the exit status.
func newRootCmd(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Commands: []*cli.Command{
			demo.NewCmd(),
			run.NewCmd(),
			list.NewCmd(),
			interactive.NewCmd(),
		},
		Writer:    stdout,
		ErrWriter: stderr,
		Name:      "cmdreg",
		Description: `cmdreg declares named, parameterless commands into a registry and invokes them by name.
Commands come from YAML or HCL definition files, or from the built-in demo.`,
		Usage:          "cmdreg run -f commands.yaml NAME...",
		Version:        fmt.Sprintf("%s (commit: %s)", cmdreg.Version, cmdreg.Commit),
		Copyright:      "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		ExitErrHandler: func(context.Context, *cli.Command, error) {},

		EnableShellCompletion: true,
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	err := newRootCmd(os.Stdout, os.Stderr).Run(ctx, os.Args)

	if ctx.Err() != nil {
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		cancel()
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Error(ctx, "command execution failed", "error", err)
		cancel()
		os.Exit(1)
	}

	ctxlog.Info(ctx, "command completed successfully")
}
