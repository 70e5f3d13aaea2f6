// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell provides an interactive prompt that invokes registered commands by name.
//
// Each line holds one or more command names separated by whitespace, invoked
// in order. The words list, help, quit and exit are handled by the shell
// itself and take precedence over commands of the same name.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/cmdreg/internal/commandregistry"
	"github.com/matt-FFFFFF/cmdreg/internal/ctxlog"
	"github.com/matt-FFFFFF/cmdreg/internal/runner"
	"github.com/peterh/liner"
)

// Prompt is shown before each line of input.
const Prompt = "cmdreg> "

const helpText = `Enter one or more command names to invoke them in order.
  list         show declared commands
  help         show this help
  quit, exit   leave the shell (or press Ctrl+C / Ctrl+D)
`

var builtins = []string{"exit", "help", "list", "quit"}

// Session holds the state of an interactive shell.
type Session struct {
	reg *commandregistry.Registry
	out io.Writer
}

// NewSession creates a session that invokes commands from reg and writes to out.
func NewSession(reg *commandregistry.Registry, out io.Writer) *Session {
	return &Session{reg: reg, out: out}
}

// Execute handles a single line of input.
// It returns true when the line asks the shell to stop.
// Failed invocations are reported on the session output, not returned.
func (s *Session) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(s.out, helpText) //nolint:errcheck
		return false
	case "list":
		for _, name := range s.reg.Names() {
			fmt.Fprintln(s.out, name) //nolint:errcheck
		}

		return false
	}

	results := runner.Run(ctx, s.reg, fields...)
	if results.HasError() {
		if err := results.Write(s.out, &runner.OutputOptions{OnlyFailures: true}); err != nil {
			ctxlog.Error(ctx, "failed to write results", "error", err)
		}
	}

	return false
}

// Complete returns completions for the last word of line.
func (s *Session) Complete(line string) []string {
	var prefix string

	word := line

	if i := strings.LastIndexAny(line, " \t"); i >= 0 {
		prefix = line[:i+1]
		word = line[i+1:]
	}

	candidates := s.reg.Names()
	if prefix == "" {
		candidates = append(candidates, builtins...)
	}

	var out []string

	for _, c := range candidates {
		if strings.HasPrefix(c, word) {
			out = append(out, prefix+c)
		}
	}

	return out
}

// Run reads lines from the terminal until the user quits, input ends or ctx is done.
func Run(ctx context.Context, s *Session) error {
	line := liner.NewLiner()

	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)
	line.SetCompleter(s.Complete)

	fmt.Fprintln(s.out, "Entering interactive mode, type `help` for help, `quit` or `exit` or Ctrl+C to quit.") //nolint:errcheck

	for ctx.Err() == nil {
		input, err := line.Prompt(Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("error reading line: %w", err)
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		if s.Execute(ctx, input) {
			return nil
		}
	}

	return ctx.Err()
}
