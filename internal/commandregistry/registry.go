// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandregistry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/agnivade/levenshtein"
)

const (
	// maxSuggestionDistance is the largest edit distance at which a declared name
	// is offered as a suggestion for an unknown one.
	maxSuggestionDistance = 2
)

// ErrUnknownCommand is returned when a command name has not been declared.
var ErrUnknownCommand = errors.New("unknown command")

// ErrCommandNotFound is the lookup error returned by Invoke.
// It is constructed with the name that was requested.
type ErrCommandNotFound struct {
	Name       string
	Suggestion string
}

// Error implements the error interface for ErrCommandNotFound.
func (e *ErrCommandNotFound) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %q (did you mean %q?)", ErrUnknownCommand, e.Name, e.Suggestion)
	}

	return fmt.Sprintf("%s: %q", ErrUnknownCommand, e.Name)
}

// Is allows errors.Is(err, ErrUnknownCommand) to succeed.
func (e *ErrCommandNotFound) Is(target error) bool {
	return target == ErrUnknownCommand
}

// NewErrCommandNotFound creates a new ErrCommandNotFound for the given name.
func NewErrCommandNotFound(name string) error {
	return &ErrCommandNotFound{Name: name}
}

// Command is a deferred action. It takes no arguments and returns nothing,
// any state it needs must be captured when it is declared.
type Command func()

// Registry holds the mapping between command names and their commands.
type Registry struct {
	commands map[string]Command
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Declare sets the command for name, replacing any command previously declared with that name.
func (r *Registry) Declare(name string, cmd Command) {
	r.commands[name] = cmd
}

// Invoke runs the command declared as name on the calling goroutine.
// If name has not been declared, no command is run and an *ErrCommandNotFound is returned.
func (r *Registry) Invoke(name string) error {
	cmd, ok := r.commands[name]
	if !ok {
		return &ErrCommandNotFound{
			Name:       name,
			Suggestion: r.suggest(name),
		}
	}

	if cmd == nil {
		return nil
	}

	cmd()

	return nil
}

// Lookup returns the command declared as name and whether it exists.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the declared command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Len returns the number of declared commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

// suggest returns the declared name closest to name, or the empty string if none is close enough.
// Ties are broken alphabetically so the result is stable.
func (r *Registry) suggest(name string) string {
	if name == "" {
		return ""
	}

	best := ""
	bestDist := maxSuggestionDistance + 1

	for _, candidate := range r.Names() {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDist {
			best = candidate
			bestDist = d
		}
	}

	return best
}
