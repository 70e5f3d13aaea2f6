// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package definition

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/cmdreg/internal/commandregistry"
	"github.com/matt-FFFFFF/cmdreg/internal/ctxlog"
)

// MaxDepth is the deepest chain of invoke references a catalog accepts.
const MaxDepth = 100

var (
	// ErrCircularReference is returned when invoke references form a cycle.
	ErrCircularReference = errors.New("circular reference detected")
	// ErrMaxDepth is returned when a chain of invoke references is deeper than MaxDepth.
	ErrMaxDepth = errors.New("maximum invoke depth exceeded")
)

// ErrUnknownReference is returned when a definition invokes a command that is not defined.
type ErrUnknownReference struct {
	Name      string
	Reference string
}

// Error implements the error interface for ErrUnknownReference.
func (e *ErrUnknownReference) Error() string {
	return fmt.Sprintf("command %q invokes unknown command %q", e.Name, e.Reference)
}

// Is allows errors.Is(err, commandregistry.ErrUnknownCommand) to succeed.
func (e *ErrUnknownReference) Is(target error) bool {
	return target == commandregistry.ErrUnknownCommand
}

// Catalog merges definitions from one or more files.
// A name defined again replaces the earlier definition.
type Catalog struct {
	defs  []*Definition
	index map[string]int
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add merges the definitions of f into the catalog in file order.
func (c *Catalog) Add(ctx context.Context, f *File) {
	for _, d := range f.Commands {
		if d == nil {
			continue
		}

		if i, ok := c.index[d.Name]; ok {
			ctxlog.Warn(ctx, "command redefined, the later definition wins",
				"command", d.Name,
				"source", f.Source)

			c.defs[i] = d

			continue
		}

		c.index[d.Name] = len(c.defs)
		c.defs = append(c.defs, d)
	}
}

// Definitions returns the merged definitions in the order their names were first added.
func (c *Catalog) Definitions() []*Definition {
	return slices.Clone(c.defs)
}

// Get returns the definition for name, if any.
func (c *Catalog) Get(name string) (*Definition, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}

	return c.defs[i], true
}

// Validate checks that every invoke reference names a defined command
// and that references contain no cycles and are no deeper than MaxDepth.
// All problems are reported together.
func (c *Catalog) Validate() error {
	var result error

	for _, d := range c.defs {
		for _, ref := range d.Invoke {
			if _, ok := c.index[ref]; !ok {
				result = multierror.Append(result, &ErrUnknownReference{Name: d.Name, Reference: ref})
			}
		}
	}

	w := &walker{
		catalog: c,
		state:   make(map[string]visitState),
		height:  make(map[string]int),
	}

	names := make([]string, 0, len(c.defs))
	for _, d := range c.defs {
		names = append(names, d.Name)
	}

	slices.Sort(names)

	for _, name := range names {
		if _, err := w.visit(name, nil); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if result != nil {
		return errors.Join(ErrInvalidDefinition, result)
	}

	return nil
}

// Declare validates the catalog and declares every definition into reg.
// Print commands write to out. Invoke commands look up their references in reg
// each time they run, so a later Declare of a referenced name is honoured.
func (c *Catalog) Declare(ctx context.Context, reg *commandregistry.Registry, out io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	for _, d := range c.defs {
		reg.Declare(d.Name, commandFor(d, reg, out))
		ctxlog.Debug(ctx, "declared command", "command", d.Name)
	}

	return nil
}

// commandFor builds the command for d.
// An invoke command panics with the lookup error if a reference has been
// removed from reg since validation, as that is a programming error.
func commandFor(d *Definition, reg *commandregistry.Registry, out io.Writer) commandregistry.Command {
	if d.Print != nil {
		msg := *d.Print

		return func() {
			fmt.Fprintln(out, msg) //nolint:errcheck
		}
	}

	refs := slices.Clone(d.Invoke)

	return func() {
		for _, ref := range refs {
			if err := reg.Invoke(ref); err != nil {
				panic(err)
			}
		}
	}
}

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

type walker struct {
	catalog *Catalog
	state   map[string]visitState
	// height is the length of the longest invoke chain starting at a visited name.
	height map[string]int
}

// visit walks the invoke references of name depth first and returns the
// length of the longest chain starting at name.
// path holds the names currently being visited, outermost first.
// Unknown names are skipped; Validate reports them separately.
func (w *walker) visit(name string, path []string) (int, error) {
	d, ok := w.catalog.Get(name)
	if !ok {
		return 0, nil
	}

	switch w.state[name] {
	case visited:
		if len(path)+w.height[name] > MaxDepth {
			return 0, fmt.Errorf("%w: %d levels at %q", ErrMaxDepth, MaxDepth, name)
		}

		return w.height[name], nil
	case visiting:
		start := slices.Index(path, name)

		return 0, fmt.Errorf("%w: %s", ErrCircularReference, formatCircularPath(path[start:]))
	}

	if len(path) >= MaxDepth {
		return 0, fmt.Errorf("%w: %d levels at %q", ErrMaxDepth, MaxDepth, name)
	}

	w.state[name] = visiting
	path = append(path, name)

	var (
		result  error
		longest int
	)

	for _, ref := range d.Invoke {
		h, err := w.visit(ref, path)
		if err != nil {
			result = multierror.Append(result, err)
			break
		}

		longest = max(longest, h)
	}

	w.state[name] = visited
	w.height[name] = longest + 1

	return w.height[name], result
}

// formatCircularPath renders a cycle as "a → b → a".
func formatCircularPath(path []string) string {
	if len(path) == 0 {
		return "unknown path"
	}

	return strings.Join(append(slices.Clone(path), path[0]), " → ")
}
