// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Code represents an ANSI control code for text formatting.
type Code int

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	prefix = "\033["
	suffix = "m"
	reset  = prefix + "0" + suffix
)

// Control codes.
const (
	Reset Code = 0
	Bold  Code = 1
	Faint Code = 2
)

// Foreground colors.
const (
	FgRed     Code = 31
	FgGreen   Code = 32
	FgYellow  Code = 33
	FgBlue    Code = 34
	FgMagenta Code = 35
	FgCyan    Code = 36
	FgWhite   Code = 37

	FgHiRed     Code = 91
	FgHiMagenta Code = 95
	FgHiWhite   Code = 97
)

var enabled bool

func init() {
	enabled = isColorEnabled()
}

// Enabled reports whether color output is enabled.
func Enabled() bool {
	return enabled
}

// SetEnabled overrides terminal detection and returns the previous setting.
func SetEnabled(v bool) bool {
	prev := enabled
	enabled = v

	return prev
}

// ControlString returns the escape sequence for the given codes.
// It returns the empty string when color output is disabled.
func ControlString(c ...Code) string {
	if !enabled {
		return ""
	}

	return sequence(c)
}

// Colorize returns str wrapped in the given codes followed by a reset.
func Colorize(str string, c ...Code) string {
	if !enabled {
		return str
	}

	return sequence(c) + str + reset
}

// ColorizeNoReset returns str prefixed with the given codes, without a trailing reset.
func ColorizeNoReset(str string, c ...Code) string {
	if !enabled {
		return str
	}

	return sequence(c) + str
}

func sequence(c []Code) string {
	parts := make([]string, len(c))
	for i, code := range c {
		parts[i] = strconv.Itoa(int(code))
	}

	return prefix + strings.Join(parts, ";") + suffix
}

func isColorEnabled() bool {
	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
