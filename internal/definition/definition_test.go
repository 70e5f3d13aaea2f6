// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package definition

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	content := `
commands:
  - name: a
    print: Calling a
  - name: b
    description: says b
    print: Calling b
  - name: both
    invoke: [a, b]
`
	f, err := Parse(context.Background(), "cmds.yaml", []byte(content))
	require.NoError(t, err)
	assert.Equal(t, "cmds.yaml", f.Source)
	require.Len(t, f.Commands, 3)

	assert.Equal(t, "a", f.Commands[0].Name)
	require.NotNil(t, f.Commands[0].Print)
	assert.Equal(t, "Calling a", *f.Commands[0].Print)
	assert.Equal(t, "says b", f.Commands[1].Description)
	assert.Equal(t, []string{"a", "b"}, f.Commands[2].Invoke)
	assert.Nil(t, f.Commands[2].Print)
}

func TestParseYAML_EmptyPrintIsAnAction(t *testing.T) {
	f, err := Parse(context.Background(), "blank.yml", []byte("commands:\n  - name: blank\n    print: \"\"\n"))
	require.NoError(t, err)
	require.NotNil(t, f.Commands[0].Print)
	assert.Empty(t, *f.Commands[0].Print)
}

func TestParseHCL(t *testing.T) {
	t.Setenv("CMDREG_TEST_GREETING", "hello")

	content := `
command "a" {
  print = "Calling a"
}

command "greet" {
  description = "greets from the environment"
  print       = "${env.CMDREG_TEST_GREETING} world"
}

command "both" {
  invoke = ["a", "greet"]
}
`
	f, err := Parse(context.Background(), "cmds.hcl", []byte(content))
	require.NoError(t, err)
	require.Len(t, f.Commands, 3)

	assert.Equal(t, "a", f.Commands[0].Name)
	require.NotNil(t, f.Commands[1].Print)
	assert.Equal(t, "hello world", *f.Commands[1].Print)
	assert.Equal(t, "greets from the environment", f.Commands[1].Description)
	assert.Nil(t, f.Commands[2].Print)
	assert.Equal(t, []string{"a", "greet"}, f.Commands[2].Invoke)
}

func TestParseHCL_LookupDefault(t *testing.T) {
	t.Setenv("CMDREG_TEST_SET", "set")

	content := `
command "present" {
  print = "${lookup(env, "CMDREG_TEST_SET", "fallback")}"
}

command "absent" {
  print = "Hello, ${lookup(env, "CMDREG_TEST_NEVER_SET", "there")}"
}
`
	f, err := Parse(context.Background(), "cmds.hcl", []byte(content))
	require.NoError(t, err)
	require.Len(t, f.Commands, 2)

	require.NotNil(t, f.Commands[0].Print)
	assert.Equal(t, "set", *f.Commands[0].Print)
	require.NotNil(t, f.Commands[1].Print)
	assert.Equal(t, "Hello, there", *f.Commands[1].Print)
}

func TestParseHCL_UnsetEnvAttribute(t *testing.T) {
	content := `
command "greet" {
  print = "${env.CMDREG_TEST_NEVER_SET}"
}
`
	_, err := Parse(context.Background(), "cmds.hcl", []byte(content))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHclDecode)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		content string
		wantErr error
	}{
		{
			name:    "unknown extension",
			source:  "cmds.json",
			content: `{}`,
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "malformed yaml",
			source:  "cmds.yaml",
			content: "commands: [",
			wantErr: ErrYamlDecode,
		},
		{
			name:    "unknown yaml field",
			source:  "cmds.yaml",
			content: "commands:\n  - name: a\n    shout: hi\n",
			wantErr: ErrYamlDecode,
		},
		{
			name:    "malformed hcl",
			source:  "cmds.hcl",
			content: `command "a" {`,
			wantErr: ErrHclDecode,
		},
		{
			name:    "unknown hcl attribute",
			source:  "cmds.hcl",
			content: "command \"a\" {\n  shout = \"hi\"\n}\n",
			wantErr: ErrHclDecode,
		},
		{
			name:    "no action",
			source:  "cmds.yaml",
			content: "commands:\n  - name: a\n",
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "empty name",
			source:  "cmds.yaml",
			content: "commands:\n  - print: hi\n",
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(context.Background(), tt.source, []byte(tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f)
		})
	}
}

func TestFileValidate_ReportsAllProblems(t *testing.T) {
	msg := "hi"
	f := &File{
		Source: "many.yaml",
		Commands: []*Definition{
			{Name: "", Print: &msg},
			{Name: "none"},
			{Name: "both", Print: &msg, Invoke: []string{"x"}},
			{Name: "ok", Print: &msg},
		},
	}

	err := f.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
	assert.ErrorIs(t, err, ErrEmptyName)

	var actionErr *ErrActionCount
	require.ErrorAs(t, err, &actionErr)

	assert.Contains(t, err.Error(), `command "none" must have exactly one of print or invoke, found 0`)
	assert.Contains(t, err.Error(), `command "both" must have exactly one of print or invoke, found 2`)
	assert.Contains(t, err.Error(), "many.yaml")
}
