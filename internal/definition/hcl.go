// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package definition

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/matt-FFFFFF/cmdreg/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

type hclFile struct {
	Commands []*Definition `hcl:"command,block"`
}

func decodeHCL(ctx context.Context, source string, data []byte) (*File, error) {
	file, diags := hclsyntax.ParseConfig(data, source, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, errors.Join(ErrHclDecode, diags)
	}

	var h hclFile

	diags = gohcl.DecodeBody(file.Body, EvalContext(), &h)
	if diags.HasErrors() {
		return nil, errors.Join(ErrHclDecode, diags)
	}

	ctxlog.Debug(ctx, "decoded HCL definition file", "source", source, "commands", len(h.Commands))

	return &File{Commands: h.Commands}, nil
}

// EvalContext returns the evaluation context for HCL definition files.
// The process environment is exposed as the object variable env,
// so a file can interpolate "${env.USER}". Reading an unset variable that way
// is a decode error; lookup(env, "USER", "default") falls back instead.
func EvalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		env[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
		Functions: map[string]function.Function{
			"lookup": stdlib.LookupFunc,
		},
	}
}
