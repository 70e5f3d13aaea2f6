// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package definition

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/cmdreg/internal/ctxlog"
	"github.com/spf13/afero"
)

// ErrGetDefinitionFile is returned when a definition file cannot be retrieved.
var ErrGetDefinitionFile = errors.New("failed to get definition file")

const (
	goGetterPathSeparator = "//"
	goGetterRefSeparator  = "?"
	minimumGetterParts    = 3 // scheme, host and path
)

// Load retrieves and parses the definition file at src.
func Load(ctx context.Context, src string) (*File, error) {
	data, name, err := Fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	return Parse(ctx, name, data)
}

// LoadFile reads and parses a definition file from the filesystem returned by FsFactory.
func LoadFile(ctx context.Context, path string) (*File, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrGetDefinitionFile, err)
	}

	return Parse(ctx, path, data)
}

// Fetch returns the content of the definition file at src and the file name
// used to choose its format.
//
// A src that names an existing file on the filesystem returned by FsFactory is
// read directly. Anything else is treated as a go-getter URL,
// see https://github.com/hashicorp/go-getter.
func Fetch(ctx context.Context, src string) ([]byte, string, error) {
	if src == "" {
		return nil, "", ErrGetDefinitionFile
	}

	fs := FsFactory()
	if ok, _ := afero.Exists(fs, src); ok {
		data, err := afero.ReadFile(fs, src)
		if err != nil {
			return nil, "", errors.Join(ErrGetDefinitionFile, err)
		}

		return data, src, nil
	}

	ctxlog.Debug(ctx, "fetching definition file", "src", src)

	data, name, err := getURL(ctx, src)
	if err != nil {
		return nil, "", err
	}

	return data, name, nil
}

// getURL downloads the directory containing the file named by url to a
// temporary directory and reads the file from there.
// The temporary directory is removed before returning.
func getURL(ctx context.Context, url string) ([]byte, string, error) {
	tmpDir, err := os.MkdirTemp("", "cmdreg-getter-*")
	if err != nil {
		return nil, "", errors.Join(ErrGetDefinitionFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Join(ErrGetDefinitionFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string

	// go-getter can only fetch directories from remote sources,
	// see https://github.com/hashicorp/go-getter/issues/98
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return nil, "", errors.Join(ErrGetDefinitionFile, err)
		}

		var newURL string

		newURL, fileName = splitFileNameFromGetterURL(url)
		if newURL == "" || fileName == "" {
			return nil, "", fmt.Errorf("%w: invalid URL format: %s", ErrGetDefinitionFile, url)
		}

		req.Src = newURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(url)
		fileName = filepath.Base(url)
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, "", errors.Join(ErrGetDefinitionFile, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, "", errors.Join(ErrGetDefinitionFile, err)
	}

	return data, fileName, nil
}

// splitFileNameFromGetterURL splits a go-getter URL whose final
// "//" separated part names a file into the directory URL and the file name.
// A "?ref=" query on the file part is moved to the directory URL.
func splitFileNameFromGetterURL(url string) (string, string) {
	var ref string

	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]

	if before, after, ok := strings.Cut(last, goGetterRefSeparator); ok {
		last = before
		ref = after
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)
	dir := filepath.Dir(last)

	if dir == "." {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = dir
	}

	newURL := strings.Join(parts, goGetterPathSeparator)

	if ref != "" {
		newURL += goGetterRefSeparator + ref
	}

	return newURL, fileName
}

// LoadCatalog loads every src in order and merges them into a new catalog.
// Errors from all sources are reported together.
func LoadCatalog(ctx context.Context, srcs ...string) (*Catalog, error) {
	var errs []error

	c := NewCatalog()

	for _, src := range srcs {
		f, err := Load(ctx, src)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src, err))
			continue
		}

		c.Add(ctx, f)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return c, nil
}
