// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package definition

import (
	"errors"

	"github.com/goccy/go-yaml"
)

type yamlFile struct {
	Commands []*Definition `yaml:"commands"`
}

func decodeYAML(data []byte) (*File, error) {
	var y yamlFile
	if err := yaml.UnmarshalWithOptions(data, &y, yaml.Strict()); err != nil {
		return nil, errors.Join(ErrYamlDecode, err)
	}

	return &File{Commands: y.Commands}, nil
}
