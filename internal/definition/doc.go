// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package definition loads named command definitions from YAML or HCL files
// and declares them into a commandregistry.Registry.
//
// A definition has exactly one action. A print action writes a message to the
// output writer given to Declare. An invoke action runs other named commands
// in order through the registry.
//
// Files are added to a Catalog. The catalog validates the merged set of
// definitions (unknown references, cycles) before anything is declared.
package definition
