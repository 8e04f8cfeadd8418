// SPDX-License-Identifier: MIT
// Package: rcgraph/scenario
//
// builtin.go - scenarios embedded in the binary.

package scenario

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed builtin/*.toml
var builtinFS embed.FS

// Builtins lists the embedded scenario names in lexical order.
func Builtins() []string {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}

	return names
}

// Builtin returns the embedded scenario called name.
func Builtin(name string) (*Scenario, error) {
	data, err := builtinFS.ReadFile(path.Join("builtin", name+".toml"))
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownBuiltin, name)
	}

	return Parse(data, name)
}
