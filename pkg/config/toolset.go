// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// operation names are lowercase kebab-case, same convention MCP clients use.
var operationNamePattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Toolset is an optional manifest that narrows which operations a server
// exposes and overrides their advertised descriptions. An empty enabled
// list means "everything".
type Toolset struct {
	Enabled      []string          `yaml:"enabled"`
	Descriptions map[string]string `yaml:"descriptions"`
}

// LoadToolset parses and validates a toolset manifest file.
func LoadToolset(path string) (*Toolset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ts Toolset
	if err := yaml.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("parse toolset %s: %w", path, err)
	}

	seen := make(map[string]bool, len(ts.Enabled))
	for _, name := range ts.Enabled {
		if !operationNamePattern.MatchString(name) {
			return nil, fmt.Errorf("toolset %s: invalid operation name %q", path, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("toolset %s: duplicate operation name %q", path, name)
		}
		seen[name] = true
	}
	for name := range ts.Descriptions {
		if !operationNamePattern.MatchString(name) {
			return nil, fmt.Errorf("toolset %s: invalid operation name %q in descriptions", path, name)
		}
	}
	return &ts, nil
}

// Allows reports whether the named operation should be exposed. A nil
// toolset or an empty enabled list allows everything.
func (ts *Toolset) Allows(name string) bool {
	if ts == nil || len(ts.Enabled) == 0 {
		return true
	}
	for _, enabled := range ts.Enabled {
		if enabled == name {
			return true
		}
	}
	return false
}

// Description returns the overridden description for an operation, if any.
func (ts *Toolset) Description(name string) (string, bool) {
	if ts == nil {
		return "", false
	}
	desc, ok := ts.Descriptions[name]
	return desc, ok
}
