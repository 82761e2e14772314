// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package plan loads Terraform plan documents and exposes the planned
// resources and their configuration expressions.
package plan

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Resource is one planned resource instance. Values stays raw so the
// flattener sees attributes in document order.
type Resource struct {
	Address string          `json:"address"`
	Type    string          `json:"type"`
	Name    string          `json:"name"`
	Values  json.RawMessage `json:"values"`
}

type module struct {
	Resources    []Resource `json:"resources"`
	ChildModules []module   `json:"child_modules"`
}

type configResource struct {
	Address     string          `json:"address"`
	Expressions json.RawMessage `json:"expressions"`
}

type planFile struct {
	PlannedValues struct {
		RootModule module `json:"root_module"`
	} `json:"planned_values"`
	Configuration struct {
		RootModule struct {
			Resources []configResource `json:"resources"`
		} `json:"root_module"`
	} `json:"configuration"`
}

// Document is a parsed plan file.
type Document struct {
	file planFile
}

func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Document, error) {
	var file planFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse plan document: %w", err)
	}
	return &Document{file: file}, nil
}

// Resources returns the planned resources of the root module and all child
// modules, in document order.
func (d *Document) Resources() []Resource {
	var out []Resource
	collect(d.file.PlannedValues.RootModule, &out)
	return out
}

func collect(m module, out *[]Resource) {
	*out = append(*out, m.Resources...)
	for _, child := range m.ChildModules {
		collect(child, out)
	}
}

// Configuration maps each configured resource address to its raw expression
// metadata (references, constant values).
func (d *Document) Configuration() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage)
	for _, r := range d.file.Configuration.RootModule.Resources {
		if r.Address != "" {
			out[r.Address] = r.Expressions
		}
	}
	return out
}
