// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package schema loads provider schema documents and resolves per-attribute
// descriptors (required/optional/computed flags and descriptions).
package schema

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
)

// Attribute is a leaf attribute descriptor from a provider schema.
type Attribute struct {
	Required    bool   `json:"required"`
	Optional    bool   `json:"optional"`
	Computed    bool   `json:"computed"`
	Description string `json:"description"`
}

// NestedBlock describes a nested block type within a resource block.
type NestedBlock struct {
	Block       Block  `json:"block"`
	NestingMode string `json:"nesting_mode"`
	MinItems    int    `json:"min_items"`
	MaxItems    int    `json:"max_items"`
}

// Block groups the attributes and nested block types of one resource type.
type Block struct {
	Attributes  map[string]Attribute   `json:"attributes"`
	BlockTypes  map[string]NestedBlock `json:"block_types"`
	Description string                 `json:"description"`
}

type resourceSchema struct {
	Block Block `json:"block"`
}

type providerSchema struct {
	ResourceSchemas map[string]resourceSchema `json:"resource_schemas"`
}

type schemaFile struct {
	ProviderSchemas map[string]providerSchema `json:"provider_schemas"`
}

// Document holds the merged resource schemas of every provider present in a
// schema file.
type Document struct {
	resources map[string]resourceSchema
}

// Descriptor is the resolved metadata for one attribute path.
type Descriptor struct {
	Required    bool
	Optional    bool
	Computed    bool
	Description string
}

func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Document, error) {
	var file schemaFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}

	doc := &Document{resources: make(map[string]resourceSchema)}
	for _, provider := range file.ProviderSchemas {
		for resourceType, rs := range provider.ResourceSchemas {
			doc.resources[resourceType] = rs
		}
	}

	return doc, nil
}

// RootName reduces an attribute path to its top-level attribute name:
// array-index brackets are stripped and only the first dotted segment kept,
// so "cors_rule[0].allowed_methods[1]" resolves as "cors_rule".
func RootName(path string) string {
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[:i]
	}
	if i := strings.IndexByte(path, '['); i >= 0 {
		path = path[:i]
	}
	return path
}

// Lookup resolves the descriptor for an attribute path of the given resource
// type. Top-level attributes resolve precisely; paths rooted at a nested
// block type resolve to a coarse block-level descriptor (description of the
// whole block, no per-field flags). A nil Document never matches.
func (d *Document) Lookup(resourceType, path string) (Descriptor, bool) {
	if d == nil {
		return Descriptor{}, false
	}

	rs, ok := d.resources[resourceType]
	if !ok {
		return Descriptor{}, false
	}

	root := RootName(path)
	if attr, ok := rs.Block.Attributes[root]; ok {
		return Descriptor{
			Required:    attr.Required,
			Optional:    attr.Optional,
			Computed:    attr.Computed,
			Description: attr.Description,
		}, true
	}

	if nested, ok := rs.Block.BlockTypes[root]; ok {
		return Descriptor{Description: nested.Block.Description}, true
	}

	return Descriptor{}, false
}

// RequiredFlag derives the rendered required column from a descriptor.
// A missing descriptor yields "-" (unknown), never "No".
func RequiredFlag(desc Descriptor, found bool) string {
	switch {
	case !found:
		return "-"
	case desc.Required:
		return "Yes"
	case desc.Optional:
		return "No"
	default:
		return "-"
	}
}

// DefaultValue derives the rendered default column from a descriptor.
func DefaultValue(desc Descriptor, found bool) string {
	if found && desc.Computed {
		return "(computed)"
	}
	return "-"
}
