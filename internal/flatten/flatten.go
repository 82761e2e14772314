// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package flatten decomposes a resource's nested value document into an
// ordered list of leaf attributes named by dotted/indexed path.
package flatten

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Attribute is one leaf of the value tree. Value is always a scalar
// (string, float64, bool) or nil; objects and arrays are decomposed
// before an Attribute is produced.
type Attribute struct {
	Path  string
	Value any
}

// Predicate decides whether the subtree rooted at path is skipped entirely.
// It is evaluated top-down, so children of an excluded path are never visited.
type Predicate func(path string) bool

// Flatten walks a JSON value document and returns its leaves in document
// order: object keys in the order they appear in the source, array elements
// by index. Object keys produce `parent.key` paths, array elements
// `parent[i]` with the 0-based index. The walk is a pure function of its
// inputs.
func Flatten(values []byte, exclude Predicate) []Attribute {
	var out []Attribute
	walk(gjson.ParseBytes(values), "", exclude, &out)
	return out
}

func walk(node gjson.Result, path string, exclude Predicate, out *[]Attribute) {
	if path != "" && exclude != nil && exclude(path) {
		return
	}

	switch {
	case node.IsObject():
		node.ForEach(func(key, value gjson.Result) bool {
			walk(value, childPath(path, key.String()), exclude, out)
			return true
		})
	case node.IsArray():
		i := 0
		node.ForEach(func(_, value gjson.Result) bool {
			walk(value, path+"["+strconv.Itoa(i)+"]", exclude, out)
			i++
			return true
		})
	default:
		*out = append(*out, Attribute{Path: path, Value: node.Value()})
	}
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
