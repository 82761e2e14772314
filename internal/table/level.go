// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package table turns flattened attribute rows into hierarchical HTML and
// flat Markdown parameter tables.
package table

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// levelPattern captures one hierarchy level from the front of a path:
// a name, an optional [N] index, and an optional trailing dot.
var levelPattern = regexp.MustCompile(`^([^\[.]*)(?:\[(\d+)\])?\.?`)

// Level is one segment of an attribute path. Index is 1-based for display;
// 0 means the segment carries no index.
type Level struct {
	Name  string
	Index int
}

// ParseLevels splits an attribute path into its hierarchy levels. A
// remainder the pattern cannot consume is dropped with a warning rather
// than looping forever.
func ParseLevels(path string) []Level {
	var levels []Level
	remaining := path
	for remaining != "" {
		m := levelPattern.FindStringSubmatch(remaining)
		if m == nil || len(m[0]) == 0 {
			slog.Warn("Dropping unparsable attribute path remainder", "path", path, "remainder", remaining)
			break
		}
		if m[1] != "" {
			level := Level{Name: m[1]}
			if m[2] != "" {
				n, _ := strconv.Atoi(m[2])
				level.Index = n + 1
			}
			levels = append(levels, level)
		}
		remaining = remaining[len(m[0]):]
	}
	return levels
}

func (l Level) pathSegment() string {
	if l.Index > 0 {
		return l.Name + "[" + strconv.Itoa(l.Index-1) + "]"
	}
	return l.Name
}

// JoinLevels reassembles levels into the path form ParseLevels consumes.
func JoinLevels(levels []Level) string {
	segments := make([]string, len(levels))
	for i, l := range levels {
		segments[i] = l.pathSegment()
	}
	return strings.Join(segments, ".")
}
