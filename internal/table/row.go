// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package table

import (
	"fmt"
	"strconv"
	"strings"
)

// PendingMarker prefixes values that reference a resource not yet created,
// resolved from configuration expressions instead of planned values.
const PendingMarker = "(pending)"

// Row is one parameter table row before structuring.
type Row struct {
	Path        string
	Value       any
	Required    string
	Default     string
	Description string
}

type structuredRow struct {
	levels []Level
	row    Row
}

func structureRows(rows []Row) []structuredRow {
	out := make([]structuredRow, 0, len(rows))
	for _, r := range rows {
		levels := ParseLevels(r.Path)
		if len(levels) == 0 {
			continue
		}
		out = append(out, structuredRow{levels: levels, row: r})
	}
	return out
}

func maxDepth(rows []structuredRow) int {
	depth := 1
	for _, r := range rows {
		if len(r.levels) > depth {
			depth = len(r.levels)
		}
	}
	return depth
}

// FormatValue renders a flattened attribute value for display. Floats use
// the shortest exact representation, so integral numbers print without a
// decimal point.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
