// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build property

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func levelGen() *rapid.Generator[Level] {
	return rapid.Custom(func(t *rapid.T) Level {
		return Level{
			Name:  rapid.StringMatching(`[a-z_][a-z0-9_]{0,11}`).Draw(t, "name"),
			Index: rapid.IntRange(0, 16).Draw(t, "index"),
		}
	})
}

func TestParseLevelsRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		levels := rapid.SliceOfN(levelGen(), 1, 8).Draw(t, "levels")

		path := JoinLevels(levels)
		assert.Equal(t, levels, ParseLevels(path))
	})
}

func TestRenderRowsColumnInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "rows")
		rows := make([]Row, n)
		for i := range rows {
			levels := rapid.SliceOfN(levelGen(), 1, 4).Draw(t, "levels")
			rows[i] = Row{Path: JoinLevels(levels), Value: "v", Required: "-", Default: "-"}
		}

		structured := structureRows(rows)
		depth := maxDepth(structured)
		for _, rr := range renderRows(structured, depth) {
			assert.Equal(t, 2*depth, rr.occupied, rr.row.Path)
		}
	})
}
