// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package table

import "strconv"

// Span keys encode level prefixes with control separators so attribute
// names containing dots or brackets cannot collide with the encoding.
const (
	keyFieldSep = "\x1f"
	keyLevelSep = "\x1e"
	keyNoIndex  = "-"
)

// indexKey identifies the merged index cell at the given depth: the full
// prefix of (name, index) pairs through levels[depth].
func indexKey(levels []Level, depth int) string {
	var key string
	for _, l := range levels[:depth+1] {
		key += l.Name + keyFieldSep + strconv.Itoa(l.Index) + keyLevelSep
	}
	return key
}

// nameKey identifies the merged name cell at the given depth: the indexed
// prefix above it plus the bare name, so every index under one name shares
// the name cell.
func nameKey(levels []Level, depth int) string {
	var key string
	for _, l := range levels[:depth] {
		key += l.Name + keyFieldSep + strconv.Itoa(l.Index) + keyLevelSep
	}
	return key + levels[depth].Name + keyFieldSep + keyNoIndex + keyLevelSep
}

// countSpans counts, for every name cell and index cell, how many leaf rows
// fall under it. Those counts become the rowspan of the cell on the first
// row where it appears.
func countSpans(rows []structuredRow) map[string]int {
	counts := make(map[string]int)
	for _, r := range rows {
		for d := range r.levels {
			counts[nameKey(r.levels, d)]++
			counts[indexKey(r.levels, d)]++
		}
	}
	return counts
}

type cell struct {
	text    string
	class   string
	rowspan int
	colspan int
}

type renderedRow struct {
	cells    []cell
	filler   int
	occupied int
	row      Row
}

// renderRows performs the second pass: each merged cell is emitted only on
// the first row it covers, with the precomputed rowspan. Every row's path
// portion occupies exactly 2*depth columns; rows shallower than the table
// depth get a trailing filler cell spanning the remainder.
func renderRows(rows []structuredRow, depth int) []renderedRow {
	counts := countSpans(rows)
	rendered := make(map[string]bool)

	out := make([]renderedRow, 0, len(rows))
	for _, r := range rows {
		rr := renderedRow{row: r.row}

		simple := len(r.levels) == 1 && r.levels[0].Index == 0
		if simple && depth > 1 {
			key := indexKey(r.levels, 0)
			if !rendered[key] {
				rendered[key] = true
				rr.cells = append(rr.cells, cell{
					text:    r.levels[0].Name,
					class:   "param-name",
					rowspan: counts[key],
					colspan: 2 * depth,
				})
			}
			rr.occupied = 2 * depth
			out = append(out, rr)
			continue
		}

		for d, l := range r.levels {
			nk := nameKey(r.levels, d)
			if !rendered[nk] {
				rendered[nk] = true
				rr.cells = append(rr.cells, cell{
					text:    l.Name,
					class:   "param-name",
					rowspan: counts[nk],
				})
			}
			rr.occupied++

			ik := indexKey(r.levels, d)
			if !rendered[ik] {
				rendered[ik] = true
				c := cell{text: keyNoIndex, rowspan: counts[ik]}
				if l.Index > 0 {
					c.text = strconv.Itoa(l.Index)
					c.class = "index-cell"
				}
				rr.cells = append(rr.cells, c)
			}
			rr.occupied++
		}

		if filler := 2*depth - rr.occupied; filler > 0 {
			rr.filler = filler
			rr.occupied += filler
		}
		out = append(out, rr)
	}
	return out
}
