// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package table

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderMarkdown renders rows as a flat Markdown table, full dotted/indexed
// paths in the Parameter column. Empty input renders as an empty string.
func RenderMarkdown(rows []Row) (string, error) {
	structured := structureRows(rows)
	if len(structured) == 0 {
		return "", nil
	}

	var buf strings.Builder
	t := tablewriter.NewTable(&buf,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRenderer(renderer.NewMarkdown()),
	)
	t.Header("Parameter", "Value", "Required", "Default", "Description")

	data := make([][]any, 0, len(structured))
	for _, r := range structured {
		data = append(data, []any{
			escapePipes(r.row.Path),
			escapePipes(FormatValue(r.row.Value)),
			r.row.Required,
			r.row.Default,
			escapePipes(r.row.Description),
		})
	}
	if err := t.Bulk(data); err != nil {
		return "", fmt.Errorf("error formatting parameter table: %v", err)
	}
	if err := t.Render(); err != nil {
		return "", fmt.Errorf("error rendering parameter table: %v", err)
	}

	return buf.String(), nil
}
