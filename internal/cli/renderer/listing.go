// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package renderer

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/platform-engineering-labs/plansheet/internal/cli/display"
	"github.com/platform-engineering-labs/plansheet/internal/plan"
	"github.com/platform-engineering-labs/plansheet/internal/registry"
)

// ResourceTable renders the planned resources with their registry
// classification: which view group each type renders into and whether it
// gets a table of its own.
func ResourceTable(resources []plan.Resource) (string, error) {
	if len(resources) == 0 {
		return display.Gold("No resources found in plan.\n"), nil
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On}},
		})))

	table.Header(display.LightBlue("Address"),
		"Type",
		"Name",
		display.Gold("Group"),
		"Table")

	data := make([][]any, len(resources))
	for i, r := range resources {
		group := display.Grey("-")
		hasTable := display.Grey("-")
		if spec, ok := registry.Lookup(r.Type); ok {
			group = display.Gold(string(spec.Group))
			if spec.GenerateTable {
				hasTable = display.Green("yes")
			} else {
				hasTable = display.Grey("no")
			}
		}

		data[i] = []any{
			display.LightBlue(r.Address),
			r.Type,
			r.Name,
			group,
			hasTable,
		}
	}

	if err := table.Bulk(data); err != nil {
		return "", fmt.Errorf("error formatting resource listing: %v", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("error rendering resource listing: %v", err)
	}

	return buf.String(), nil
}
