// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package renderer formats CLI output: the written-page summary tree and
// the resource listing table.
package renderer

import (
	"fmt"
	"strings"

	"github.com/ddddddO/gtree"

	"github.com/platform-engineering-labs/plansheet/internal/cli/display"
	"github.com/platform-engineering-labs/plansheet/internal/report"
)

// SummaryTree renders the written pages as a tree: one branch per page,
// one leaf per resource table on it.
func SummaryTree(outputs []report.Output) (string, error) {
	root := gtree.NewRoot("Generated parameter sheets")

	for _, out := range outputs {
		page := root.Add(fmt.Sprintf("%s %s", out.Group.Title(), display.LightBlue(out.Path)))
		for _, address := range out.Resources {
			page.Add(display.Grey(address))
		}
	}

	var buf strings.Builder
	if err := gtree.OutputProgrammably(&buf, root); err != nil {
		return "", err
	}

	return buf.String(), nil
}
