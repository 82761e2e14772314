// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package report assembles the per-group parameter sheets from linked plan
// resources and renders them to disk.
package report

import (
	"log/slog"
	"sort"

	"github.com/platform-engineering-labs/plansheet/internal/flatten"
	"github.com/platform-engineering-labs/plansheet/internal/plan"
	"github.com/platform-engineering-labs/plansheet/internal/registry"
	"github.com/platform-engineering-labs/plansheet/internal/schema"
	"github.com/platform-engineering-labs/plansheet/internal/table"
)

// Entry is one resource's rendered table material within a group.
type Entry struct {
	Resource plan.Resource
	Spec     registry.Spec
	Rows     []table.Row
}

// Report is the grouped set of entries built from a plan.
type Report struct {
	groups map[registry.Group][]Entry

	// Skipped lists resource types present in the plan that no registry
	// spec covers, deduplicated, in first-seen order.
	Skipped []string
}

// Build flattens every supported resource into table rows and groups the
// results by view. schemaDoc may be nil when no schema file was given.
func Build(resources []plan.Resource, schemaDoc *schema.Document) *Report {
	report := &Report{groups: make(map[registry.Group][]Entry)}
	skipped := make(map[string]bool)

	for _, r := range resources {
		spec, ok := registry.Lookup(r.Type)
		if !ok {
			if !skipped[r.Type] {
				skipped[r.Type] = true
				report.Skipped = append(report.Skipped, r.Type)
				slog.Warn("Skipping unsupported resource type", "type", r.Type)
			}
			continue
		}
		if !spec.GenerateTable {
			continue
		}

		rows := buildRows(r, spec, schemaDoc)
		if len(rows) == 0 {
			continue
		}
		report.groups[spec.Group] = append(report.groups[spec.Group], Entry{
			Resource: r,
			Spec:     spec,
			Rows:     rows,
		})
	}

	for g := range report.groups {
		sortEntries(report.groups[g])
	}
	return report
}

func buildRows(r plan.Resource, spec registry.Spec, schemaDoc *schema.Document) []table.Row {
	lookup := func(path string) (schema.Descriptor, bool) {
		return schemaDoc.Lookup(r.Type, path)
	}

	attrs := flatten.Flatten(r.Values, flatten.StandardExclusions(lookup))
	rows := make([]table.Row, 0, len(attrs))
	for _, attr := range attrs {
		desc, found := lookup(attr.Path)
		description, ok := spec.Description(attr.Path)
		if !ok {
			description = desc.Description
		}
		rows = append(rows, table.Row{
			Path:        attr.Path,
			Value:       attr.Value,
			Required:    schema.RequiredFlag(desc, found),
			Default:     schema.DefaultValue(desc, found),
			Description: description,
		})
	}
	return rows
}

// sortEntries orders a group: highest priority first, then resource type,
// then resource name.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Spec.Priority != b.Spec.Priority {
			return a.Spec.Priority > b.Spec.Priority
		}
		if a.Resource.Type != b.Resource.Type {
			return a.Resource.Type < b.Resource.Type
		}
		return a.Resource.Name < b.Resource.Name
	})
}

// Groups returns the populated groups in stable alphabetical order.
func (r *Report) Groups() []registry.Group {
	groups := make([]registry.Group, 0, len(r.groups))
	for g := range r.groups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
	return groups
}

// Entries returns the sorted entries of one group.
func (r *Report) Entries(g registry.Group) []Entry {
	return r.groups[g]
}
