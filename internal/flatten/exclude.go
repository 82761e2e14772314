// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package flatten

import (
	"strings"

	"github.com/platform-engineering-labs/plansheet/internal/schema"
)

// DescriptorFunc resolves the schema descriptor for an attribute path.
type DescriptorFunc func(path string) (schema.Descriptor, bool)

// StandardExclusions is the exclusion policy applied to every resource:
// provider-computed identifiers (id, arn), Terraform-managed tag copies
// (tags_all and everything below it), all tags except tags.Name, and any
// attribute whose descriptor marks it computed-only (computed without being
// required or optional). lookup may be nil when no schema is loaded.
func StandardExclusions(lookup DescriptorFunc) Predicate {
	return func(path string) bool {
		switch path {
		case "id", "arn", "tags_all":
			return true
		}

		if strings.HasPrefix(path, "tags_all.") {
			return true
		}
		if strings.HasPrefix(path, "tags.") && path != "tags.Name" {
			return true
		}

		if lookup != nil {
			if desc, ok := lookup(path); ok && desc.Computed && !desc.Required && !desc.Optional {
				return true
			}
		}

		return false
	}
}
