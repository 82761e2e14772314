// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package link resolves cross-resource relationships that plan documents
// keep as separate resources, folding them into the resource they describe.
package link

import (
	"log/slog"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/platform-engineering-labs/plansheet/internal/plan"
	"github.com/platform-engineering-labs/plansheet/internal/table"
)

const (
	roleType       = "aws_iam_role"
	attachmentType = "aws_iam_role_policy_attachment"
)

// Attach folds role policy attachments into their target roles: each role
// gains a synthetic attached_policies list of policy ARNs. Attachment
// resources themselves are left in place; the registry suppresses their
// tables. The input slice is not modified.
func Attach(resources []plan.Resource, config map[string]json.RawMessage) []plan.Resource {
	attached := make(map[string][]string)
	for _, r := range resources {
		if r.Type != attachmentType {
			continue
		}
		roleName := gjson.GetBytes(r.Values, "role").String()
		arn := policyArn(r, config)
		if roleName == "" || arn == "" {
			slog.Warn("Skipping unresolvable role policy attachment", "address", r.Address)
			continue
		}
		attached[roleName] = append(attached[roleName], arn)
	}

	out := make([]plan.Resource, len(resources))
	copy(out, resources)
	if len(attached) == 0 {
		return out
	}

	for i, r := range out {
		if r.Type != roleType {
			continue
		}
		arns := attached[gjson.GetBytes(r.Values, "name").String()]
		if len(arns) == 0 {
			continue
		}
		values := []byte(r.Values)
		for j, arn := range arns {
			updated, err := sjson.SetBytes(values, "attached_policies."+strconv.Itoa(j), arn)
			if err != nil {
				slog.Error("Failed to inject attached policy", "address", r.Address, "error", err)
				continue
			}
			values = updated
		}
		out[i].Values = values
	}
	return out
}

// policyArn resolves the attachment's policy ARN: the planned value when
// known, otherwise the configuration reference with a pending marker. The
// referenced policy has no ARN before it is created.
func policyArn(r plan.Resource, config map[string]json.RawMessage) string {
	v := gjson.GetBytes(r.Values, "policy_arn")
	if v.Exists() && v.Type != gjson.Null {
		return v.String()
	}

	expressions, ok := config[r.Address]
	if !ok {
		return ""
	}
	ref := gjson.GetBytes(expressions, "policy_arn.references.0").String()
	if ref == "" {
		return ""
	}
	return table.PendingMarker + " " + strings.TrimSuffix(ref, ".arn")
}
