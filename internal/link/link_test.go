// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package link

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/platform-engineering-labs/plansheet/internal/plan"
)

func role(address, name string) plan.Resource {
	return plan.Resource{
		Address: address,
		Type:    "aws_iam_role",
		Name:    "role",
		Values:  json.RawMessage(`{"name": "` + name + `"}`),
	}
}

func attachment(address, roleName, arn string) plan.Resource {
	values := `{"role": "` + roleName + `", "policy_arn": null}`
	if arn != "" {
		values = `{"role": "` + roleName + `", "policy_arn": "` + arn + `"}`
	}
	return plan.Resource{
		Address: address,
		Type:    "aws_iam_role_policy_attachment",
		Name:    "attach",
		Values:  json.RawMessage(values),
	}
}

func TestAttach(t *testing.T) {
	t.Run("known policy arn is folded into the role", func(t *testing.T) {
		resources := []plan.Resource{
			role("aws_iam_role.app", "app-role"),
			attachment("aws_iam_role_policy_attachment.a", "app-role", "arn:aws:iam::aws:policy/ReadOnlyAccess"),
		}

		out := Attach(resources, nil)
		require.Len(t, out, 2)

		policies := gjson.GetBytes(out[0].Values, "attached_policies")
		require.True(t, policies.IsArray())
		assert.Equal(t, "arn:aws:iam::aws:policy/ReadOnlyAccess", policies.Get("0").String())
	})

	t.Run("roles are matched by planned name, not resource name", func(t *testing.T) {
		resources := []plan.Resource{
			role("aws_iam_role.app", "app-role"),
			attachment("aws_iam_role_policy_attachment.a", "app", "arn:aws:iam::aws:policy/ReadOnlyAccess"),
		}

		out := Attach(resources, nil)
		assert.False(t, gjson.GetBytes(out[0].Values, "attached_policies").Exists())
	})

	t.Run("unknown arn resolves from configuration as pending", func(t *testing.T) {
		resources := []plan.Resource{
			role("aws_iam_role.app", "app-role"),
			attachment("aws_iam_role_policy_attachment.a", "app-role", ""),
		}
		config := map[string]json.RawMessage{
			"aws_iam_role_policy_attachment.a": json.RawMessage(`{
				"policy_arn": {"references": ["aws_iam_policy.reader.arn", "aws_iam_policy.reader"]}
			}`),
		}

		out := Attach(resources, config)
		policies := gjson.GetBytes(out[0].Values, "attached_policies")
		assert.Equal(t, "(pending) aws_iam_policy.reader", policies.Get("0").String())
	})

	t.Run("multiple attachments accumulate in order", func(t *testing.T) {
		resources := []plan.Resource{
			role("aws_iam_role.app", "app-role"),
			attachment("aws_iam_role_policy_attachment.a", "app-role", "arn:aws:iam::aws:policy/ReadOnlyAccess"),
			attachment("aws_iam_role_policy_attachment.b", "app-role", "arn:aws:iam::aws:policy/AmazonS3ReadOnlyAccess"),
		}

		out := Attach(resources, nil)
		policies := gjson.GetBytes(out[0].Values, "attached_policies")
		require.Len(t, policies.Array(), 2)
		assert.Equal(t, "arn:aws:iam::aws:policy/ReadOnlyAccess", policies.Get("0").String())
		assert.Equal(t, "arn:aws:iam::aws:policy/AmazonS3ReadOnlyAccess", policies.Get("1").String())
	})

	t.Run("unresolvable attachments are skipped", func(t *testing.T) {
		resources := []plan.Resource{
			role("aws_iam_role.app", "app-role"),
			attachment("aws_iam_role_policy_attachment.a", "app-role", ""),
		}

		out := Attach(resources, nil)
		assert.False(t, gjson.GetBytes(out[0].Values, "attached_policies").Exists())
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		resources := []plan.Resource{
			role("aws_iam_role.app", "app-role"),
			attachment("aws_iam_role_policy_attachment.a", "app-role", "arn:aws:iam::aws:policy/ReadOnlyAccess"),
		}

		Attach(resources, nil)
		assert.False(t, gjson.GetBytes(resources[0].Values, "attached_policies").Exists())
	})
}
