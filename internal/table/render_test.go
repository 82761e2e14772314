// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	t.Run("empty rows render nothing", func(t *testing.T) {
		assert.Equal(t, "", RenderHTML(nil))
	})

	t.Run("header spans the path columns", func(t *testing.T) {
		out := RenderHTML([]Row{
			{Path: "bucket", Value: "assets", Required: "Yes", Default: "-"},
			{Path: "cors_rule[0].max_age_seconds", Value: float64(300), Required: "-", Default: "-"},
		})
		assert.Contains(t, out, `<th colspan="4">Parameter</th>`)
		assert.Contains(t, out, `<td class="param-name" rowspan="1" colspan="4">bucket</td>`)
	})

	t.Run("required and computed columns carry their classes", func(t *testing.T) {
		out := RenderHTML([]Row{
			{Path: "name", Value: "role", Required: "Yes", Default: "-"},
			{Path: "path", Value: "/", Required: "No", Default: "(computed)"},
		})
		assert.Contains(t, out, `<td class="required-yes">Yes</td>`)
		assert.Contains(t, out, `<td class="required-no">No</td>`)
		assert.Contains(t, out, `<td class="computed">(computed)</td>`)
	})

	t.Run("pending values get the pending class", func(t *testing.T) {
		out := RenderHTML([]Row{
			{Path: "attached_policies[0]", Value: PendingMarker + " aws_iam_policy.reader", Required: "-", Default: "-"},
		})
		assert.Contains(t, out, `class="param-value pending"`)
	})

	t.Run("cell content is escaped", func(t *testing.T) {
		out := RenderHTML([]Row{
			{Path: "policy", Value: `{"Effect":"<Allow>"}`, Required: "-", Default: "-"},
		})
		assert.Contains(t, out, "&lt;Allow&gt;")
		assert.NotContains(t, out, "<Allow>")
	})
}

func TestRenderMarkdown(t *testing.T) {
	t.Run("empty rows render nothing", func(t *testing.T) {
		out, err := RenderMarkdown(nil)
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("keeps full paths in the parameter column", func(t *testing.T) {
		out, err := RenderMarkdown([]Row{
			{Path: "bucket", Value: "assets", Required: "Yes", Default: "-", Description: "Name of the S3 bucket"},
			{Path: "cors_rule[0].allowed_methods[0]", Value: "GET", Required: "-", Default: "-"},
		})
		require.NoError(t, err)

		assert.Contains(t, out, "Parameter")
		assert.Contains(t, out, "cors_rule[0].allowed_methods[0]")
		assert.Contains(t, out, "Name of the S3 bucket")

		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.GreaterOrEqual(t, len(lines), 4, "header, separator and two data rows")
	})

	t.Run("escapes pipes in values", func(t *testing.T) {
		out, err := RenderMarkdown([]Row{
			{Path: "policy", Value: "a|b", Required: "-", Default: "-"},
		})
		require.NoError(t, err)
		assert.Contains(t, out, `a\|b`)
	})
}
