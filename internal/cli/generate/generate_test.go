// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateGenerateOptions(t *testing.T) {
	t.Run("missing plan file", func(t *testing.T) {
		opts := &GenerateOptions{
			PlanPath: "",
			Format:   "html",
		}
		err := validateGenerateOptions(opts)
		assert.Error(t, err)
		assert.Equal(t, "plan file is required", err.Error())
	})

	t.Run("unreadable plan file", func(t *testing.T) {
		opts := &GenerateOptions{
			PlanPath: "/no/such/plan.json",
			Format:   "html",
		}
		err := validateGenerateOptions(opts)
		assert.Error(t, err)
	})

	t.Run("unreadable schema file", func(t *testing.T) {
		opts := &GenerateOptions{
			PlanPath:   writeTempFile(t, "plan.json", "{}"),
			SchemaPath: "/no/such/schema.json",
			Format:     "html",
		}
		err := validateGenerateOptions(opts)
		assert.Error(t, err)
	})

	t.Run("unsupported format", func(t *testing.T) {
		opts := &GenerateOptions{
			PlanPath: writeTempFile(t, "plan.json", "{}"),
			Format:   "pdf",
		}
		err := validateGenerateOptions(opts)
		assert.Error(t, err)
		assert.Equal(t, "unsupported format 'pdf', must be 'html', 'markdown' or 'both'", err.Error())
	})

	t.Run("valid options", func(t *testing.T) {
		opts := &GenerateOptions{
			PlanPath: writeTempFile(t, "plan.json", "{}"),
			Format:   "both",
		}
		assert.NoError(t, validateGenerateOptions(opts))
	})
}

func TestFormats(t *testing.T) {
	assert.Len(t, formats("html"), 1)
	assert.Len(t, formats("markdown"), 1)
	assert.Len(t, formats("both"), 2)
}
