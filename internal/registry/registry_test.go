// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("registered type", func(t *testing.T) {
		spec, ok := Lookup("aws_iam_role")
		require.True(t, ok)
		assert.Equal(t, GroupIAM, spec.Group)
		assert.Equal(t, 100, spec.Priority)
		assert.True(t, spec.GenerateTable)
	})

	t.Run("attachment type suppresses its table", func(t *testing.T) {
		spec, ok := Lookup("aws_iam_role_policy_attachment")
		require.True(t, ok)
		assert.False(t, spec.GenerateTable)
	})

	t.Run("unregistered type", func(t *testing.T) {
		_, ok := Lookup("aws_sqs_queue")
		assert.False(t, ok)
	})
}

func TestSupported(t *testing.T) {
	types := Supported()
	assert.Contains(t, types, "aws_iam_role")
	assert.Contains(t, types, "aws_s3_bucket_versioning")
	assert.IsIncreasing(t, types)
}

func TestDescription(t *testing.T) {
	role, ok := Lookup("aws_iam_role")
	require.True(t, ok)
	cors, ok := Lookup("aws_s3_bucket_cors_configuration")
	require.True(t, ok)

	t.Run("exact match wins", func(t *testing.T) {
		d, ok := role.Description("tags.Name")
		require.True(t, ok)
		assert.Equal(t, "Name tag of the role", d)
	})

	t.Run("indexed paths match their index-free entry", func(t *testing.T) {
		d, ok := cors.Description("cors_rule[0].allowed_methods[1]")
		require.True(t, ok)
		assert.Equal(t, "HTTP methods the cross-origin rule allows", d)
	})

	t.Run("falls back to the top-level attribute", func(t *testing.T) {
		d, ok := role.Description("attached_policies[2]")
		require.True(t, ok)
		assert.Equal(t, "ARNs of the IAM policies attached to this role", d)
	})

	t.Run("unknown path has no description", func(t *testing.T) {
		_, ok := role.Description("no_such_attribute")
		assert.False(t, ok)
	})
}

func TestGroupTitle(t *testing.T) {
	assert.Equal(t, "AWS IAM Resources", GroupIAM.Title())
	assert.Equal(t, "AWS S3 Resources", GroupS3.Title())
	assert.Equal(t, "AWS Network Resources", GroupNetwork.Title())
	assert.Equal(t, "Other AWS Resources", GroupOther.Title())
}
