// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchema = `{
	"provider_schemas": {
		"registry.terraform.io/hashicorp/aws": {
			"resource_schemas": {
				"aws_s3_bucket": {
					"block": {
						"attributes": {
							"bucket": {"optional": true, "computed": true, "description": "Bucket name"},
							"force_destroy": {"optional": true, "description": "Delete objects on destroy"},
							"arn": {"computed": true}
						},
						"block_types": {
							"cors_rule": {
								"nesting_mode": "set",
								"block": {
									"description": "Cross-origin resource sharing rule",
									"attributes": {
										"allowed_methods": {"required": true}
									}
								}
							}
						}
					}
				},
				"aws_iam_role": {
					"block": {
						"attributes": {
							"name": {"required": true, "description": "Role name"}
						}
					}
				}
			}
		}
	}
}`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)

	t.Run("merges resource schemas from every provider", func(t *testing.T) {
		_, ok := doc.Lookup("aws_s3_bucket", "bucket")
		assert.True(t, ok)
		_, ok = doc.Lookup("aws_iam_role", "name")
		assert.True(t, ok)
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		_, err := Parse([]byte(`{"provider_schemas": [`))
		assert.Error(t, err)
	})
}

func TestLookup(t *testing.T) {
	doc, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)

	t.Run("top-level attribute", func(t *testing.T) {
		desc, ok := doc.Lookup("aws_s3_bucket", "bucket")
		require.True(t, ok)
		assert.True(t, desc.Optional)
		assert.True(t, desc.Computed)
		assert.Equal(t, "Bucket name", desc.Description)
	})

	t.Run("nested paths resolve to the block descriptor", func(t *testing.T) {
		desc, ok := doc.Lookup("aws_s3_bucket", "cors_rule[0].allowed_methods[1]")
		require.True(t, ok)
		assert.Equal(t, "Cross-origin resource sharing rule", desc.Description)
		assert.False(t, desc.Required)
	})

	t.Run("unknown attribute", func(t *testing.T) {
		_, ok := doc.Lookup("aws_s3_bucket", "no_such_attribute")
		assert.False(t, ok)
	})

	t.Run("unknown resource type", func(t *testing.T) {
		_, ok := doc.Lookup("aws_sqs_queue", "name")
		assert.False(t, ok)
	})

	t.Run("nil document never matches", func(t *testing.T) {
		var doc *Document
		_, ok := doc.Lookup("aws_s3_bucket", "bucket")
		assert.False(t, ok)
	})
}

func TestRootName(t *testing.T) {
	assert.Equal(t, "bucket", RootName("bucket"))
	assert.Equal(t, "cors_rule", RootName("cors_rule[0].allowed_methods[1]"))
	assert.Equal(t, "tags", RootName("tags.Name"))
}

func TestRequiredFlag(t *testing.T) {
	assert.Equal(t, "-", RequiredFlag(Descriptor{}, false))
	assert.Equal(t, "Yes", RequiredFlag(Descriptor{Required: true}, true))
	assert.Equal(t, "No", RequiredFlag(Descriptor{Optional: true}, true))
	assert.Equal(t, "-", RequiredFlag(Descriptor{Computed: true}, true))
}

func TestDefaultValue(t *testing.T) {
	assert.Equal(t, "(computed)", DefaultValue(Descriptor{Computed: true}, true))
	assert.Equal(t, "-", DefaultValue(Descriptor{}, true))
	assert.Equal(t, "-", DefaultValue(Descriptor{Computed: true}, false))
}
