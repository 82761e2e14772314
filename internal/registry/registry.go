// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package registry declares the supported resource types: their view group,
// ordering priority, and curated attribute descriptions.
package registry

import (
	"regexp"
	"sort"
	"strings"
)

// Group is a view page that related resource types render into.
type Group string

const (
	GroupIAM     Group = "IAM"
	GroupS3      Group = "S3"
	GroupNetwork Group = "Network"
	GroupOther   Group = "Other"
)

// Title is the page heading for the group.
func (g Group) Title() string {
	switch g {
	case GroupIAM:
		return "AWS IAM Resources"
	case GroupS3:
		return "AWS S3 Resources"
	case GroupNetwork:
		return "AWS Network Resources"
	default:
		return "Other AWS Resources"
	}
}

// Spec describes how one resource type is handled. Types with GenerateTable
// false participate in linking but render no table of their own.
type Spec struct {
	Group         Group
	Priority      int
	GenerateTable bool
	Descriptions  map[string]string
}

var specs = map[string]Spec{
	"aws_iam_role": {
		Group:         GroupIAM,
		Priority:      100,
		GenerateTable: true,
		Descriptions: map[string]string{
			"name":                 "Name of the IAM role",
			"assume_role_policy":   "Trust policy defining which principals can assume the role",
			"description":          "Free-form description of the role",
			"max_session_duration": "Maximum session duration in seconds for assumed-role sessions",
			"path":                 "Path of the role in the IAM hierarchy",
			"attached_policies":    "ARNs of the IAM policies attached to this role",
			"tags.Name":            "Name tag of the role",
		},
	},
	"aws_iam_policy": {
		Group:         GroupIAM,
		Priority:      90,
		GenerateTable: true,
		Descriptions: map[string]string{
			"name":        "Name of the IAM policy",
			"policy":      "Policy document in JSON",
			"description": "Free-form description of the policy",
			"path":        "Path of the policy in the IAM hierarchy",
			"tags.Name":   "Name tag of the policy",
		},
	},
	"aws_iam_role_policy_attachment": {
		Group:         GroupIAM,
		Priority:      80,
		GenerateTable: false,
	},
	"aws_s3_bucket": {
		Group:         GroupS3,
		Priority:      50,
		GenerateTable: true,
		Descriptions: map[string]string{
			"bucket":        "Name of the S3 bucket",
			"bucket_prefix": "Prefix used to generate a unique bucket name",
			"force_destroy": "Whether all objects are deleted when the bucket is destroyed",
			"tags.Name":     "Name tag of the bucket",
		},
	},
	"aws_s3_bucket_cors_configuration": {
		Group:         GroupS3,
		Priority:      45,
		GenerateTable: true,
		Descriptions: map[string]string{
			"bucket":                    "Name of the bucket the CORS configuration applies to",
			"cors_rule.allowed_methods": "HTTP methods the cross-origin rule allows",
			"cors_rule.allowed_origins": "Origins the cross-origin rule allows",
			"cors_rule.allowed_headers": "Headers allowed in preflighted requests",
			"cors_rule.expose_headers":  "Headers exposed to browser clients",
			"cors_rule.max_age_seconds": "Seconds browsers may cache the preflight response",
		},
	},
	"aws_s3_bucket_versioning": {
		Group:         GroupS3,
		Priority:      45,
		GenerateTable: true,
		Descriptions: map[string]string{
			"bucket":                              "Name of the bucket the versioning configuration applies to",
			"versioning_configuration.status":     "Versioning state of the bucket",
			"versioning_configuration.mfa_delete": "Whether MFA delete is enabled for the bucket",
		},
	},
}

// Lookup returns the spec for a resource type.
func Lookup(resourceType string) (Spec, bool) {
	spec, ok := specs[resourceType]
	return spec, ok
}

// Supported lists the registered resource types, sorted.
func Supported() []string {
	types := make([]string, 0, len(specs))
	for t := range specs {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// Description resolves the curated description for an attribute path. An
// exact match wins, then the path with array indices stripped, then the
// top-level attribute name.
func (s Spec) Description(path string) (string, bool) {
	if d, ok := s.Descriptions[path]; ok {
		return d, true
	}
	if d, ok := s.Descriptions[indexPattern.ReplaceAllString(path, "")]; ok {
		return d, true
	}
	if d, ok := s.Descriptions[rootName(path)]; ok {
		return d, true
	}
	return "", false
}

func rootName(path string) string {
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[:i]
	}
	if i := strings.IndexByte(path, '['); i >= 0 {
		path = path[:i]
	}
	return path
}
