// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package types

import "strings"

// S3 data source constants used by prefix-style model artifacts.
const (
	S3DataTypePrefix      = "S3Prefix"
	CompressionTypeNone   = "None"
	CompressionTypeGzip   = "Gzip"
	s3URIScheme           = "s3://"
	s3PrefixTrailingSlash = "/"
)

// ModelData holds the model artifact location for a model resource. Exactly
// one of URI or Source is set: URI for a plain object location, Source for a
// structured data source descriptor.
type ModelData struct {
	// URI is a plain artifact location such as "s3://bucket/model.tar.gz".
	URI string `json:"uri,omitempty"`

	// Source is a structured data source descriptor.
	Source *ModelDataSource `json:"source,omitempty"`
}

// ModelDataSource is the structured model data descriptor accepted by the
// hosting platform's resource-creation calls.
type ModelDataSource struct {
	S3DataSource *S3DataSource `json:"S3DataSource,omitempty"`
}

// S3DataSource locates an artifact set in S3.
type S3DataSource struct {
	S3URI           string `json:"S3Uri"`
	S3DataType      string `json:"S3DataType"`
	CompressionType string `json:"CompressionType"`
}

// IsS3Prefix reports whether uri names an uncompressed S3 prefix artifact,
// i.e. starts with "s3://" and ends with "/".
func IsS3Prefix(uri string) bool {
	return strings.HasPrefix(uri, s3URIScheme) && strings.HasSuffix(uri, s3PrefixTrailingSlash)
}

// NewS3PrefixSource builds the structured descriptor for an S3 prefix
// artifact: prefix data type, no compression.
func NewS3PrefixSource(uri string) *ModelDataSource {
	return &ModelDataSource{
		S3DataSource: &S3DataSource{
			S3URI:           uri,
			S3DataType:      S3DataTypePrefix,
			CompressionType: CompressionTypeNone,
		},
	}
}
