// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package types_test

import (
	"testing"

	"github.com/go-modelhub/hubkit-go/types"
)

func TestIsS3Prefix(t *testing.T) {
	tests := []struct {
		uri  string
		want bool
	}{
		{"s3://bucket/model/artifacts/", true},
		{"s3://bucket/model.tar.gz", false},
		{"https://bucket/model/artifacts/", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := types.IsS3Prefix(tt.uri); got != tt.want {
			t.Errorf("IsS3Prefix(%q) = %v, want %v", tt.uri, got, tt.want)
		}
	}
}

func TestNewS3PrefixSource(t *testing.T) {
	src := types.NewS3PrefixSource("s3://bucket/model/artifacts/")
	if src.S3DataSource == nil {
		t.Fatal("S3DataSource = nil")
	}
	if got := src.S3DataSource.S3URI; got != "s3://bucket/model/artifacts/" {
		t.Errorf("S3URI = %q", got)
	}
	if got := src.S3DataSource.S3DataType; got != types.S3DataTypePrefix {
		t.Errorf("S3DataType = %q, want %q", got, types.S3DataTypePrefix)
	}
	if got := src.S3DataSource.CompressionType; got != types.CompressionTypeNone {
		t.Errorf("CompressionType = %q, want %q", got, types.CompressionTypeNone)
	}
}
