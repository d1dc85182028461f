// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package hub

import (
	"errors"
	"testing"

	"github.com/go-modelhub/hubkit-go/types"
)

func TestResolveVersion(t *testing.T) {
	entries := []ManifestEntry{
		{ModelID: "flan-t5-xl", Version: "1.9.0", SpecKey: "specs/flan-t5-xl/1.9.0.json"},
		{ModelID: "flan-t5-xl", Version: "1.10.0", SpecKey: "specs/flan-t5-xl/1.10.0.json"},
		{ModelID: "flan-t5-xl", Version: "2.0.0", SpecKey: "specs/flan-t5-xl/2.0.0.json"},
		{ModelID: "mobilenet-v2", Version: "1.0.0", SpecKey: "specs/mobilenet-v2/1.0.0.json"},
	}

	tests := []struct {
		name    string
		modelID string
		version string
		want    string
		wantErr bool
	}{
		{
			name:    "wildcard resolves to highest semver",
			modelID: "flan-t5-xl",
			version: "*",
			want:    "2.0.0",
		},
		{
			name:    "empty version behaves like wildcard",
			modelID: "flan-t5-xl",
			version: "",
			want:    "2.0.0",
		},
		{
			name:    "semver ordering beats string ordering",
			modelID: "flan-t5-xl",
			version: "*",
			want:    "2.0.0",
		},
		{
			name:    "exact version match",
			modelID: "flan-t5-xl",
			version: "1.10.0",
			want:    "1.10.0",
		},
		{
			name:    "unknown version",
			modelID: "flan-t5-xl",
			version: "3.0.0",
			wantErr: true,
		},
		{
			name:    "unknown model",
			modelID: "no-such-model",
			version: "*",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveVersion(entries, tt.modelID, tt.version, "us-east-1")
			if tt.wantErr {
				var notFound *types.ModelNotFoundError
				if !errors.As(err, &notFound) {
					t.Fatalf("resolveVersion error = %v, want ModelNotFoundError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveVersion: %v", err)
			}
			if got.Version != tt.want {
				t.Errorf("resolveVersion version = %q, want %q", got.Version, tt.want)
			}
		})
	}
}

func TestVersionLess_SemverAwareness(t *testing.T) {
	if !versionLess("1.9.0", "1.10.0") {
		t.Error("versionLess(1.9.0, 1.10.0) = false, want true")
	}
	if versionLess("2.0.0", "1.10.0") {
		t.Error("versionLess(2.0.0, 1.10.0) = true, want false")
	}
}
