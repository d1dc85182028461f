// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-modelhub/hubkit-go/types"
)

func TestAddHubModelTags(t *testing.T) {
	tests := []struct {
		name         string
		tags         []types.Tag
		modelID      string
		modelVersion string
		want         []types.Tag
	}{
		{
			name:         "appends both tags",
			modelID:      "mobilenet-v2",
			modelVersion: "2.0.0",
			want: []types.Tag{
				{Key: types.TagKeyModelID, Value: "mobilenet-v2"},
				{Key: types.TagKeyModelVersion, Value: "2.0.0"},
			},
		},
		{
			name: "caller tag with same key wins",
			tags: []types.Tag{
				{Key: types.TagKeyModelID, Value: "caller-chose-this"},
			},
			modelID:      "mobilenet-v2",
			modelVersion: "2.0.0",
			want: []types.Tag{
				{Key: types.TagKeyModelID, Value: "caller-chose-this"},
				{Key: types.TagKeyModelVersion, Value: "2.0.0"},
			},
		},
		{
			name: "unrelated caller tags kept",
			tags: []types.Tag{
				{Key: "team", Value: "search"},
			},
			modelID:      "mobilenet-v2",
			modelVersion: "2.0.0",
			want: []types.Tag{
				{Key: "team", Value: "search"},
				{Key: types.TagKeyModelID, Value: "mobilenet-v2"},
				{Key: types.TagKeyModelVersion, Value: "2.0.0"},
			},
		},
		{
			name:         "empty id and version add nothing",
			tags:         []types.Tag{{Key: "team", Value: "search"}},
			modelID:      "",
			modelVersion: "",
			want:         []types.Tag{{Key: "team", Value: "search"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := types.AddHubModelTags(tt.tags, tt.modelID, tt.modelVersion)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AddHubModelTags mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
