// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package xmaps_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-modelhub/hubkit-go/internal/xmaps"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]int
		key  string
		want bool
	}{
		{
			name: "key exists",
			m:    map[string]int{"a": 1, "b": 2, "c": 3},
			key:  "b",
			want: true,
		},
		{
			name: "key does not exist",
			m:    map[string]int{"a": 1, "b": 2, "c": 3},
			key:  "d",
			want: false,
		},
		{
			name: "empty map",
			m:    map[string]int{},
			key:  "a",
			want: false,
		},
		{
			name: "case sensitivity",
			m:    map[string]int{"a": 1, "B": 2, "c": 3},
			key:  "b",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := xmaps.Contains(tt.m, tt.key)
			if got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetIfAbsent(t *testing.T) {
	tests := []struct {
		name    string
		m       map[string]string
		key     string
		value   string
		wantSet bool
		want    map[string]string
	}{
		{
			name:    "absent key is set",
			m:       map[string]string{"a": "1"},
			key:     "b",
			value:   "2",
			wantSet: true,
			want:    map[string]string{"a": "1", "b": "2"},
		},
		{
			name:    "present key is kept",
			m:       map[string]string{"a": "1"},
			key:     "a",
			value:   "2",
			wantSet: false,
			want:    map[string]string{"a": "1"},
		},
		{
			name:    "empty map",
			m:       map[string]string{},
			key:     "a",
			value:   "1",
			wantSet: true,
			want:    map[string]string{"a": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSet := xmaps.SetIfAbsent(tt.m, tt.key, tt.value)
			if gotSet != tt.wantSet {
				t.Errorf("SetIfAbsent() = %v, want %v", gotSet, tt.wantSet)
			}
			if diff := cmp.Diff(tt.want, tt.m); diff != "" {
				t.Errorf("map mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
