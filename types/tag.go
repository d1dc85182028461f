// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package types

// Tag keys the SDK stamps on resources created from hub models.
const (
	TagKeyModelID      = "hubkit:model-id"
	TagKeyModelVersion = "hubkit:model-version"
)

// Tag is a key/value pair attached to a hosting resource.
type Tag struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

// AddHubModelTags appends the hub model id and version tags to tags, leaving
// any caller-supplied tag with the same key untouched.
func AddHubModelTags(tags []Tag, modelID, modelVersion string) []Tag {
	if modelID != "" && !containsTagKey(tags, TagKeyModelID) {
		tags = append(tags, Tag{Key: TagKeyModelID, Value: modelID})
	}
	if modelVersion != "" && !containsTagKey(tags, TagKeyModelVersion) {
		tags = append(tags, Tag{Key: TagKeyModelVersion, Value: modelVersion})
	}
	return tags
}

func containsTagKey(tags []Tag, key string) bool {
	for _, t := range tags {
		if t.Key == key {
			return true
		}
	}
	return false
}
