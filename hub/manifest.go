// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package hub

import (
	"golang.org/x/mod/semver"

	"github.com/go-modelhub/hubkit-go/types"
)

// manifestKey is the manifest object key under every regional hub bucket.
const manifestKey = "models_manifest.json"

// ManifestEntry is one row of the regional hub manifest.
type ManifestEntry struct {
	// ModelID is the hub model identifier.
	ModelID string `json:"model_id"`

	// Version is the concrete semantic version of the spec document.
	Version string `json:"version"`

	// MinSDKVersion is the lowest SDK version able to consume the spec.
	MinSDKVersion string `json:"min_version,omitempty"`

	// SpecKey is the spec document key under the regional hub bucket.
	SpecKey string `json:"spec_key"`
}

// resolveVersion picks the manifest entry for modelID at version. The
// wildcard "*" (or an empty version) resolves to the highest semantic
// version listed; anything else must match an entry exactly.
func resolveVersion(entries []ManifestEntry, modelID, version, region string) (*ManifestEntry, error) {
	var best *ManifestEntry
	for i := range entries {
		e := &entries[i]
		if e.ModelID != modelID {
			continue
		}
		if version != "" && version != "*" {
			if e.Version == version {
				return e, nil
			}
			continue
		}
		if best == nil || versionLess(best.Version, e.Version) {
			best = e
		}
	}
	if best == nil {
		return nil, &types.ModelNotFoundError{ModelID: modelID, Version: version, Region: region}
	}
	return best, nil
}

// versionLess reports whether a orders before b. Versions are compared as
// semver when both parse, falling back to plain string order.
func versionLess(a, b string) bool {
	ca, cb := "v"+a, "v"+b
	if semver.IsValid(ca) && semver.IsValid(cb) {
		return semver.Compare(ca, cb) < 0
	}
	return a < b
}
