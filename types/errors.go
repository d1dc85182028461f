// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"
	"strings"
)

// ModelNotFoundError reports a model id or version the hub does not list for
// the requested region.
type ModelNotFoundError struct {
	ModelID string
	Version string
	Region  string
}

// Error implements the error interface.
func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model %q version %q is not available in region %q", e.ModelID, e.Version, e.Region)
}

// DeprecatedModelError reports a lookup against a deprecated model version
// by a caller that does not tolerate deprecated models.
type DeprecatedModelError struct {
	ModelID string
	Version string
	Message string
}

// Error implements the error interface.
func (e *DeprecatedModelError) Error() string {
	msg := fmt.Sprintf("model %q version %q is deprecated", e.ModelID, e.Version)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// VulnerableModelError reports a lookup against a model version with known
// inference vulnerabilities by a caller that does not tolerate them.
type VulnerableModelError struct {
	ModelID         string
	Version         string
	Vulnerabilities []string
}

// Error implements the error interface.
func (e *VulnerableModelError) Error() string {
	msg := fmt.Sprintf("model %q version %q has known inference vulnerabilities", e.ModelID, e.Version)
	if len(e.Vulnerabilities) > 0 {
		msg += ": " + strings.Join(e.Vulnerabilities, ", ")
	}
	return msg
}
