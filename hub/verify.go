// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package hub

import (
	"context"
	"fmt"

	"github.com/go-modelhub/hubkit-go/types"
)

// VerifyOptions identifies one gated spec lookup.
type VerifyOptions struct {
	ModelID string
	Version string
	Region  string
	Scope   types.ScriptScope

	// TolerateDeprecatedModel allows lookups against deprecated versions.
	TolerateDeprecatedModel bool

	// TolerateVulnerableModel allows lookups against versions with known
	// inference vulnerabilities.
	TolerateVulnerableModel bool
}

// VerifySpec fetches the spec for a model version and enforces the
// deprecation and vulnerability gates before returning it.
func VerifySpec(ctx context.Context, c Client, opts *VerifyOptions) (*types.ModelSpec, error) {
	if opts == nil {
		return nil, fmt.Errorf("verify options are required")
	}
	if opts.Scope != types.ScriptScopeInference {
		return nil, fmt.Errorf("unsupported script scope %q", opts.Scope)
	}

	spec, err := c.Spec(ctx, &SpecRequest{
		ModelID: opts.ModelID,
		Version: opts.Version,
		Region:  opts.Region,
	})
	if err != nil {
		return nil, err
	}

	if spec.Deprecated && !opts.TolerateDeprecatedModel {
		return nil, &types.DeprecatedModelError{
			ModelID: spec.ModelID,
			Version: spec.Version,
			Message: spec.DeprecatedMessage,
		}
	}
	if spec.InferenceVulnerable && !opts.TolerateVulnerableModel {
		return nil, &types.VulnerableModelError{
			ModelID:         spec.ModelID,
			Version:         spec.Version,
			Vulnerabilities: spec.InferenceVulnerabilities,
		}
	}
	return spec, nil
}
