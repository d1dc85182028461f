// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package artifacts

import (
	"context"
	"fmt"

	"github.com/go-modelhub/hubkit-go/hub"
	"github.com/go-modelhub/hubkit-go/session"
	"github.com/go-modelhub/hubkit-go/types"
)

// RetrieveOptions identifies the model a default is retrieved for. The same
// options record is shared by every retrieval function in this package.
type RetrieveOptions struct {
	// Session supplies the hub client and the fallback region. Required.
	Session *session.Session

	// ModelID is the hub model identifier. Required.
	ModelID string

	// ModelVersion is a concrete version or the wildcard "*". Empty means
	// "*".
	ModelVersion string

	// Region overrides the session region.
	Region string

	// Scope selects the lifecycle side. Empty means inference.
	Scope types.ScriptScope

	// InstanceType steers instance-family variant selection.
	InstanceType string

	// TrainingInstanceType steers the default hosting instance type towards
	// the family the model was trained on.
	TrainingInstanceType string

	// TolerateDeprecatedModel allows lookups against deprecated versions.
	TolerateDeprecatedModel bool

	// TolerateVulnerableModel allows lookups against versions with known
	// inference vulnerabilities.
	TolerateVulnerableModel bool
}

// region returns the effective region for the lookup.
func (o *RetrieveOptions) region() string {
	if o.Region != "" {
		return o.Region
	}
	return o.Session.Region()
}

// scope returns the effective script scope for the lookup.
func (o *RetrieveOptions) scope() types.ScriptScope {
	if o.Scope != "" {
		return o.Scope
	}
	return types.ScriptScopeInference
}

// spec fetches the verified spec document for the options.
func (o *RetrieveOptions) spec(ctx context.Context) (*types.ModelSpec, error) {
	if o.Session == nil {
		return nil, fmt.Errorf("session is required")
	}
	if o.ModelID == "" {
		return nil, fmt.Errorf("model id is required")
	}
	spec, err := hub.VerifySpec(ctx, o.Session.Hub(), &hub.VerifyOptions{
		ModelID:                 o.ModelID,
		Version:                 o.ModelVersion,
		Region:                  o.region(),
		Scope:                   o.scope(),
		TolerateDeprecatedModel: o.TolerateDeprecatedModel,
		TolerateVulnerableModel: o.TolerateVulnerableModel,
	})
	if err != nil {
		return nil, err
	}
	if spec.Hosting == nil {
		return nil, fmt.Errorf("model %q version %q has no hosting spec", spec.ModelID, spec.Version)
	}
	return spec, nil
}
