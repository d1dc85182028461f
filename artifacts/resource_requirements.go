// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package artifacts

import (
	"context"

	"github.com/go-modelhub/hubkit-go/types"
)

// RetrieveDefaultResourceRequirements returns the per-replica compute
// requirements for hosting the model, or nil when the spec declares none.
func RetrieveDefaultResourceRequirements(ctx context.Context, opts *RetrieveOptions) (*types.ResourceRequirements, error) {
	spec, err := opts.spec(ctx)
	if err != nil {
		return nil, err
	}
	if spec.Hosting.ResourceRequirements == nil {
		return nil, nil
	}
	rr := *spec.Hosting.ResourceRequirements
	return &rr, nil
}
