// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package artifacts

import (
	"context"

	"github.com/go-modelhub/hubkit-go/types"
)

// RetrieveInitDefaults returns the construct-time kwargs defaults for the
// model. The bundle is never nil; fields the spec does not set stay at their
// zero values and are skipped by the factory merge.
func RetrieveInitDefaults(ctx context.Context, opts *RetrieveOptions) (*types.InitDefaults, error) {
	spec, err := opts.spec(ctx)
	if err != nil {
		return nil, err
	}
	if spec.Hosting.InitDefaults == nil {
		return &types.InitDefaults{}, nil
	}
	d := *spec.Hosting.InitDefaults
	return &d, nil
}

// RetrieveDeployDefaults returns the deploy-time kwargs defaults for the
// model. The bundle is never nil.
func RetrieveDeployDefaults(ctx context.Context, opts *RetrieveOptions) (*types.DeployDefaults, error) {
	spec, err := opts.spec(ctx)
	if err != nil {
		return nil, err
	}
	if spec.Hosting.DeployDefaults == nil {
		return &types.DeployDefaults{}, nil
	}
	d := *spec.Hosting.DeployDefaults
	return &d, nil
}
