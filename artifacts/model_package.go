// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package artifacts

import "context"

// RetrieveModelPackageARN returns the regional model package ARN for
// proprietary models, or "" for models constructed from open artifacts.
func RetrieveModelPackageARN(ctx context.Context, opts *RetrieveOptions) (string, error) {
	spec, err := opts.spec(ctx)
	if err != nil {
		return "", err
	}
	return spec.Hosting.ModelPackageARNs[opts.region()], nil
}
