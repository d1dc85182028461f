// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package artifacts

import "context"

// RetrieveResourceNameBase returns the base string generated endpoint and
// model names are derived from. Specs without an explicit base fall back to
// the model id.
func RetrieveResourceNameBase(ctx context.Context, opts *RetrieveOptions) (string, error) {
	spec, err := opts.spec(ctx)
	if err != nil {
		return "", err
	}
	if spec.Hosting.ResourceNameBase != "" {
		return spec.Hosting.ResourceNameBase, nil
	}
	return spec.ModelID, nil
}
