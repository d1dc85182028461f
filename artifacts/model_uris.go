// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package artifacts

import (
	"context"
	"fmt"
)

// RetrieveModelURI returns the model artifact URI under the regional hub
// bucket. Keys ending in "/" yield prefix-style URIs that the factory later
// rewrites into structured data sources.
func RetrieveModelURI(ctx context.Context, opts *RetrieveOptions) (string, error) {
	spec, err := opts.spec(ctx)
	if err != nil {
		return "", err
	}
	if spec.Hosting.ArtifactKey == "" {
		return "", fmt.Errorf("model %q version %q has no hosting artifact", spec.ModelID, spec.Version)
	}
	bucket := opts.Session.Hub().Bucket(opts.region())
	return fmt.Sprintf("s3://%s/%s", bucket, spec.Hosting.ArtifactKey), nil
}
