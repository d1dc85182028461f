// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package artifacts

import (
	"context"
	"strings"

	"github.com/go-modelhub/hubkit-go/types"
)

// RetrieveImageURI returns the serving container image for the model,
// resolved for the effective region. An instance-family variant image wins
// over the spec-level image when one is declared for the options' instance
// type.
func RetrieveImageURI(ctx context.Context, opts *RetrieveOptions) (string, error) {
	spec, err := opts.spec(ctx)
	if err != nil {
		return "", err
	}

	uri := spec.Hosting.ImageURI
	if opts.InstanceType != "" {
		family := types.InstanceFamily(opts.InstanceType)
		if variant, ok := spec.Hosting.InstanceVariants[family]; ok && variant.ImageURI != "" {
			uri = variant.ImageURI
		}
	}
	return strings.ReplaceAll(uri, "{region}", opts.region()), nil
}
