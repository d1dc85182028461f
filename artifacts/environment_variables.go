// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package artifacts

import (
	"context"

	"github.com/go-modelhub/hubkit-go/types"
)

// RetrieveDefaultEnvironmentVariables returns the container environment
// defaults for the model. Instance-family variant values override the
// spec-level values for the options' instance type. The result may be empty
// but is never nil.
func RetrieveDefaultEnvironmentVariables(ctx context.Context, opts *RetrieveOptions) (map[string]string, error) {
	spec, err := opts.spec(ctx)
	if err != nil {
		return nil, err
	}

	env := make(map[string]string, len(spec.Hosting.EnvironmentVariables))
	for _, v := range spec.Hosting.EnvironmentVariables {
		env[v.Name] = v.Value
	}

	if opts.InstanceType != "" {
		family := types.InstanceFamily(opts.InstanceType)
		if variant, ok := spec.Hosting.InstanceVariants[family]; ok {
			for k, v := range variant.Environment {
				env[k] = v
			}
		}
	}
	return env, nil
}
