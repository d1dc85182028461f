// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package artifacts

import (
	"context"
	"fmt"

	"github.com/go-modelhub/hubkit-go/types"
)

// RetrieveDefaultInstanceType returns the default hosting instance type for
// the model. When a training instance type is given and a supported hosting
// type shares its instance family, that type is preferred so inference stays
// on the hardware the model was trained for.
func RetrieveDefaultInstanceType(ctx context.Context, opts *RetrieveOptions) (string, error) {
	spec, err := opts.spec(ctx)
	if err != nil {
		return "", err
	}

	if opts.TrainingInstanceType != "" {
		family := types.InstanceFamily(opts.TrainingInstanceType)
		for _, it := range spec.Hosting.SupportedInstanceTypes {
			if types.InstanceFamily(it) == family {
				return it, nil
			}
		}
	}

	if spec.Hosting.DefaultInstanceType == "" {
		return "", fmt.Errorf("model %q version %q has no default instance type", spec.ModelID, spec.Version)
	}
	return spec.Hosting.DefaultInstanceType, nil
}
