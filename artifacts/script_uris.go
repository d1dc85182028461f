// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package artifacts

import (
	"context"
	"fmt"
)

// ModelSupportsInferenceScript reports whether the model is served in script
// mode, i.e. the hub carries an inference script bundle for it.
func ModelSupportsInferenceScript(ctx context.Context, opts *RetrieveOptions) (bool, error) {
	spec, err := opts.spec(ctx)
	if err != nil {
		return false, err
	}
	return spec.SupportsInferenceScript(), nil
}

// RetrieveScriptURI returns the inference script bundle URI under the
// regional hub bucket. It fails for models without script-mode support.
func RetrieveScriptURI(ctx context.Context, opts *RetrieveOptions) (string, error) {
	spec, err := opts.spec(ctx)
	if err != nil {
		return "", err
	}
	if !spec.SupportsInferenceScript() {
		return "", fmt.Errorf("model %q version %q does not support inference scripts", spec.ModelID, spec.Version)
	}
	bucket := opts.Session.Hub().Bucket(opts.region())
	return fmt.Sprintf("s3://%s/%s", bucket, spec.Hosting.ScriptKey), nil
}
