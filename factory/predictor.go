// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package factory

import (
	"context"
	"fmt"

	"github.com/go-modelhub/hubkit-go/artifacts"
	"github.com/go-modelhub/hubkit-go/predictor"
	"github.com/go-modelhub/hubkit-go/session"
)

// DefaultPredictorOptions identifies the model whose serialization defaults
// are applied by [GetDefaultPredictor].
type DefaultPredictorOptions struct {
	ModelID                 string
	ModelVersion            string
	Region                  string
	TolerateDeprecatedModel bool
	TolerateVulnerableModel bool
	Session                 *session.Session
}

// GetDefaultPredictor populates the serializer, deserializer, content type,
// and accept type on the predictor returned by a deployment.
//
// Only the base [predictor.Default] can receive hub defaults; any other
// implementation carries its own serialization behavior and is rejected.
func GetDefaultPredictor(ctx context.Context, p predictor.Predictor, opts *DefaultPredictorOptions) (*predictor.Default, error) {
	base, ok := p.(*predictor.Default)
	if !ok {
		return nil, fmt.Errorf("can only resolve hub defaults for the base predictor, got %T", p)
	}

	retrieve := &artifacts.RetrieveOptions{
		Session:                 opts.Session,
		ModelID:                 opts.ModelID,
		ModelVersion:            opts.ModelVersion,
		Region:                  opts.Region,
		TolerateDeprecatedModel: opts.TolerateDeprecatedModel,
		TolerateVulnerableModel: opts.TolerateVulnerableModel,
	}

	serializer, err := artifacts.RetrieveDefaultSerializer(ctx, retrieve)
	if err != nil {
		return nil, err
	}
	deserializer, err := artifacts.RetrieveDefaultDeserializer(ctx, retrieve)
	if err != nil {
		return nil, err
	}
	contentType, err := artifacts.RetrieveDefaultContentType(ctx, retrieve)
	if err != nil {
		return nil, err
	}
	acceptType, err := artifacts.RetrieveDefaultAcceptType(ctx, retrieve)
	if err != nil {
		return nil, err
	}

	base.Serializer = serializer
	base.Deserializer = deserializer
	base.ContentType = contentType
	base.Accept = []string{acceptType}
	return base, nil
}
