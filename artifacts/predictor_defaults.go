// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package artifacts

import (
	"context"
	"fmt"

	"github.com/go-modelhub/hubkit-go/types"
)

// RetrieveDefaultContentType returns the request content type the hosted
// model expects by default.
func RetrieveDefaultContentType(ctx context.Context, opts *RetrieveOptions) (string, error) {
	spec, err := opts.spec(ctx)
	if err != nil {
		return "", err
	}
	if spec.Predictor == nil || spec.Predictor.DefaultContentType == "" {
		return "", fmt.Errorf("model %q version %q has no default content type", spec.ModelID, spec.Version)
	}
	return spec.Predictor.DefaultContentType, nil
}

// RetrieveDefaultAcceptType returns the response content type the hosted
// model produces by default.
func RetrieveDefaultAcceptType(ctx context.Context, opts *RetrieveOptions) (string, error) {
	spec, err := opts.spec(ctx)
	if err != nil {
		return "", err
	}
	if spec.Predictor == nil || spec.Predictor.DefaultAcceptType == "" {
		return "", fmt.Errorf("model %q version %q has no default accept type", spec.ModelID, spec.Version)
	}
	return spec.Predictor.DefaultAcceptType, nil
}

// RetrieveDefaultSerializer returns the serializer matching the model's
// default content type.
func RetrieveDefaultSerializer(ctx context.Context, opts *RetrieveOptions) (types.Serializer, error) {
	contentType, err := RetrieveDefaultContentType(ctx, opts)
	if err != nil {
		return nil, err
	}
	return serializerFor(contentType), nil
}

// RetrieveDefaultDeserializer returns the deserializer matching the model's
// default accept type.
func RetrieveDefaultDeserializer(ctx context.Context, opts *RetrieveOptions) (types.Deserializer, error) {
	accept, err := RetrieveDefaultAcceptType(ctx, opts)
	if err != nil {
		return nil, err
	}
	return deserializerFor(accept), nil
}

func serializerFor(contentType string) types.Serializer {
	switch contentType {
	case "application/json":
		return types.JSONSerializer{}
	case "text/csv":
		return types.CSVSerializer{}
	default:
		return types.IdentitySerializer{MIMEType: contentType}
	}
}

func deserializerFor(accept string) types.Deserializer {
	switch accept {
	case "application/json":
		return types.JSONDeserializer{}
	default:
		return types.BytesDeserializer{MIMEType: accept}
	}
}
