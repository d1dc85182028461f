// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package factory_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-modelhub/hubkit-go/factory"
	"github.com/go-modelhub/hubkit-go/hub/hubtest"
	"github.com/go-modelhub/hubkit-go/predictor"
	"github.com/go-modelhub/hubkit-go/types"
)

type customPredictor struct{}

func (customPredictor) EndpointName() string { return "custom-endpoint" }

func TestGetDefaultPredictor(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	base := predictor.New("mobilenet-v2-endpoint", ses)
	got, err := factory.GetDefaultPredictor(context.Background(), base, &factory.DefaultPredictorOptions{
		ModelID: spec.ModelID,
		Session: ses,
	})
	if err != nil {
		t.Fatalf("GetDefaultPredictor: %v", err)
	}

	if got.ContentType != "application/x-image" {
		t.Errorf("ContentType = %q, want %q", got.ContentType, "application/x-image")
	}
	if diff := cmp.Diff([]string{"application/json"}, got.Accept); diff != "" {
		t.Errorf("Accept mismatch (-want +got):\n%s", diff)
	}
	if _, ok := got.Serializer.(types.IdentitySerializer); !ok {
		t.Errorf("Serializer = %T, want IdentitySerializer for image content", got.Serializer)
	}
	if _, ok := got.Deserializer.(types.JSONDeserializer); !ok {
		t.Errorf("Deserializer = %T, want JSONDeserializer", got.Deserializer)
	}
	if got.EndpointName() != "mobilenet-v2-endpoint" {
		t.Errorf("EndpointName() = %q, want unchanged", got.EndpointName())
	}
}

func TestGetDefaultPredictor_RejectsNonBasePredictor(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	_, err := factory.GetDefaultPredictor(context.Background(), customPredictor{}, &factory.DefaultPredictorOptions{
		ModelID: spec.ModelID,
		Session: ses,
	})
	if err == nil {
		t.Fatal("GetDefaultPredictor accepted a non-base predictor, want error")
	}
}
