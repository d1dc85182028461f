// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package predictor defines the predictor record handed back by model
// deployment: the endpoint handle plus the serializer, deserializer, and
// content negotiation applied to its invocations.
package predictor

import (
	"github.com/go-modelhub/hubkit-go/session"
	"github.com/go-modelhub/hubkit-go/types"
)

// Predictor is a handle on a hosted endpoint. Implementations beyond
// [Default] carry their own serialization behavior and are left untouched by
// the hub default resolution.
type Predictor interface {
	// EndpointName returns the hosting endpoint the predictor invokes.
	EndpointName() string
}

// Default is the base predictor implementation. It is the only predictor
// type the factory will populate with hub serialization defaults.
type Default struct {
	// Endpoint is the hosting endpoint name.
	Endpoint string

	// Session is the session the predictor invokes the endpoint through.
	Session *session.Session

	// Serializer encodes request payloads.
	Serializer types.Serializer

	// Deserializer decodes response payloads.
	Deserializer types.Deserializer

	// ContentType is the request MIME type sent with invocations.
	ContentType string

	// Accept lists the response MIME types requested from the endpoint.
	Accept []string
}

var _ Predictor = (*Default)(nil)

// New returns a base predictor for an endpoint.
func New(endpoint string, s *session.Session) *Default {
	return &Default{Endpoint: endpoint, Session: s}
}

// EndpointName implements [Predictor].
func (p *Default) EndpointName() string { return p.Endpoint }
