// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

// Serializer encodes inference request payloads before they are sent to an
// endpoint.
type Serializer interface {
	// ContentType is the MIME type of the serialized payload.
	ContentType() string

	// Serialize encodes v into the wire payload.
	Serialize(v any) ([]byte, error)
}

// Deserializer decodes inference response payloads returned by an endpoint.
type Deserializer interface {
	// Accept lists the MIME types the deserializer can decode.
	Accept() []string

	// Deserialize decodes the response body with the given content type.
	Deserialize(r io.Reader, contentType string) (any, error)
}

// JSONSerializer encodes payloads as JSON.
type JSONSerializer struct{}

var _ Serializer = (*JSONSerializer)(nil)

// ContentType implements [Serializer].
func (JSONSerializer) ContentType() string { return "application/json" }

// Serialize implements [Serializer].
func (JSONSerializer) Serialize(v any) ([]byte, error) {
	data, err := sonic.ConfigFastest.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("serialize payload to JSON: %w", err)
	}
	return data, nil
}

// CSVSerializer encodes [][]string payloads as CSV.
type CSVSerializer struct{}

var _ Serializer = (*CSVSerializer)(nil)

// ContentType implements [Serializer].
func (CSVSerializer) ContentType() string { return "text/csv" }

// Serialize implements [Serializer].
func (CSVSerializer) Serialize(v any) ([]byte, error) {
	records, ok := v.([][]string)
	if !ok {
		return nil, fmt.Errorf("CSV serializer wants [][]string, got %T", v)
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("serialize payload to CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// IdentitySerializer passes []byte and string payloads through unchanged.
type IdentitySerializer struct {
	// MIMEType defaults to "application/octet-stream".
	MIMEType string
}

var _ Serializer = (*IdentitySerializer)(nil)

// ContentType implements [Serializer].
func (s IdentitySerializer) ContentType() string {
	if s.MIMEType != "" {
		return s.MIMEType
	}
	return "application/octet-stream"
}

// Serialize implements [Serializer].
func (IdentitySerializer) Serialize(v any) ([]byte, error) {
	switch p := v.(type) {
	case []byte:
		return p, nil
	case string:
		return []byte(p), nil
	default:
		return nil, fmt.Errorf("identity serializer wants []byte or string, got %T", v)
	}
}

// JSONDeserializer decodes JSON response bodies into generic values.
type JSONDeserializer struct{}

var _ Deserializer = (*JSONDeserializer)(nil)

// Accept implements [Deserializer].
func (JSONDeserializer) Accept() []string { return []string{"application/json"} }

// Deserialize implements [Deserializer].
func (JSONDeserializer) Deserialize(r io.Reader, contentType string) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	var v any
	if err := sonic.ConfigFastest.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("deserialize JSON response: %w", err)
	}
	return v, nil
}

// BytesDeserializer returns response bodies as raw bytes.
type BytesDeserializer struct {
	// MIMEType defaults to "application/octet-stream".
	MIMEType string
}

var _ Deserializer = (*BytesDeserializer)(nil)

// Accept implements [Deserializer].
func (d BytesDeserializer) Accept() []string {
	if d.MIMEType != "" {
		return []string{d.MIMEType}
	}
	return []string{"application/octet-stream"}
}

// Deserialize implements [Deserializer].
func (BytesDeserializer) Deserialize(r io.Reader, contentType string) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return data, nil
}
