// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package hubtest provides an in-memory hub client for tests.
package hubtest

import (
	"context"
	"sync/atomic"

	"github.com/go-modelhub/hubkit-go/hub"
	"github.com/go-modelhub/hubkit-go/types"
)

// Client is an in-memory [hub.Client] serving canned specs.
type Client struct {
	// Specs holds the served spec documents, keyed by model id. The
	// wildcard version and the spec's own version both resolve to the same
	// document.
	Specs map[string]*types.ModelSpec

	// BucketName is returned for every region. Empty means "test-hub".
	BucketName string

	// SpecCalls counts Spec invocations.
	SpecCalls atomic.Int64
}

var _ hub.Client = (*Client)(nil)

// New returns a Client serving the given specs.
func New(specs ...*types.ModelSpec) *Client {
	m := make(map[string]*types.ModelSpec, len(specs))
	for _, s := range specs {
		m[s.ModelID] = s
	}
	return &Client{Specs: m}
}

// Manifest implements [hub.Client].
func (c *Client) Manifest(ctx context.Context, region string) ([]hub.ManifestEntry, error) {
	entries := make([]hub.ManifestEntry, 0, len(c.Specs))
	for _, s := range c.Specs {
		entries = append(entries, hub.ManifestEntry{
			ModelID: s.ModelID,
			Version: s.Version,
			SpecKey: "specs/" + s.ModelID + "/" + s.Version + ".json",
		})
	}
	return entries, nil
}

// Spec implements [hub.Client].
func (c *Client) Spec(ctx context.Context, req *hub.SpecRequest) (*types.ModelSpec, error) {
	c.SpecCalls.Add(1)
	s, ok := c.Specs[req.ModelID]
	if !ok {
		return nil, &types.ModelNotFoundError{ModelID: req.ModelID, Version: req.Version, Region: req.Region}
	}
	if req.Version != "" && req.Version != "*" && req.Version != s.Version {
		return nil, &types.ModelNotFoundError{ModelID: req.ModelID, Version: req.Version, Region: req.Region}
	}
	return s, nil
}

// Bucket implements [hub.Client].
func (c *Client) Bucket(region string) string {
	if c.BucketName != "" {
		return c.BucketName
	}
	return "test-hub"
}

// Close implements [hub.Client].
func (c *Client) Close() error { return nil }
