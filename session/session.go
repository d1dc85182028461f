// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package session carries the per-caller configuration the SDK resolves
// defaults against: the hosting region, the hub catalog client, and policy
// settings such as hub tagging.
package session

import (
	"context"
	"fmt"

	"github.com/go-modelhub/hubkit-go/hub"
)

// Settings are the session policy flags consulted by the kwargs pipelines.
type Settings struct {
	// IncludeHubTags enables stamping hub model id/version tags on deployed
	// resources.
	IncludeHubTags bool
}

// Session is the explicit configuration object passed through the SDK.
type Session struct {
	region        string
	hub           hub.Client
	settings      Settings
	executionRole string
}

// Option mutates a Session during construction.
type Option func(*Session)

// WithHub replaces the hub catalog client. Mainly used by tests.
func WithHub(c hub.Client) Option {
	return func(s *Session) { s.hub = c }
}

// WithRegion overrides the configured region.
func WithRegion(region string) Option {
	return func(s *Session) { s.region = region }
}

// WithSettings overrides the session policy settings.
func WithSettings(settings Settings) Option {
	return func(s *Session) { s.settings = settings }
}

// New builds a session from cfg. A nil cfg loads the configuration from the
// process environment.
func New(ctx context.Context, cfg *Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		loaded, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	s := &Session{
		region:        cfg.Region,
		settings:      Settings{IncludeHubTags: cfg.IncludeHubTags},
		executionRole: cfg.ExecutionRole,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.hub == nil {
		client, err := hub.NewClient(&hub.ClientOptions{
			Endpoint:  cfg.HubEndpoint,
			AccessKey: cfg.HubAccessKey,
			SecretKey: cfg.HubSecretKey,
			UseSSL:    cfg.HubUseSSL,
			Bucket:    cfg.HubBucket,
			CacheTTL:  cfg.SpecCacheTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("create hub client: %w", err)
		}
		s.hub = client
	}
	return s, nil
}

// Default builds a session from the process environment. Each call returns a
// fresh session; nothing is shared between callers.
func Default(ctx context.Context) (*Session, error) {
	return New(ctx, nil)
}

// Region returns the hosting region.
func (s *Session) Region() string { return s.region }

// Hub returns the hub catalog client.
func (s *Session) Hub() hub.Client { return s.hub }

// Settings returns the session policy settings.
func (s *Session) Settings() Settings { return s.settings }

// ResolveRole returns role when set, otherwise the session's configured
// execution role. User-supplied values always win over configuration.
func (s *Session) ResolveRole(role string) string {
	if role != "" {
		return role
	}
	return s.executionRole
}

// Close releases the session's hub client.
func (s *Session) Close() error {
	if s.hub != nil {
		return s.hub.Close()
	}
	return nil
}
