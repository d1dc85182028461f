// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the environment-derived configuration a session is built from.
// There is no package-level default session; callers construct sessions from
// a Config and pass them explicitly.
type Config struct {
	// Region is the hosting region resources are created in.
	Region string `env:"HUBKIT_REGION" envDefault:"us-east-1"`

	// HubEndpoint is the S3-compatible endpoint serving the hub buckets.
	HubEndpoint string `env:"HUBKIT_HUB_ENDPOINT" envDefault:"s3.amazonaws.com"`

	// HubBucket overrides the regional hub bucket name.
	HubBucket string `env:"HUBKIT_HUB_BUCKET"`

	// HubAccessKey and HubSecretKey authenticate hub access. Empty values
	// use anonymous access, which the public hub buckets allow.
	HubAccessKey string `env:"HUBKIT_HUB_ACCESS_KEY"`
	HubSecretKey string `env:"HUBKIT_HUB_SECRET_KEY"`

	// HubUseSSL toggles TLS towards the hub endpoint.
	HubUseSSL bool `env:"HUBKIT_HUB_USE_SSL" envDefault:"true"`

	// SpecCacheTTL bounds hub manifest and spec cache freshness.
	SpecCacheTTL time.Duration `env:"HUBKIT_SPEC_CACHE_TTL" envDefault:"6h"`

	// IncludeHubTags controls whether hub model id/version tags are stamped
	// on deployed resources.
	IncludeHubTags bool `env:"HUBKIT_INCLUDE_HUB_TAGS" envDefault:"true"`

	// ExecutionRole is the IAM role assumed by hosted model containers when
	// the caller does not pass one.
	ExecutionRole string `env:"HUBKIT_EXECUTION_ROLE"`
}

// LoadConfig reads a Config from the process environment.
func LoadConfig() (*Config, error) {
	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse session config from environment: %w", err)
	}
	return cfg, nil
}
