// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package types defines the shared records of the ModelHub Kit: model spec
// documents served by the hub, model data sources, tags, resource
// requirements, deploy-time configuration blocks, and the serializer and
// deserializer contracts used by predictors.
package types
