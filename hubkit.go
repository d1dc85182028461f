// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package hubkit is a Go SDK for building, deploying, and registering model-hub
// model resources against a managed hosting platform.
package hubkit

// Version is the version of the ModelHub Kit.
var Version = "v0.0.0"
