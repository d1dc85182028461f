// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package artifacts retrieves per-concern hosting defaults from verified hub
// spec documents: container image URIs, model and script artifact URIs,
// instance types, environment variables, resource requirements, resource
// name bases, and the typed init/deploy default bundles merged by the kwargs
// factory.
//
// Every retrieval goes through the deprecation and vulnerability gate in the
// hub package; lookup failures propagate unchanged to the caller.
package artifacts
