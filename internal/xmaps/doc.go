// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package xmaps provides generic map helpers shared across the SDK,
// complementing the standard maps package.
package xmaps
