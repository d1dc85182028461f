// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package xmaps

import "cmp"

// Contains reports whether key is present in m.
func Contains[Map ~map[K]V, K cmp.Ordered, V any](m Map, key K) bool {
	_, ok := m[key]
	return ok
}

// SetIfAbsent sets m[key] = value only when key is not already present in m.
// It reports whether the value was set.
func SetIfAbsent[Map ~map[K]V, K cmp.Ordered, V any](m Map, key K, value V) bool {
	if _, ok := m[key]; ok {
		return false
	}
	m[key] = value
	return true
}
