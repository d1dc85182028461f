// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package factory resolves sparse caller-supplied option records into fully
// populated kwargs bundles for constructing ([GetInitKwargs]), deploying
// ([GetDeployKwargs]), and registering ([GetRegisterKwargs]) hub model
// resources.
//
// Each entry point clones the caller's record and runs a fixed pipeline of
// fill functions. Every fill applies the same precedence rule: an explicit
// caller value always wins, otherwise the hub catalog default for the model
// id, version, and region is used. Lookup failures propagate unchanged.
//
// The resolved records are handed to the resource-creation calls owned by
// other subsystems; the factory itself performs no remote mutation.
package factory
