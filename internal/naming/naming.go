// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package naming generates unique names for hosting resources such as
// endpoints and models.
package naming

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxNameLen is the hosting platform limit for resource names.
const maxNameLen = 63

// NameFromBase returns a unique resource name derived from base.
//
// The result is base plus a timestamp and a short random suffix, truncated so
// the whole name fits the platform's 63 character resource-name limit.
func NameFromBase(base string) string {
	suffix := fmt.Sprintf("%s-%s", time.Now().UTC().Format("2006-01-02-15-04-05"), shortUUID())
	base = strings.TrimSuffix(base, "-")
	if max := maxNameLen - len(suffix) - 1; len(base) > max {
		base = base[:max]
	}
	return base + "-" + suffix
}

// shortUUID returns the first 8 hex characters of a random UUID.
func shortUUID() string {
	return uuid.NewString()[:8]
}
