// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package types

// ResourceRequirements describes the per-replica compute a hosted model
// needs when deployed to an inference-component-based endpoint.
type ResourceRequirements struct {
	// MinMemoryRequiredInMB is the memory floor per replica.
	MinMemoryRequiredInMB int `json:"min_memory_mb,omitempty"`

	// MaxMemoryRequiredInMB is the memory ceiling per replica.
	MaxMemoryRequiredInMB int `json:"max_memory_mb,omitempty"`

	// NumAccelerators is the accelerator count per replica.
	NumAccelerators int `json:"num_accelerators,omitempty"`

	// NumCPUs is the vCPU count per replica.
	NumCPUs int `json:"num_cpus,omitempty"`

	// CopyCount is the initial replica count.
	CopyCount int `json:"copy_count,omitempty"`
}
