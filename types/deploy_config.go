// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package types

// VPCConfig places the model's containers inside a VPC.
type VPCConfig struct {
	SecurityGroupIDs []string `json:"security_group_ids,omitempty"`
	Subnets          []string `json:"subnets,omitempty"`
}

// ImageConfig configures access to the serving container image.
type ImageConfig struct {
	// RepositoryAccessMode is "Platform" or "Vpc".
	RepositoryAccessMode string `json:"repository_access_mode,omitempty"`

	// RepositoryAuthConfigARN authenticates private VPC repositories.
	RepositoryAuthConfigARN string `json:"repository_auth_config_arn,omitempty"`
}

// DataCaptureConfig enables request/response capture on an endpoint.
type DataCaptureConfig struct {
	EnableCapture      bool   `json:"enable_capture,omitempty"`
	SamplingPercentage int    `json:"sampling_percentage,omitempty"`
	DestinationS3URI   string `json:"destination_s3_uri,omitempty"`
	KMSKeyID           string `json:"kms_key_id,omitempty"`
}

// AsyncInferenceConfig switches an endpoint to asynchronous invocation.
type AsyncInferenceConfig struct {
	OutputPath                          string `json:"output_path,omitempty"`
	FailurePath                         string `json:"failure_path,omitempty"`
	MaxConcurrentInvocationsPerInstance int    `json:"max_concurrent_invocations_per_instance,omitempty"`
}

// ServerlessInferenceConfig switches an endpoint to serverless hosting.
type ServerlessInferenceConfig struct {
	MemorySizeInMB int `json:"memory_size_in_mb,omitempty"`
	MaxConcurrency int `json:"max_concurrency,omitempty"`
}

// ExplainerConfig attaches an online explainability configuration to an
// endpoint.
type ExplainerConfig struct {
	EnableExplanations string `json:"enable_explanations,omitempty"`
}
