// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package types

import "strings"

// ModelSpec is the hub document describing a single model version: where its
// hosting artifacts live, what it needs to run, and the defaults the SDK
// fills in when the caller leaves a field unset.
type ModelSpec struct {
	// ModelID is the hub identifier, e.g. "huggingface-text2text-flan-t5-xl".
	ModelID string `json:"model_id"`

	// Version is the concrete semantic version of this spec document.
	Version string `json:"version"`

	// MinSDKVersion is the lowest SDK version able to consume this spec.
	MinSDKVersion string `json:"min_sdk_version,omitempty"`

	// Deprecated marks the model version as withdrawn. Lookups fail unless
	// the caller tolerates deprecated models.
	Deprecated bool `json:"deprecated,omitempty"`

	// DeprecatedMessage optionally explains the deprecation.
	DeprecatedMessage string `json:"deprecated_message,omitempty"`

	// InferenceVulnerable marks the hosting stack as carrying known
	// vulnerabilities. Lookups fail unless the caller tolerates them.
	InferenceVulnerable bool `json:"inference_vulnerable,omitempty"`

	// InferenceVulnerabilities lists the advisories behind InferenceVulnerable.
	InferenceVulnerabilities []string `json:"inference_vulnerabilities,omitempty"`

	// Hosting carries everything needed to construct and deploy the model.
	Hosting *HostingSpec `json:"hosting"`

	// Predictor describes the request/response contract of the hosted model.
	Predictor *PredictorSpec `json:"predictor,omitempty"`
}

// SupportsInferenceScript reports whether the model is served in script mode,
// i.e. the hub carries an inference script bundle for it.
func (s *ModelSpec) SupportsInferenceScript() bool {
	return s.Hosting != nil && s.Hosting.ScriptKey != ""
}

// HostingSpec is the hosting half of a model spec document.
type HostingSpec struct {
	// ImageURI is the serving container image. The "{region}" placeholder is
	// substituted at retrieval time.
	ImageURI string `json:"image_uri"`

	// ArtifactKey is the model artifact location under the regional hub
	// bucket. A key ending in "/" denotes an uncompressed prefix artifact.
	ArtifactKey string `json:"artifact_key"`

	// ScriptKey is the inference script bundle location under the regional
	// hub bucket. Empty when the model does not support script mode.
	ScriptKey string `json:"script_key,omitempty"`

	// DefaultInstanceType is the instance type used when the caller does not
	// pick one.
	DefaultInstanceType string `json:"default_instance_type"`

	// SupportedInstanceTypes lists every instance type the model can host on.
	SupportedInstanceTypes []string `json:"supported_instance_types,omitempty"`

	// EnvironmentVariables are the container environment defaults.
	EnvironmentVariables []EnvironmentVariable `json:"environment_variables,omitempty"`

	// InstanceVariants overrides hosting properties per instance family,
	// keyed by family such as "ml.g5".
	InstanceVariants map[string]InstanceVariant `json:"instance_variants,omitempty"`

	// ResourceRequirements are the per-replica compute needs used for
	// inference-component-based endpoints.
	ResourceRequirements *ResourceRequirements `json:"resource_requirements,omitempty"`

	// ModelPackageARNs maps region to the model package ARN for proprietary
	// models sold through the marketplace.
	ModelPackageARNs map[string]string `json:"model_package_arns,omitempty"`

	// ResourceNameBase seeds generated endpoint and model names. Empty means
	// fall back to the model id.
	ResourceNameBase string `json:"resource_name_base,omitempty"`

	// InitDefaults are construct-time kwargs defaults.
	InitDefaults *InitDefaults `json:"init_defaults,omitempty"`

	// DeployDefaults are deploy-time kwargs defaults.
	DeployDefaults *DeployDefaults `json:"deploy_defaults,omitempty"`
}

// EnvironmentVariable is a single container environment default.
type EnvironmentVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// InstanceVariant overrides hosting properties for one instance family.
type InstanceVariant struct {
	// ImageURI replaces HostingSpec.ImageURI for the family when set.
	ImageURI string `json:"image_uri,omitempty"`

	// Environment is merged over the spec-level environment defaults.
	Environment map[string]string `json:"environment,omitempty"`
}

// InitDefaults is the typed bundle of construct-time defaults a spec may
// carry. Each field is merged into the init kwargs only when the caller left
// it unset.
type InitDefaults struct {
	EnableNetworkIsolation *bool  `json:"enable_network_isolation,omitempty"`
	ContainerLogLevel      *int   `json:"container_log_level,omitempty"`
	ModelKMSKey            string `json:"model_kms_key,omitempty"`
}

// DeployDefaults is the typed bundle of deploy-time defaults a spec may
// carry. Each field is merged into the deploy kwargs only when the caller
// left it unset.
type DeployDefaults struct {
	ModelDataDownloadTimeout           *int `json:"model_data_download_timeout,omitempty"`
	ContainerStartupHealthCheckTimeout *int `json:"container_startup_health_check_timeout,omitempty"`
	VolumeSize                         *int `json:"volume_size,omitempty"`
}

// PredictorSpec describes the request/response contract of a hosted model.
type PredictorSpec struct {
	SupportedContentTypes []string `json:"supported_content_types,omitempty"`
	SupportedAcceptTypes  []string `json:"supported_accept_types,omitempty"`
	DefaultContentType    string   `json:"default_content_type,omitempty"`
	DefaultAcceptType     string   `json:"default_accept_type,omitempty"`
}

// InstanceFamily returns the family component of an instance type, e.g.
// "ml.g5" for "ml.g5.xlarge". Unrecognized shapes are returned unchanged.
func InstanceFamily(instanceType string) string {
	parts := strings.Split(instanceType, ".")
	if len(parts) < 3 {
		return instanceType
	}
	return strings.Join(parts[:2], ".")
}
