// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package factory

import (
	"maps"
	"slices"

	"github.com/go-modelhub/hubkit-go/artifacts"
	"github.com/go-modelhub/hubkit-go/predictor"
	"github.com/go-modelhub/hubkit-go/session"
	"github.com/go-modelhub/hubkit-go/types"
)

// PredictorFactory builds the predictor returned by a model deployment.
type PredictorFactory func(endpointName string, s *session.Session) predictor.Predictor

// InitKwargs is the parameter bundle for constructing a hub model resource.
// Unset fields are resolved by [GetInitKwargs]; strings use "" for unset,
// pointers and maps use nil.
type InitKwargs struct {
	// ModelID is the hub model identifier. Required.
	ModelID string

	// ModelVersion is a concrete version or the wildcard "*".
	ModelVersion string

	// InstanceType is the hosting instance type.
	InstanceType string

	// Region is the hosting region.
	Region string

	// ImageURI is the serving container image.
	ImageURI string

	// ModelData locates the model artifact.
	ModelData *types.ModelData

	// SourceDir is the inference script bundle location (script mode only).
	SourceDir string

	// EntryPoint is the inference script name (script mode only).
	EntryPoint string

	// Env is the container environment.
	Env map[string]string

	// Role is the execution role assumed by the model container.
	Role string

	// Name is the model resource name.
	Name string

	// VPCConfig places the container inside a VPC.
	VPCConfig *types.VPCConfig

	// Session resolves lookups. Nil falls back to a session built from the
	// process environment.
	Session *session.Session

	// EnableNetworkIsolation blocks outbound network access from the
	// container.
	EnableNetworkIsolation *bool

	// ModelKMSKey encrypts repacked model artifacts.
	ModelKMSKey string

	// ImageConfig configures access to the serving image.
	ImageConfig *types.ImageConfig

	// CodeLocation is where repacked script bundles are uploaded.
	CodeLocation string

	// ContainerLogLevel sets the serving container log level.
	ContainerLogLevel *int

	// Dependencies lists extra directories bundled with the script.
	Dependencies []string

	// GitConfig locates script sources in git instead of the hub.
	GitConfig map[string]string

	// TolerateDeprecatedModel allows deprecated model versions.
	TolerateDeprecatedModel bool

	// TolerateVulnerableModel allows versions with known inference
	// vulnerabilities.
	TolerateVulnerableModel bool

	// ModelPackageARN references a marketplace model package.
	ModelPackageARN string

	// TrainingInstanceType steers the hosting instance type towards the
	// family the model was trained on.
	TrainingInstanceType string

	// Resources are the per-replica compute requirements.
	Resources *types.ResourceRequirements

	// PredictorFactory builds the predictor returned by deployment.
	PredictorFactory PredictorFactory

	// ModelDataFromTraining skips model-data resolution because the
	// artifact comes from a training job output.
	ModelDataFromTraining bool

	// DisableInstanceTypeLogging suppresses the info log emitted when the
	// instance type is defaulted.
	DisableInstanceTypeLogging bool
}

// clone returns a copy sharing the session handle and predictor factory but
// owning its maps, slices, and nested records.
func (k *InitKwargs) clone() *InitKwargs {
	out := *k
	out.Env = maps.Clone(k.Env)
	out.GitConfig = maps.Clone(k.GitConfig)
	out.Dependencies = slices.Clone(k.Dependencies)
	out.EnableNetworkIsolation = clonePtr(k.EnableNetworkIsolation)
	out.ContainerLogLevel = clonePtr(k.ContainerLogLevel)
	out.VPCConfig = clonePtr(k.VPCConfig)
	out.ImageConfig = clonePtr(k.ImageConfig)
	out.Resources = clonePtr(k.Resources)
	if k.ModelData != nil {
		md := *k.ModelData
		if k.ModelData.Source != nil {
			src := *k.ModelData.Source
			if k.ModelData.Source.S3DataSource != nil {
				s3 := *k.ModelData.Source.S3DataSource
				src.S3DataSource = &s3
			}
			md.Source = &src
		}
		out.ModelData = &md
	}
	return &out
}

// retrieveOptions maps the record onto the shared artifacts lookup options.
func (k *InitKwargs) retrieveOptions() *artifacts.RetrieveOptions {
	return &artifacts.RetrieveOptions{
		Session:                 k.Session,
		ModelID:                 k.ModelID,
		ModelVersion:            k.ModelVersion,
		Region:                  k.Region,
		InstanceType:            k.InstanceType,
		TrainingInstanceType:    k.TrainingInstanceType,
		TolerateDeprecatedModel: k.TolerateDeprecatedModel,
		TolerateVulnerableModel: k.TolerateVulnerableModel,
	}
}

// DeployKwargs is the parameter bundle for deploying a hub model resource to
// an endpoint.
type DeployKwargs struct {
	// ModelID is the hub model identifier. Required.
	ModelID string

	// ModelVersion is a concrete version or the wildcard "*".
	ModelVersion string

	// Region is the hosting region.
	Region string

	// InitialInstanceCount is the starting instance count. Zero means the
	// default of one.
	InitialInstanceCount int

	// InstanceType is the hosting instance type.
	InstanceType string

	// Serializer encodes request payloads for the returned predictor.
	Serializer types.Serializer

	// Deserializer decodes response payloads for the returned predictor.
	Deserializer types.Deserializer

	// AcceleratorType attaches an elastic inference accelerator.
	AcceleratorType string

	// EndpointName names the hosting endpoint.
	EndpointName string

	// Tags are attached to the endpoint and related resources.
	Tags []types.Tag

	// KMSKey encrypts data on the hosting instances.
	KMSKey string

	// Wait blocks the deploy call until the endpoint is in service.
	Wait *bool

	// DataCaptureConfig enables request/response capture.
	DataCaptureConfig *types.DataCaptureConfig

	// AsyncInferenceConfig switches the endpoint to async invocation.
	AsyncInferenceConfig *types.AsyncInferenceConfig

	// ServerlessInferenceConfig switches the endpoint to serverless hosting.
	ServerlessInferenceConfig *types.ServerlessInferenceConfig

	// VolumeSize is the attached storage per instance, in GB.
	VolumeSize *int

	// ModelDataDownloadTimeout bounds artifact download, in seconds.
	ModelDataDownloadTimeout *int

	// ContainerStartupHealthCheckTimeout bounds container startup, in
	// seconds.
	ContainerStartupHealthCheckTimeout *int

	// InferenceRecommendationID applies a recommender result.
	InferenceRecommendationID string

	// ExplainerConfig attaches online explainability.
	ExplainerConfig *types.ExplainerConfig

	// TolerateDeprecatedModel allows deprecated model versions.
	TolerateDeprecatedModel bool

	// TolerateVulnerableModel allows versions with known inference
	// vulnerabilities.
	TolerateVulnerableModel bool

	// Session resolves lookups. Nil falls back to a session built from the
	// process environment.
	Session *session.Session

	// AcceptEULA accepts the model's end-user license agreement.
	AcceptEULA *bool

	// EndpointLogging streams endpoint logs during the deploy call.
	EndpointLogging *bool

	// Resources are the per-replica compute requirements, used for
	// inference-component-based endpoints.
	Resources *types.ResourceRequirements

	// ManagedInstanceScaling enables managed scaling for
	// inference-component-based endpoints.
	ManagedInstanceScaling string

	// EndpointType selects the endpoint kind.
	EndpointType types.EndpointType
}

// clone returns a copy sharing the session handle and serializer handles but
// owning its maps, slices, and nested records.
func (k *DeployKwargs) clone() *DeployKwargs {
	out := *k
	out.Tags = slices.Clone(k.Tags)
	out.Wait = clonePtr(k.Wait)
	out.AcceptEULA = clonePtr(k.AcceptEULA)
	out.EndpointLogging = clonePtr(k.EndpointLogging)
	out.VolumeSize = clonePtr(k.VolumeSize)
	out.ModelDataDownloadTimeout = clonePtr(k.ModelDataDownloadTimeout)
	out.ContainerStartupHealthCheckTimeout = clonePtr(k.ContainerStartupHealthCheckTimeout)
	out.DataCaptureConfig = clonePtr(k.DataCaptureConfig)
	out.AsyncInferenceConfig = clonePtr(k.AsyncInferenceConfig)
	out.ServerlessInferenceConfig = clonePtr(k.ServerlessInferenceConfig)
	out.ExplainerConfig = clonePtr(k.ExplainerConfig)
	out.Resources = clonePtr(k.Resources)
	return &out
}

// retrieveOptions maps the record onto the shared artifacts lookup options.
func (k *DeployKwargs) retrieveOptions() *artifacts.RetrieveOptions {
	return &artifacts.RetrieveOptions{
		Session:                 k.Session,
		ModelID:                 k.ModelID,
		ModelVersion:            k.ModelVersion,
		Region:                  k.Region,
		InstanceType:            k.InstanceType,
		TolerateDeprecatedModel: k.TolerateDeprecatedModel,
		TolerateVulnerableModel: k.TolerateVulnerableModel,
	}
}

// RegisterKwargs is the parameter bundle for registering a hub model in a
// model package group.
type RegisterKwargs struct {
	// ModelID is the hub model identifier. Required.
	ModelID string

	// ModelVersion is a concrete version or the wildcard "*".
	ModelVersion string

	// Region is the hosting region.
	Region string

	// TolerateDeprecatedModel allows deprecated model versions.
	TolerateDeprecatedModel bool

	// TolerateVulnerableModel allows versions with known inference
	// vulnerabilities.
	TolerateVulnerableModel bool

	// Session resolves lookups. Nil falls back to a session built from the
	// process environment.
	Session *session.Session

	// ContentTypes lists the request MIME types the model accepts.
	ContentTypes []string

	// ResponseTypes lists the response MIME types the model produces.
	ResponseTypes []string

	// InferenceInstances lists instance types valid for real-time hosting.
	InferenceInstances []string

	// TransformInstances lists instance types valid for batch transform.
	TransformInstances []string

	// ModelPackageGroupName is the package group registered into.
	ModelPackageGroupName string

	// ImageURI is the serving container image recorded with the package.
	ImageURI string

	// ModelMetrics records quality and bias metrics.
	ModelMetrics *types.ModelMetrics

	// MetadataProperties records package provenance.
	MetadataProperties *types.MetadataProperties

	// ApprovalStatus is the package approval state.
	ApprovalStatus string

	// Description describes the package.
	Description string

	// DriftCheckBaselines records drift-check baselines.
	DriftCheckBaselines *types.DriftCheckBaselines

	// CustomerMetadataProperties are free-form package metadata.
	CustomerMetadataProperties map[string]string

	// ValidationSpecification configures package validation.
	ValidationSpecification string

	// Domain is the ML domain of the model.
	Domain string

	// Task is the ML task of the model.
	Task string

	// SamplePayloadURL locates a sample invocation payload.
	SamplePayloadURL string

	// Framework is the serving framework.
	Framework string

	// FrameworkVersion is the serving framework version.
	FrameworkVersion string

	// NearestModelName is the benchmark model used by the recommender.
	NearestModelName string

	// DataInputConfiguration describes the model input shape.
	DataInputConfiguration string

	// SkipModelValidation skips package validation ("All" or "None").
	SkipModelValidation string
}

// clone returns a copy sharing the session handle but owning its maps,
// slices, and nested records.
func (k *RegisterKwargs) clone() *RegisterKwargs {
	out := *k
	out.ContentTypes = slices.Clone(k.ContentTypes)
	out.ResponseTypes = slices.Clone(k.ResponseTypes)
	out.InferenceInstances = slices.Clone(k.InferenceInstances)
	out.TransformInstances = slices.Clone(k.TransformInstances)
	out.CustomerMetadataProperties = maps.Clone(k.CustomerMetadataProperties)
	out.ModelMetrics = clonePtr(k.ModelMetrics)
	out.MetadataProperties = clonePtr(k.MetadataProperties)
	out.DriftCheckBaselines = clonePtr(k.DriftCheckBaselines)
	return &out
}

// clonePtr copies the value behind p. Nested pointers inside T keep their
// identity; the records used here nest at most metrics sources, which the
// pipelines never mutate.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
