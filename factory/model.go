// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-modelhub/hubkit-go/artifacts"
	"github.com/go-modelhub/hubkit-go/hub"
	"github.com/go-modelhub/hubkit-go/internal/naming"
	"github.com/go-modelhub/hubkit-go/internal/xmaps"
	"github.com/go-modelhub/hubkit-go/pkg/logging"
	"github.com/go-modelhub/hubkit-go/predictor"
	"github.com/go-modelhub/hubkit-go/session"
	"github.com/go-modelhub/hubkit-go/types"
)

// defaultInitialInstanceCount is used when the caller does not size the
// endpoint.
const defaultInitialInstanceCount = 1

// initPipeline is the ordered fill table for [GetInitKwargs]. Each entry
// resolves one field, consulting the hub only when the caller left the field
// unset.
var initPipeline = []func(ctx context.Context, k *InitKwargs) error{
	fillInitModelVersion,
	fillInitSession,
	fillInitRegion,
	fillInitModelName,
	fillInitInstanceType,
	fillInitImageURI,
	fillInitModelData,
	fillInitSourceDir,
	fillInitEntryPoint,
	fillInitEnv,
	fillInitPredictorFactory,
	fillInitDefaults,
	fillInitRole,
	fillInitModelPackageARN,
	fillInitResources,
}

// GetInitKwargs resolves the parameter bundle for constructing a hub model
// resource. The caller's record is never mutated.
func GetInitKwargs(ctx context.Context, req *InitKwargs) (*InitKwargs, error) {
	if req == nil || req.ModelID == "" {
		return nil, fmt.Errorf("model id is required")
	}
	k := req.clone()
	for _, fill := range initPipeline {
		if err := fill(ctx, k); err != nil {
			return nil, err
		}
	}
	return k, nil
}

func fillInitModelVersion(ctx context.Context, k *InitKwargs) error {
	if k.ModelVersion == "" {
		k.ModelVersion = "*"
	}
	return nil
}

func fillInitSession(ctx context.Context, k *InitKwargs) error {
	if k.Session != nil {
		return nil
	}
	s, err := session.Default(ctx)
	if err != nil {
		return fmt.Errorf("build default session: %w", err)
	}
	k.Session = s
	return nil
}

func fillInitRegion(ctx context.Context, k *InitKwargs) error {
	if k.Region == "" {
		k.Region = k.Session.Region()
	}
	return nil
}

func fillInitModelName(ctx context.Context, k *InitKwargs) error {
	if k.Name != "" {
		return nil
	}
	base, err := artifacts.RetrieveResourceNameBase(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	k.Name = naming.NameFromBase(base)
	return nil
}

func fillInitInstanceType(ctx context.Context, k *InitKwargs) error {
	if k.InstanceType != "" {
		return nil
	}
	instanceType, err := artifacts.RetrieveDefaultInstanceType(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	k.InstanceType = instanceType
	if !k.DisableInstanceTypeLogging {
		logging.FromContext(ctx).InfoContext(ctx, "no instance type selected for inference hosting endpoint, using default",
			slog.String("model_id", k.ModelID),
			slog.String("instance_type", k.InstanceType),
		)
	}
	return nil
}

func fillInitImageURI(ctx context.Context, k *InitKwargs) error {
	if k.ImageURI != "" {
		return nil
	}
	uri, err := artifacts.RetrieveImageURI(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	k.ImageURI = uri
	return nil
}

func fillInitModelData(ctx context.Context, k *InitKwargs) error {
	// the model artifact comes from the training job output
	if k.ModelDataFromTraining {
		return nil
	}

	userSupplied := k.ModelData != nil
	if k.ModelData == nil {
		uri, err := artifacts.RetrieveModelURI(ctx, k.retrieveOptions())
		if err != nil {
			return err
		}
		k.ModelData = &types.ModelData{URI: uri}
	}

	if types.IsS3Prefix(k.ModelData.URI) {
		uri := k.ModelData.URI
		k.ModelData = &types.ModelData{Source: types.NewS3PrefixSource(uri)}
		if userSupplied {
			logging.FromContext(ctx).InfoContext(ctx, "S3 prefix model data detected, converting to structured data source",
				slog.String("model_id", k.ModelID),
				slog.String("s3_uri", uri),
			)
		}
	}
	return nil
}

func fillInitSourceDir(ctx context.Context, k *InitKwargs) error {
	if k.SourceDir != "" {
		return nil
	}
	supported, err := artifacts.ModelSupportsInferenceScript(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	if !supported {
		return nil
	}
	uri, err := artifacts.RetrieveScriptURI(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	k.SourceDir = uri
	return nil
}

func fillInitEntryPoint(ctx context.Context, k *InitKwargs) error {
	if k.EntryPoint != "" {
		return nil
	}
	supported, err := artifacts.ModelSupportsInferenceScript(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	if supported {
		k.EntryPoint = types.InferenceEntryPointScriptName
	}
	return nil
}

func fillInitEnv(ctx context.Context, k *InitKwargs) error {
	env := k.Env
	if env == nil {
		env = map[string]string{}
	}

	defaults, err := artifacts.RetrieveDefaultEnvironmentVariables(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	for key, value := range defaults {
		xmaps.SetIfAbsent(env, key, value)
	}

	// an empty environment resolves to unset
	if len(env) == 0 {
		env = nil
	}
	k.Env = env
	return nil
}

func fillInitPredictorFactory(ctx context.Context, k *InitKwargs) error {
	if k.PredictorFactory == nil {
		k.PredictorFactory = func(endpointName string, s *session.Session) predictor.Predictor {
			return predictor.New(endpointName, s)
		}
	}
	return nil
}

// fillInitDefaults merges the spec's construct-time bundle, one explicit
// conditional assignment per field.
func fillInitDefaults(ctx context.Context, k *InitKwargs) error {
	defaults, err := artifacts.RetrieveInitDefaults(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	if k.EnableNetworkIsolation == nil && defaults.EnableNetworkIsolation != nil {
		k.EnableNetworkIsolation = defaults.EnableNetworkIsolation
	}
	if k.ContainerLogLevel == nil && defaults.ContainerLogLevel != nil {
		k.ContainerLogLevel = defaults.ContainerLogLevel
	}
	if k.ModelKMSKey == "" {
		k.ModelKMSKey = defaults.ModelKMSKey
	}
	return nil
}

func fillInitRole(ctx context.Context, k *InitKwargs) error {
	k.Role = k.Session.ResolveRole(k.Role)
	return nil
}

func fillInitModelPackageARN(ctx context.Context, k *InitKwargs) error {
	if k.ModelPackageARN != "" {
		return nil
	}
	arn, err := artifacts.RetrieveModelPackageARN(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	k.ModelPackageARN = arn
	return nil
}

func fillInitResources(ctx context.Context, k *InitKwargs) error {
	if k.Resources != nil {
		return nil
	}
	resources, err := artifacts.RetrieveDefaultResourceRequirements(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	k.Resources = resources
	return nil
}

// deployPipeline is the ordered fill table for [GetDeployKwargs].
var deployPipeline = []func(ctx context.Context, k *DeployKwargs) error{
	fillDeployModelVersion,
	fillDeploySession,
	fillDeployRegion,
	fillDeployEndpointName,
	fillDeployInstanceType,
	fillDeployInstanceCount,
	fillDeployDefaults,
	fillDeployTags,
	fillDeployResources,
}

// GetDeployKwargs resolves the parameter bundle for deploying a hub model
// resource to an endpoint. The caller's record is never mutated.
func GetDeployKwargs(ctx context.Context, req *DeployKwargs) (*DeployKwargs, error) {
	if req == nil || req.ModelID == "" {
		return nil, fmt.Errorf("model id is required")
	}
	k := req.clone()
	for _, fill := range deployPipeline {
		if err := fill(ctx, k); err != nil {
			return nil, err
		}
	}
	return k, nil
}

func fillDeployModelVersion(ctx context.Context, k *DeployKwargs) error {
	if k.ModelVersion == "" {
		k.ModelVersion = "*"
	}
	return nil
}

func fillDeploySession(ctx context.Context, k *DeployKwargs) error {
	if k.Session != nil {
		return nil
	}
	s, err := session.Default(ctx)
	if err != nil {
		return fmt.Errorf("build default session: %w", err)
	}
	k.Session = s
	return nil
}

func fillDeployRegion(ctx context.Context, k *DeployKwargs) error {
	if k.Region == "" {
		k.Region = k.Session.Region()
	}
	return nil
}

func fillDeployEndpointName(ctx context.Context, k *DeployKwargs) error {
	if k.EndpointName != "" {
		return nil
	}
	base, err := artifacts.RetrieveResourceNameBase(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	k.EndpointName = naming.NameFromBase(base)
	return nil
}

func fillDeployInstanceType(ctx context.Context, k *DeployKwargs) error {
	if k.InstanceType != "" {
		return nil
	}
	instanceType, err := artifacts.RetrieveDefaultInstanceType(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	k.InstanceType = instanceType
	return nil
}

func fillDeployInstanceCount(ctx context.Context, k *DeployKwargs) error {
	if k.InitialInstanceCount == 0 {
		k.InitialInstanceCount = defaultInitialInstanceCount
	}
	return nil
}

// fillDeployDefaults merges the spec's deploy-time bundle, one explicit
// conditional assignment per field.
func fillDeployDefaults(ctx context.Context, k *DeployKwargs) error {
	defaults, err := artifacts.RetrieveDeployDefaults(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	if k.ModelDataDownloadTimeout == nil && defaults.ModelDataDownloadTimeout != nil {
		k.ModelDataDownloadTimeout = defaults.ModelDataDownloadTimeout
	}
	if k.ContainerStartupHealthCheckTimeout == nil && defaults.ContainerStartupHealthCheckTimeout != nil {
		k.ContainerStartupHealthCheckTimeout = defaults.ContainerStartupHealthCheckTimeout
	}
	if k.VolumeSize == nil && defaults.VolumeSize != nil {
		k.VolumeSize = defaults.VolumeSize
	}
	return nil
}

// fillDeployTags stamps the hub model id and the fully resolved version on
// the deployment, gated on the session tag policy.
func fillDeployTags(ctx context.Context, k *DeployKwargs) error {
	spec, err := hub.VerifySpec(ctx, k.Session.Hub(), &hub.VerifyOptions{
		ModelID:                 k.ModelID,
		Version:                 k.ModelVersion,
		Region:                  k.Region,
		Scope:                   types.ScriptScopeInference,
		TolerateDeprecatedModel: k.TolerateDeprecatedModel,
		TolerateVulnerableModel: k.TolerateVulnerableModel,
	})
	if err != nil {
		return err
	}
	if k.Session.Settings().IncludeHubTags {
		k.Tags = types.AddHubModelTags(k.Tags, k.ModelID, spec.Version)
	}
	return nil
}

// fillDeployResources attaches resource requirements and managed scaling
// only for inference-component-based endpoints.
func fillDeployResources(ctx context.Context, k *DeployKwargs) error {
	if k.EndpointType != types.EndpointTypeInferenceComponentBased {
		k.ManagedInstanceScaling = ""
		return nil
	}
	if k.Resources != nil {
		return nil
	}
	resources, err := artifacts.RetrieveDefaultResourceRequirements(ctx, k.retrieveOptions())
	if err != nil {
		return err
	}
	k.Resources = resources
	return nil
}

// registerPipeline is the ordered fill table for [GetRegisterKwargs].
var registerPipeline = []func(ctx context.Context, k *RegisterKwargs) error{
	fillRegisterModelVersion,
	fillRegisterSession,
	fillRegisterRegion,
	fillRegisterContentTypes,
}

// GetRegisterKwargs resolves the parameter bundle for registering a hub
// model in a model package group. The caller's record is never mutated.
func GetRegisterKwargs(ctx context.Context, req *RegisterKwargs) (*RegisterKwargs, error) {
	if req == nil || req.ModelID == "" {
		return nil, fmt.Errorf("model id is required")
	}
	k := req.clone()
	for _, fill := range registerPipeline {
		if err := fill(ctx, k); err != nil {
			return nil, err
		}
	}
	return k, nil
}

func fillRegisterModelVersion(ctx context.Context, k *RegisterKwargs) error {
	if k.ModelVersion == "" {
		k.ModelVersion = "*"
	}
	return nil
}

func fillRegisterSession(ctx context.Context, k *RegisterKwargs) error {
	if k.Session != nil {
		return nil
	}
	s, err := session.Default(ctx)
	if err != nil {
		return fmt.Errorf("build default session: %w", err)
	}
	k.Session = s
	return nil
}

func fillRegisterRegion(ctx context.Context, k *RegisterKwargs) error {
	if k.Region == "" {
		k.Region = k.Session.Region()
	}
	return nil
}

// fillRegisterContentTypes defaults the supported content and response
// types from the spec's predictor contract.
func fillRegisterContentTypes(ctx context.Context, k *RegisterKwargs) error {
	spec, err := hub.VerifySpec(ctx, k.Session.Hub(), &hub.VerifyOptions{
		ModelID:                 k.ModelID,
		Version:                 k.ModelVersion,
		Region:                  k.Region,
		Scope:                   types.ScriptScopeInference,
		TolerateDeprecatedModel: k.TolerateDeprecatedModel,
		TolerateVulnerableModel: k.TolerateVulnerableModel,
	})
	if err != nil {
		return err
	}
	if spec.Predictor == nil {
		return nil
	}
	if k.ContentTypes == nil {
		k.ContentTypes = spec.Predictor.SupportedContentTypes
	}
	if k.ResponseTypes == nil {
		k.ResponseTypes = spec.Predictor.SupportedAcceptTypes
	}
	return nil
}
