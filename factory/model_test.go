// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package factory_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-modelhub/hubkit-go/factory"
	"github.com/go-modelhub/hubkit-go/hub"
	"github.com/go-modelhub/hubkit-go/hub/hubtest"
	"github.com/go-modelhub/hubkit-go/session"
	"github.com/go-modelhub/hubkit-go/types"
)

func ptr[T any](v T) *T { return &v }

// testSpec returns a script-mode model with a prefix-style artifact.
func testSpec() *types.ModelSpec {
	return &types.ModelSpec{
		ModelID: "pytorch-ic-mobilenet-v2",
		Version: "2.0.0",
		Hosting: &types.HostingSpec{
			ImageURI:               "123456789012.dkr.ecr.{region}.amazonaws.com/pytorch-inference:2.0",
			ArtifactKey:            "pytorch-ic/artifacts/mobilenet-v2/",
			ScriptKey:              "pytorch-ic/scripts/mobilenet-v2/sourcedir.tar.gz",
			DefaultInstanceType:    "ml.m5.xlarge",
			SupportedInstanceTypes: []string{"ml.m5.xlarge", "ml.g5.2xlarge"},
			EnvironmentVariables: []types.EnvironmentVariable{
				{Name: "ENDPOINT_SERVER_TIMEOUT", Value: "3600"},
				{Name: "MODEL_CACHE_ROOT", Value: "/opt/ml/model"},
			},
			ResourceNameBase: "mobilenet-v2",
			InitDefaults: &types.InitDefaults{
				EnableNetworkIsolation: ptr(true),
			},
			DeployDefaults: &types.DeployDefaults{
				ModelDataDownloadTimeout: ptr(1200),
			},
			ResourceRequirements: &types.ResourceRequirements{
				MinMemoryRequiredInMB: 8192,
				NumAccelerators:       1,
			},
		},
		Predictor: &types.PredictorSpec{
			SupportedContentTypes: []string{"application/x-image"},
			SupportedAcceptTypes:  []string{"application/json;verbose", "application/json"},
			DefaultContentType:    "application/x-image",
			DefaultAcceptType:     "application/json",
		},
	}
}

func newTestSession(t *testing.T, c hub.Client, includeTags bool) *session.Session {
	t.Helper()
	s, err := session.New(context.Background(), &session.Config{
		Region:         "us-west-2",
		IncludeHubTags: includeTags,
		ExecutionRole:  "arn:aws:iam::123456789012:role/hosting",
	}, session.WithHub(c))
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return s
}

func TestGetInitKwargs_Defaults(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	got, err := factory.GetInitKwargs(context.Background(), &factory.InitKwargs{
		ModelID: spec.ModelID,
		Session: ses,
	})
	if err != nil {
		t.Fatalf("GetInitKwargs: %v", err)
	}

	if got.ModelVersion != "*" {
		t.Errorf("ModelVersion = %q, want %q", got.ModelVersion, "*")
	}
	if got.Region != "us-west-2" {
		t.Errorf("Region = %q, want %q", got.Region, "us-west-2")
	}
	if !strings.HasPrefix(got.Name, "mobilenet-v2-") {
		t.Errorf("Name = %q, want prefix %q", got.Name, "mobilenet-v2-")
	}
	if got.InstanceType != "ml.m5.xlarge" {
		t.Errorf("InstanceType = %q, want %q", got.InstanceType, "ml.m5.xlarge")
	}
	wantImage := "123456789012.dkr.ecr.us-west-2.amazonaws.com/pytorch-inference:2.0"
	if got.ImageURI != wantImage {
		t.Errorf("ImageURI = %q, want %q", got.ImageURI, wantImage)
	}

	wantModelData := &types.ModelData{
		Source: &types.ModelDataSource{
			S3DataSource: &types.S3DataSource{
				S3URI:           "s3://test-hub/pytorch-ic/artifacts/mobilenet-v2/",
				S3DataType:      "S3Prefix",
				CompressionType: "None",
			},
		},
	}
	if diff := cmp.Diff(wantModelData, got.ModelData); diff != "" {
		t.Errorf("ModelData mismatch (-want +got):\n%s", diff)
	}

	if want := "s3://test-hub/pytorch-ic/scripts/mobilenet-v2/sourcedir.tar.gz"; got.SourceDir != want {
		t.Errorf("SourceDir = %q, want %q", got.SourceDir, want)
	}
	if got.EntryPoint != "inference.py" {
		t.Errorf("EntryPoint = %q, want %q", got.EntryPoint, "inference.py")
	}

	wantEnv := map[string]string{
		"ENDPOINT_SERVER_TIMEOUT": "3600",
		"MODEL_CACHE_ROOT":        "/opt/ml/model",
	}
	if diff := cmp.Diff(wantEnv, got.Env); diff != "" {
		t.Errorf("Env mismatch (-want +got):\n%s", diff)
	}

	if got.EnableNetworkIsolation == nil || !*got.EnableNetworkIsolation {
		t.Errorf("EnableNetworkIsolation = %v, want true", got.EnableNetworkIsolation)
	}
	if got.Role != "arn:aws:iam::123456789012:role/hosting" {
		t.Errorf("Role = %q, want session execution role", got.Role)
	}
	wantResources := &types.ResourceRequirements{MinMemoryRequiredInMB: 8192, NumAccelerators: 1}
	if diff := cmp.Diff(wantResources, got.Resources); diff != "" {
		t.Errorf("Resources mismatch (-want +got):\n%s", diff)
	}
	if got.PredictorFactory == nil {
		t.Error("PredictorFactory is nil, want default factory")
	}
}

func TestGetInitKwargs_ExplicitValuesWin(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	req := &factory.InitKwargs{
		ModelID:      spec.ModelID,
		ModelVersion: "2.0.0",
		InstanceType: "ml.g5.2xlarge",
		ImageURI:     "custom.example.com/serving:latest",
		ModelData:    &types.ModelData{URI: "s3://my-bucket/model.tar.gz"},
		SourceDir:    "s3://my-bucket/src.tar.gz",
		EntryPoint:   "serve.py",
		Name:         "my-model",
		Role:         "arn:aws:iam::123456789012:role/custom",
		Session:      ses,
	}
	got, err := factory.GetInitKwargs(context.Background(), req)
	if err != nil {
		t.Fatalf("GetInitKwargs: %v", err)
	}

	if got.InstanceType != "ml.g5.2xlarge" {
		t.Errorf("InstanceType = %q, want explicit value", got.InstanceType)
	}
	if got.ImageURI != "custom.example.com/serving:latest" {
		t.Errorf("ImageURI = %q, want explicit value", got.ImageURI)
	}
	if got.ModelData.URI != "s3://my-bucket/model.tar.gz" || got.ModelData.Source != nil {
		t.Errorf("ModelData = %+v, want explicit URI unchanged", got.ModelData)
	}
	if got.SourceDir != "s3://my-bucket/src.tar.gz" {
		t.Errorf("SourceDir = %q, want explicit value", got.SourceDir)
	}
	if got.EntryPoint != "serve.py" {
		t.Errorf("EntryPoint = %q, want explicit value", got.EntryPoint)
	}
	if got.Name != "my-model" {
		t.Errorf("Name = %q, want explicit value", got.Name)
	}
	if got.Role != "arn:aws:iam::123456789012:role/custom" {
		t.Errorf("Role = %q, want explicit value", got.Role)
	}
}

func TestGetInitKwargs_CallerRecordNotMutated(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	req := &factory.InitKwargs{ModelID: spec.ModelID, Session: ses}
	if _, err := factory.GetInitKwargs(context.Background(), req); err != nil {
		t.Fatalf("GetInitKwargs: %v", err)
	}

	if req.ModelVersion != "" || req.InstanceType != "" || req.ImageURI != "" || req.ModelData != nil || req.Env != nil {
		t.Errorf("caller record was mutated: %+v", req)
	}
}

func TestGetInitKwargs_S3PrefixModelData(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	got, err := factory.GetInitKwargs(context.Background(), &factory.InitKwargs{
		ModelID:   spec.ModelID,
		ModelData: &types.ModelData{URI: "s3://bucket/prefix/"},
		Session:   ses,
	})
	if err != nil {
		t.Fatalf("GetInitKwargs: %v", err)
	}

	want := &types.ModelData{
		Source: &types.ModelDataSource{
			S3DataSource: &types.S3DataSource{
				S3URI:           "s3://bucket/prefix/",
				S3DataType:      "S3Prefix",
				CompressionType: "None",
			},
		},
	}
	if diff := cmp.Diff(want, got.ModelData); diff != "" {
		t.Errorf("ModelData mismatch (-want +got):\n%s", diff)
	}
}

func TestGetInitKwargs_TarballModelDataUnchanged(t *testing.T) {
	spec := testSpec()
	spec.Hosting.ArtifactKey = "pytorch-ic/artifacts/mobilenet-v2.tar.gz"
	ses := newTestSession(t, hubtest.New(spec), true)

	got, err := factory.GetInitKwargs(context.Background(), &factory.InitKwargs{
		ModelID: spec.ModelID,
		Session: ses,
	})
	if err != nil {
		t.Fatalf("GetInitKwargs: %v", err)
	}

	if want := "s3://test-hub/pytorch-ic/artifacts/mobilenet-v2.tar.gz"; got.ModelData.URI != want {
		t.Errorf("ModelData.URI = %q, want %q", got.ModelData.URI, want)
	}
	if got.ModelData.Source != nil {
		t.Errorf("ModelData.Source = %+v, want nil for tarball artifacts", got.ModelData.Source)
	}
}

func TestGetInitKwargs_ModelDataFromTraining(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	got, err := factory.GetInitKwargs(context.Background(), &factory.InitKwargs{
		ModelID:               spec.ModelID,
		ModelDataFromTraining: true,
		Session:               ses,
	})
	if err != nil {
		t.Fatalf("GetInitKwargs: %v", err)
	}

	if got.ModelData != nil {
		t.Errorf("ModelData = %+v, want nil when the artifact comes from training", got.ModelData)
	}
}

func TestGetInitKwargs_ScriptModeGating(t *testing.T) {
	spec := testSpec()
	spec.Hosting.ScriptKey = ""
	ses := newTestSession(t, hubtest.New(spec), true)

	got, err := factory.GetInitKwargs(context.Background(), &factory.InitKwargs{
		ModelID: spec.ModelID,
		Session: ses,
	})
	if err != nil {
		t.Fatalf("GetInitKwargs: %v", err)
	}

	if got.EntryPoint != "" {
		t.Errorf("EntryPoint = %q, want unset for non-script models", got.EntryPoint)
	}
	if got.SourceDir != "" {
		t.Errorf("SourceDir = %q, want unset for non-script models", got.SourceDir)
	}
}

func TestGetInitKwargs_EnvMerge(t *testing.T) {
	spec := testSpec()
	spec.Hosting.EnvironmentVariables = []types.EnvironmentVariable{
		{Name: "A", Value: "2"},
		{Name: "B", Value: "3"},
	}
	ses := newTestSession(t, hubtest.New(spec), true)

	got, err := factory.GetInitKwargs(context.Background(), &factory.InitKwargs{
		ModelID: spec.ModelID,
		Env:     map[string]string{"A": "1"},
		Session: ses,
	})
	if err != nil {
		t.Fatalf("GetInitKwargs: %v", err)
	}

	want := map[string]string{"A": "1", "B": "3"}
	if diff := cmp.Diff(want, got.Env); diff != "" {
		t.Errorf("Env mismatch (-want +got):\n%s", diff)
	}
}

func TestGetInitKwargs_EmptyEnvResolvesToUnset(t *testing.T) {
	spec := testSpec()
	spec.Hosting.EnvironmentVariables = nil
	ses := newTestSession(t, hubtest.New(spec), true)

	got, err := factory.GetInitKwargs(context.Background(), &factory.InitKwargs{
		ModelID: spec.ModelID,
		Session: ses,
	})
	if err != nil {
		t.Fatalf("GetInitKwargs: %v", err)
	}

	if got.Env != nil {
		t.Errorf("Env = %v, want nil when the merged environment is empty", got.Env)
	}
}

func TestGetInitKwargs_DeprecatedModel(t *testing.T) {
	spec := testSpec()
	spec.Deprecated = true
	ses := newTestSession(t, hubtest.New(spec), true)

	_, err := factory.GetInitKwargs(context.Background(), &factory.InitKwargs{
		ModelID: spec.ModelID,
		Session: ses,
	})
	var deprecated *types.DeprecatedModelError
	if !errors.As(err, &deprecated) {
		t.Fatalf("GetInitKwargs error = %v, want DeprecatedModelError", err)
	}

	if _, err := factory.GetInitKwargs(context.Background(), &factory.InitKwargs{
		ModelID:                 spec.ModelID,
		TolerateDeprecatedModel: true,
		Session:                 ses,
	}); err != nil {
		t.Fatalf("GetInitKwargs with tolerance: %v", err)
	}
}

func TestGetInitKwargs_VulnerableModel(t *testing.T) {
	spec := testSpec()
	spec.InferenceVulnerable = true
	spec.InferenceVulnerabilities = []string{"CVE-2025-0001"}
	ses := newTestSession(t, hubtest.New(spec), true)

	_, err := factory.GetInitKwargs(context.Background(), &factory.InitKwargs{
		ModelID: spec.ModelID,
		Session: ses,
	})
	var vulnerable *types.VulnerableModelError
	if !errors.As(err, &vulnerable) {
		t.Fatalf("GetInitKwargs error = %v, want VulnerableModelError", err)
	}

	if _, err := factory.GetInitKwargs(context.Background(), &factory.InitKwargs{
		ModelID:                 spec.ModelID,
		TolerateVulnerableModel: true,
		Session:                 ses,
	}); err != nil {
		t.Fatalf("GetInitKwargs with tolerance: %v", err)
	}
}

func TestGetInitKwargs_UnknownModel(t *testing.T) {
	ses := newTestSession(t, hubtest.New(testSpec()), true)

	_, err := factory.GetInitKwargs(context.Background(), &factory.InitKwargs{
		ModelID: "no-such-model",
		Session: ses,
	})
	var notFound *types.ModelNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("GetInitKwargs error = %v, want ModelNotFoundError", err)
	}
}

func TestGetDeployKwargs_Defaults(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	got, err := factory.GetDeployKwargs(context.Background(), &factory.DeployKwargs{
		ModelID: spec.ModelID,
		Session: ses,
	})
	if err != nil {
		t.Fatalf("GetDeployKwargs: %v", err)
	}

	if !strings.HasPrefix(got.EndpointName, "mobilenet-v2-") {
		t.Errorf("EndpointName = %q, want prefix %q", got.EndpointName, "mobilenet-v2-")
	}
	if got.InitialInstanceCount != 1 {
		t.Errorf("InitialInstanceCount = %d, want 1", got.InitialInstanceCount)
	}
	if got.InstanceType != "ml.m5.xlarge" {
		t.Errorf("InstanceType = %q, want %q", got.InstanceType, "ml.m5.xlarge")
	}
	if got.ModelDataDownloadTimeout == nil || *got.ModelDataDownloadTimeout != 1200 {
		t.Errorf("ModelDataDownloadTimeout = %v, want 1200", got.ModelDataDownloadTimeout)
	}

	wantTags := []types.Tag{
		{Key: types.TagKeyModelID, Value: spec.ModelID},
		{Key: types.TagKeyModelVersion, Value: "2.0.0"},
	}
	if diff := cmp.Diff(wantTags, got.Tags); diff != "" {
		t.Errorf("Tags mismatch (-want +got):\n%s", diff)
	}
}

func TestGetDeployKwargs_ExplicitValuesWin(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	timeout := 60
	got, err := factory.GetDeployKwargs(context.Background(), &factory.DeployKwargs{
		ModelID:                  spec.ModelID,
		InitialInstanceCount:     3,
		InstanceType:             "ml.g5.2xlarge",
		EndpointName:             "my-endpoint",
		ModelDataDownloadTimeout: &timeout,
		Session:                  ses,
	})
	if err != nil {
		t.Fatalf("GetDeployKwargs: %v", err)
	}

	if got.InitialInstanceCount != 3 {
		t.Errorf("InitialInstanceCount = %d, want 3", got.InitialInstanceCount)
	}
	if got.InstanceType != "ml.g5.2xlarge" {
		t.Errorf("InstanceType = %q, want explicit value", got.InstanceType)
	}
	if got.EndpointName != "my-endpoint" {
		t.Errorf("EndpointName = %q, want explicit value", got.EndpointName)
	}
	if *got.ModelDataDownloadTimeout != 60 {
		t.Errorf("ModelDataDownloadTimeout = %d, want 60", *got.ModelDataDownloadTimeout)
	}
}

func TestGetDeployKwargs_TagPolicyDisabled(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), false)

	got, err := factory.GetDeployKwargs(context.Background(), &factory.DeployKwargs{
		ModelID: spec.ModelID,
		Session: ses,
	})
	if err != nil {
		t.Fatalf("GetDeployKwargs: %v", err)
	}

	if len(got.Tags) != 0 {
		t.Errorf("Tags = %v, want none when the session tag policy is off", got.Tags)
	}
}

func TestGetDeployKwargs_UserTagPreserved(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	got, err := factory.GetDeployKwargs(context.Background(), &factory.DeployKwargs{
		ModelID: spec.ModelID,
		Tags:    []types.Tag{{Key: types.TagKeyModelID, Value: "custom"}},
		Session: ses,
	})
	if err != nil {
		t.Fatalf("GetDeployKwargs: %v", err)
	}

	want := []types.Tag{
		{Key: types.TagKeyModelID, Value: "custom"},
		{Key: types.TagKeyModelVersion, Value: "2.0.0"},
	}
	if diff := cmp.Diff(want, got.Tags); diff != "" {
		t.Errorf("Tags mismatch (-want +got):\n%s", diff)
	}
}

func TestGetDeployKwargs_InferenceComponentResources(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	got, err := factory.GetDeployKwargs(context.Background(), &factory.DeployKwargs{
		ModelID:                spec.ModelID,
		EndpointType:           types.EndpointTypeInferenceComponentBased,
		ManagedInstanceScaling: "ENABLED",
		Session:                ses,
	})
	if err != nil {
		t.Fatalf("GetDeployKwargs: %v", err)
	}

	wantResources := &types.ResourceRequirements{MinMemoryRequiredInMB: 8192, NumAccelerators: 1}
	if diff := cmp.Diff(wantResources, got.Resources); diff != "" {
		t.Errorf("Resources mismatch (-want +got):\n%s", diff)
	}
	if got.ManagedInstanceScaling != "ENABLED" {
		t.Errorf("ManagedInstanceScaling = %q, want kept for component-based endpoints", got.ManagedInstanceScaling)
	}
}

func TestGetDeployKwargs_ModelBasedEndpointSkipsResources(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	got, err := factory.GetDeployKwargs(context.Background(), &factory.DeployKwargs{
		ModelID:                spec.ModelID,
		ManagedInstanceScaling: "ENABLED",
		Session:                ses,
	})
	if err != nil {
		t.Fatalf("GetDeployKwargs: %v", err)
	}

	if got.Resources != nil {
		t.Errorf("Resources = %+v, want nil for model-based endpoints", got.Resources)
	}
	if got.ManagedInstanceScaling != "" {
		t.Errorf("ManagedInstanceScaling = %q, want cleared for model-based endpoints", got.ManagedInstanceScaling)
	}
}

func TestGetRegisterKwargs_Defaults(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	got, err := factory.GetRegisterKwargs(context.Background(), &factory.RegisterKwargs{
		ModelID: spec.ModelID,
		Session: ses,
	})
	if err != nil {
		t.Fatalf("GetRegisterKwargs: %v", err)
	}

	if diff := cmp.Diff([]string{"application/x-image"}, got.ContentTypes); diff != "" {
		t.Errorf("ContentTypes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"application/json;verbose", "application/json"}, got.ResponseTypes); diff != "" {
		t.Errorf("ResponseTypes mismatch (-want +got):\n%s", diff)
	}
}

func TestGetRegisterKwargs_ExplicitValuesWin(t *testing.T) {
	spec := testSpec()
	ses := newTestSession(t, hubtest.New(spec), true)

	got, err := factory.GetRegisterKwargs(context.Background(), &factory.RegisterKwargs{
		ModelID:       spec.ModelID,
		ContentTypes:  []string{"application/json"},
		ResponseTypes: []string{"text/plain"},
		Session:       ses,
	})
	if err != nil {
		t.Fatalf("GetRegisterKwargs: %v", err)
	}

	if diff := cmp.Diff([]string{"application/json"}, got.ContentTypes); diff != "" {
		t.Errorf("ContentTypes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"text/plain"}, got.ResponseTypes); diff != "" {
		t.Errorf("ResponseTypes mismatch (-want +got):\n%s", diff)
	}
}
