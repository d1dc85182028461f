// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package types

// MetricsSource locates one metrics document in S3.
type MetricsSource struct {
	ContentType   string `json:"content_type"`
	S3URI         string `json:"s3_uri"`
	ContentDigest string `json:"content_digest,omitempty"`
}

// ModelMetrics groups the quality and bias metrics recorded with a model
// package.
type ModelMetrics struct {
	ModelStatistics  *MetricsSource `json:"model_statistics,omitempty"`
	ModelConstraints *MetricsSource `json:"model_constraints,omitempty"`
	Bias             *MetricsSource `json:"bias,omitempty"`
	Explainability   *MetricsSource `json:"explainability,omitempty"`
}

// MetadataProperties records the provenance of a model package.
type MetadataProperties struct {
	CommitID    string `json:"commit_id,omitempty"`
	Repository  string `json:"repository,omitempty"`
	GeneratedBy string `json:"generated_by,omitempty"`
	ProjectID   string `json:"project_id,omitempty"`
}

// DriftCheckBaselines groups the baseline documents used for drift checks
// against a registered model.
type DriftCheckBaselines struct {
	ModelStatistics         *MetricsSource `json:"model_statistics,omitempty"`
	ModelConstraints        *MetricsSource `json:"model_constraints,omitempty"`
	ModelDataStatistics     *MetricsSource `json:"model_data_statistics,omitempty"`
	ModelDataConstraints    *MetricsSource `json:"model_data_constraints,omitempty"`
	BiasConfigFile          *MetricsSource `json:"bias_config_file,omitempty"`
	ExplainabilityConstraints *MetricsSource `json:"explainability_constraints,omitempty"`
}
