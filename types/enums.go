// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package types

// ScriptScope identifies which side of the model lifecycle an artifact
// lookup is for.
type ScriptScope string

const (
	// ScriptScopeInference selects hosting-side artifacts and defaults.
	ScriptScopeInference ScriptScope = "inference"

	// ScriptScopeTraining selects training-side artifacts and defaults.
	ScriptScopeTraining ScriptScope = "training"
)

// EndpointType identifies the kind of hosting endpoint a deployment targets.
type EndpointType string

const (
	// EndpointTypeModelBased is the classic single-model endpoint.
	EndpointTypeModelBased EndpointType = "model-based"

	// EndpointTypeInferenceComponentBased hosts models as inference
	// components with per-component resource requirements.
	EndpointTypeInferenceComponentBased EndpointType = "inference-component-based"
)

// InferenceEntryPointScriptName is the entry point the hub serves for
// script-mode models.
const InferenceEntryPointScriptName = "inference.py"
