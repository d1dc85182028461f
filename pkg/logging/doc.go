// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging provides context-based structured logging utilities using Go's standard slog package.
//
// The logging package implements a context-based logging pattern that allows loggers to be stored
// in and retrieved from context.Context values. This enables consistent logging throughout the
// SDK stack with automatic logger propagation.
//
// # Basic Usage
//
// Creating a logger context:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
//		Level: slog.LevelInfo,
//	}))
//
//	ctx := logging.NewContext(ctx, logger)
//
// Retrieving logger from context:
//
//	logger := logging.FromContext(ctx)
//	logger.Info("Spec resolved", "model_id", modelID, "version", version)
//
// # Default Behavior
//
// When no logger is found in the context, FromContext returns a default JSON logger
// that writes to stdout with INFO level logging. This ensures logging always works
// even when no explicit logger is configured.
//
// # Thread Safety
//
// The logging package is safe for concurrent use. Multiple goroutines can safely
// access loggers from context without additional synchronization.
package logging
