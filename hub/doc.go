// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package hub provides the model-hub catalog client.
//
// The hub is a set of regional S3-compatible buckets holding a manifest of
// available models plus one spec document per model version. The client
// resolves wildcard versions against the manifest, fetches and caches spec
// documents, and gates deprecated or vulnerable model versions behind
// explicit tolerance flags.
//
// Basic usage:
//
//	client, err := hub.NewClient(&hub.ClientOptions{Endpoint: "s3.amazonaws.com"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	spec, err := client.Spec(ctx, &hub.SpecRequest{
//		ModelID: "huggingface-text2text-flan-t5-xl",
//		Version: "*",
//		Region:  "us-east-1",
//	})
package hub
