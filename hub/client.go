// Copyright 2026 The Go ModelHub Authors
// SPDX-License-Identifier: Apache-2.0

package hub

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	deepcopy "github.com/tiendc/go-deepcopy"
	"golang.org/x/sync/singleflight"

	"github.com/go-modelhub/hubkit-go/pkg/logging"
	"github.com/go-modelhub/hubkit-go/types"
)

// defaultCacheTTL bounds how long manifests and specs are served from the
// in-process cache before being refetched.
const defaultCacheTTL = 6 * time.Hour

// SpecRequest identifies one spec document lookup.
type SpecRequest struct {
	// ModelID is the hub model identifier.
	ModelID string

	// Version is a concrete version or the wildcard "*". Empty means "*".
	Version string

	// Region selects the regional hub bucket.
	Region string
}

// Client is the catalog surface the rest of the SDK consumes.
type Client interface {
	// Manifest returns the model manifest for a region.
	Manifest(ctx context.Context, region string) ([]ManifestEntry, error)

	// Spec resolves and returns the spec document for a model version.
	Spec(ctx context.Context, req *SpecRequest) (*types.ModelSpec, error)

	// Bucket returns the hub bucket name serving a region.
	Bucket(region string) string

	// Close releases client resources.
	Close() error
}

// ObjectStore fetches raw hub documents. The production implementation wraps
// a minio S3 client; tests substitute an in-memory store.
type ObjectStore interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// ClientOptions configures a hub client.
type ClientOptions struct {
	// Endpoint is the S3-compatible endpoint serving the hub buckets.
	Endpoint string

	// AccessKey and SecretKey authenticate against the endpoint. Empty
	// values request anonymous access, which the public hub buckets allow.
	AccessKey string
	SecretKey string

	// UseSSL toggles TLS towards the endpoint.
	UseSSL bool

	// Bucket overrides the regional bucket name. Empty derives
	// "modelhub-cache-prod-<region>" per region.
	Bucket string

	// CacheTTL bounds manifest and spec cache freshness. Zero means the
	// default of six hours.
	CacheTTL time.Duration

	// Store overrides the object store, bypassing minio construction.
	Store ObjectStore
}

type client struct {
	store    ObjectStore
	bucket   string
	cacheTTL time.Duration

	group singleflight.Group

	mu        sync.RWMutex
	specs     map[string]cacheEntry[*types.ModelSpec]
	manifests map[string]cacheEntry[[]ManifestEntry]
}

type cacheEntry[T any] struct {
	value   T
	expires time.Time
}

var _ Client = (*client)(nil)

// NewClient creates a hub catalog client.
func NewClient(opts *ClientOptions) (Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}
	c := &client{
		store:     opts.Store,
		bucket:    opts.Bucket,
		cacheTTL:  opts.CacheTTL,
		specs:     make(map[string]cacheEntry[*types.ModelSpec]),
		manifests: make(map[string]cacheEntry[[]ManifestEntry]),
	}
	if c.cacheTTL == 0 {
		c.cacheTTL = defaultCacheTTL
	}
	if c.store == nil {
		if opts.Endpoint == "" {
			return nil, fmt.Errorf("hub endpoint is required")
		}
		store, err := newMinioStore(opts)
		if err != nil {
			return nil, fmt.Errorf("create hub object store: %w", err)
		}
		c.store = store
	}
	return c, nil
}

// Bucket implements [Client].
func (c *client) Bucket(region string) string {
	if c.bucket != "" {
		return c.bucket
	}
	return fmt.Sprintf("modelhub-cache-prod-%s", region)
}

// Manifest implements [Client].
func (c *client) Manifest(ctx context.Context, region string) ([]ManifestEntry, error) {
	c.mu.RLock()
	entry, ok := c.manifests[region]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return entry.value, nil
	}

	v, err, _ := c.group.Do("manifest/"+region, func() (any, error) {
		data, err := c.store.GetObject(ctx, c.Bucket(region), manifestKey)
		if err != nil {
			return nil, fmt.Errorf("fetch hub manifest for region %q: %w", region, err)
		}
		var entries []ManifestEntry
		if err := sonic.ConfigFastest.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decode hub manifest for region %q: %w", region, err)
		}

		c.mu.Lock()
		c.manifests[region] = cacheEntry[[]ManifestEntry]{value: entries, expires: time.Now().Add(c.cacheTTL)}
		c.mu.Unlock()

		logging.FromContext(ctx).DebugContext(ctx, "hub manifest fetched",
			slog.String("region", region),
			slog.Int("models", len(entries)),
		)
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]ManifestEntry), nil
}

// Spec implements [Client].
func (c *client) Spec(ctx context.Context, req *SpecRequest) (*types.ModelSpec, error) {
	if req == nil || req.ModelID == "" {
		return nil, fmt.Errorf("model id is required")
	}
	if req.Region == "" {
		return nil, fmt.Errorf("region is required")
	}

	entries, err := c.Manifest(ctx, req.Region)
	if err != nil {
		return nil, err
	}
	manifest, err := resolveVersion(entries, req.ModelID, req.Version, req.Region)
	if err != nil {
		return nil, err
	}

	key := req.Region + "/" + req.ModelID + "@" + manifest.Version
	c.mu.RLock()
	entry, ok := c.specs[key]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return copySpec(entry.value)
	}

	v, err, _ := c.group.Do("spec/"+key, func() (any, error) {
		data, err := c.store.GetObject(ctx, c.Bucket(req.Region), manifest.SpecKey)
		if err != nil {
			return nil, fmt.Errorf("fetch spec for model %q version %q: %w", req.ModelID, manifest.Version, err)
		}
		spec := new(types.ModelSpec)
		if err := sonic.ConfigFastest.Unmarshal(data, spec); err != nil {
			return nil, fmt.Errorf("decode spec for model %q version %q: %w", req.ModelID, manifest.Version, err)
		}

		c.mu.Lock()
		c.specs[key] = cacheEntry[*types.ModelSpec]{value: spec, expires: time.Now().Add(c.cacheTTL)}
		c.mu.Unlock()

		logging.FromContext(ctx).DebugContext(ctx, "hub spec fetched",
			slog.String("model_id", req.ModelID),
			slog.String("version", manifest.Version),
			slog.String("region", req.Region),
		)
		return spec, nil
	})
	if err != nil {
		return nil, err
	}
	return copySpec(v.(*types.ModelSpec))
}

// Close implements [Client].
func (c *client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.specs = make(map[string]cacheEntry[*types.ModelSpec])
	c.manifests = make(map[string]cacheEntry[[]ManifestEntry])
	return nil
}

// copySpec deep-copies a cached spec so callers cannot mutate the cache.
func copySpec(spec *types.ModelSpec) (*types.ModelSpec, error) {
	out := new(types.ModelSpec)
	if err := deepcopy.Copy(out, spec); err != nil {
		return nil, fmt.Errorf("copy cached spec: %w", err)
	}
	return out, nil
}

// minioStore is the production ObjectStore backed by an S3-compatible
// endpoint.
type minioStore struct {
	client *minio.Client
}

var _ ObjectStore = (*minioStore)(nil)

func newMinioStore(opts *ClientOptions) (*minioStore, error) {
	mopts := &minio.Options{
		Secure: opts.UseSSL,
	}
	if opts.AccessKey != "" {
		mopts.Creds = credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, "")
	} else {
		mopts.Creds = credentials.NewStaticV4("", "", "")
	}
	mc, err := minio.New(opts.Endpoint, mopts)
	if err != nil {
		return nil, err
	}
	return &minioStore{client: mc}, nil
}

// GetObject implements [ObjectStore].
func (s *minioStore) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}
