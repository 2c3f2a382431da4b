// Package cache stores rendered chart artifacts and their metadata.
//
// Three backends implement [Cache]: [FileCache] for the CLI, [RedisCache]
// for shared deployments and [NullCache] when caching is off. Keys come
// from a [Keyer], so every caller derives the same key for the same scene.
//
// Keys are content hashes. A scene is hashed from its serialized options,
// and each artifact key combines that hash with the output format and
// padding:
//
//	sceneHash := cache.Hash(sceneJSON)
//	key := keyer.ArtifactKey(sceneHash, cache.ArtifactKeyOpts{Format: "svg"})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. A missing or
	// expired entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data for ttl. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}

// Default lifetimes per entry type.
const (
	// TTLScene keeps the statistics of a drawn scene.
	TTLScene = 7 * 24 * time.Hour

	// TTLArtifact keeps rendered output. Charts that depend on the current
	// time hash their time into the scene, so a long TTL is safe.
	TTLArtifact = 7 * 24 * time.Hour

	// TTLStyle keeps resolved styles.
	TTLStyle = 30 * 24 * time.Hour
)

// Keyer derives cache keys.
type Keyer interface {
	// SceneKey is the key for a scene's metadata.
	SceneKey(sceneHash string) string

	// ArtifactKey is the key for one rendered output of a scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string

	// StyleKey is the key for a resolved style.
	StyleKey(styleHash string) string
}

// ArtifactKeyOpts are the render settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format  string  `json:"format"`
	Padding float64 `json:"padding"`
}

// DefaultKeyer is the unscoped Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SceneKey returns "scene:<hash>".
func (DefaultKeyer) SceneKey(sceneHash string) string {
	return "scene:" + sceneHash
}

// ArtifactKey hashes the scene hash together with the render options.
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}

// StyleKey returns "style:<hash>".
func (DefaultKeyer) StyleKey(styleHash string) string {
	return "style:" + styleHash
}

var _ Keyer = DefaultKeyer{}
