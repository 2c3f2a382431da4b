// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks; binaries decide what
// receives them. Nothing here depends on a metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSceneHooks(observability.LogHooks{Logger: logger})
//	    observability.SetCacheHooks(observability.LogHooks{Logger: logger})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Scene().OnLayerStart(ctx, "stars")
//	// ... draw ...
//	observability.Scene().OnLayerComplete(ctx, "stars", drawn, duration, err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Scene Hooks
// =============================================================================

// SceneHooks receives events from scene execution.
type SceneHooks interface {
	// Chart events
	OnChartStart(ctx context.Context, kind string)
	OnChartComplete(ctx context.Context, kind string, objects int, duration time.Duration, err error)

	// Layer events
	OnLayerStart(ctx context.Context, layer string)
	OnLayerComplete(ctx context.Context, layer string, drawn int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSceneHooks is a no-op implementation of SceneHooks.
type NoopSceneHooks struct{}

func (NoopSceneHooks) OnChartStart(context.Context, string)                               {}
func (NoopSceneHooks) OnChartComplete(context.Context, string, int, time.Duration, error) {}
func (NoopSceneHooks) OnLayerStart(context.Context, string)                               {}
func (NoopSceneHooks) OnLayerComplete(context.Context, string, int, time.Duration, error) {}
func (NoopSceneHooks) OnRenderStart(context.Context, []string)                            {}
func (NoopSceneHooks) OnRenderComplete(context.Context, []string, time.Duration, error)   {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Logging Implementation
// =============================================================================

// LogHooks writes every event to a logger at debug level, and failures at
// error level. It implements both SceneHooks and CacheHooks.
type LogHooks struct {
	Logger *log.Logger
}

func (h LogHooks) logger() *log.Logger {
	if h.Logger == nil {
		return log.Default()
	}
	return h.Logger
}

func (h LogHooks) done(msg string, err error, kv ...any) {
	if err != nil {
		h.logger().Error(msg, append(kv, "err", err)...)
		return
	}
	h.logger().Debug(msg, kv...)
}

func (h LogHooks) OnChartStart(_ context.Context, kind string) {
	h.logger().Debug("chart start", "kind", kind)
}

func (h LogHooks) OnChartComplete(_ context.Context, kind string, objects int, d time.Duration, err error) {
	h.done("chart complete", err, "kind", kind, "objects", objects, "duration", d)
}

func (h LogHooks) OnLayerStart(_ context.Context, layer string) {
	h.logger().Debug("layer start", "layer", layer)
}

func (h LogHooks) OnLayerComplete(_ context.Context, layer string, drawn int, d time.Duration, err error) {
	h.done("layer complete", err, "layer", layer, "drawn", drawn, "duration", d)
}

func (h LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger().Debug("render start", "formats", formats)
}

func (h LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("render complete", err, "formats", formats, "duration", d)
}

func (h LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger().Debug("cache hit", "type", keyType)
}

func (h LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger().Debug("cache miss", "type", keyType)
}

func (h LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger().Debug("cache set", "type", keyType, "bytes", size)
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sceneHooks SceneHooks = NoopSceneHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetSceneHooks registers custom scene hooks.
// This should be called once at application startup before any charts are drawn.
func SetSceneHooks(h SceneHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sceneHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Scene returns the registered scene hooks.
func Scene() SceneHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sceneHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sceneHooks = NoopSceneHooks{}
	cacheHooks = NoopCacheHooks{}
}
