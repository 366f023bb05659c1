// Package observability provides hooks for timing and cache instrumentation.
//
// Libraries emit events through the registered hooks and never depend on a
// concrete backend. The defaults are no-ops; main registers real
// implementations at startup:
//
//	func main() {
//	    observability.SetConvertHooks(myHooks)
//	    observability.SetCacheHooks(myHooks)
//	    // ... run application
//	}
//
// Call sites emit events around the work they do:
//
//	observability.Convert().OnConvertStart(ctx, "png")
//	// ... run rsvg-convert ...
//	observability.Convert().OnConvertComplete(ctx, "png", size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Convert Hooks
// =============================================================================

// ConvertHooks receives events from SVG to PNG/PDF conversion.
type ConvertHooks interface {
	OnConvertStart(ctx context.Context, format string)
	OnConvertComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
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

// NoopConvertHooks is a no-op implementation of ConvertHooks.
type NoopConvertHooks struct{}

func (NoopConvertHooks) OnConvertStart(context.Context, string)                                {}
func (NoopConvertHooks) OnConvertComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	convertHooks ConvertHooks = NoopConvertHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetConvertHooks registers custom conversion hooks.
// This should be called once at application startup. Nil is ignored.
func SetConvertHooks(h ConvertHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		convertHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Convert returns the registered conversion hooks.
func Convert() ConvertHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return convertHooks
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
	convertHooks = NoopConvertHooks{}
	cacheHooks = NoopCacheHooks{}
}
