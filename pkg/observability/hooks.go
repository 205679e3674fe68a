// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks without depending on any
// particular backend. The defaults do nothing; the CLI registers
// logging hooks when run with --verbose.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetHarnessHooks(&myHarnessHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Harness().OnWorkloadStart(ctx, name)
//	// ... measure ...
//	observability.Harness().OnWorkloadComplete(ctx, name, score, runs, elapsed, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Harness Hooks
// =============================================================================

// HarnessHooks receives events from benchmark runs.
type HarnessHooks interface {
	// Run events
	OnRunStart(ctx context.Context, runID string, workloads []string)
	OnRunComplete(ctx context.Context, runID string, duration time.Duration, err error)

	// Workload events. score is in runs per second.
	OnWorkloadStart(ctx context.Context, name string)
	OnWorkloadComplete(ctx context.Context, name string, score float64, runs int, elapsed time.Duration, err error)
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

// NoopHarnessHooks is a no-op implementation of HarnessHooks.
type NoopHarnessHooks struct{}

func (NoopHarnessHooks) OnRunStart(context.Context, string, []string)                {}
func (NoopHarnessHooks) OnRunComplete(context.Context, string, time.Duration, error) {}
func (NoopHarnessHooks) OnWorkloadStart(context.Context, string)                     {}
func (NoopHarnessHooks) OnWorkloadComplete(context.Context, string, float64, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	harnessHooks HarnessHooks = NoopHarnessHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetHarnessHooks registers custom harness hooks.
// This should be called once at application startup before any run starts.
func SetHarnessHooks(h HarnessHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		harnessHooks = h
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

// Harness returns the registered harness hooks.
func Harness() HarnessHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return harnessHooks
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
	harnessHooks = NoopHarnessHooks{}
	cacheHooks = NoopCacheHooks{}
}
