// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about enrichment batches and upstream API calls.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEnrichHooks(&myEnrichHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Enrich().OnEnrichStart(ctx, len(deps))
//	// ... enrich ...
//	observability.Enrich().OnEnrichComplete(ctx, len(results), duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Enrich Hooks
// =============================================================================

// EnrichHooks receives events from the enrichment orchestrator.
type EnrichHooks interface {
	// OnEnrichStart records the start of a batch of count dependencies.
	OnEnrichStart(ctx context.Context, count int)

	// OnItemComplete records the terminal state of one dependency pipeline
	// (e.g. "scored", "no-repository", "resolve-failed").
	OnItemComplete(ctx context.Context, name, state string, duration time.Duration)

	// OnEnrichComplete records the end of a batch.
	OnEnrichComplete(ctx context.Context, count int, duration time.Duration)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEnrichHooks is a no-op implementation of EnrichHooks.
type NoopEnrichHooks struct{}

func (NoopEnrichHooks) OnEnrichStart(context.Context, int)                            {}
func (NoopEnrichHooks) OnItemComplete(context.Context, string, string, time.Duration) {}
func (NoopEnrichHooks) OnEnrichComplete(context.Context, int, time.Duration)          {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	enrichHooks EnrichHooks = NoopEnrichHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetEnrichHooks registers custom enrichment hooks.
// This should be called once at application startup before any batch runs.
func SetEnrichHooks(h EnrichHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		enrichHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Enrich returns the registered enrichment hooks.
func Enrich() EnrichHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return enrichHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	enrichHooks = NoopEnrichHooks{}
	httpHooks = NoopHTTPHooks{}
}
