// Package resource provides the generic fetch-on-demand contract every list
// view consumes: load, expose data/loading/error, refetch after mutations.
package resource

import (
	"context"
	"sync"

	"github.com/teampulse/admin-console/internal/client/notify"
)

// Loader runs a fetch function and tracks its data, loading, and error
// state. Overlapping calls are resolved by a monotonic sequence number:
// a completion older than the latest issued request is discarded, so the
// state always reflects the newest request rather than whichever response
// happened to land last. No in-flight request is cancelled.
type Loader[T any] struct {
	mu      sync.RWMutex
	seq     uint64 // latest issued request
	data    T
	hasData bool
	loading bool
	errMsg  string

	fetch  func(context.Context) (T, error)
	notify notify.Sink
}

// NewLoader builds a Loader around fetch. The sink receives one error
// notification per failed fetch; this duplicates the API client's own
// notification by design, matching the original behaviour.
func NewLoader[T any](fetch func(context.Context) (T, error), sink notify.Sink) *Loader[T] {
	return &Loader[T]{fetch: fetch, notify: sink}
}

// Load runs one fetch cycle: mark loading, clear the error, invoke fetch,
// then publish the result unless a newer request was issued meanwhile.
// On failure the previous data is preserved and only the error changes.
func (l *Loader[T]) Load(ctx context.Context) {
	l.mu.Lock()
	l.seq++
	id := l.seq
	l.loading = true
	l.errMsg = ""
	l.mu.Unlock()

	result, err := l.fetch(ctx)

	l.mu.Lock()
	if id != l.seq {
		// A newer request owns the state now; drop this result.
		l.mu.Unlock()
		return
	}
	l.loading = false
	if err != nil {
		l.errMsg = err.Error()
	} else {
		l.data = result
		l.hasData = true
	}
	l.mu.Unlock()

	if err != nil {
		l.notify.Error(err.Error())
	}
}

// Refetch re-runs the same fetch sequence, e.g. after a mutation.
func (l *Loader[T]) Refetch(ctx context.Context) {
	l.Load(ctx)
}

// Data returns the last successful result and whether one exists.
func (l *Loader[T]) Data() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data, l.hasData
}

// Loading reports whether the newest issued request is still in flight.
func (l *Loader[T]) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}

// Err returns the error message of the newest completed request, or "".
func (l *Loader[T]) Err() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.errMsg
}
