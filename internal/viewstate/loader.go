// Package viewstate coordinates view loads so a stale in-flight fetch can
// never overwrite state produced by a newer one. Each load runs under a
// generation counter; beginning a new load cancels the previous context and
// completions from superseded generations are discarded.
package viewstate

import (
	"context"
	"sync"
)

type Loader[T any] struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	value  T
	err    error
	loaded bool
}

// Begin starts a new load generation, cancelling any load still in flight.
// The returned context must be used for the load's fetches; the generation
// must be handed back to Complete.
func (l *Loader[T]) Begin(ctx context.Context) (context.Context, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	return ctx, l.gen
}

// Complete records the result of a load. A completion whose generation has
// been superseded is discarded; the report says whether it was applied.
func (l *Loader[T]) Complete(gen uint64, value T, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.value, l.err, l.loaded = value, err, true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	return true
}

// Load runs fn under a fresh generation and applies its result unless a
// newer load started meanwhile.
func (l *Loader[T]) Load(ctx context.Context, fn func(context.Context) (T, error)) bool {
	loadCtx, gen := l.Begin(ctx)
	value, err := fn(loadCtx)
	return l.Complete(gen, value, err)
}

// Current returns the most recently applied result. The zero value and nil
// error are returned until the first completion lands; Loaded distinguishes
// the two cases.
func (l *Loader[T]) Current() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.err
}

func (l *Loader[T]) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}
