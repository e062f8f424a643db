// Package state provides the mutex-guarded in-memory state containers that
// back every lesson module.
//
// Each lesson owns one Store constructed from a fresh-state function. Reset
// replaces the current value with a newly constructed instance, so repeated
// resets are idempotent and no shared initial-snapshot template can ever be
// mutated. All access runs inside the store's lock: a handler performs its
// whole read-decide-mutate-render sequence within one Do call, which is the
// only interleaving protection the service needs.
package state

import "sync"

// Store holds a lesson's application state.
type Store[T any] struct {
	mu      sync.Mutex
	fresh   func() T
	current T
}

// NewStore builds a store whose state starts as fresh().
//
// fresh must construct new nested containers (maps, slices) on every call;
// returning a shared value would let resets alias live state.
func NewStore[T any](fresh func() T) *Store[T] {
	return &Store[T]{fresh: fresh, current: fresh()}
}

// Do runs fn with the current state under the store lock. fn may read and
// mutate the state freely and should also render any response that depends
// on it, so no request observes a half-updated state.
func (s *Store[T]) Do(fn func(state T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.current)
}

// Reset discards the current state and replaces it with a freshly
// constructed instance.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.fresh()
}

// Resetter restores a state container to its initial snapshot.
type Resetter interface {
	Reset()
}

// Registry collects every lesson store so the service can reset the whole
// process state in one operation (the test-isolation hook).
type Registry struct {
	mu        sync.Mutex
	resetters []Resetter
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a resetter. Nil registries and nil resetters are ignored so
// modules can register unconditionally.
func (r *Registry) Add(resetter Resetter) {
	if r == nil || resetter == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetters = append(r.resetters, resetter)
}

// ResetAll resets every registered store.
func (r *Registry) ResetAll() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, resetter := range r.resetters {
		resetter.Reset()
	}
}
