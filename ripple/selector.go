package ripple

import "github.com/cespare/xxhash/v2"

// Selector memoizes one computed per key, for parameterized derived views
// (per-row selections, keyed projections). There is no weak-reference
// primitive to lean on, so lifetime is explicit: evict idle entries with
// Sweep, or tie the whole cache to an owner and call Dispose with it.
type Selector[T comparable] struct {
	rs       *ReactiveSystem
	fn       func(key string) (T, error)
	entries  map[uint64]*ReadonlySignal[T]
	disposed bool
}

func NewSelector[T comparable](rs *ReactiveSystem, fn func(key string) (T, error)) *Selector[T] {
	return &Selector[T]{
		rs:      rs,
		fn:      fn,
		entries: map[uint64]*ReadonlySignal[T]{},
	}
}

// For returns the computed for key, creating and caching it on first use.
// Keys are interned as xxhash sums.
func (s *Selector[T]) For(key string) (*ReadonlySignal[T], error) {
	if s.disposed {
		return nil, ErrDisposed
	}
	h := xxhash.Sum64String(key)
	if c, ok := s.entries[h]; ok {
		return c, nil
	}
	k := key
	c := Computed(s.rs, func(T) (T, error) {
		return s.fn(k)
	})
	s.entries[h] = c
	return c, nil
}

// Len is the number of cached entries.
func (s *Selector[T]) Len() int {
	return len(s.entries)
}

// Sweep evicts every cached computed that currently has no consumers,
// detaching it from its upstream edges, and returns how many were evicted.
// An evicted computed that someone still holds a reference to stays usable:
// it is left dirty and re-tracks on its next read.
func (s *Selector[T]) Sweep() int {
	evicted := 0
	for h, c := range s.entries {
		if len(c.consumers) > 0 {
			continue
		}
		s.evict(h, c)
		evicted++
	}
	return evicted
}

// Dispose evicts everything and makes further For calls fail with
// ErrDisposed. Idempotent.
func (s *Selector[T]) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for h, c := range s.entries {
		s.evict(h, c)
	}
}

func (s *Selector[T]) evict(h uint64, c *ReadonlySignal[T]) {
	s.rs.clearDeps(c)
	c.dirty = true
	s.rs.emit(EventDispose, c.nid, c.version)
	delete(s.entries, h)
}
