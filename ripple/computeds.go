package ripple

// ReadonlySignal is a lazily memoized derived value. It recomputes only when
// read while dirty; marking it dirty never runs the getter.
type ReadonlySignal[T comparable] struct {
	producerState
	trackerState
	rs       *ReactiveSystem
	value    T
	version  uint64
	dirty    bool
	failed   bool
	hasValue bool
	getter   func(oldValue T) (T, error)
}

// Computed creates a derived node. The getter receives the previously cached
// value (the zero value on the first run). An error from the getter reaches
// whoever triggered the read and leaves the node dirty, so every read retries
// until a run succeeds.
func Computed[T comparable](rs *ReactiveSystem, getter func(oldValue T) (T, error)) *ReadonlySignal[T] {
	c := &ReadonlySignal[T]{
		producerState: producerState{nid: rs.allocID()},
		trackerState:  newTrackerState(),
		rs:            rs,
		dirty:         true,
		getter:        getter,
	}
	rs.emit(EventNodeCreated, c.nid, 0)
	return c
}

// Value returns the cached value, recomputing first if a dependency changed
// since the last read. Reading a node that is currently evaluating, directly
// or through other nodes, returns ErrCycle. The edge to the reader is
// recorded even when the read fails, so a consumer keeps getting invalidated
// and retries once the chain recovers.
func (c *ReadonlySignal[T]) Value() (T, error) {
	v, err := c.pull()
	c.rs.track(c)
	if err != nil {
		return v, err
	}
	c.rs.emit(EventRead, c.nid, c.version)
	return v, nil
}

// Peek returns the value without registering an edge. It still recomputes if
// the node is dirty.
func (c *ReadonlySignal[T]) Peek() (T, error) {
	return c.pull()
}

// Version increments each time a recomputation produces a different value.
func (c *ReadonlySignal[T]) Version() uint64 {
	return c.version
}

func (c *ReadonlySignal[T]) pull() (T, error) {
	if c.rs.onStack(c) {
		var zero T
		return zero, ErrCycle
	}
	if c.dirty {
		if err := c.recompute(); err != nil {
			var zero T
			return zero, err
		}
	}
	return c.value, nil
}

// recompute runs the getter with this node on the evaluation stack, replacing
// the dependency set with exactly what the run reads. On error the old edges
// are already gone and dirty stays set, so the next read re-tracks from
// scratch.
func (c *ReadonlySignal[T]) recompute() error {
	rs := c.rs
	rs.clearDeps(c)
	rs.activeStack = append(rs.activeStack, c)
	rs.emit(EventRecomputeStart, c.nid, c.version)
	old := c.value
	next, err := c.getter(old)
	rs.activeStack = rs.activeStack[:len(rs.activeStack)-1]
	rs.emit(EventRecomputeEnd, c.nid, c.version)
	if err != nil {
		c.failed = true
		return err
	}
	changed := !c.hasValue || next != old
	c.value = next
	c.hasValue = true
	c.dirty = false
	c.failed = false
	if changed {
		c.version++
	}
	return nil
}

// invalidate marks the node dirty. A node that is already dirty stops the
// walk: its consumers were marked when it first went dirty. The exception is
// a node whose last recompute failed: its consumers saw the error, so they
// are notified again to retry.
func (c *ReadonlySignal[T]) invalidate(*ReactiveSystem) []subscriber {
	if c.dirty && !c.failed {
		return nil
	}
	c.dirty = true
	c.failed = false
	return c.consumers
}

// Subscribe invokes listener whenever a recomputation changes the node's
// value, with the same batching and dedup semantics as an effect. A failing
// recomputation reaches the system error sink, not the listener.
func (c *ReadonlySignal[T]) Subscribe(listener func(T)) func() {
	seen := false
	last := uint64(0)
	e := Effect(c.rs, func() (CleanupFunc, error) {
		v, err := c.Value()
		if err != nil {
			return nil, err
		}
		if seen && c.version == last {
			return nil, nil
		}
		last = c.version
		if !seen {
			seen = true
			return nil, nil
		}
		listener(v)
		return nil, nil
	})
	return func() {
		e.Dispose()
	}
}

func (c *ReadonlySignal[T]) get() (T, error) {
	return c.Value()
}
