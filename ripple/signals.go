package ripple

// WriteableSignal is a versioned mutable cell. Writes are total: there is no
// error path, only the configured equality short-circuit.
type WriteableSignal[T comparable] struct {
	producerState
	rs      *ReactiveSystem
	value   T
	version uint64
	equals  func(old, next T) bool
}

// SignalOption configures a signal at creation.
type SignalOption[T comparable] func(*WriteableSignal[T])

// SignalWithEquals replaces the default == comparison used to short-circuit
// writes. Equality is always explicit per signal, never inferred by helpers.
func SignalWithEquals[T comparable](eq func(old, next T) bool) SignalOption[T] {
	return func(s *WriteableSignal[T]) {
		s.equals = eq
	}
}

func Signal[T comparable](rs *ReactiveSystem, initialValue T, opts ...SignalOption[T]) *WriteableSignal[T] {
	s := &WriteableSignal[T]{
		producerState: producerState{nid: rs.allocID()},
		rs:            rs,
		value:         initialValue,
	}
	for _, opt := range opts {
		opt(s)
	}
	rs.emit(EventNodeCreated, s.nid, 0)
	return s
}

// Value returns the current value. Inside a computed or effect run it also
// records an edge from this signal to the evaluating node.
func (s *WriteableSignal[T]) Value() T {
	s.rs.track(s)
	s.rs.emit(EventRead, s.nid, s.version)
	return s.value
}

// Peek returns the current value without registering an edge.
func (s *WriteableSignal[T]) Peek() T {
	return s.value
}

// Version returns the write counter. It increments on every effective write.
func (s *WriteableSignal[T]) Version() uint64 {
	return s.version
}

// SetValue writes the signal. A value equal to the current one under the
// configured equality is a no-op: no version bump, no consumer goes dirty.
// Outside a batch the queued effects run before SetValue returns.
func (s *WriteableSignal[T]) SetValue(v T) {
	if s.sameValue(v) {
		return
	}
	s.value = v
	s.version++
	s.rs.emit(EventWrite, s.nid, s.version)
	if len(s.consumers) > 0 {
		s.rs.propagate(s.consumers)
	}
	if s.rs.batchDepth == 0 {
		s.rs.flush()
	}
}

// Update writes the value produced from the current one.
func (s *WriteableSignal[T]) Update(fn func(old T) T) {
	s.SetValue(fn(s.value))
}

func (s *WriteableSignal[T]) sameValue(v T) bool {
	if s.equals != nil {
		return s.equals(s.value, v)
	}
	return s.value == v
}

// Subscribe invokes listener whenever the signal's value changes, with the
// same batching and dedup semantics as an effect. The returned function
// unsubscribes; it is safe to call more than once.
func (s *WriteableSignal[T]) Subscribe(listener func(T)) func() {
	seen := false
	last := uint64(0)
	e := Effect(s.rs, func() (CleanupFunc, error) {
		v := s.Value()
		if seen && s.version == last {
			return nil, nil
		}
		last = s.version
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

func (s *WriteableSignal[T]) get() (T, error) {
	return s.Value(), nil
}
