package ripple

// OnErrorFunc receives errors raised by effect bodies and effect cleanups
// during a flush. The system never recovers or logs on behalf of the caller;
// a nil sink turns the first such error into a panic.
type OnErrorFunc func(from *EffectRunner, err error)

// ReactiveSystem owns one dependency graph: the stack of currently evaluating
// nodes, the batch depth, and the queue of effects waiting to rerun. All
// operations are synchronous and assume a single mutator at a time.
type ReactiveSystem struct {
	nextID      NodeID
	activeStack []subscriber
	pauseStack  [][]subscriber
	batchDepth  int
	queued      []*EffectRunner
	activeScope *Scope
	onError     OnErrorFunc
	probe       Probe
}

// SystemOption configures a ReactiveSystem at creation.
type SystemOption func(*ReactiveSystem)

// WithProbe attaches an instrumentation probe. See Probe for the contract.
func WithProbe(p Probe) SystemOption {
	return func(rs *ReactiveSystem) {
		rs.probe = p
	}
}

func CreateReactiveSystem(onError OnErrorFunc, opts ...SystemOption) *ReactiveSystem {
	rs := &ReactiveSystem{onError: onError}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

func (rs *ReactiveSystem) allocID() NodeID {
	rs.nextID++
	return rs.nextID
}

// StartBatch opens a batch scope. Writes made until the matching EndBatch
// queue effect reruns instead of flushing them immediately.
func (rs *ReactiveSystem) StartBatch() {
	rs.batchDepth++
}

// EndBatch closes a batch scope and, when the outermost scope ends, runs every
// queued effect once in first-scheduled order.
func (rs *ReactiveSystem) EndBatch() {
	rs.batchDepth--
	if rs.batchDepth == 0 {
		rs.flush()
	}
}

// Batch runs cb inside a batch scope. Nested calls flatten into the outermost
// batch.
func (rs *ReactiveSystem) Batch(cb func()) {
	rs.StartBatch()
	defer rs.EndBatch()
	cb()
}

// PauseTracking stops dependency registration until ResumeTracking. Reads in
// between do not create edges.
func (rs *ReactiveSystem) PauseTracking() {
	rs.pauseStack = append(rs.pauseStack, rs.activeStack)
	rs.activeStack = nil
}

func (rs *ReactiveSystem) ResumeTracking() {
	lastIdx := len(rs.pauseStack) - 1
	rs.activeStack = rs.pauseStack[lastIdx]
	rs.pauseStack = rs.pauseStack[:lastIdx]
}

// Untrack runs fn with dependency tracking paused.
func (rs *ReactiveSystem) Untrack(fn func()) {
	rs.PauseTracking()
	defer rs.ResumeTracking()
	fn()
}

// activeSub is the node currently evaluating, nil at rest.
func (rs *ReactiveSystem) activeSub() subscriber {
	if len(rs.activeStack) == 0 {
		return nil
	}
	return rs.activeStack[len(rs.activeStack)-1]
}

// onStack reports whether sub is somewhere in the current evaluation stack,
// including frames parked by PauseTracking. Used to turn a self-read into
// ErrCycle instead of unbounded recursion.
func (rs *ReactiveSystem) onStack(sub subscriber) bool {
	for _, s := range rs.activeStack {
		if s == sub {
			return true
		}
	}
	for _, frame := range rs.pauseStack {
		for _, s := range frame {
			if s == sub {
				return true
			}
		}
	}
	return false
}

// track records an edge from dep to the currently evaluating node, if any.
func (rs *ReactiveSystem) track(dep dependency) {
	sub := rs.activeSub()
	if sub == nil {
		return
	}
	deps := sub.depSet()
	if deps.Contains(dep) {
		return
	}
	deps.Add(dep)
	dep.addConsumer(sub)
}

// clearDeps removes every edge the subscriber recorded on its last run. The
// next run re-registers exactly what it actually reads.
func (rs *ReactiveSystem) clearDeps(sub subscriber) {
	deps := sub.depSet()
	for dep := range deps.Iter() {
		dep.removeConsumer(sub)
	}
	deps.Clear()
}

// propagate walks breadth-first outward from a changed producer's consumers.
// Already-dirty computeds stop their branch, which keeps diamond-shaped graphs
// at one visit per node instead of one per path. Effects are queued, never run
// mid-walk.
func (rs *ReactiveSystem) propagate(consumers []subscriber) {
	queue := make([]subscriber, len(consumers))
	copy(queue, consumers)
	for i := 0; i < len(queue); i++ {
		queue = append(queue, queue[i].invalidate(rs)...)
	}
}

// scheduleEffect queues e for the next flush unless it is already queued.
func (rs *ReactiveSystem) scheduleEffect(e *EffectRunner) {
	if e.pending || e.disposed {
		return
	}
	e.pending = true
	rs.queued = append(rs.queued, e)
}

// flush runs every queued effect once, in the order first scheduled. An effect
// disposed while queued is dropped. One effect failing never stops the rest.
func (rs *ReactiveSystem) flush() {
	for len(rs.queued) > 0 {
		e := rs.queued[0]
		rs.queued = rs.queued[1:]
		e.pending = false
		if e.disposed {
			continue
		}
		rs.runEffect(e)
	}
}

func (rs *ReactiveSystem) fail(from *EffectRunner, err error) {
	if rs.onError == nil {
		panic(err)
	}
	rs.onError(from, err)
}
