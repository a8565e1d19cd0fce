package ripple

// CleanupFunc undoes an effect run's side effect. It runs before the next run
// of the same effect and on disposal. A cleanup error goes to the system error
// sink and never stops other queued effects.
type CleanupFunc func() error

// EffectFunc is an effect body. The returned cleanup may be nil.
type EffectFunc func() (CleanupFunc, error)

// EffectRunner is an eagerly scheduled side-effecting observer. It is the only
// node kind that executes during a flush; computeds stay lazy.
type EffectRunner struct {
	trackerState
	nid      NodeID
	rs       *ReactiveSystem
	fn       EffectFunc
	cleanup  CleanupFunc
	pending  bool
	disposed bool
}

// Effect creates an effect and runs it once synchronously to seed its
// dependency set. It reruns at most once per batch whenever a dependency is
// invalidated, until disposed.
func Effect(rs *ReactiveSystem, fn EffectFunc) *EffectRunner {
	e := &EffectRunner{
		trackerState: newTrackerState(),
		nid:          rs.allocID(),
		rs:           rs,
		fn:           fn,
	}
	rs.emit(EventNodeCreated, e.nid, 0)
	if rs.activeScope != nil {
		rs.activeScope.adopt(e)
	}
	rs.runEffect(e)
	return e
}

func (e *EffectRunner) nodeID() NodeID { return e.nid }

// ID reports the node's graph identifier, matching Event.Node in probe events.
func (e *EffectRunner) ID() NodeID { return e.nid }

// invalidate queues the effect for the current flush or batch. It never runs
// the body mid-walk and never descends further: effects have no consumers.
func (e *EffectRunner) invalidate(rs *ReactiveSystem) []subscriber {
	rs.scheduleEffect(e)
	return nil
}

// Disposed reports whether Dispose has run.
func (e *EffectRunner) Disposed() bool {
	return e.disposed
}

// Dispose runs the final cleanup, removes every dependency edge, and drops any
// pending rerun. It is synchronous and idempotent.
func (e *EffectRunner) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.runCleanup()
	e.rs.clearDeps(e)
	e.rs.emit(EventDispose, e.nid, 0)
}

func (e *EffectRunner) runCleanup() {
	if e.cleanup == nil {
		return
	}
	cleanup := e.cleanup
	e.cleanup = nil
	if err := cleanup(); err != nil {
		e.rs.fail(e, err)
	}
}

// runEffect executes one effect run: previous cleanup first, then the body
// with fresh dependency tracking. Body errors go to the error sink; the edges
// recorded before the failure stay live so the effect retries on the next
// invalidation.
func (rs *ReactiveSystem) runEffect(e *EffectRunner) {
	e.runCleanup()
	rs.clearDeps(e)
	rs.activeStack = append(rs.activeStack, e)
	rs.emit(EventRecomputeStart, e.nid, 0)
	cleanup, err := e.fn()
	rs.activeStack = rs.activeStack[:len(rs.activeStack)-1]
	rs.emit(EventRecomputeEnd, e.nid, 0)
	e.cleanup = cleanup
	if err != nil {
		rs.fail(e, err)
	}
}

// Scope collects the effects and child scopes created while it is active so
// they can be disposed as a unit.
type Scope struct {
	rs       *ReactiveSystem
	effects  []*EffectRunner
	scopes   []*Scope
	disposed bool
}

// EffectScope runs scopedFn with a fresh scope active; effects created inside
// attach to it. The scopedFn error is returned as-is alongside the scope.
func EffectScope(rs *ReactiveSystem, scopedFn func() error) (*Scope, error) {
	s := &Scope{rs: rs}
	if rs.activeScope != nil {
		rs.activeScope.scopes = append(rs.activeScope.scopes, s)
	}
	err := s.Run(scopedFn)
	return s, err
}

// Run executes fn with this scope active, adopting any effects it creates.
// Running a disposed scope returns ErrDisposed.
func (s *Scope) Run(fn func() error) error {
	if s.disposed {
		return ErrDisposed
	}
	prev := s.rs.activeScope
	s.rs.activeScope = s
	defer func() {
		s.rs.activeScope = prev
	}()
	return fn()
}

func (s *Scope) adopt(e *EffectRunner) {
	s.effects = append(s.effects, e)
}

// Dispose disposes every adopted effect and child scope. Idempotent.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for _, child := range s.scopes {
		child.Dispose()
	}
	for _, e := range s.effects {
		e.Dispose()
	}
}
