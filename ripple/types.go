package ripple

import mapset "github.com/deckarep/golang-set/v2"

// NodeID is a stable identifier for a node in the dependency graph. IDs are
// assigned sequentially per ReactiveSystem and are never reused.
type NodeID uint64

// dependency is a node whose value other nodes can read: a writeable signal
// or a computed.
type dependency interface {
	nodeID() NodeID
	addConsumer(subscriber)
	removeConsumer(subscriber)
}

// subscriber is a node that tracks what it reads: a computed or an effect.
type subscriber interface {
	nodeID() NodeID
	depSet() mapset.Set[dependency]
	// invalidate flips the node stale after an upstream change. The returned
	// slice is the set of consumers the propagation walk should descend into;
	// nil stops the walk at this node.
	invalidate(rs *ReactiveSystem) []subscriber
}

// producerState carries the consumer side of a node's edges. Consumers are
// kept in registration order so the effect queue is deterministic.
type producerState struct {
	nid       NodeID
	consumers []subscriber
}

func (p *producerState) nodeID() NodeID { return p.nid }

// ID reports the node's graph identifier, matching Event.Node in probe events.
func (p *producerState) ID() NodeID { return p.nid }

func (p *producerState) addConsumer(sub subscriber) {
	p.consumers = append(p.consumers, sub)
}

func (p *producerState) removeConsumer(sub subscriber) {
	kept := p.consumers[:0]
	for _, c := range p.consumers {
		if c != sub {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(p.consumers); i++ {
		p.consumers[i] = nil
	}
	p.consumers = kept
}

// trackerState carries the dependency side of a node's edges. The set is
// replaced wholesale after every run, never merged.
type trackerState struct {
	deps mapset.Set[dependency]
}

func newTrackerState() trackerState {
	return trackerState{deps: mapset.NewThreadUnsafeSet[dependency]()}
}

func (t *trackerState) depSet() mapset.Set[dependency] { return t.deps }

// Source is a readable node usable as an input to the generated tuple
// combinators. Only signals and computeds from this package implement it.
type Source[T comparable] interface {
	get() (T, error)
}
