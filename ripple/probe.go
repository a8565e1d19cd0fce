package ripple

import "time"

// EventType identifies a node lifecycle event.
type EventType uint8

const (
	EventNodeCreated EventType = iota
	EventRead
	EventWrite
	EventRecomputeStart
	EventRecomputeEnd
	EventDispose
)

func (t EventType) String() string {
	switch t {
	case EventNodeCreated:
		return "NODE_CREATED"
	case EventRead:
		return "READ"
	case EventWrite:
		return "WRITE"
	case EventRecomputeStart:
		return "RECOMPUTE_START"
	case EventRecomputeEnd:
		return "RECOMPUTE_END"
	case EventDispose:
		return "DISPOSE"
	default:
		return "UNKNOWN"
	}
}

// Event is one instrumentation record. Version carries the node's version
// counter at emission time; it is zero for event types that have no version.
type Event struct {
	Type    EventType
	Node    NodeID
	Version uint64
	At      time.Time
}

// Probe receives every lifecycle event of a ReactiveSystem, in order. The
// channel is append-only: a probe must return quickly, must not block, and
// must not read or write graph nodes, since it is called in the middle of
// propagation.
type Probe func(Event)

func (rs *ReactiveSystem) emit(typ EventType, id NodeID, version uint64) {
	if rs.probe == nil {
		return
	}
	rs.probe(Event{Type: typ, Node: id, Version: version, At: time.Now()})
}

// Recorder is a bounded in-memory event sink, the default consumer for tests
// and the inspect tool. When full it drops the oldest events.
type Recorder struct {
	max     int
	events  []Event
	head    int
	dropped int
}

const defaultRecorderSize = 1024

func NewRecorder(max int) *Recorder {
	if max <= 0 {
		max = defaultRecorderSize
	}
	return &Recorder{max: max}
}

// Probe returns the sink function to pass to WithProbe.
func (r *Recorder) Probe() Probe {
	return r.record
}

func (r *Recorder) record(ev Event) {
	if len(r.events) < r.max {
		r.events = append(r.events, ev)
		return
	}
	r.events[r.head] = ev
	r.head = (r.head + 1) % r.max
	r.dropped++
}

// Events returns the recorded events, oldest first.
func (r *Recorder) Events() []Event {
	out := make([]Event, 0, len(r.events))
	out = append(out, r.events[r.head:]...)
	out = append(out, r.events[:r.head]...)
	return out
}

// Dropped is the number of events lost to the ring bound.
func (r *Recorder) Dropped() int {
	return r.dropped
}

// CountOf counts recorded events of the given type for one node.
func (r *Recorder) CountOf(typ EventType, node NodeID) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == typ && ev.Node == node {
			n++
		}
	}
	return n
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.events = r.events[:0]
	r.head = 0
	r.dropped = 0
}
