package lambda

// TraceEvent describes one pass that changed the term.
type TraceEvent struct {
	Step         int
	Contractions int
	Term         Term
}

type traceBuf struct {
	events []TraceEvent
	limit  int
	on     bool
}

func (b *traceBuf) reset() {
	b.events = b.events[:0]
}

// Events beyond capacity are dropped.
func (b *traceBuf) record(ev TraceEvent) {
	if !b.on || len(b.events) >= b.limit {
		return
	}
	b.events = append(b.events, ev)
}

// EnableTrace records up to capacity passes of each Normalize call.
func (r *Reducer) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	r.trace = traceBuf{events: make([]TraceEvent, 0, capacity), limit: capacity, on: true}
}

func (r *Reducer) DisableTrace() {
	r.trace.on = false
}

// TraceSnapshot returns a copy of the passes recorded by the last Normalize
// call, or nil when tracing is off.
func (r *Reducer) TraceSnapshot() []TraceEvent {
	if !r.trace.on {
		return nil
	}
	res := make([]TraceEvent, len(r.trace.events))
	copy(res, r.trace.events)
	return res
}
