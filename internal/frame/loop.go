// Package frame implements the "request next frame" primitive hosts pump
// once per display refresh.
//
// Semantics follow requestAnimationFrame: a callback requested while a pump
// is in progress runs on the next pump, not the current one, and cancelling
// a callback before it runs guarantees it never fires.
package frame

// ID identifies a pending frame request. The zero ID is never issued.
type ID uint64

// Callback receives the frame timestamp in milliseconds.
type Callback func(timestamp float64)

// Loop queues frame callbacks. It is not safe for concurrent use; hosts
// pump it from their own main loop.
type Loop struct {
	next    ID
	now     float64
	pending map[ID]Callback
	order   []ID
	inPump  map[ID]Callback
	frames  uint64
}

func NewLoop() *Loop {
	return &Loop{pending: make(map[ID]Callback)}
}

// Request schedules cb for the next pump.
func (l *Loop) Request(cb Callback) ID {
	l.next++
	id := l.next
	l.pending[id] = cb
	l.order = append(l.order, id)
	return id
}

// Cancel drops a pending request. It reports whether the request was still
// pending.
func (l *Loop) Cancel(id ID) bool {
	if _, ok := l.pending[id]; ok {
		delete(l.pending, id)
		return true
	}
	if _, ok := l.inPump[id]; ok {
		delete(l.inPump, id)
		return true
	}
	return false
}

// Pump runs every callback requested before this call, in request order,
// with the given timestamp. Timestamps never go backwards: an older value is
// replaced by the last one seen. Pump returns the number of callbacks run.
func (l *Loop) Pump(timestamp float64) int {
	if timestamp < l.now {
		timestamp = l.now
	}
	l.now = timestamp
	l.frames++

	batch, order := l.pending, l.order
	l.pending, l.order = make(map[ID]Callback), nil
	l.inPump = batch
	defer func() { l.inPump = nil }()

	ran := 0
	for _, id := range order {
		cb, ok := batch[id]
		if !ok {
			continue
		}
		delete(batch, id)
		cb(timestamp)
		ran++
	}
	return ran
}

// Advance pumps at Now()+ms.
func (l *Loop) Advance(ms float64) int {
	return l.Pump(l.now + ms)
}

// Now returns the timestamp of the latest pump, 0 before the first one.
func (l *Loop) Now() float64 { return l.now }

// Pending returns the number of requests waiting for the next pump.
func (l *Loop) Pending() int { return len(l.pending) }

// Frames returns how many pumps have run.
func (l *Loop) Frames() uint64 { return l.frames }
