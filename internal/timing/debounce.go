package timing

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid repeated calls per key into one trailing-edge
// invocation after a quiet period. Each new Call for a key replaces the
// pending callback and restarts that key's timer.
type Debouncer struct {
	mu      sync.Mutex
	clock   Clock
	delay   time.Duration
	pending map[string]*pendingCall
}

type pendingCall struct {
	timer Timer
	fn    func()
}

func NewDebouncer(delay time.Duration, clock Clock) *Debouncer {
	if clock == nil {
		clock = RealClock()
	}
	return &Debouncer{
		clock:   clock,
		delay:   delay,
		pending: make(map[string]*pendingCall),
	}
}

// Call schedules fn to run after the quiet period, replacing any pending
// callback for the same key.
func (d *Debouncer) Call(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if prev, ok := d.pending[key]; ok {
		prev.timer.Stop()
	}
	call := &pendingCall{fn: fn}
	call.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.pending[key] != call {
			// superseded between fire and lock acquisition
			d.mu.Unlock()
			return
		}
		delete(d.pending, key)
		d.mu.Unlock()
		fn()
	})
	d.pending[key] = call
}

// Cancel drops a pending callback; it reports whether one was pending.
func (d *Debouncer) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	call, ok := d.pending[key]
	if !ok {
		return false
	}
	call.timer.Stop()
	delete(d.pending, key)
	return true
}

// Flush runs a pending callback immediately, cancelling its timer.
// It reports whether one was pending.
func (d *Debouncer) Flush(key string) bool {
	d.mu.Lock()
	call, ok := d.pending[key]
	if !ok {
		d.mu.Unlock()
		return false
	}
	call.timer.Stop()
	delete(d.pending, key)
	d.mu.Unlock()
	call.fn()
	return true
}

// Pending reports whether a callback is waiting for the key.
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}
