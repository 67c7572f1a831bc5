package progress

import (
	"sync"
	"time"
)

// Debouncer runs fn once after Trigger has not been called for delay.
// Each Trigger restarts the wait, so a burst of keystrokes produces a single
// call. fn runs on its own goroutine and should read current state rather
// than anything captured when Trigger was called.
type Debouncer struct {
	delay time.Duration
	fn    func()

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// NewDebouncer returns a debouncer that calls fn after delay of quiet.
// A zero delay still defers fn to a separate goroutine.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger (re)starts the quiet period. It is a no-op after Stop.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Flush cancels a pending call and runs fn immediately on the caller's
// goroutine. It reports whether a call was pending.
func (d *Debouncer) Flush() bool {
	if !d.Cancel() {
		return false
	}
	d.fn()
	return true
}

// Cancel drops a pending call without running it and reports whether one
// was pending. Later triggers still work.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	pending := d.timer != nil && d.timer.Stop()
	if pending {
		d.gen++
	}
	d.timer = nil
	return pending && !d.stopped
}

// Stop cancels any pending call and disables future triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.fn()
}
