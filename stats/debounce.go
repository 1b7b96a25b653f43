package stats

import "time"

// Debouncer runs the most recently scheduled function once the trigger
// stream has been quiet for Delay. It is cooperative: nothing runs until
// the owner calls Poll, normally once per frame on the event thread, so the
// deferred work never races the grid.
type Debouncer struct {
	Delay time.Duration
	// Now returns the current time; tests replace it
	Now func() time.Time

	pending  func()
	deadline time.Time
}

// NewDebouncer creates a debouncer with the given quiet period
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{Delay: delay, Now: time.Now}
}

// Trigger cancels any pending work and schedules fn Delay from now
func (d *Debouncer) Trigger(fn func()) {
	d.pending = fn
	d.deadline = d.Now().Add(d.Delay)
}

// Cancel drops the pending work
func (d *Debouncer) Cancel() {
	d.pending = nil
}

// Pending reports whether work is scheduled
func (d *Debouncer) Pending() bool {
	return d.pending != nil
}

// Poll runs the pending work if its deadline has passed and reports
// whether it ran.
func (d *Debouncer) Poll() bool {
	if d.pending == nil || d.Now().Before(d.deadline) {
		return false
	}
	fn := d.pending
	d.pending = nil
	fn()
	return true
}
