package catalog

import (
	"sync"
	"time"
)

// SearchQuietPeriod bounds the request rate while a search term is being
// typed: a fetch fires only after this much input silence.
const SearchQuietPeriod = 500 * time.Millisecond

// Debouncer runs the most recent task after a quiet period, cancelling any
// task queued before it. It replaces the ad-hoc timer closure the original
// search box used with an owned, stoppable component.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period, superseding any pending task.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending task, if any. Called when the owning component
// goes away.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
