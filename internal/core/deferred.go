package core

// Deferred is a one-shot task that runs once its delay has elapsed.
// Time only advances through Advance, so replays stay deterministic.
// Once scheduled it cannot be cancelled.
type Deferred struct {
	delay     float64
	elapsed   float64
	fn        func()
	scheduled bool
	fired     bool
}

// Schedule arms the task. Calls after the first are ignored.
func (d *Deferred) Schedule(delay float64, fn func()) {
	if d.scheduled {
		return
	}
	d.delay = delay
	d.fn = fn
	d.scheduled = true
}

// Advance moves the task clock forward by dt seconds and runs the task
// if its delay has been reached. Returns true on the call that ran it.
func (d *Deferred) Advance(dt float64) bool {
	if !d.scheduled || d.fired {
		return false
	}
	d.elapsed += dt
	if d.elapsed < d.delay {
		return false
	}
	d.fired = true
	if d.fn != nil {
		d.fn()
	}
	return true
}

// Scheduled reports whether the task has been armed.
func (d *Deferred) Scheduled() bool {
	return d.scheduled
}

// Fired reports whether the task has run.
func (d *Deferred) Fired() bool {
	return d.fired
}
