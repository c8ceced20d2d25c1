package system

// Timer is a countdown driven by simulation time.
// A repeating timer rearms itself each time it fires.
type Timer struct {
	Interval float64
	Repeat   bool

	elapsed float64
	running bool
}

// NewTimer creates a stopped timer
func NewTimer(interval float64, repeat bool) *Timer {
	return &Timer{Interval: interval, Repeat: repeat}
}

// Start (re)arms the timer from zero
func (t *Timer) Start() {
	t.elapsed = 0
	t.running = true
}

// Stop disarms the timer; Advance becomes a no-op
func (t *Timer) Stop() {
	t.running = false
	t.elapsed = 0
}

// Running reports whether the timer is armed
func (t *Timer) Running() bool {
	return t.running
}

// Remaining returns the time left until the next fire
func (t *Timer) Remaining() float64 {
	if !t.running {
		return 0
	}
	return t.Interval - t.elapsed
}

// Advance moves the timer forward by dt and returns how many times it fired.
// A one-shot timer fires at most once and then stops.
func (t *Timer) Advance(dt float64) int {
	if !t.running || dt <= 0 {
		return 0
	}
	if t.Interval <= 0 {
		if !t.Repeat {
			t.running = false
		}
		return 1
	}

	t.elapsed += dt
	fired := 0
	for t.elapsed >= t.Interval {
		t.elapsed -= t.Interval
		fired++
		if !t.Repeat {
			t.Stop()
			break
		}
	}
	return fired
}
