package launcher

import "time"

// DefaultTimeout is how long a session may sit without input.
const DefaultTimeout = 7 * time.Second

// Timer tracks the time since the last input event. A non-positive timeout
// disables expiry.
type Timer struct {
	timeout time.Duration
	now     func() time.Time
	last    time.Time
}

// NewTimer starts a timer at now(). A nil now uses time.Now.
func NewTimer(timeout time.Duration, now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{timeout: timeout, now: now, last: now()}
}

// Enabled reports whether the timer can expire.
func (t *Timer) Enabled() bool { return t.timeout > 0 }

// Touch records activity, pushing the deadline out.
func (t *Timer) Touch() { t.last = t.now() }

// Deadline returns the instant the session expires, or the zero time when
// the timer is disabled.
func (t *Timer) Deadline() time.Time {
	if !t.Enabled() {
		return time.Time{}
	}
	return t.last.Add(t.timeout)
}

// Remaining returns the time left before expiry, never negative.
// It is 0 when the timer is disabled.
func (t *Timer) Remaining() time.Duration {
	if !t.Enabled() {
		return 0
	}
	if d := t.Deadline().Sub(t.now()); d > 0 {
		return d
	}
	return 0
}

// Expired reports whether the deadline has passed.
func (t *Timer) Expired() bool {
	return t.Enabled() && !t.now().Before(t.Deadline())
}
