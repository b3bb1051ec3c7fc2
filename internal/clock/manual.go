package clock

import "time"

type pending struct {
	handle Handle
	due    time.Duration
	fn     func()
}

// Manual is a virtual clock. Time only moves when Advance is called, and due
// callbacks run synchronously on the caller's goroutine in due order (ties in
// scheduling order). It is meant for tests and offline rendering.
type Manual struct {
	now     time.Duration
	next    Handle
	pending []pending
}

// NewManual returns a virtual clock positioned at zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the virtual time elapsed since the clock was created.
func (m *Manual) Now() time.Duration {
	return m.now
}

// After schedules fn to run once the clock has advanced by d.
func (m *Manual) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	m.next++
	m.pending = append(m.pending, pending{handle: m.next, due: m.now + d, fn: fn})
	return m.next
}

// Cancel drops a pending callback.
func (m *Manual) Cancel(h Handle) {
	for i, p := range m.pending {
		if p.handle == h {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

// Pending reports how many callbacks are waiting to fire.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Advance moves the clock forward by d, running every callback that becomes due,
// including callbacks scheduled by callbacks within the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		i, ok := m.earliest()
		if !ok || m.pending[i].due > target {
			break
		}
		p := m.pending[i]
		m.pending = append(m.pending[:i], m.pending[i+1:]...)
		m.now = p.due
		p.fn()
	}
	m.now = target
}

// Step advances to the next deadline and runs the callbacks due at it.
// It returns false when nothing is scheduled.
func (m *Manual) Step() bool {
	i, ok := m.earliest()
	if !ok {
		return false
	}
	m.Advance(m.pending[i].due - m.now)
	return true
}

func (m *Manual) earliest() (int, bool) {
	if len(m.pending) == 0 {
		return 0, false
	}
	best := 0
	for i, p := range m.pending[1:] {
		if p.due < m.pending[best].due {
			best = i + 1
		}
	}
	return best, true
}
