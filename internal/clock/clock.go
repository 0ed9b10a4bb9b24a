package clock

import "time"

// Clock provides monotonic time readings. Spawn timestamps and the grace and
// invincibility windows are measured against it.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock. time.Now carries a monotonic reading, so
// differences between two Now values are immune to wall-clock jumps.
type Real struct{}

// Now returns the current time.
func (Real) Now() time.Time { return time.Now() }

// Manual is a controllable clock for tests. It is not safe for concurrent use;
// the simulation is single-threaded.
type Manual struct {
	now time.Time
}

// NewManual returns a Manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time { return m.now }

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) { m.now = m.now.Add(d) }
