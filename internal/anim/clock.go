package anim

import "time"

// Clock supplies the current time to the scheduler.
// Tests substitute a manual clock to step through animations deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so elapsed times are immune to wall-clock adjustments.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
