package anim

import "time"

// Timing holds the durations and shape parameters for every animation kind.
type Timing struct {
	FlipDuration   time.Duration // Full shrink-and-grow of one tile
	FlipDelay      time.Duration // Stagger between neighbouring tiles in a row
	PopDuration    time.Duration // Tile bump after typing a letter
	ShakeDuration  time.Duration // Row shake after a rejected word
	ShakeIntensity float64       // Peak horizontal offset in cells
	ShakeFrequency float64       // Oscillations over the shake duration
}

// DefaultTiming returns the stock animation timing.
func DefaultTiming() Timing {
	return Timing{
		FlipDuration:   500 * time.Millisecond,
		FlipDelay:      250 * time.Millisecond,
		PopDuration:    100 * time.Millisecond,
		ShakeDuration:  400 * time.Millisecond,
		ShakeIntensity: 3,
		ShakeFrequency: 4,
	}
}

// BatchDuration returns how long a flip cascade over cols tiles lasts,
// measured from the moment it is scheduled.
func (t Timing) BatchDuration(cols int) time.Duration {
	if cols <= 0 {
		return 0
	}
	return t.FlipDuration + time.Duration(cols-1)*t.FlipDelay
}
