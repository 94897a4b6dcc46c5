// Package anim schedules and samples the short tile animations of the board:
// flips that reveal feedback, pops on typed letters and shakes on rejected rows.
//
// The scheduler never drives time itself. Callers sample it once per frame and
// call Sweep at the start of each frame to evict finished entries.
package anim

import (
	"math"
	"time"
)

// Kind identifies an animation type.
type Kind int

const (
	Flip Kind = iota
	Pop
	Shake
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Flip:
		return "flip"
	case Pop:
		return "pop"
	case Shake:
		return "shake"
	default:
		return "unknown"
	}
}

// RowWide is the column used by animations that apply to a whole row.
const RowWide = -1

// Key addresses one animation slot. At most one entry exists per key.
type Key struct {
	Kind Kind
	Row  int
	Col  int
}

// Entry is a scheduled animation.
type Entry struct {
	Key      Key
	Start    time.Time // Creation time plus delay
	Duration time.Duration
}

// Phase is where an entry is in its lifetime at a given instant.
type Phase int

const (
	Pending Phase = iota
	Running
	Finished
)

// progress returns elapsed/duration at now, and the matching phase.
func (e Entry) progress(now time.Time) (float64, Phase) {
	if now.Before(e.Start) {
		return 0, Pending
	}
	if e.Duration <= 0 {
		return 1, Finished
	}
	p := float64(now.Sub(e.Start)) / float64(e.Duration)
	if p >= 1 {
		return 1, Finished
	}
	return p, Running
}

// Scheduler owns all live animation entries.
type Scheduler struct {
	clock   Clock
	timing  Timing
	entries map[Key]Entry
}

// NewScheduler creates an empty scheduler. A nil clock uses SystemClock.
func NewScheduler(clock Clock, timing Timing) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{
		clock:   clock,
		timing:  timing,
		entries: make(map[Key]Entry),
	}
}

// Timing returns the timing the scheduler was built with.
func (s *Scheduler) Timing() Timing {
	return s.timing
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// Add schedules an animation that starts after delay.
// An existing entry under the same key is replaced.
func (s *Scheduler) Add(key Key, duration, delay time.Duration) Entry {
	e := Entry{
		Key:      key,
		Start:    s.clock.Now().Add(delay),
		Duration: duration,
	}
	s.entries[key] = e
	return e
}

// AddPop schedules a pop on a single tile.
func (s *Scheduler) AddPop(row, col int) {
	s.Add(Key{Kind: Pop, Row: row, Col: col}, s.timing.PopDuration, 0)
}

// AddShake schedules a shake of a whole row.
func (s *Scheduler) AddShake(row int) {
	s.Add(Key{Kind: Shake, Row: row, Col: RowWide}, s.timing.ShakeDuration, 0)
}

// FlipBatch schedules a left-to-right flip cascade over cols tiles of row
// and returns the time until the last flip ends.
func (s *Scheduler) FlipBatch(row, cols int) time.Duration {
	for col := 0; col < cols; col++ {
		delay := time.Duration(col) * s.timing.FlipDelay
		s.Add(Key{Kind: Flip, Row: row, Col: col}, s.timing.FlipDuration, delay)
	}
	return s.timing.BatchDuration(cols)
}

// Get returns the entry stored under key.
func (s *Scheduler) Get(key Key) (Entry, bool) {
	e, ok := s.entries[key]
	return e, ok
}

// Len returns the number of stored entries, finished ones included until swept.
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Sweep removes every finished entry.
func (s *Scheduler) Sweep() {
	now := s.clock.Now()
	for k, e := range s.entries {
		if _, phase := e.progress(now); phase == Finished {
			delete(s.entries, k)
		}
	}
}

// Clear drops all entries.
func (s *Scheduler) Clear() {
	clear(s.entries)
}

// Animating reports whether any flip or shake is pending or running.
// Pops are cosmetic and never block input.
func (s *Scheduler) Animating() bool {
	now := s.clock.Now()
	for k, e := range s.entries {
		if k.Kind == Pop {
			continue
		}
		if _, phase := e.progress(now); phase != Finished {
			return true
		}
	}
	return false
}

// sample looks up key and returns its progress and phase at the current time.
func (s *Scheduler) sample(key Key) (float64, Phase, bool) {
	e, ok := s.entries[key]
	if !ok {
		return 0, Finished, false
	}
	p, phase := e.progress(s.clock.Now())
	return p, phase, true
}

// FlipScale returns the vertical scale of a tile: it shrinks to zero over the
// first half of the flip and grows back over the second.
func (s *Scheduler) FlipScale(row, col int) float64 {
	p, phase, ok := s.sample(Key{Kind: Flip, Row: row, Col: col})
	if !ok || phase != Running {
		return 1
	}
	if p < 0.5 {
		return 1 - 2*p
	}
	return 2 * (p - 0.5)
}

// FlipRevealed reports whether a tile should show its feedback colour.
// Tiles still waiting for their flip stay hidden.
func (s *Scheduler) FlipRevealed(row, col int) bool {
	p, phase, ok := s.sample(Key{Kind: Flip, Row: row, Col: col})
	if !ok {
		return true
	}
	switch phase {
	case Pending:
		return false
	case Running:
		return p >= 0.5
	default:
		return true
	}
}

// PopScale returns the scale of a tile bump: 1.0 rising to 1.15 at the
// midpoint and back to 1.0.
func (s *Scheduler) PopScale(row, col int) float64 {
	const peak = 0.15
	p, phase, ok := s.sample(Key{Kind: Pop, Row: row, Col: col})
	if !ok || phase != Running {
		return 1
	}
	if p < 0.5 {
		return 1 + peak*(p/0.5)
	}
	return 1 + peak*((1-p)/0.5)
}

// ShakeOffset returns the horizontal displacement of a row, a damped sine.
func (s *Scheduler) ShakeOffset(row int) float64 {
	p, phase, ok := s.sample(Key{Kind: Shake, Row: row, Col: RowWide})
	if !ok || phase != Running {
		return 0
	}
	return s.timing.ShakeIntensity * math.Sin(p*s.timing.ShakeFrequency*2*math.Pi) * (1 - p)
}
