package anim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler() (*Scheduler, *manualClock) {
	clock := newManualClock()
	return NewScheduler(clock, DefaultTiming()), clock
}

func TestFlipScaleCurve(t *testing.T) {
	s, clock := newTestScheduler()
	s.Add(Key{Kind: Flip, Row: 0, Col: 0}, 500*time.Millisecond, 0)

	tests := []struct {
		at       time.Duration
		scale    float64
		revealed bool
	}{
		{0, 1.0, false},
		{125 * time.Millisecond, 0.5, false},
		{249 * time.Millisecond, 0.004, false},
		{250 * time.Millisecond, 0.0, true},
		{375 * time.Millisecond, 0.5, true},
		{500 * time.Millisecond, 1.0, true},
	}

	start := clock.Now()
	for _, tt := range tests {
		clock.now = start.Add(tt.at)
		assert.InDelta(t, tt.scale, s.FlipScale(0, 0), 1e-9, "FlipScale at %v", tt.at)
		assert.Equal(t, tt.revealed, s.FlipRevealed(0, 0), "FlipRevealed at %v", tt.at)
	}
}

func TestFlipPendingTileStaysHidden(t *testing.T) {
	s, clock := newTestScheduler()
	s.FlipBatch(2, 5)

	clock.Advance(100 * time.Millisecond)

	// Column 3 starts at 750ms.
	assert.Equal(t, 1.0, s.FlipScale(2, 3))
	assert.False(t, s.FlipRevealed(2, 3))
	assert.True(t, s.Animating())
}

func TestSampleWithoutEntry(t *testing.T) {
	s, _ := newTestScheduler()

	assert.Equal(t, 1.0, s.FlipScale(0, 0))
	assert.True(t, s.FlipRevealed(0, 0))
	assert.Equal(t, 1.0, s.PopScale(0, 0))
	assert.Equal(t, 0.0, s.ShakeOffset(0))
	assert.False(t, s.Animating())
}

func TestPopScale(t *testing.T) {
	s, clock := newTestScheduler()
	s.AddPop(0, 1)

	assert.InDelta(t, 1.0, s.PopScale(0, 1), 1e-9)
	clock.Advance(25 * time.Millisecond)
	assert.InDelta(t, 1.075, s.PopScale(0, 1), 1e-9)
	clock.Advance(25 * time.Millisecond)
	assert.InDelta(t, 1.15, s.PopScale(0, 1), 1e-9)
	clock.Advance(25 * time.Millisecond)
	assert.InDelta(t, 1.075, s.PopScale(0, 1), 1e-9)
	clock.Advance(25 * time.Millisecond)
	assert.InDelta(t, 1.0, s.PopScale(0, 1), 1e-9)
}

func TestPopDoesNotCountAsAnimating(t *testing.T) {
	s, clock := newTestScheduler()
	s.AddPop(0, 0)
	clock.Advance(10 * time.Millisecond)

	assert.False(t, s.Animating())
	assert.Equal(t, 1, s.Len())
}

func TestFinishedRowAnimationsWithRunningPop(t *testing.T) {
	s, clock := newTestScheduler()
	s.AddShake(0)
	s.FlipBatch(1, 1)

	clock.Advance(450 * time.Millisecond)
	s.AddPop(2, 0)
	require.True(t, s.Animating(), "flip still running")

	// Shake ended at 400ms and the flip at 500ms; the pop runs until 550ms.
	clock.Advance(60 * time.Millisecond)
	assert.False(t, s.Animating(), "before sweep")
	s.Sweep()
	assert.False(t, s.Animating(), "after sweep")
	assert.Equal(t, 1, s.Len())
	assert.Greater(t, s.PopScale(2, 0), 1.0)
}

func TestProgressIsMonotonic(t *testing.T) {
	s, clock := newTestScheduler()
	e := s.Add(Key{Kind: Flip, Row: 0, Col: 0}, 500*time.Millisecond, 100*time.Millisecond)
	start := clock.Now()

	prev := -1.0
	revealed := false
	for at := time.Duration(0); at <= 800*time.Millisecond; at += 10 * time.Millisecond {
		clock.now = start.Add(at)
		p, phase := e.progress(clock.now)
		if p < prev {
			t.Fatalf("progress went from %v to %v at %v", prev, p, at)
		}
		prev = p

		if at >= 600*time.Millisecond {
			assert.Equal(t, 1.0, p, "saturated at %v", at)
			assert.Equal(t, Finished, phase, "phase at %v", at)
		}

		r := s.FlipRevealed(0, 0)
		if revealed && !r {
			t.Fatalf("FlipRevealed went back to false at %v", at)
		}
		revealed = revealed || r
	}
	assert.True(t, revealed)
}

func TestShakeOffset(t *testing.T) {
	s, clock := newTestScheduler()
	s.AddShake(1)

	// p = 1/16: sin(pi/2) = 1, damped by 15/16.
	clock.Advance(25 * time.Millisecond)
	assert.InDelta(t, 3*(15.0/16.0), s.ShakeOffset(1), 1e-9)
	assert.Equal(t, 0.0, s.ShakeOffset(0), "other rows are not shaken")

	// p = 0.5 lands on a zero crossing.
	clock.Advance(175 * time.Millisecond)
	assert.InDelta(t, 0, s.ShakeOffset(1), 1e-9)

	clock.Advance(200 * time.Millisecond)
	assert.Equal(t, 0.0, s.ShakeOffset(1))
}

func TestShakeOffsetIsBounded(t *testing.T) {
	s, clock := newTestScheduler()
	s.AddShake(0)

	for i := 0; i <= 40; i++ {
		off := s.ShakeOffset(0)
		if math.Abs(off) > 3 {
			t.Fatalf("ShakeOffset() = %v, exceeds intensity", off)
		}
		clock.Advance(10 * time.Millisecond)
	}
}

func TestFlipBatchDuration(t *testing.T) {
	s, clock := newTestScheduler()
	d := s.FlipBatch(0, 5)

	assert.Equal(t, 1500*time.Millisecond, d)
	require.Equal(t, 5, s.Len())

	for col := 0; col < 5; col++ {
		e, ok := s.Get(Key{Kind: Flip, Row: 0, Col: col})
		require.True(t, ok)
		assert.Equal(t, clock.Now().Add(time.Duration(col)*250*time.Millisecond), e.Start)
	}

	clock.Advance(d - time.Millisecond)
	assert.True(t, s.Animating())
	clock.Advance(time.Millisecond)
	assert.False(t, s.Animating())
}

func TestBatchDurationZeroCols(t *testing.T) {
	assert.Equal(t, time.Duration(0), DefaultTiming().BatchDuration(0))
}

func TestAddReplacesExistingKey(t *testing.T) {
	s, clock := newTestScheduler()
	s.AddPop(0, 0)
	clock.Advance(50 * time.Millisecond)
	s.AddPop(0, 0)

	assert.Equal(t, 1, s.Len())
	e, _ := s.Get(Key{Kind: Pop, Row: 0, Col: 0})
	assert.Equal(t, clock.Now(), e.Start, "re-adding restarts the entry")
}

func TestSweepEvictsFinishedOnly(t *testing.T) {
	s, clock := newTestScheduler()
	s.AddPop(0, 0)
	s.AddShake(0)

	clock.Advance(150 * time.Millisecond)
	s.Sweep()

	_, popOK := s.Get(Key{Kind: Pop, Row: 0, Col: 0})
	_, shakeOK := s.Get(Key{Kind: Shake, Row: 0, Col: RowWide})
	assert.False(t, popOK, "finished pop should be swept")
	assert.True(t, shakeOK, "running shake should survive")

	clock.Advance(time.Second)
	s.Sweep()
	assert.Equal(t, 0, s.Len())
}

func TestClear(t *testing.T) {
	s, _ := newTestScheduler()
	s.FlipBatch(0, 5)
	s.AddShake(1)
	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Animating())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "flip", Flip.String())
	assert.Equal(t, "pop", Pop.String())
	assert.Equal(t, "shake", Shake.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
