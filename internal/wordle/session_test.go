package wordle

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recordCall struct {
	word   string
	solved bool
	rows   int
}

type fakeRecorder struct {
	calls []recordCall
	err   error
}

func (r *fakeRecorder) RecordResult(word string, solved bool, rows int) error {
	r.calls = append(r.calls, recordCall{word, solved, rows})
	return r.err
}

const batch = 1500 * time.Millisecond // five tiles at default timing

func newPuzzle(t *testing.T, secret string, accepted ...string) (*Session, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	opts := Options{Mode: Puzzle, Clock: clock}
	if len(accepted) > 0 {
		set := map[string]bool{}
		for _, w := range accepted {
			set[w] = true
		}
		opts.Accept = func(w string) bool { return set[w] }
	}
	s, err := NewSession(secret, opts)
	require.NoError(t, err)
	return s, clock
}

func typeWord(s *Session, word string) {
	for _, r := range word {
		s.AppendChar(r)
	}
}

// commit types and submits word, then runs frames until the reveal finishes.
func commit(t *testing.T, s *Session, clock *fakeClock, word string) {
	t.Helper()
	typeWord(s, word)
	res, err := s.Submit()
	require.NoError(t, err)
	require.Equal(t, SubmitAccepted, res)
	clock.Advance(batch)
	require.True(t, s.Update())
}

func TestNewSessionDefaults(t *testing.T) {
	s, _ := newPuzzle(t, "crane")
	assert.Equal(t, Entering, s.State())
	assert.Equal(t, DefaultPuzzleRows, s.MaxRows())
	assert.Equal(t, 5, s.WordLength())
	assert.Equal(t, "", s.Secret(), "secret is hidden while playing")

	v, err := NewSession("x-ray", Options{Mode: Vocabulary})
	require.NoError(t, err)
	assert.Equal(t, DefaultVocabularyRows, v.MaxRows())

	_, err = NewSession("  ", Options{})
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestAppendCharAndBackspace(t *testing.T) {
	s, _ := newPuzzle(t, "CRANE")

	assert.True(t, s.AppendChar('c'))
	assert.True(t, s.AppendChar('R'))
	assert.False(t, s.AppendChar('1'), "digits are not letters")
	assert.False(t, s.AppendChar(' '), "puzzle mode takes letters only")
	assert.Equal(t, "CR", s.Buffer())
	assert.False(t, s.InputLocked(), "pops do not lock input")

	assert.True(t, s.Backspace())
	assert.Equal(t, "C", s.Buffer())
	assert.True(t, s.Backspace())
	assert.False(t, s.Backspace(), "empty buffer")

	typeWord(s, "abcdefg")
	assert.Equal(t, "ABCDE", s.Buffer(), "buffer stops at word length")
}

func TestAppendCharSchedulesPop(t *testing.T) {
	s, clock := newPuzzle(t, "CRANE")
	s.AppendChar('a')

	clock.Advance(50 * time.Millisecond)
	assert.InDelta(t, 1.15, s.PopScale(0, 0), 1e-9)
	assert.Equal(t, 1.0, s.PopScale(0, 1))
}

func TestVocabularyAcceptsSpaceAndHyphen(t *testing.T) {
	s, err := NewSession("ice cream-y", Options{Mode: Vocabulary})
	require.NoError(t, err)

	typeWord(s, "ice cream-y")
	assert.Equal(t, "ICE CREAM-Y", s.Buffer())
}

func TestSubmitIncompleteIsIgnored(t *testing.T) {
	s, _ := newPuzzle(t, "CRANE")
	typeWord(s, "CRA")

	res, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, SubmitIgnored, res)
	assert.Equal(t, Entering, s.State())
	assert.Equal(t, "CRA", s.Buffer())
}

func TestSubmitRejectedShakesRow(t *testing.T) {
	s, clock := newPuzzle(t, "CRANE", "CRANE", "SLATE")
	typeWord(s, "QQQQQ")

	res, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, SubmitRejected, res)
	assert.Equal(t, Entering, s.State())
	assert.Equal(t, "QQQQQ", s.Buffer(), "rejected row stays editable")
	assert.Equal(t, 0, s.Attempts())

	clock.Advance(25 * time.Millisecond)
	assert.NotZero(t, s.RowOffset(0))
	assert.True(t, s.InputLocked(), "shake gates input")
	assert.False(t, s.Backspace())

	clock.Advance(400 * time.Millisecond)
	s.Update()
	assert.Zero(t, s.RowOffset(0))
	assert.False(t, s.InputLocked())
}

func TestSubmitAcceptedRevealsRow(t *testing.T) {
	rec := &fakeRecorder{}
	clock := &fakeClock{now: time.Unix(0, 0)}
	s, err := NewSession("CRANE", Options{Mode: Puzzle, Clock: clock, Recorder: rec})
	require.NoError(t, err)

	typeWord(s, "NACRE")
	res, err := s.Submit()
	require.NoError(t, err)
	require.Equal(t, SubmitAccepted, res)

	assert.Equal(t, Committing, s.State())
	assert.Equal(t, 1, s.CurrentRow())
	assert.Equal(t, "", s.Buffer())
	assert.True(t, s.InputLocked())
	assert.False(t, s.AppendChar('A'), "typing is locked while committing")
	assert.Equal(t, KeyExact, s.KeyStatus('e'))
	assert.Equal(t, KeyPresent, s.KeyStatus('N'))

	// Tile 4 has not started flipping yet.
	clock.Advance(100 * time.Millisecond)
	assert.False(t, s.TileRevealed(0, 4))
	assert.Equal(t, 1.0, s.TileScale(0, 4))
	assert.Less(t, s.TileScale(0, 0), 1.0)

	clock.Advance(batch - 100*time.Millisecond - time.Millisecond)
	assert.False(t, s.Update(), "completion waits for the last flip")
	assert.Equal(t, Committing, s.State())

	clock.Advance(time.Millisecond)
	assert.True(t, s.Update())
	assert.Equal(t, Entering, s.State())
	assert.False(t, s.Update(), "completion fires once")
	assert.True(t, s.TileRevealed(0, 4))
	assert.Empty(t, rec.calls, "round is not over yet")
}

func TestWinRecordsResult(t *testing.T) {
	rec := &fakeRecorder{}
	clock := &fakeClock{now: time.Unix(0, 0)}
	s, err := NewSession("crane", Options{Mode: Puzzle, Clock: clock, Recorder: rec})
	require.NoError(t, err)

	commit(t, s, clock, "SLATE")
	commit(t, s, clock, "CRANE")

	assert.Equal(t, Over, s.State())
	assert.Equal(t, Won, s.Outcome())
	assert.Equal(t, "CRANE", s.Secret())
	assert.Equal(t, 2, s.Attempts())
	assert.Equal(t, []recordCall{{"crane", true, 2}}, rec.calls)

	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrNotEntering)
	assert.False(t, s.AppendChar('A'))
}

func TestLossAfterMaxRows(t *testing.T) {
	rec := &fakeRecorder{}
	clock := &fakeClock{now: time.Unix(0, 0)}
	s, err := NewSession("apple", Options{Mode: Vocabulary, Clock: clock, Recorder: rec})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		commit(t, s, clock, "BERRY")
	}

	assert.Equal(t, Over, s.State())
	assert.Equal(t, Lost, s.Outcome())
	assert.Equal(t, []recordCall{{"apple", false, 3}}, rec.calls)
}

func TestVocabularySkipsAcceptCheck(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s, err := NewSession("apple", Options{
		Mode:   Vocabulary,
		Clock:  clock,
		Accept: func(string) bool { return false },
	})
	require.NoError(t, err)

	typeWord(s, "QQQQQ")
	res, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, SubmitAccepted, res)
}

func TestRecorderErrorIsReturnedAfterTransition(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	clock := &fakeClock{now: time.Unix(0, 0)}
	s, err := NewSession("CRANE", Options{Clock: clock, Recorder: rec})
	require.NoError(t, err)

	typeWord(s, "CRANE")
	_, err = s.Submit()
	require.NoError(t, err)
	clock.Advance(batch)

	err = s.OnAnimationsComplete()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "disk full"))
	assert.Equal(t, Over, s.State())
	assert.Equal(t, Won, s.Outcome())
}

func TestOnAnimationsCompleteOutsideCommitting(t *testing.T) {
	s, _ := newPuzzle(t, "CRANE")
	assert.ErrorIs(t, s.OnAnimationsComplete(), ErrNotCommitting)
}

func TestResetDuringCommitFails(t *testing.T) {
	s, clock := newPuzzle(t, "CRANE")
	typeWord(s, "SLATE")
	_, err := s.Submit()
	require.NoError(t, err)

	assert.ErrorIs(t, s.Reset("APPLE"), ErrCommitting)

	clock.Advance(batch)
	s.Update()
	require.NoError(t, s.Reset("apple"))

	assert.Equal(t, Entering, s.State())
	assert.Equal(t, None, s.Outcome())
	assert.Equal(t, 0, s.Attempts())
	assert.Equal(t, 0, s.CurrentRow())
	assert.Empty(t, s.Keys())
	assert.Equal(t, "apple", s.Word())
}

func TestResetFromOverStartsEmptyBoard(t *testing.T) {
	tests := []struct {
		name    string
		guesses []string
		want    Outcome
	}{
		{"won", []string{"SLATE", "CRANE"}, Won},
		{"lost", []string{"SLATE", "SLATE", "SLATE", "SLATE", "SLATE", "SLATE"}, Lost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, clock := newPuzzle(t, "CRANE")
			for _, g := range tt.guesses {
				commit(t, s, clock, g)
			}
			require.Equal(t, Over, s.State())
			require.Equal(t, tt.want, s.Outcome())
			require.Equal(t, "CRANE", s.Secret())

			require.NoError(t, s.Reset("PLUMB"))

			assert.Equal(t, Entering, s.State())
			assert.Equal(t, None, s.Outcome())
			assert.Empty(t, s.Rows())
			assert.Equal(t, "", s.Buffer())
			assert.Empty(t, s.Keys())
			assert.Equal(t, 0, s.CurrentRow())
			assert.Equal(t, 0, s.Attempts())
			assert.Equal(t, "", s.Secret(), "secret is hidden again")
			assert.False(t, s.InputLocked())

			assert.True(t, s.AppendChar('p'))
			assert.Equal(t, "P", s.Buffer())
		})
	}
}

func TestRowsReturnsCopy(t *testing.T) {
	s, clock := newPuzzle(t, "CRANE")
	commit(t, s, clock, "SLATE")

	rows := s.Rows()
	require.Len(t, rows, 1)
	rows[0][0].Char = 'Z'

	assert.Equal(t, "SLATE", s.Rows()[0].Word())
}
