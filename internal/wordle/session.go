package wordle

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/purrdle/internal/anim"
)

// Mode selects the input rules of a session.
type Mode int

const (
	// Puzzle accepts letters only and checks guesses against a word list.
	Puzzle Mode = iota
	// Vocabulary also accepts spaces and hyphens and takes any guess.
	Vocabulary
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	if m == Vocabulary {
		return "vocabulary"
	}
	return "puzzle"
}

// Default row limits per mode.
const (
	DefaultPuzzleRows     = 6
	DefaultVocabularyRows = 3
)

// State is the phase of a session.
type State int

const (
	Entering   State = iota // Accepting letters for the current row
	Committing              // A row was submitted and is being revealed
	Over                    // The round has ended
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Entering:
		return "entering"
	case Committing:
		return "committing"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome is the result of a finished round.
type Outcome int

const (
	None Outcome = iota
	Won
	Lost
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "none"
	}
}

// SubmitResult describes what Submit did with the buffer.
type SubmitResult int

const (
	// SubmitIgnored means the buffer was incomplete or input was locked.
	SubmitIgnored SubmitResult = iota
	// SubmitRejected means the word is not in the accepted list; the row shakes.
	SubmitRejected
	// SubmitAccepted means the row was scored and is being revealed.
	SubmitAccepted
)

// ResultRecorder receives the outcome of a finished round.
type ResultRecorder interface {
	RecordResult(word string, solved bool, rowsUsed int) error
}

// Options configures a session.
type Options struct {
	Mode    Mode
	MaxRows int // Zero picks the mode default

	// Accept reports whether a guess is a real word. Only consulted in Puzzle mode;
	// nil accepts everything.
	Accept func(word string) bool

	// Recorder is told the outcome once the final row has been revealed.
	// Nil disables recording.
	Recorder ResultRecorder

	Timing anim.Timing // Zero value uses anim.DefaultTiming
	Clock  anim.Clock  // Nil uses the system clock
	Logger *log.Logger // Nil discards
}

// Session is one round of the game: the secret, the committed rows, the row
// being typed and the animations of the board.
type Session struct {
	opts    Options
	logger  *log.Logger
	sched   *anim.Scheduler
	keys    *Keyboard
	word    string // Secret as given, passed to the recorder
	secret  []rune // Upper-cased secret
	rows    []GuessRow
	buffer  []rune
	current int

	state    State
	outcome  Outcome
	pending  Outcome
	deadline time.Time
}

// NewSession starts a session on secret in the Entering state.
func NewSession(secret string, opts Options) (*Session, error) {
	if opts.MaxRows <= 0 {
		opts.MaxRows = DefaultPuzzleRows
		if opts.Mode == Vocabulary {
			opts.MaxRows = DefaultVocabularyRows
		}
	}
	if opts.Timing == (anim.Timing{}) {
		opts.Timing = anim.DefaultTiming()
	}
	if opts.Clock == nil {
		opts.Clock = anim.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		opts:   opts,
		logger: logger,
		sched:  anim.NewScheduler(opts.Clock, opts.Timing),
		keys:   NewKeyboard(),
	}
	if err := s.start(secret); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) start(secret string) error {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ErrEmptySecret
	}
	s.word = secret
	s.secret = []rune(strings.ToUpper(secret))
	s.rows = s.rows[:0]
	s.buffer = s.buffer[:0]
	s.current = 0
	s.state = Entering
	s.outcome = None
	s.pending = None
	s.deadline = time.Time{}
	s.keys.Reset()
	s.sched.Clear()
	return nil
}

// Reset discards the board and starts over with a new secret.
// It fails while a row is being revealed.
func (s *Session) Reset(secret string) error {
	if s.state == Committing {
		return ErrCommitting
	}
	return s.start(secret)
}

// InputLocked reports whether typing is currently ignored.
func (s *Session) InputLocked() bool {
	return s.state != Entering || s.sched.Animating()
}

// accepts reports whether r may be typed in this mode.
func (s *Session) accepts(r rune) bool {
	if unicode.IsLetter(r) {
		return true
	}
	return s.opts.Mode == Vocabulary && (r == ' ' || r == '-')
}

// AppendChar adds a letter to the current row and pops its tile.
// It returns false when the character was not taken.
func (s *Session) AppendChar(r rune) bool {
	if s.InputLocked() || len(s.buffer) >= len(s.secret) || !s.accepts(r) {
		return false
	}
	s.buffer = append(s.buffer, unicode.ToUpper(r))
	s.sched.AddPop(s.current, len(s.buffer)-1)
	return true
}

// Backspace removes the last letter of the current row.
func (s *Session) Backspace() bool {
	if s.InputLocked() || len(s.buffer) == 0 {
		return false
	}
	s.buffer = s.buffer[:len(s.buffer)-1]
	return true
}

// Submit commits the current row.
//
// An incomplete row, or one typed while the board is still animating, is
// ignored. In Puzzle mode a word the Accept func rejects shakes the row and
// leaves it editable. Otherwise the row is scored, the flip cascade starts and
// the session waits in Committing until the last tile has turned.
func (s *Session) Submit() (SubmitResult, error) {
	if s.state != Entering {
		return SubmitIgnored, fmt.Errorf("%w: state %s", ErrNotEntering, s.state)
	}
	if s.sched.Animating() || len(s.buffer) < len(s.secret) {
		return SubmitIgnored, nil
	}

	guess := string(s.buffer)
	if s.opts.Mode == Puzzle && s.opts.Accept != nil && !s.opts.Accept(guess) {
		s.sched.AddShake(s.current)
		s.logger.Debug("guess rejected", "guess", guess, "row", s.current)
		return SubmitRejected, nil
	}

	row, err := Score(guess, string(s.secret))
	if err != nil {
		return SubmitIgnored, err
	}
	s.rows = append(s.rows, row)
	s.keys.Apply(row)

	batch := s.sched.FlipBatch(s.current, len(row))
	s.deadline = s.sched.Now().Add(batch)

	switch {
	case row.Solved():
		s.pending = Won
	case s.current+1 >= s.opts.MaxRows:
		s.pending = Lost
	}

	s.current++
	s.buffer = s.buffer[:0]
	s.state = Committing
	return SubmitAccepted, nil
}

// Update advances the session by one frame. Finished animations are evicted,
// then the reveal completes once its deadline has passed. It reports whether
// the completion fired during this call.
func (s *Session) Update() bool {
	s.sched.Sweep()
	if s.state != Committing || s.sched.Now().Before(s.deadline) {
		return false
	}
	if err := s.OnAnimationsComplete(); err != nil {
		s.logger.Error("finishing round", "error", err)
	}
	return true
}

// OnAnimationsComplete ends the Committing phase: input unlocks, and the
// round ends if the last row decided it. The recorder, if any, is told the
// outcome after the state change; its error is returned.
func (s *Session) OnAnimationsComplete() error {
	if s.state != Committing {
		return fmt.Errorf("%w: state %s", ErrNotCommitting, s.state)
	}
	s.deadline = time.Time{}

	if s.pending == None {
		s.state = Entering
		return nil
	}

	s.state = Over
	s.outcome = s.pending
	s.pending = None

	if s.opts.Recorder == nil {
		return nil
	}
	if err := s.opts.Recorder.RecordResult(s.word, s.outcome == Won, len(s.rows)); err != nil {
		return fmt.Errorf("wordle: record result for %q: %w", s.word, err)
	}
	return nil
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Outcome returns the result of the round, None until it is over.
func (s *Session) Outcome() Outcome { return s.outcome }

// Mode returns the input mode.
func (s *Session) Mode() Mode { return s.opts.Mode }

// MaxRows returns the row limit.
func (s *Session) MaxRows() int { return s.opts.MaxRows }

// WordLength returns the number of letters in the secret.
func (s *Session) WordLength() int { return len(s.secret) }

// CurrentRow returns the index of the row being typed.
func (s *Session) CurrentRow() int { return s.current }

// Attempts returns the number of committed rows.
func (s *Session) Attempts() int { return len(s.rows) }

// Buffer returns the letters typed into the current row.
func (s *Session) Buffer() string { return string(s.buffer) }

// Secret returns the upper-cased secret once the round is over, and an
// empty string before that.
func (s *Session) Secret() string {
	if s.state != Over {
		return ""
	}
	return string(s.secret)
}

// Word returns the secret as it was given to the session.
func (s *Session) Word() string { return s.word }

// Rows returns a copy of the committed rows.
func (s *Session) Rows() []GuessRow {
	out := make([]GuessRow, len(s.rows))
	for i, r := range s.rows {
		out[i] = append(GuessRow(nil), r...)
	}
	return out
}

// KeyStatus returns the keyboard status of r, case-insensitively.
func (s *Session) KeyStatus(r rune) KeyStatus {
	return s.keys.Status(unicode.ToUpper(r))
}

// Keys returns a copy of all known key statuses.
func (s *Session) Keys() map[rune]KeyStatus {
	return s.keys.Snapshot()
}

// TileScale returns the vertical flip scale of a committed tile.
func (s *Session) TileScale(row, col int) float64 {
	return s.sched.FlipScale(row, col)
}

// TileRevealed reports whether a committed tile shows its feedback yet.
func (s *Session) TileRevealed(row, col int) bool {
	return s.sched.FlipRevealed(row, col)
}

// PopScale returns the bump scale of a typed tile.
func (s *Session) PopScale(row, col int) float64 {
	return s.sched.PopScale(row, col)
}

// RowOffset returns the horizontal shake offset of a row in cells.
func (s *Session) RowOffset(row int) float64 {
	return s.sched.ShakeOffset(row)
}
