// Package wordgame adapts the word-guessing rules to the platform's game
// interface. It provides four modes: classic and daily puzzles over the
// accepted-word list, learn mode over the player's vocabulary, and infinity
// mode over words fetched from the dictionary services.
package wordgame

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/purrdle/internal/anim"
	"github.com/vovakirdan/purrdle/internal/core"
	"github.com/vovakirdan/purrdle/internal/dictionary"
	"github.com/vovakirdan/purrdle/internal/registry"
	"github.com/vovakirdan/purrdle/internal/vocab"
	"github.com/vovakirdan/purrdle/internal/words"
	"github.com/vovakirdan/purrdle/internal/wordle"
)

// Kind selects a mode.
type Kind int

const (
	Classic Kind = iota
	Daily
	Learn
	Infinity
)

// Mode IDs, also used as the history key.
const (
	IDClassic  = "classic"
	IDDaily    = "daily"
	IDLearn    = "learn"
	IDInfinity = "infinity"
)

// messageTTL is how long transient notices stay on screen.
const messageTTL = 1500 * time.Millisecond

// Deps are the shared collaborators of the modes.
type Deps struct {
	Settings Settings
	Words    *words.List       // Classic and daily
	Vocab    *vocab.Store      // Learn
	Lookup   dictionary.Lookup // Infinity; nil plays offline
	Logger   *log.Logger
	Clock    anim.Clock
	Now      func() time.Time // Date source for the daily word
}

// Game is one mode of the word game.
type Game struct {
	kind Kind
	deps Deps

	rng     *rand.Rand
	screenW int
	screenH int
	frame   int

	session    *wordle.Session
	definition string // Hint shown in vocabulary modes
	fallback   bool   // Infinity word came from the offline list

	pending *dictionary.Pending
	loading bool
	failed  string // Why no round could start

	message      string
	messageUntil time.Time
}

// New creates a mode with the given collaborators.
func New(kind Kind, deps Deps) *Game {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Clock == nil {
		deps.Clock = anim.SystemClock{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Settings.Timing == (anim.Timing{}) {
		deps.Settings.Timing = anim.DefaultTiming()
	}
	return &Game{kind: kind, deps: deps}
}

// Register adds every mode whose collaborators are available to r.
func Register(r *registry.Registry, deps Deps) {
	if deps.Words != nil {
		r.Register(IDClassic, func() registry.Game { return New(Classic, deps) })
		r.Register(IDDaily, func() registry.Game { return New(Daily, deps) })
	}
	if deps.Vocab != nil {
		r.Register(IDLearn, func() registry.Game { return New(Learn, deps) })
	}
	r.Register(IDInfinity, func() registry.Game { return New(Infinity, deps) })
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	switch g.kind {
	case Daily:
		return IDDaily
	case Learn:
		return IDLearn
	case Infinity:
		return IDInfinity
	default:
		return IDClassic
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.kind {
	case Daily:
		return "Daily Word"
	case Learn:
		return "Learn"
	case Infinity:
		return "Infinity"
	default:
		return "Classic"
	}
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	switch g.kind {
	case Daily:
		return "Everyone gets the same word today"
	case Learn:
		return "Practise your own vocabulary words"
	case Infinity:
		return "Random dictionary words, endlessly"
	default:
		return "Guess the five-letter word in six tries"
	}
}

// Reset starts a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.frame = 0
	g.definition = ""
	g.fallback = false
	g.pending = nil
	g.loading = false
	g.failed = ""
	g.message = ""

	switch g.kind {
	case Classic:
		g.begin(g.deps.Words.Random(g.rng))
	case Daily:
		g.begin(g.deps.Words.Daily(g.deps.Now(), g.deps.Settings.DailySalt))
	case Learn:
		rec, ok := g.deps.Vocab.PickWeighted(g.rng)
		if !ok {
			g.fail("No vocabulary words yet. Add some with: purrdle words add")
			return
		}
		g.definition = rec.Definition
		g.begin(rec.Word)
	case Infinity:
		g.loading = true
		g.pending = dictionary.FetchAsync(g.deps.Lookup, dictionary.FetchOptions{
			Attempts: g.deps.Settings.FetchAttempts,
			MaxLen:   g.deps.Settings.MaxWordLength,
			Timeout:  g.deps.Settings.FetchTimeout,
			Seed:     g.rng.Int63(),
			Logger:   g.deps.Logger,
		})
	}
}

// options builds the session options for this mode.
func (g *Game) options() wordle.Options {
	opts := wordle.Options{
		Timing: g.deps.Settings.Timing,
		Clock:  g.deps.Clock,
		Logger: g.deps.Logger,
	}
	switch g.kind {
	case Classic, Daily:
		opts.Mode = wordle.Puzzle
		opts.MaxRows = g.deps.Settings.PuzzleRows
		opts.Accept = g.deps.Words.Accepts
	case Learn:
		opts.Mode = wordle.Vocabulary
		opts.MaxRows = g.deps.Settings.VocabRows
		opts.Recorder = g.deps.Vocab
	case Infinity:
		opts.Mode = wordle.Vocabulary
		opts.MaxRows = g.deps.Settings.VocabRows
	}
	return opts
}

// begin starts a session on secret, reusing the previous one when possible.
func (g *Game) begin(secret string) {
	if g.session != nil {
		err := g.session.Reset(secret)
		if err == nil {
			return
		}
		if !errors.Is(err, wordle.ErrCommitting) {
			g.fail(err.Error())
			return
		}
	}
	s, err := wordle.NewSession(secret, g.options())
	if err != nil {
		g.fail(err.Error())
		return
	}
	g.session = s
}

func (g *Game) fail(msg string) {
	g.failed = msg
	g.session = nil
	g.deps.Logger.Warn("round not started", "mode", g.ID(), "reason", msg)
}

// notify shows a transient message.
func (g *Game) notify(msg string) {
	g.message = msg
	g.messageUntil = g.deps.Clock.Now().Add(messageTTL)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	if g.loading {
		g.pollFetch()
		return core.StepResult{State: g.State()}
	}
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if g.message != "" && !g.deps.Clock.Now().Before(g.messageUntil) {
		g.message = ""
	}

	for _, p := range in.Clicks {
		switch k, ok := g.layout().keyAt(p.X, p.Y); {
		case !ok:
		case k.special == keyEnter:
			in.Set(core.ActionConfirm)
		case k.special == keyDelete:
			in.Set(core.ActionBackspace)
		default:
			in.Type(k.char)
		}
	}

	for _, r := range in.Runes {
		g.session.AppendChar(r)
	}
	if in.Has(core.ActionBackspace) {
		g.session.Backspace()
	}
	if in.Has(core.ActionConfirm) && g.session.State() == wordle.Entering {
		g.submit()
	}

	fired := g.session.Update()
	finished := fired && g.session.State() == wordle.Over
	if finished {
		g.deps.Logger.Info("round finished", "mode", g.ID(), "outcome", g.session.Outcome(), "attempts", g.session.Attempts())
	}

	return core.StepResult{State: g.State(), Finished: finished}
}

func (g *Game) submit() {
	res, err := g.session.Submit()
	if err != nil {
		g.deps.Logger.Error("submit", "error", err)
		return
	}
	switch res {
	case wordle.SubmitRejected:
		g.notify("Not in word list")
	case wordle.SubmitIgnored:
		if !g.session.InputLocked() && len([]rune(g.session.Buffer())) < g.session.WordLength() {
			g.notify("Not enough letters")
		}
	}
}

// pollFetch checks the background fetch and starts the round once it lands.
func (g *Game) pollFetch() {
	res, ok := g.pending.Poll()
	if !ok {
		return
	}
	g.loading = false
	g.pending = nil

	if res.Err != nil {
		g.fail(fmt.Sprintf("Could not get a word: %v", res.Err))
		return
	}
	g.fallback = res.Fallback
	g.definition = res.Entry.Definition
	g.begin(res.Entry.Word)
	if g.fallback {
		g.notify("Offline: using a built-in word")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Loading: g.loading,
		Failed:  g.failed != "",
	}
	if g.session == nil {
		return st
	}
	st.Over = g.session.State() == wordle.Over
	st.Won = g.session.Outcome() == wordle.Won
	st.Attempts = g.session.Attempts()
	st.MaxRows = g.session.MaxRows()
	st.Secret = g.session.Secret()
	return st
}

// Session exposes the running round, nil while loading or after a failure.
func (g *Game) Session() *wordle.Session {
	return g.session
}

// Definition returns the hint of the current vocabulary word.
func (g *Game) Definition() string {
	return g.definition
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Type letters | Enter: submit | Backspace: delete | Ctrl+R: new word | Esc: menu | Ctrl+C: quit"
}
