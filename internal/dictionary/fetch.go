package dictionary

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// ErrNoFallback is reported when the services failed and no offline word is available.
var ErrNoFallback = errors.New("dictionary: no fallback words")

// Lookup finds a random word with a definition.
type Lookup interface {
	RandomWithDefinition(ctx context.Context, attempts, maxLen int) (Entry, error)
}

// FetchOptions configures a background fetch.
type FetchOptions struct {
	Attempts int           // Tries against the services before falling back
	MaxLen   int           // Longest acceptable word
	Timeout  time.Duration // Bound on the whole online phase; zero means none
	Fallback []Entry       // Offline words; nil uses Fallback()
	Seed     int64         // Seeds the fallback pick; zero uses the clock
	Logger   *log.Logger
}

// Result is the outcome of a background fetch.
type Result struct {
	Entry    Entry
	Fallback bool  // Entry came from the offline list
	Err      error // Set only when no word could be produced at all
}

// Pending is a fetch running in the background. The worker writes its
// result exactly once; Poll hands it out exactly once.
type Pending struct {
	ch   chan Result
	done bool
}

// FetchAsync starts a worker that asks lookup for a word and falls back to
// the offline list when every attempt fails. It returns immediately.
func FetchAsync(lookup Lookup, opts FetchOptions) *Pending {
	p := &Pending{ch: make(chan Result, 1)}
	go p.run(lookup, opts)
	return p
}

func (p *Pending) run(lookup Lookup, opts FetchOptions) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	if lookup != nil && opts.Attempts > 0 {
		entry, err := lookup.RandomWithDefinition(ctx, opts.Attempts, opts.MaxLen)
		if err == nil {
			p.ch <- Result{Entry: entry}
			return
		}
		logger.Warn("online word fetch failed, using fallback", "error", err)
	}

	fallback := opts.Fallback
	if fallback == nil {
		fallback = Fallback()
	}
	if len(fallback) == 0 {
		p.ch <- Result{Err: ErrNoFallback}
		return
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	p.ch <- Result{Entry: fallback[rng.Intn(len(fallback))], Fallback: true}
}

// Poll returns the result if the worker has finished. It never blocks, and
// reports ok only on the first call after the result arrives.
func (p *Pending) Poll() (Result, bool) {
	if p.done {
		return Result{}, false
	}
	select {
	case r := <-p.ch:
		p.done = true
		return r, true
	default:
		return Result{}, false
	}
}

// Done reports whether the result has already been taken by Poll.
func (p *Pending) Done() bool {
	return p.done
}
