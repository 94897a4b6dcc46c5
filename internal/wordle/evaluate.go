// Package wordle implements the rules of the word-guessing game: scoring a
// guess against the secret, tracking keyboard hints and running a round
// as a small state machine.
package wordle

import "fmt"

// Feedback is the verdict for one letter of a guess.
type Feedback int

const (
	Absent  Feedback = iota // Letter is not in the remaining secret
	Present                 // Letter is in the secret at another position
	Exact                   // Letter is at this position in the secret
)

// String returns the lowercase name of the feedback.
func (f Feedback) String() string {
	switch f {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// Tile is a committed letter with its feedback.
type Tile struct {
	Char     rune
	Feedback Feedback
}

// GuessRow is one committed guess.
type GuessRow []Tile

// Word returns the letters of the row as a string.
func (r GuessRow) Word() string {
	rs := make([]rune, len(r))
	for i, t := range r {
		rs[i] = t.Char
	}
	return string(rs)
}

// Solved reports whether every tile in the row is Exact.
func (r GuessRow) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, t := range r {
		if t.Feedback != Exact {
			return false
		}
	}
	return true
}

// Evaluate scores guess against secret rune by rune.
//
// Exact matches are resolved first and consume their secret letter. The
// remaining positions are then marked Present while unconsumed copies of the
// letter are left, and Absent after that. Repeated letters in the guess are
// therefore never credited more often than they occur in the secret.
//
// Comparison is case-sensitive; callers normalise case.
func Evaluate(guess, secret string) ([]Feedback, error) {
	g := []rune(guess)
	s := []rune(secret)
	if len(g) != len(s) {
		return nil, fmt.Errorf("%w: guess has %d letters, secret has %d", ErrLengthMismatch, len(g), len(s))
	}

	result := make([]Feedback, len(g))
	remaining := make(map[rune]int, len(s))

	for i := range g {
		if g[i] == s[i] {
			result[i] = Exact
		} else {
			remaining[s[i]]++
		}
	}

	for i := range g {
		if result[i] == Exact {
			continue
		}
		if remaining[g[i]] > 0 {
			result[i] = Present
			remaining[g[i]]--
		}
	}

	return result, nil
}

// Score evaluates guess and pairs each letter with its feedback.
func Score(guess, secret string) (GuessRow, error) {
	fb, err := Evaluate(guess, secret)
	if err != nil {
		return nil, err
	}
	row := make(GuessRow, len(fb))
	for i, r := range []rune(guess) {
		row[i] = Tile{Char: r, Feedback: fb[i]}
	}
	return row, nil
}
