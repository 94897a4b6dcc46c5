// Package vocab stores the player's vocabulary words together with their
// learning statistics, and picks words to practise.
package vocab

import "fmt"

// Status is how well a word is known.
type Status string

const (
	NotLearned  Status = "not_learned"
	FewMistakes Status = "few_mistakes"
	Learned     Status = "learned"
)

// Statuses lists every status in learning order.
var Statuses = []Status{NotLearned, FewMistakes, Learned}

// ParseStatus converts a stored or user-supplied status name.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case NotLearned, FewMistakes, Learned:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Label returns a human-readable status name.
func (s Status) Label() string {
	switch s {
	case NotLearned:
		return "Not learned"
	case FewMistakes:
		return "Few mistakes"
	case Learned:
		return "Learned"
	default:
		return string(s)
	}
}

// rank orders statuses from least to best known.
func (s Status) rank() int {
	switch s {
	case FewMistakes:
		return 1
	case Learned:
		return 2
	default:
		return 0
	}
}

// weight is the relative chance of a word being picked for practice.
func (s Status) weight() int {
	switch s {
	case NotLearned:
		return 70
	case FewMistakes:
		return 25
	case Learned:
		return 5
	default:
		return 0
	}
}

// Record is one vocabulary word and its practice history.
type Record struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Status     Status `json:"status"`
	Attempts   int    `json:"attempts"`
	Correct    int    `json:"correct"`
	Wrong      int    `json:"wrong"`
}

// ApplyResult updates the record after a round.
//
// Solving on the first row marks the word Learned, solving later marks it
// FewMistakes, and failing marks it NotLearned. The status follows the latest
// round only, so a learned word can fall back.
func (r *Record) ApplyResult(solved bool, rowsUsed int) {
	r.Attempts++
	switch {
	case solved && rowsUsed == 1:
		r.Status = Learned
		r.Correct++
	case solved:
		r.Status = FewMistakes
		r.Correct++
	default:
		r.Status = NotLearned
		r.Wrong++
	}
}
