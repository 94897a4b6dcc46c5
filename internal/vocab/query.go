package vocab

import (
	"fmt"
	"sort"
	"strings"
)

// SortOrder selects how List orders records.
type SortOrder string

const (
	SortAlphabetical SortOrder = "alphabetical"
	SortStatus       SortOrder = "status"
	SortAttempts     SortOrder = "attempts"
)

// SortOrders lists the available orders, in the order the UI cycles them.
var SortOrders = []SortOrder{SortAlphabetical, SortStatus, SortAttempts}

// ParseSortOrder converts a sort order name.
func ParseSortOrder(s string) (SortOrder, error) {
	for _, o := range SortOrders {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
}

// Query filters and orders a listing. The zero value lists every word
// alphabetically.
type Query struct {
	Sort   SortOrder
	Status Status // Empty matches every status
	Search string // Case-insensitive substring of word or definition
}

// Matches reports whether r passes the status and search filters.
func (q Query) Matches(r Record) bool {
	if q.Status != "" && r.Status != q.Status {
		return false
	}
	if q.Search == "" {
		return true
	}
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	return strings.Contains(strings.ToLower(r.Word), needle) ||
		strings.Contains(strings.ToLower(r.Definition), needle)
}

// List returns the records matching q in the requested order.
// Status order runs from NotLearned to Learned; attempts order is descending.
// Ties keep insertion order.
func (s *Store) List(q Query) []Record {
	s.mu.RLock()
	out := make([]Record, 0, len(s.words))
	for _, r := range s.words {
		if q.Matches(r) {
			out = append(out, r)
		}
	}
	s.mu.RUnlock()

	switch q.Sort {
	case SortStatus:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Status.rank() < out[j].Status.rank()
		})
	case SortAttempts:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Attempts > out[j].Attempts
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Word < out[j].Word
		})
	}
	return out
}

// Stats summarises learning progress.
type Stats struct {
	Total          int
	NotLearned     int
	FewMistakes    int
	Learned        int
	PercentLearned int // Rounded down; zero for an empty store
}

// Statistics counts words per status.
func (s *Store) Statistics() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Total: len(s.words)}
	for _, r := range s.words {
		switch r.Status {
		case Learned:
			st.Learned++
		case FewMistakes:
			st.FewMistakes++
		default:
			st.NotLearned++
		}
	}
	if st.Total > 0 {
		st.PercentLearned = st.Learned * 100 / st.Total
	}
	return st
}
