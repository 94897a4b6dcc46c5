package vocab

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "vocabulary.json")
	s, err := Open(path, nil)
	require.NoError(t, err)
	return s, path
}

func TestOpenCreatesEmptyFile(t *testing.T) {
	s, path := openTemp(t)
	assert.Equal(t, 0, s.Len())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string][]Record
	require.NoError(t, json.Unmarshal(data, &doc))
	words, ok := doc["words"]
	assert.True(t, ok, "file should carry a words key")
	assert.Empty(t, words)
}

func TestOpenCorruptFileIsNotOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabulary.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path, nil)
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestOpenResetsUnknownStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabulary.json")
	body := `{"words":[{"word":"apple","definition":"a fruit","status":"mastered","attempts":2,"correct":1,"wrong":1}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := Open(path, nil)
	require.NoError(t, err)
	r, ok := s.Get("apple")
	require.True(t, ok)
	assert.Equal(t, NotLearned, r.Status)
	assert.Equal(t, 2, r.Attempts)
}

func TestAddValidation(t *testing.T) {
	s, _ := openTemp(t)

	tests := []struct {
		word, def string
		want      error
	}{
		{"  ", "something", ErrEmptyWord},
		{"apple", "   ", ErrEmptyDefinition},
		{strings.Repeat("a", 21), "long", ErrWordTooLong},
		{"don't", "do not", ErrInvalidChars},
		{"abc1", "digits", ErrInvalidChars},
		{"tea_cup", "underscore", ErrInvalidChars},
	}
	for _, tt := range tests {
		_, err := s.Add(tt.word, tt.def)
		assert.ErrorIs(t, err, tt.want, "Add(%q, %q)", tt.word, tt.def)
	}
	assert.Equal(t, 0, s.Len())

	r, err := s.Add(strings.Repeat("b", 20), "exactly twenty")
	require.NoError(t, err)
	assert.Equal(t, NotLearned, r.Status)

	for _, w := range []string{"ice cream", "well-being", "café"} {
		_, err := s.Add(w, "fine")
		assert.NoError(t, err, "Add(%q)", w)
	}
}

func TestPickWeightedSkipsUntypeableWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabulary.json")
	body := `{"words":[{"word":"don't","definition":"do not","status":"not_learned"},` +
		`{"word":"abc1","definition":"digits","status":"not_learned"}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := Open(path, nil)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	rng := rand.New(rand.NewSource(1))
	_, ok := s.PickWeighted(rng)
	assert.False(t, ok, "no typeable word to pick")

	_, err = s.Add("apple", "a fruit")
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		r, ok := s.PickWeighted(rng)
		require.True(t, ok)
		assert.Equal(t, "apple", r.Word)
	}
}

func TestAddNormalizesAndRejectsDuplicates(t *testing.T) {
	s, _ := openTemp(t)

	r, err := s.Add("  Ice Cream ", " frozen dessert ")
	require.NoError(t, err)
	assert.Equal(t, "ice cream", r.Word)
	assert.Equal(t, "frozen dessert", r.Definition)

	_, err = s.Add("ICE CREAM", "again")
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, 1, s.Len())
}

func TestPersistenceRoundTrip(t *testing.T) {
	s, path := openTemp(t)

	_, err := s.Add("apple", "a fruit")
	require.NoError(t, err)
	_, err = s.Add("book", "pages bound together")
	require.NoError(t, err)
	require.NoError(t, s.RecordResult("Apple", true, 1))

	deleted, err := s.Delete("book")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.Delete("book")
	require.NoError(t, err)
	assert.False(t, deleted)

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []Record{{
		Word: "apple", Definition: "a fruit", Status: Learned, Attempts: 1, Correct: 1,
	}}, reopened.All())

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRecordResultUnknownWord(t *testing.T) {
	s, _ := openTemp(t)
	assert.ErrorIs(t, s.RecordResult("ghost", true, 1), ErrNotFound)
}

func seed(t *testing.T, s *Store, words ...string) {
	t.Helper()
	for _, w := range words {
		_, err := s.Add(w, "definition of "+w)
		require.NoError(t, err)
	}
}

func TestList(t *testing.T) {
	s, _ := openTemp(t)
	seed(t, s, "cherry", "apple", "banana", "date")

	require.NoError(t, s.RecordResult("banana", true, 1)) // learned, 1 attempt
	require.NoError(t, s.RecordResult("cherry", true, 2)) // few mistakes
	require.NoError(t, s.RecordResult("cherry", true, 3)) // few mistakes, 2 attempts

	words := func(rs []Record) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.Word
		}
		return out
	}

	assert.Equal(t, []string{"apple", "banana", "cherry", "date"}, words(s.List(Query{})))
	assert.Equal(t, []string{"apple", "date", "cherry", "banana"}, words(s.List(Query{Sort: SortStatus})))
	assert.Equal(t, []string{"cherry", "banana", "apple", "date"}, words(s.List(Query{Sort: SortAttempts})))
	assert.Equal(t, []string{"banana"}, words(s.List(Query{Status: Learned})))
	assert.Equal(t, []string{"apple", "date"}, words(s.List(Query{Status: NotLearned})))
	assert.Equal(t, []string{"banana"}, words(s.List(Query{Search: "NAN"})))
	assert.Len(t, s.List(Query{Search: "definition"}), 4, "search covers definitions")
}

func TestParseSortOrder(t *testing.T) {
	o, err := ParseSortOrder("attempts")
	require.NoError(t, err)
	assert.Equal(t, SortAttempts, o)

	_, err = ParseSortOrder("random")
	assert.ErrorIs(t, err, ErrUnknownSort)
}

func TestStatistics(t *testing.T) {
	s, _ := openTemp(t)
	assert.Equal(t, Stats{}, s.Statistics())

	seed(t, s, "a", "b", "c")
	require.NoError(t, s.RecordResult("a", true, 1))
	require.NoError(t, s.RecordResult("b", true, 2))

	want := Stats{Total: 3, NotLearned: 1, FewMistakes: 1, Learned: 1, PercentLearned: 33}
	assert.Equal(t, want, s.Statistics())
	assert.Equal(t, want, s.Statistics(), "statistics is a pure read")
}

func TestPickWeighted(t *testing.T) {
	s, _ := openTemp(t)
	_, ok := s.PickWeighted(rand.New(rand.NewSource(1)))
	assert.False(t, ok, "empty store")

	seed(t, s, "fresh", "shaky", "known")
	require.NoError(t, s.RecordResult("shaky", true, 2))
	require.NoError(t, s.RecordResult("known", true, 1))

	rng := rand.New(rand.NewSource(7))
	counts := map[string]int{}
	const draws = 10000
	for i := 0; i < draws; i++ {
		r, ok := s.PickWeighted(rng)
		require.True(t, ok)
		counts[r.Word]++
	}

	assert.InDelta(t, 0.70, float64(counts["fresh"])/draws, 0.03)
	assert.InDelta(t, 0.25, float64(counts["shaky"])/draws, 0.03)
	assert.InDelta(t, 0.05, float64(counts["known"])/draws, 0.02)
}
