package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyResult(t *testing.T) {
	tests := []struct {
		name    string
		start   Status
		solved  bool
		rows    int
		want    Status
		correct int
		wrong   int
	}{
		{"first row", NotLearned, true, 1, Learned, 1, 0},
		{"later row", NotLearned, true, 3, FewMistakes, 1, 0},
		{"failed", FewMistakes, false, 3, NotLearned, 0, 1},
		{"learned can regress", Learned, true, 2, FewMistakes, 1, 0},
		{"learned can fall to not learned", Learned, false, 3, NotLearned, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{Word: "apple", Status: tt.start}
			r.ApplyResult(tt.solved, tt.rows)

			assert.Equal(t, tt.want, r.Status)
			assert.Equal(t, 1, r.Attempts)
			assert.Equal(t, tt.correct, r.Correct)
			assert.Equal(t, tt.wrong, r.Wrong)
		})
	}
}

func TestApplyResultAccumulates(t *testing.T) {
	r := Record{Word: "apple", Status: NotLearned}
	r.ApplyResult(true, 1)
	r.ApplyResult(false, 3)
	r.ApplyResult(true, 2)

	assert.Equal(t, Record{Word: "apple", Status: FewMistakes, Attempts: 3, Correct: 2, Wrong: 1}, r)
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		got, err := ParseStatus(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("mastered")
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Equal(t, "Few mistakes", FewMistakes.Label())
}
