package words

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizes(t *testing.T) {
	l, err := New([]string{" crane ", "SLATE", "crane", "toolong", "abc", "x-ray", "ab1de"}, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"CRANE", "SLATE"}, l.Words())
	assert.Equal(t, 5, l.WordLength())
	assert.True(t, l.Accepts("crane"))
	assert.True(t, l.Accepts(" Slate"))
	assert.False(t, l.Accepts("x-ray"))
}

func TestNewEmpty(t *testing.T) {
	_, err := New([]string{"cat", "dog"}, 5)
	assert.True(t, errors.Is(err, ErrEmptyList))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\napple\n\nberry\nkiwi\n"), 0o644))

	l, err := Load(path, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Accepts("BERRY"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadNoUsableWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ndog\n"), 0o644))

	_, err := Load(path, 5)
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestEmbedded(t *testing.T) {
	l, err := Embedded(5)
	require.NoError(t, err)
	assert.Greater(t, l.Len(), 100)
	assert.True(t, l.Accepts("crane"))
	for _, w := range l.Words() {
		assert.Len(t, []rune(w), 5)
	}

	_, err = Embedded(12)
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	l, err := Embedded(5)
	require.NoError(t, err)

	a := l.Random(rand.New(rand.NewSource(42)))
	b := l.Random(rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
	assert.True(t, l.Accepts(a))
}

func TestDaily(t *testing.T) {
	l, err := Embedded(5)
	require.NoError(t, err)

	morning := time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, l.Daily(morning, "salt"), l.Daily(evening, "salt"), "same UTC date, same word")
	assert.True(t, l.Accepts(l.Daily(morning, "salt")))

	// Different salts spread over the list; over a month they cannot all agree.
	same := 0
	for d := 0; d < 30; d++ {
		day := morning.AddDate(0, 0, d)
		if l.Daily(day, "a") == l.Daily(day, "b") {
			same++
		}
	}
	assert.Less(t, same, 30)
}

func TestDailyIndex(t *testing.T) {
	assert.Equal(t, 0, DailyIndex(time.Now(), "x", 0))
	i := DailyIndex(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "x", 7)
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 7)
	// 03:00 at UTC+5 is still the previous day in UTC.
	assert.Equal(t, "2023-12-31", DateKey(time.Date(2024, 1, 1, 3, 0, 0, 0, time.FixedZone("X", 5*3600))))
}
