// Package words provides the accepted-word lists used by the puzzle mode,
// along with random and date-based secret selection.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"unicode"
)

//go:embed data/words.txt
var embeddedWords string

// ErrEmptyList is returned when no usable word survives normalisation.
var ErrEmptyList = errors.New("words: list is empty")

// List is an immutable set of upper-case words of one length.
type List struct {
	length int
	words  []string
	set    map[string]struct{}
}

// New builds a list from raw words. Each word is trimmed and upper-cased;
// words that are not purely alphabetic or not length runes long are dropped,
// as are duplicates.
func New(raw []string, length int) (*List, error) {
	l := &List{
		length: length,
		set:    make(map[string]struct{}, len(raw)),
	}
	for _, w := range raw {
		w = normalize(w)
		if !valid(w, length) {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if len(l.words) == 0 {
		return nil, fmt.Errorf("%w: no %d-letter words", ErrEmptyList, length)
	}
	return l, nil
}

// Load reads a newline-delimited word list from path.
func Load(path string, length int) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	raw, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	l, err := New(raw, length)
	if err != nil {
		return nil, fmt.Errorf("words: %s: %w", path, err)
	}
	return l, nil
}

// Embedded returns the built-in list filtered to length.
func Embedded(length int) (*List, error) {
	raw, err := readLines(strings.NewReader(embeddedWords))
	if err != nil {
		return nil, err
	}
	return New(raw, length)
}

// readLines returns every non-blank, non-comment line of r.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

func normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// valid reports whether w is exactly length letters.
func valid(w string, length int) bool {
	n := 0
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
		n++
	}
	return n == length
}

// Len returns the number of words.
func (l *List) Len() int {
	return len(l.words)
}

// WordLength returns the length every word in the list has.
func (l *List) WordLength() int {
	return l.length
}

// Words returns a copy of the words in load order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// Accepts reports whether word is in the list, ignoring case.
func (l *List) Accepts(word string) bool {
	_, ok := l.set[normalize(word)]
	return ok
}

// Random picks a word using rng.
func (l *List) Random(rng *rand.Rand) string {
	return l.words[rng.Intn(len(l.words))]
}
