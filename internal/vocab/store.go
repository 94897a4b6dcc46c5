package vocab

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// document is the on-disk layout of the vocabulary file.
type document struct {
	Words []Record `json:"words"`
}

// Store is a JSON-file backed vocabulary. Every mutation rewrites the file.
// It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	path   string
	logger *log.Logger
	words  []Record
}

// Open loads the vocabulary at path, creating an empty file if none exists.
// A file that cannot be parsed is reported as an error and left untouched.
func Open(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("vocab: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("vocab: cannot create directory %s: %w", dir, err)
	}

	s := &Store{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("no vocabulary file, starting fresh", "path", path)
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("vocab: cannot read %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("vocab: cannot parse %s: %w", path, err)
	}
	for i := range doc.Words {
		r := &doc.Words[i]
		if _, err := ParseStatus(string(r.Status)); err != nil {
			logger.Warn("resetting unknown status", "word", r.Word, "status", r.Status)
			r.Status = NotLearned
		}
	}
	s.words = doc.Words

	logger.Debug("loaded vocabulary", "path", path, "words", len(s.words))
	return s, nil
}

// Path returns the file the store writes to.
func (s *Store) Path() string {
	return s.path
}

// save writes the whole vocabulary to a temp file and renames it over the
// real one. Callers hold the write lock (or own the store exclusively).
func (s *Store) save() error {
	words := s.words
	if words == nil {
		words = []Record{}
	}
	data, err := json.MarshalIndent(document{Words: words}, "", "  ")
	if err != nil {
		return fmt.Errorf("vocab: cannot encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".vocab-*.json")
	if err != nil {
		return fmt.Errorf("vocab: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("vocab: cannot write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("vocab: cannot close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("vocab: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// normalizeWord is the key words are stored and looked up under.
func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// index returns the position of word, or -1. Callers hold the lock.
func (s *Store) index(word string) int {
	word = normalizeWord(word)
	for i, r := range s.words {
		if r.Word == word {
			return i
		}
	}
	return -1
}

// Validate checks a word and definition the way Add does, without storing them.
func Validate(word, definition string) error {
	word = normalizeWord(word)
	switch {
	case word == "":
		return ErrEmptyWord
	case strings.TrimSpace(definition) == "":
		return ErrEmptyDefinition
	case utf8.RuneCountInString(word) > MaxWordLength:
		return ErrWordTooLong
	case !Typeable(word):
		return ErrInvalidChars
	}
	return nil
}

// Typeable reports whether every character of word can be typed into a
// vocabulary round: letters, spaces and hyphens.
func Typeable(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' {
			return false
		}
	}
	return true
}

// Add stores a new word as NotLearned. The word is trimmed and lower-cased.
func (s *Store) Add(word, definition string) (Record, error) {
	if err := Validate(word, definition); err != nil {
		return Record{}, err
	}
	r := Record{
		Word:       normalizeWord(word),
		Definition: strings.TrimSpace(definition),
		Status:     NotLearned,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index(r.Word) >= 0 {
		return Record{}, fmt.Errorf("%w: %q", ErrDuplicate, r.Word)
	}

	s.words = append(s.words, r)
	if err := s.save(); err != nil {
		s.words = s.words[:len(s.words)-1]
		return Record{}, err
	}
	s.logger.Debug("word added", "word", r.Word)
	return r, nil
}

// Delete removes word and reports whether it existed.
func (s *Store) Delete(word string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(word)
	if i < 0 {
		return false, nil
	}

	prev := s.words
	words := make([]Record, 0, len(prev)-1)
	words = append(words, prev[:i]...)
	words = append(words, prev[i+1:]...)
	s.words = words

	if err := s.save(); err != nil {
		s.words = prev
		return false, err
	}
	s.logger.Debug("word deleted", "word", normalizeWord(word))
	return true, nil
}

// Get returns the record for word.
func (s *Store) Get(word string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.index(word)
	if i < 0 {
		return Record{}, false
	}
	return s.words[i], true
}

// RecordResult applies the outcome of a round to word and persists it.
func (s *Store) RecordResult(word string, solved bool, rowsUsed int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(word)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, normalizeWord(word))
	}

	prev := s.words[i]
	s.words[i].ApplyResult(solved, rowsUsed)
	if err := s.save(); err != nil {
		s.words[i] = prev
		return err
	}
	s.logger.Debug("result recorded", "word", prev.Word, "solved", solved, "rows", rowsUsed, "status", s.words[i].Status)
	return nil
}

// Len returns the number of stored words.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// All returns a copy of every record in insertion order.
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record(nil), s.words...)
}

// PickWeighted picks a word to practise, favouring words that are not yet
// known: NotLearned words weigh 70, FewMistakes 25 and Learned 5.
// Words that cannot be typed, such as ones edited into the file by hand,
// are skipped. It returns false when no word can be picked.
func (s *Store) PickWeighted(rng *rand.Rand) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pool := make([]Record, 0, len(s.words))
	for _, r := range s.words {
		if Typeable(r.Word) {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		return Record{}, false
	}

	total := 0
	for _, r := range pool {
		total += r.Status.weight()
	}
	if total == 0 {
		return pool[rng.Intn(len(pool))], true
	}

	n := rng.Intn(total)
	for _, r := range pool {
		n -= r.Status.weight()
		if n < 0 {
			return r, true
		}
	}
	return pool[len(pool)-1], true
}
