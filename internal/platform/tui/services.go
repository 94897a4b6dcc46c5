package tui

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/purrdle/internal/registry"
	"github.com/vovakirdan/purrdle/internal/storage"
	"github.com/vovakirdan/purrdle/internal/vocab"
)

// Definer looks up the definition of a word.
type Definer interface {
	Definition(ctx context.Context, word string) (string, error)
}

// Services are the collaborators shared by every screen. Any of the stores
// may be nil; the screens that need them then explain what is missing.
type Services struct {
	Registry *registry.Registry
	History  *storage.Store
	Vocab    *vocab.Store
	Definer  Definer
	Logger   *log.Logger

	// Row limits, used to size the guess distribution in statistics.
	PuzzleRows int
	VocabRows  int
}

func (s Services) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}
