// Package dictionary talks to the public word APIs used by the vocabulary
// modes: a random-word service and a dictionary that supplies definitions.
package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

var (
	// ErrNotFound is returned when the dictionary has no definition for a word.
	ErrNotFound = errors.New("dictionary: no definition found")

	// ErrTooLong is returned when the random-word service yields a word over the limit.
	ErrTooLong = errors.New("dictionary: word too long")

	// ErrExhausted is returned when no attempt produced a word with a definition.
	ErrExhausted = errors.New("dictionary: attempts exhausted")
)

// Entry is a word with its definition.
type Entry struct {
	Word       string
	Definition string
}

// Config holds endpoints and limits for the client.
type Config struct {
	DefinitionURL     string        // Base URL; the escaped word is appended as a path segment
	RandomWordURL     string        // Returns a JSON array holding one word
	Timeout           time.Duration // Per request
	RequestsPerSecond float64       // Zero disables pacing
	UserAgent         string
}

// DefaultConfig returns the public endpoints.
func DefaultConfig() Config {
	return Config{
		DefinitionURL:     "https://api.dictionaryapi.dev/api/v2/entries/en",
		RandomWordURL:     "https://random-word-api.herokuapp.com/word?lang=en",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 4,
		UserAgent:         "purrdle",
	}
}

// Client looks up words over HTTP.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	logger  *log.Logger
}

// New creates a client. A nil logger discards output.
func New(cfg Config, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// get performs a paced GET and decodes a JSON body into v.
// A 404 maps to ErrNotFound.
func (c *Client) get(ctx context.Context, rawURL string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("dictionary: rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("dictionary: build request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("dictionary: request %s: %w", req.URL.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dictionary: %s returned status: %s", req.URL.Host, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("dictionary: decode response: %w", err)
	}
	return nil
}

// definitionPayload mirrors the parts of the dictionaryapi.dev response we read.
type definitionPayload []struct {
	Meanings []struct {
		Definitions []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// Definition returns the first definition of the first meaning of word.
func (c *Client) Definition(ctx context.Context, word string) (string, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return "", ErrNotFound
	}

	var payload definitionPayload
	u := strings.TrimRight(c.cfg.DefinitionURL, "/") + "/" + url.PathEscape(word)
	if err := c.get(ctx, u, &payload); err != nil {
		return "", err
	}

	if len(payload) == 0 || len(payload[0].Meanings) == 0 || len(payload[0].Meanings[0].Definitions) == 0 {
		return "", ErrNotFound
	}
	def := strings.TrimSpace(payload[0].Meanings[0].Definitions[0].Definition)
	if def == "" {
		return "", ErrNotFound
	}
	return def, nil
}

// RandomWord returns one lower-case word from the random-word service.
// Words longer than maxLen characters fail with ErrTooLong.
func (c *Client) RandomWord(ctx context.Context, maxLen int) (string, error) {
	var words []string
	if err := c.get(ctx, c.cfg.RandomWordURL, &words); err != nil {
		return "", err
	}
	if len(words) == 0 || strings.TrimSpace(words[0]) == "" {
		return "", fmt.Errorf("dictionary: random word service returned no word")
	}

	word := strings.ToLower(strings.TrimSpace(words[0]))
	if maxLen > 0 && utf8.RuneCountInString(word) > maxLen {
		return "", fmt.Errorf("%w: %q", ErrTooLong, word)
	}
	return word, nil
}

// RandomWithDefinition draws random words until one has a definition,
// giving up after attempts tries.
func (c *Client) RandomWithDefinition(ctx context.Context, attempts, maxLen int) (Entry, error) {
	for i := 1; i <= attempts; i++ {
		if err := ctx.Err(); err != nil {
			return Entry{}, err
		}

		word, err := c.RandomWord(ctx, maxLen)
		if err != nil {
			c.logger.Warn("random word failed", "attempt", i, "error", err)
			continue
		}

		def, err := c.Definition(ctx, word)
		if err != nil {
			c.logger.Warn("no definition", "attempt", i, "word", word, "error", err)
			continue
		}

		c.logger.Debug("found word", "attempt", i, "word", word)
		return Entry{Word: word, Definition: def}, nil
	}
	return Entry{}, fmt.Errorf("%w after %d tries", ErrExhausted, attempts)
}
