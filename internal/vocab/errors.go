package vocab

import "errors"

// MaxWordLength is the longest word the store accepts, in characters.
const MaxWordLength = 20

var (
	ErrEmptyWord       = errors.New("vocab: word cannot be empty")
	ErrEmptyDefinition = errors.New("vocab: definition cannot be empty")
	ErrWordTooLong     = errors.New("vocab: word must be 20 characters or less")
	ErrInvalidChars    = errors.New("vocab: word may only contain letters, spaces and hyphens")
	ErrDuplicate       = errors.New("vocab: word already exists")
	ErrNotFound        = errors.New("vocab: word not found")
	ErrUnknownStatus   = errors.New("vocab: unknown status")
	ErrUnknownSort     = errors.New("vocab: unknown sort order")
)
