package wordle

import "errors"

var (
	// ErrLengthMismatch is returned when a guess and the secret differ in length.
	ErrLengthMismatch = errors.New("wordle: guess and secret differ in length")

	// ErrEmptySecret is returned when a session is started without a word.
	ErrEmptySecret = errors.New("wordle: empty secret")

	// ErrNotEntering is returned by Submit outside the Entering state.
	ErrNotEntering = errors.New("wordle: submit outside entering state")

	// ErrNotCommitting is returned by OnAnimationsComplete outside the Committing state.
	ErrNotCommitting = errors.New("wordle: completion outside committing state")

	// ErrCommitting is returned by Reset while a row is still being revealed.
	ErrCommitting = errors.New("wordle: reset while committing")
)
