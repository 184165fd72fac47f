package engine

import "errors"

// Error classes. Callers branch with errors.Is; the wrapped message carries
// the detail.
var (
	// ErrIllegalPlay reports a card that is not held or not in the legal
	// set for the current trick. Recoverable: the caller re-prompts or
	// re-decides.
	ErrIllegalPlay = errors.New("illegal play")

	// ErrInvalidState reports an operation invoked out of sequence, such
	// as resolving an incomplete trick. Indicates a caller bug.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidInput reports malformed external input: a bad card token
	// or an empty legal-play set handed to a decision function.
	ErrInvalidInput = errors.New("invalid input")
)
