package censor

import (
	"errors"
	"fmt"
)

// Pattern compile and censoring errors.
var (
	ErrEmptyWord         = errors.New("the word cannot be empty")
	ErrUnterminatedGroup = errors.New("unterminated character group")
	ErrTrailingEscape    = errors.New("escape character cannot be at the end of the word")
	ErrWildcardOnly      = errors.New("wildcards cannot be the only character in the word")

	ErrLengthMismatch = errors.New("the original sentence must have the same length as the sentence")
)

// PatternError is returned when a pattern fails to compile. It unwraps to one
// of the Err* pattern errors.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid word %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
