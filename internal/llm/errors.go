package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyCompletion indicates the provider answered without any content.
var ErrEmptyCompletion = errors.New("empty completion")

// UnavailableError indicates the provider is down, rate limited, or unreachable.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("generative service unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
