package summarizer

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is returned when the model answered with blank text.
var ErrEmptyResult = errors.New("summarizer returned empty text")

// UpstreamError wraps any failure of the remote language-model call.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s summarization failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func upstream(provider string, err error) error {
	return &UpstreamError{Provider: provider, Err: err}
}
