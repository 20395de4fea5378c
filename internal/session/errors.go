package session

import "errors"

var (
	ErrNotFound          = errors.New("session not found")
	ErrMissingTranscript = errors.New("transcript missing")
	ErrEmptySummary      = errors.New("summary is empty")
)
