package session

import "context"

// SummarizeFunc produces a summary for the given transcript.
type SummarizeFunc func(ctx context.Context, transcript string) (string, error)

// Store keeps sessions for the lifetime of the process.
type Store interface {
	Create(transcript string) (Session, error)
	Get(id string) (Session, error)
	SetSummary(id, summary string) (Session, error)
	// Summarize returns the cached summary or computes it once with fn.
	Summarize(ctx context.Context, id string, fn SummarizeFunc) (string, error)
	Len() int
}
