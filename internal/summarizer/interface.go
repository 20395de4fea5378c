package summarizer

import "context"

// Summarizer turns a session transcript into a narrative summary.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
