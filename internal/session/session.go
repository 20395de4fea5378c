package session

import "time"

// Session is a transcript plus its lazily computed summary.
// An empty Summary means it has not been generated yet.
type Session struct {
	ID           string
	Transcript   string
	Summary      string
	CreatedAt    time.Time
	SummarizedAt time.Time
}

// HasSummary reports whether the summary has been stored.
func (s Session) HasSummary() bool {
	return s.Summary != ""
}
