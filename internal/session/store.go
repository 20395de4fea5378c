package session

import (
	"context"
	"fmt"
	"strings"
)

func (s *implStore) Create(transcript string) (Session, error) {
	sess := &Session{
		ID:         s.newID(),
		Transcript: transcript,
		CreatedAt:  s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sess.ID]; exists {
		return Session{}, fmt.Errorf("session id collision: %s", sess.ID)
	}
	s.sessions[sess.ID] = sess
	return *sess, nil
}

func (s *implStore) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return *sess, nil
}

// SetSummary stores summary unless one is already present, in which case
// the stored value is kept and returned.
func (s *implStore) SetSummary(id, summary string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if !sess.HasSummary() {
		sess.Summary = summary
		sess.SummarizedAt = s.now()
	}
	return *sess, nil
}

func (s *implStore) Summarize(ctx context.Context, id string, fn SummarizeFunc) (string, error) {
	sess, err := s.Get(id)
	if err != nil {
		return "", err
	}
	if sess.HasSummary() {
		return sess.Summary, nil
	}

	// the computation outlives any one caller; each caller only stops waiting
	flightCtx := context.WithoutCancel(ctx)

	ch := s.flight.DoChan(id, func() (interface{}, error) {
		// a previous flight may have finished between Get and DoChan
		current, err := s.Get(id)
		if err != nil {
			return "", err
		}
		if current.HasSummary() {
			return current.Summary, nil
		}

		transcript := strings.TrimSpace(current.Transcript)
		if transcript == "" {
			return "", ErrMissingTranscript
		}

		summary, err := fn(flightCtx, transcript)
		if err != nil {
			return "", err
		}
		summary = strings.TrimSpace(summary)
		if summary == "" {
			return "", ErrEmptySummary
		}

		stored, err := s.SetSummary(id, summary)
		if err != nil {
			return "", err
		}
		return stored.Summary, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (s *implStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
