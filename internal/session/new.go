package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type implStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	flight   singleflight.Group
	now      func() time.Time
	newID    func() string
}

// New creates an empty in-memory Store.
func New() Store {
	return &implStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
		newID:    newID,
	}
}

// newID returns 32 hex characters from a random v4 UUID.
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
