package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

// SessionStore keeps session records in process memory. It is the default
// store when Redis is not configured, and the test double elsewhere.
// Records are stored serialized so load semantics match the Redis store:
// content that fails to parse reads as "no session".
type SessionStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewSessionStore() *SessionStore {
	return &SessionStore{slots: make(map[string][]byte)}
}

func (s *SessionStore) Save(_ context.Context, sessionID string, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[sessionID] = raw
	return nil
}

func (s *SessionStore) Load(_ context.Context, sessionID string) (*domain.User, error) {
	s.mu.RLock()
	raw, ok := s.slots[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrNoSession
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, domain.ErrNoSession
	}
	return &user, nil
}

func (s *SessionStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, sessionID)
	return nil
}
