package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

// keyPrefix is the fixed namespace for session records.
const keyPrefix = "saberviver:session:"

const defaultSessionTTL = 24 * time.Hour

// SessionStore persists session records in Redis under namespaced keys with
// a TTL, so abandoned sessions expire on their own.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore wraps the given client. A non-positive ttl falls back to
// the default.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Save(ctx context.Context, sessionID string, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	return s.client.Set(ctx, s.key(sessionID), raw, s.ttl).Err()
}

func (s *SessionStore) Load(ctx context.Context, sessionID string) (*domain.User, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("load session record: %w", err)
	}

	// Malformed stored content is treated as "no session", not an error.
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, domain.ErrNoSession
	}
	return &user, nil
}

func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	// DEL on an absent key is a no-op, which keeps Clear idempotent.
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

func (s *SessionStore) key(sessionID string) string {
	return keyPrefix + sessionID
}
