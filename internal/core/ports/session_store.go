package ports

import (
	"context"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

// SessionStore persists a logged-in user's identity under a fixed namespaced
// key per session id. At most one record exists per session; its presence is
// equivalent to "authenticated".
type SessionStore interface {
	// Save serializes and writes the session record.
	Save(ctx context.Context, sessionID string, user *domain.User) error

	// Load reads and deserializes the record. A missing key or content that
	// fails to parse is reported as domain.ErrNoSession; corrupt state is
	// discarded, never surfaced.
	Load(ctx context.Context, sessionID string) (*domain.User, error)

	// Clear removes the record. Clearing an absent record is a no-op.
	Clear(ctx context.Context, sessionID string) error
}
