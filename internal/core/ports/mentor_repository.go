package ports

import (
	"context"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

// MentorRepository exposes the mentor catalog. The default implementation is
// a static in-memory dataset; the interface exists so a real backend can
// satisfy the same contract without touching session or booking logic.
type MentorRepository interface {
	// List returns the full catalog in insertion order, the same order on
	// every call.
	List(ctx context.Context) ([]*domain.Mentor, error)

	// FindByID returns the mentor with the given id, or domain.ErrMentorNotFound.
	FindByID(ctx context.Context, id string) (*domain.Mentor, error)

	// Skills returns the static skill list in insertion order.
	Skills(ctx context.Context) ([]domain.Skill, error)
}
