package ports

import (
	"context"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

// BookingRepository holds the per-session booking lists. Bookings are
// ephemeral: they live only as long as the process and are never deleted,
// only re-tagged.
type BookingRepository interface {
	Add(ctx context.Context, sessionID string, booking *domain.Booking) error

	// List returns the session's bookings in creation order.
	List(ctx context.Context, sessionID string) ([]*domain.Booking, error)

	// Get returns the booking with the given id, or domain.ErrBookingNotFound.
	Get(ctx context.Context, sessionID, bookingID string) (*domain.Booking, error)

	// Update replaces the stored booking with the same id.
	Update(ctx context.Context, sessionID string, booking *domain.Booking) error
}
