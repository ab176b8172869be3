package memory

import (
	"context"
	"sync"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

// BookingRepository keeps per-session booking lists in process memory.
// Bookings are only ever appended or re-tagged, never removed.
type BookingRepository struct {
	mu       sync.RWMutex
	sessions map[string][]*domain.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{sessions: make(map[string][]*domain.Booking)}
}

func (r *BookingRepository) Add(_ context.Context, sessionID string, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dup := *booking
	r.sessions[sessionID] = append(r.sessions[sessionID], &dup)
	return nil
}

func (r *BookingRepository) List(_ context.Context, sessionID string) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.sessions[sessionID]
	out := make([]*domain.Booking, 0, len(list))
	for _, b := range list {
		dup := *b
		out = append(out, &dup)
	}
	return out, nil
}

func (r *BookingRepository) Get(_ context.Context, sessionID, bookingID string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.sessions[sessionID] {
		if b.ID == bookingID {
			dup := *b
			return &dup, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *BookingRepository) Update(_ context.Context, sessionID string, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.sessions[sessionID] {
		if b.ID == booking.ID {
			dup := *booking
			r.sessions[sessionID][i] = &dup
			return nil
		}
	}
	return domain.ErrBookingNotFound
}
