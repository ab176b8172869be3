package ports

import (
	"context"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

// CreateBookingInput carries all data needed to reserve a lesson.
type CreateBookingInput struct {
	SessionID string
	MentorID  string
	// ClassID is optional; when empty the mentor's first class is used.
	ClassID string
	// Date is a calendar day in 2006-01-02 form. Required.
	Date string
	// TimeSlot is one of the fixed bookable slots. Required.
	TimeSlot string
	Notes    string
}

// BookingService defines the lesson reservation use cases.
type BookingService interface {
	// Create validates the submission, simulates processing latency and
	// synthesizes an "upcoming" booking bound to the session. The delay
	// honours ctx cancellation: a caller navigating away creates nothing.
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)

	// List returns the session's bookings, seeding the role-dependent demo
	// set on first access.
	List(ctx context.Context, sessionID, role string) ([]*domain.Booking, error)

	// Cancel transitions an upcoming booking to canceled. Cancelling a
	// booking that is not upcoming is a no-op; the booking stays listed.
	Cancel(ctx context.Context, sessionID, bookingID string) (*domain.Booking, error)
}
