package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/saberviver/mentorship-api/internal/core/domain"
	"github.com/saberviver/mentorship-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

// BookingService implements the lesson reservation flow. There is no remote
// dependency behind it; the processing delay simulates one and cannot fail,
// so no retry is modelled.
type BookingService struct {
	mentors  ports.MentorRepository
	bookings ports.BookingRepository
	delay    time.Duration
	logger   zerolog.Logger
}

func NewBookingService(mentors ports.MentorRepository, bookings ports.BookingRepository, delay time.Duration, logger zerolog.Logger) *BookingService {
	return &BookingService{
		mentors:  mentors,
		bookings: bookings,
		delay:    delay,
		logger:   logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if input.Date == "" || input.TimeSlot == "" {
		return nil, domain.ErrIncompleteBooking
	}
	if !domain.ValidTimeSlot(input.TimeSlot) {
		return nil, domain.ErrInvalidSlot
	}

	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		return nil, domain.ErrIncompleteBooking
	}
	if err := checkDateWindow(date, time.Now().UTC()); err != nil {
		return nil, err
	}

	mentor, err := s.mentors.FindByID(ctx, input.MentorID)
	if err != nil {
		return nil, err
	}

	class, err := resolveClass(mentor, input.ClassID)
	if err != nil {
		return nil, err
	}

	// Simulated network latency. Cancelling ctx (caller navigated away)
	// aborts before anything is created.
	if err := s.simulateProcessing(ctx); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:                  uuid.NewString(),
		CounterpartName:     mentor.Name,
		CounterpartPhotoURL: mentor.PhotoURL,
		ClassName:           class.Title,
		Date:                input.Date,
		Time:                input.TimeSlot,
		Notes:               input.Notes,
		Status:              domain.StatusUpcoming,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.bookings.Add(ctx, input.SessionID, booking); err != nil {
		s.logger.Error().Err(err).Str("mentor_id", input.MentorID).Msg("failed to store booking")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("mentor_id", input.MentorID).
		Str("class", class.Title).
		Str("date", input.Date).
		Str("slot", input.TimeSlot).
		Msg("booking created")

	return booking, nil
}

func (s *BookingService) List(ctx context.Context, sessionID, role string) ([]*domain.Booking, error) {
	list, err := s.bookings.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(list) > 0 {
		return list, nil
	}

	// First dashboard visit for this session: seed the demo bookings.
	for _, b := range demoBookings(role) {
		if err := s.bookings.Add(ctx, sessionID, b); err != nil {
			return nil, err
		}
	}
	return s.bookings.List(ctx, sessionID)
}

func (s *BookingService) Cancel(ctx context.Context, sessionID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.Get(ctx, sessionID, bookingID)
	if err != nil {
		return nil, err
	}

	// Re-cancelling, or cancelling a completed booking, is a no-op. The
	// booking is never removed from the list.
	if !booking.Status.CanTransitionTo(domain.StatusCanceled) {
		return booking, nil
	}

	booking.Status = domain.StatusCanceled
	if err := s.bookings.Update(ctx, sessionID, booking); err != nil {
		return nil, err
	}

	s.logger.Info().Str("booking_id", booking.ID).Msg("booking canceled")
	return booking, nil
}

// simulateProcessing blocks for the configured delay or until ctx is done,
// whichever comes first.
func (s *BookingService) simulateProcessing(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// checkDateWindow enforces the selectable range: not earlier than the current
// calendar day, not later than three calendar months from now, both bounds
// inclusive.
func checkDateWindow(date, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	latest := today.AddDate(0, 3, 0)

	if date.Before(today) || date.After(latest) {
		return domain.ErrDateOutOfRange
	}
	return nil
}

// resolveClass picks the class with the given id, falling back to the
// mentor's first class when no id is provided.
func resolveClass(mentor *domain.Mentor, classID string) (*domain.MentorClass, error) {
	if classID != "" {
		class := mentor.ClassByID(classID)
		if class == nil {
			return nil, domain.ErrClassNotFound
		}
		return class, nil
	}
	if len(mentor.Classes) == 0 {
		return nil, domain.ErrClassNotFound
	}
	return &mentor.Classes[0], nil
}

// demoBookings returns the role-dependent dashboard seed: learners see their
// booked lessons, mentors see the lessons they will teach.
func demoBookings(role string) []*domain.Booking {
	now := time.Now().UTC()
	upcoming := now.AddDate(0, 0, 5).Format(dateLayout)
	past := now.AddDate(0, 0, -5).Format(dateLayout)

	if role == domain.RoleMentor {
		return []*domain.Booking{
			{
				ID:                  uuid.NewString(),
				CounterpartName:     "João Pereira",
				CounterpartPhotoURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e",
				ClassName:           "Aprenda a fazer bainha",
				Date:                upcoming,
				Time:                "14:00",
				Status:              domain.StatusUpcoming,
				CreatedAt:           now,
			},
			{
				ID:                  uuid.NewString(),
				CounterpartName:     "Maria Oliveira",
				CounterpartPhotoURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
				ClassName:           "Customização de roupas",
				Date:                upcoming,
				Time:                "15:00",
				Status:              domain.StatusUpcoming,
				CreatedAt:           now,
			},
		}
	}

	return []*domain.Booking{
		{
			ID:                  uuid.NewString(),
			CounterpartName:     "Doroteia Silva",
			CounterpartPhotoURL: "/lovable-uploads/5cc21906-e3d5-4796-9da4-1ae84e78820d.png",
			ClassName:           "Aprenda a fazer bainha",
			Date:                upcoming,
			Time:                "14:00",
			Status:              domain.StatusUpcoming,
			CreatedAt:           now,
		},
		{
			ID:                  uuid.NewString(),
			CounterpartName:     "Carlos Mendes",
			CounterpartPhotoURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e",
			ClassName:           "Pratos típicos brasileiros",
			Date:                past,
			Time:                "10:00",
			Status:              domain.StatusCompleted,
			CreatedAt:           now,
		},
	}
}
