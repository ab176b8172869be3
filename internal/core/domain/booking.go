package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "upcoming"
	StatusCompleted BookingStatus = "completed"
	StatusCanceled  BookingStatus = "canceled"
)

// validTransitions defines the allowed state machine transitions. A booking
// is never deleted, only re-tagged.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusUpcoming: {StatusCompleted, StatusCanceled},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is a simulated lesson reservation. It lives only for the session
// that created it and is never persisted.
type Booking struct {
	ID                  string        `json:"id"`
	CounterpartName     string        `json:"counterpart_name"`
	CounterpartPhotoURL string        `json:"counterpart_photo_url,omitempty"`
	ClassName           string        `json:"class_name"`
	Date                string        `json:"date"`
	Time                string        `json:"time"`
	Notes               string        `json:"notes,omitempty"`
	Status              BookingStatus `json:"status"`
	CreatedAt           time.Time     `json:"created_at"`
}

// TimeSlots is the fixed set of bookable slot strings.
var TimeSlots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

// ValidTimeSlot reports whether slot is one of TimeSlots.
func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
