package domain

import "errors"

var (
	// ErrInvalidCredentials is returned by login when no credential tuple
	// matches; the session is left unchanged.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoSession is the absence value for session lookups. Malformed
	// persisted records are reported as ErrNoSession, never as a parse error.
	ErrNoSession = errors.New("no session available")

	ErrMentorNotFound  = errors.New("mentor not found")
	ErrClassNotFound   = errors.New("class not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrIncompleteBooking is returned when a booking submission is missing
	// its date or time slot. No state is mutated; resubmission is allowed.
	ErrIncompleteBooking = errors.New("booking requires a date and a time slot")

	// ErrInvalidSlot is returned when the requested slot is not one of the
	// fixed bookable slots.
	ErrInvalidSlot = errors.New("time slot is not available")

	// ErrDateOutOfRange is returned when the requested date is before today
	// or more than three calendar months ahead.
	ErrDateOutOfRange = errors.New("date must be between today and three months from now")
)
