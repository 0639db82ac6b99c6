package storage

import "errors"

// Sentinel errors shared by the meeting and booking repositories. Handlers
// distinguish failure kinds with errors.Is and translate them into HTTP
// statuses: ErrValidation maps to 400, the not-found pair to 404, and
// ErrAlreadyBooked / ErrAtCapacity / ErrSlotConflict to 409.
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyBooked is returned when the same email already holds a
	// booking for the meeting.
	ErrAlreadyBooked = errors.New("already booked")

	// ErrAtCapacity is returned when the meeting's max attendee bound has
	// been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrSlotConflict is returned when the email already holds a booking
	// for another meeting whose time window overlaps the target's.
	ErrSlotConflict = errors.New("time slot conflict")

	// ErrValidation wraps all malformed-input failures; the wrapped message
	// carries the detail.
	ErrValidation = errors.New("invalid input")
)
