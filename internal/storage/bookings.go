package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"meetingBooker/internal/models"
	"meetingBooker/internal/storage/docstore"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func (s *Storage) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, _, err := s.loadBookings(ctx)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// CreateBooking is the admission check: a booking is admitted only when the
// meeting exists, the email holds no booking for it yet, none of the email's
// other bookings occupy an overlapping time slot, and the meeting is under
// its max attendee bound. The whole check-then-append sequence runs
// against one loaded revision of the bookings document; when the save loses
// the revision race the sequence restarts, so the checks always hold for
// the state that actually gets persisted. Returns the booking and the new
// attendee count.
func (s *Storage) CreateBooking(ctx context.Context, email, meetingID string) (models.Booking, int, error) {
	if !emailPattern.MatchString(email) {
		return models.Booking{}, 0, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if meetingID == "" {
		return models.Booking{}, 0, fmt.Errorf("%w: meeting id is required", ErrValidation)
	}

	for attempt := 0; attempt < saveAttempts; attempt++ {
		meetings, _, err := s.loadMeetings(ctx)
		if err != nil {
			return models.Booking{}, 0, err
		}

		var meeting *models.Meeting
		byID := make(map[string]models.Meeting, len(meetings))
		for i := range meetings {
			byID[meetings[i].ID] = meetings[i]
			if meetings[i].ID == meetingID {
				meeting = &meetings[i]
			}
		}
		if meeting == nil {
			return models.Booking{}, 0, ErrMeetingNotFound
		}

		bookings, doc, err := s.loadBookings(ctx)
		if err != nil {
			return models.Booking{}, 0, err
		}

		targetStart := meeting.StartAt
		targetEnd := targetStart.Add(time.Duration(meeting.DurationMinutes) * time.Minute)

		attendees := 0
		for _, b := range bookings {
			if b.MeetingID == meetingID {
				if b.Email == email {
					return models.Booking{}, 0, ErrAlreadyBooked
				}
				attendees++
				continue
			}
			if b.Email != email {
				continue
			}

			// Bookings whose meeting no longer exists have no time window.
			other, ok := byID[b.MeetingID]
			if !ok {
				continue
			}

			otherEnd := other.StartAt.Add(time.Duration(other.DurationMinutes) * time.Minute)
			if other.StartAt.Before(targetEnd) && targetStart.Before(otherEnd) {
				return models.Booking{}, 0, fmt.Errorf("%w: overlaps %q", ErrSlotConflict, other.Title)
			}
		}

		if meeting.MaxAttendees != nil && attendees >= *meeting.MaxAttendees {
			return models.Booking{}, 0, ErrAtCapacity
		}

		booking := models.Booking{
			ID:           s.newID(),
			Email:        email,
			MeetingID:    meetingID,
			MeetingTitle: meeting.Title,
			BookedAt:     s.now(),
		}

		bookings = append(bookings, booking)

		err = s.saveBookings(ctx, doc, bookings)
		if errors.Is(err, docstore.ErrRevisionConflict) {
			continue
		}
		if err != nil {
			return models.Booking{}, 0, fmt.Errorf("failed to save bookings: %w", err)
		}

		return booking, attendees + 1, nil
	}

	return models.Booking{}, 0, fmt.Errorf("failed to save bookings: %w", docstore.ErrRevisionConflict)
}

func (s *Storage) DeleteBooking(ctx context.Context, id string) (models.Booking, error) {
	for attempt := 0; attempt < saveAttempts; attempt++ {
		bookings, doc, err := s.loadBookings(ctx)
		if err != nil {
			return models.Booking{}, err
		}

		idx := -1
		for i, b := range bookings {
			if b.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return models.Booking{}, ErrBookingNotFound
		}

		removed := bookings[idx]
		bookings = append(bookings[:idx], bookings[idx+1:]...)

		err = s.saveBookings(ctx, doc, bookings)
		if errors.Is(err, docstore.ErrRevisionConflict) {
			continue
		}
		if err != nil {
			return models.Booking{}, fmt.Errorf("failed to save bookings: %w", err)
		}

		return removed, nil
	}

	return models.Booking{}, fmt.Errorf("failed to save bookings: %w", docstore.ErrRevisionConflict)
}
