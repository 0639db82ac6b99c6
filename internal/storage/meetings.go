package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meetingBooker/internal/models"
	"meetingBooker/internal/storage/docstore"
)

type CreateMeetingInput struct {
	Title           string
	Description     string
	Date            string
	Time            string
	DurationMinutes int
	Location        string
	MinAttendees    *int
	MaxAttendees    *int
}

// UpdateMeetingInput carries a partial update; nil fields are left untouched.
type UpdateMeetingInput struct {
	Title           *string
	Description     *string
	Date            *string
	Time            *string
	DurationMinutes *int
	Location        *string
	MinAttendees    *int
	MaxAttendees    *int
}

func (s *Storage) GetAllMeetings(ctx context.Context) ([]models.Meeting, error) {
	meetings, _, err := s.loadMeetings(ctx)
	if err != nil {
		return nil, err
	}

	return meetings, nil
}

func (s *Storage) GetMeeting(ctx context.Context, id string) (models.Meeting, error) {
	meetings, _, err := s.loadMeetings(ctx)
	if err != nil {
		return models.Meeting{}, err
	}

	for _, m := range meetings {
		if m.ID == id {
			return m, nil
		}
	}

	return models.Meeting{}, ErrMeetingNotFound
}

func (s *Storage) CreateMeeting(ctx context.Context, input CreateMeetingInput) (models.Meeting, error) {
	if input.Title == "" || input.Date == "" || input.Time == "" {
		return models.Meeting{}, fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if input.DurationMinutes <= 0 {
		return models.Meeting{}, fmt.Errorf("%w: invalid duration", ErrValidation)
	}
	if err := validateAttendeeBounds(input.MinAttendees, input.MaxAttendees); err != nil {
		return models.Meeting{}, err
	}

	startAt, err := combineDateTime(input.Date, input.Time)
	if err != nil {
		return models.Meeting{}, fmt.Errorf("%w: invalid date/time", ErrValidation)
	}

	for attempt := 0; attempt < saveAttempts; attempt++ {
		meetings, doc, err := s.loadMeetings(ctx)
		if err != nil {
			return models.Meeting{}, err
		}

		now := s.now()
		meeting := models.Meeting{
			ID:              s.newID(),
			Title:           input.Title,
			Description:     input.Description,
			Date:            input.Date,
			Time:            input.Time,
			StartAt:         startAt,
			DurationMinutes: input.DurationMinutes,
			Location:        input.Location,
			MinAttendees:    input.MinAttendees,
			MaxAttendees:    input.MaxAttendees,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		meetings = append(meetings, meeting)

		err = s.saveMeetings(ctx, doc, meetings)
		if errors.Is(err, docstore.ErrRevisionConflict) {
			continue
		}
		if err != nil {
			return models.Meeting{}, fmt.Errorf("failed to save meetings: %w", err)
		}

		return meeting, nil
	}

	return models.Meeting{}, fmt.Errorf("failed to save meetings: %w", docstore.ErrRevisionConflict)
}

func (s *Storage) UpdateMeeting(ctx context.Context, id string, input UpdateMeetingInput) (models.Meeting, error) {
	for attempt := 0; attempt < saveAttempts; attempt++ {
		meetings, doc, err := s.loadMeetings(ctx)
		if err != nil {
			return models.Meeting{}, err
		}

		idx := -1
		for i, m := range meetings {
			if m.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return models.Meeting{}, ErrMeetingNotFound
		}

		meeting := meetings[idx]
		if input.Title != nil {
			meeting.Title = *input.Title
		}
		if input.Description != nil {
			meeting.Description = *input.Description
		}
		if input.Date != nil {
			meeting.Date = *input.Date
		}
		if input.Time != nil {
			meeting.Time = *input.Time
		}
		if input.DurationMinutes != nil {
			meeting.DurationMinutes = *input.DurationMinutes
		}
		if input.Location != nil {
			meeting.Location = *input.Location
		}
		if input.MinAttendees != nil {
			meeting.MinAttendees = input.MinAttendees
		}
		if input.MaxAttendees != nil {
			meeting.MaxAttendees = input.MaxAttendees
		}

		if meeting.Title == "" || meeting.Date == "" || meeting.Time == "" {
			return models.Meeting{}, fmt.Errorf("%w: missing required fields", ErrValidation)
		}
		if meeting.DurationMinutes <= 0 {
			return models.Meeting{}, fmt.Errorf("%w: invalid duration", ErrValidation)
		}
		if err = validateAttendeeBounds(meeting.MinAttendees, meeting.MaxAttendees); err != nil {
			return models.Meeting{}, err
		}

		meeting.StartAt, err = combineDateTime(meeting.Date, meeting.Time)
		if err != nil {
			return models.Meeting{}, fmt.Errorf("%w: invalid date/time", ErrValidation)
		}

		meeting.UpdatedAt = s.now()
		meetings[idx] = meeting

		err = s.saveMeetings(ctx, doc, meetings)
		if errors.Is(err, docstore.ErrRevisionConflict) {
			continue
		}
		if err != nil {
			return models.Meeting{}, fmt.Errorf("failed to save meetings: %w", err)
		}

		return meeting, nil
	}

	return models.Meeting{}, fmt.Errorf("failed to save meetings: %w", docstore.ErrRevisionConflict)
}

// DeleteMeeting removes the meeting and cascades to its bookings, returning
// the removed meeting and how many bookings went with it. The two documents
// are saved independently: if the bookings save fails after the meeting is
// gone, orphan bookings remain and reports render their meeting as Unknown.
func (s *Storage) DeleteMeeting(ctx context.Context, id string) (models.Meeting, int, error) {
	var removed models.Meeting

	for attempt := 0; ; attempt++ {
		meetings, doc, err := s.loadMeetings(ctx)
		if err != nil {
			return models.Meeting{}, 0, err
		}

		idx := -1
		for i, m := range meetings {
			if m.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return models.Meeting{}, 0, ErrMeetingNotFound
		}

		removed = meetings[idx]
		meetings = append(meetings[:idx], meetings[idx+1:]...)

		err = s.saveMeetings(ctx, doc, meetings)
		if errors.Is(err, docstore.ErrRevisionConflict) {
			if attempt+1 < saveAttempts {
				continue
			}
			return models.Meeting{}, 0, fmt.Errorf("failed to save meetings: %w", err)
		}
		if err != nil {
			return models.Meeting{}, 0, fmt.Errorf("failed to save meetings: %w", err)
		}

		break
	}

	removedBookings := 0

	for attempt := 0; ; attempt++ {
		bookings, doc, err := s.loadBookings(ctx)
		if err != nil {
			return removed, 0, fmt.Errorf("meeting deleted but bookings not removed: %w", err)
		}

		kept := bookings[:0:0]
		removedBookings = 0
		for _, b := range bookings {
			if b.MeetingID == id {
				removedBookings++
				continue
			}
			kept = append(kept, b)
		}

		if removedBookings == 0 {
			break
		}

		err = s.saveBookings(ctx, doc, kept)
		if errors.Is(err, docstore.ErrRevisionConflict) {
			if attempt+1 < saveAttempts {
				continue
			}
			return removed, 0, fmt.Errorf("meeting deleted but bookings not removed: %w", err)
		}
		if err != nil {
			return removed, 0, fmt.Errorf("meeting deleted but bookings not removed: %w", err)
		}

		break
	}

	return removed, removedBookings, nil
}

func validateAttendeeBounds(min, max *int) error {
	if min != nil && *min <= 0 {
		return fmt.Errorf("%w: min attendees must be positive", ErrValidation)
	}
	if max != nil && *max <= 0 {
		return fmt.Errorf("%w: max attendees must be positive", ErrValidation)
	}
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("%w: min attendees greater than max", ErrValidation)
	}

	return nil
}

func combineDateTime(date, timeOfDay string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", date+" "+timeOfDay)
}
