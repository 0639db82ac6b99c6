// Package storage implements the meeting and booking repositories over a
// versioned document store.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"meetingBooker/internal/models"
	"meetingBooker/internal/storage/docstore"
)

const (
	meetingsKey = "meetings"
	bookingsKey = "bookings"
)

// saveAttempts bounds the read-modify-write retry loop when a concurrent
// writer bumps the document revision between our load and save.
const saveAttempts = 5

// Storage implements the meeting and booking repositories over a versioned
// document store. Every mutation loads the whole collection, changes it in
// memory and saves it back under the loaded revision; a revision conflict
// restarts the sequence, which is what keeps the capacity and
// duplicate-booking invariants intact under concurrent requests.
type Storage struct {
	store docstore.Store

	now   func() time.Time
	newID func() string
}

func New(store docstore.Store) *Storage {
	return &Storage{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Storage) loadMeetings(ctx context.Context) ([]models.Meeting, docstore.Document, error) {
	doc, found, err := s.store.Load(ctx, meetingsKey)
	if err != nil {
		return nil, docstore.Document{}, fmt.Errorf("failed to load meetings: %w", err)
	}

	var meetings []models.Meeting
	if found && len(doc.Records) > 0 {
		if err = json.Unmarshal(doc.Records, &meetings); err != nil {
			return nil, docstore.Document{}, fmt.Errorf("failed to decode meetings: %w", err)
		}
	}

	return meetings, doc, nil
}

func (s *Storage) loadBookings(ctx context.Context) ([]models.Booking, docstore.Document, error) {
	doc, found, err := s.store.Load(ctx, bookingsKey)
	if err != nil {
		return nil, docstore.Document{}, fmt.Errorf("failed to load bookings: %w", err)
	}

	var bookings []models.Booking
	if found && len(doc.Records) > 0 {
		if err = json.Unmarshal(doc.Records, &bookings); err != nil {
			return nil, docstore.Document{}, fmt.Errorf("failed to decode bookings: %w", err)
		}
	}

	return bookings, doc, nil
}

func (s *Storage) saveMeetings(ctx context.Context, doc docstore.Document, meetings []models.Meeting) error {
	records, err := json.Marshal(meetings)
	if err != nil {
		return fmt.Errorf("failed to encode meetings: %w", err)
	}

	doc.Records = records

	return s.store.Save(ctx, meetingsKey, doc)
}

func (s *Storage) saveBookings(ctx context.Context, doc docstore.Document, bookings []models.Booking) error {
	records, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to encode bookings: %w", err)
	}

	doc.Records = records

	return s.store.Save(ctx, bookingsKey, doc)
}
