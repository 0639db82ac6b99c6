// Package report derives attendance views by joining bookings against
// meetings. It never mutates either collection; a booking whose meeting no
// longer exists (the cascade-delete orphan window) renders as Unknown
// instead of failing the report.
package report

import (
	"context"
	"sort"
	"strconv"
	"time"

	"meetingBooker/internal/models"
)

// UnknownField fills meeting columns for bookings whose meeting id no
// longer resolves.
const UnknownField = "Unknown"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Source
type Source interface {
	GetAllMeetings(ctx context.Context) ([]models.Meeting, error)
	GetAllBookings(ctx context.Context) ([]models.Booking, error)
}

type Engine struct {
	src Source
	now func() time.Time
}

func NewEngine(src Source) *Engine {
	return NewEngineAt(src, time.Now)
}

// NewEngineAt takes an explicit time source so tests can pin "now".
func NewEngineAt(src Source, now func() time.Time) *Engine {
	return &Engine{
		src: src,
		now: now,
	}
}

type MeetingWithCounts struct {
	models.Meeting
	CurrentAttendees int  `json:"current_attendees"`
	SpotsRemaining   *int `json:"spots_remaining,omitempty"`
}

// MeetingsWithCounts powers the public listing. A failure to read bookings
// degrades to zero counts so the listing itself never breaks.
func (e *Engine) MeetingsWithCounts(ctx context.Context) ([]MeetingWithCounts, error) {
	meetings, err := e.src.GetAllMeetings(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	if bookings, err := e.src.GetAllBookings(ctx); err == nil {
		for _, b := range bookings {
			counts[b.MeetingID]++
		}
	}

	result := make([]MeetingWithCounts, 0, len(meetings))
	for _, m := range meetings {
		row := MeetingWithCounts{
			Meeting:          m,
			CurrentAttendees: counts[m.ID],
		}
		if m.MaxAttendees != nil {
			remaining := *m.MaxAttendees - row.CurrentAttendees
			if remaining < 0 {
				remaining = 0
			}
			row.SpotsRemaining = &remaining
		}
		result = append(result, row)
	}

	return result, nil
}

type BookingRow struct {
	BookingID       string    `json:"booking_id"`
	Email           string    `json:"email"`
	MeetingID       string    `json:"meeting_id"`
	MeetingTitle    string    `json:"meeting_title"`
	MeetingDate     string    `json:"meeting_date"`
	MeetingTime     string    `json:"meeting_time"`
	MeetingLocation string    `json:"meeting_location"`
	Capacity        string    `json:"capacity"`
	BookedAt        time.Time `json:"booked_at"`
}

// BookingReport left-joins every booking to its meeting, newest first.
func (e *Engine) BookingReport(ctx context.Context) ([]BookingRow, error) {
	meetings, err := e.src.GetAllMeetings(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := e.src.GetAllBookings(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Meeting, len(meetings))
	for _, m := range meetings {
		byID[m.ID] = m
	}

	rows := make([]BookingRow, 0, len(bookings))
	for _, b := range bookings {
		row := BookingRow{
			BookingID: b.ID,
			Email:     b.Email,
			MeetingID: b.MeetingID,
			// The denormalized title survives meeting deletion.
			MeetingTitle:    b.MeetingTitle,
			MeetingDate:     UnknownField,
			MeetingTime:     UnknownField,
			MeetingLocation: UnknownField,
			Capacity:        UnknownField,
			BookedAt:        b.BookedAt,
		}

		if m, ok := byID[b.MeetingID]; ok {
			row.MeetingTitle = m.Title
			row.MeetingDate = m.Date
			row.MeetingTime = m.Time
			row.MeetingLocation = m.Location
			row.Capacity = capacityLabel(m.MaxAttendees)
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].BookedAt.After(rows[j].BookedAt)
	})

	return rows, nil
}

type SummaryRow struct {
	MeetingID        string `json:"meeting_id"`
	Title            string `json:"title"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Location         string `json:"location"`
	CurrentAttendees int    `json:"current_attendees"`
	SpotsRemaining   string `json:"spots_remaining"`
}

// MeetingsSummary returns one row per meeting ordered by date then time.
func (e *Engine) MeetingsSummary(ctx context.Context) ([]SummaryRow, error) {
	meetings, err := e.src.GetAllMeetings(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := e.src.GetAllBookings(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, b := range bookings {
		counts[b.MeetingID]++
	}

	rows := make([]SummaryRow, 0, len(meetings))
	for _, m := range meetings {
		spots := "Unlimited"
		if m.MaxAttendees != nil {
			remaining := *m.MaxAttendees - counts[m.ID]
			if remaining < 0 {
				remaining = 0
			}
			spots = strconv.Itoa(remaining)
		}

		rows = append(rows, SummaryRow{
			MeetingID:        m.ID,
			Title:            m.Title,
			Date:             m.Date,
			Time:             m.Time,
			Location:         m.Location,
			CurrentAttendees: counts[m.ID],
			SpotsRemaining:   spots,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].Time < rows[j].Time
	})

	return rows, nil
}

type TopMeeting struct {
	MeetingID string `json:"meeting_id"`
	Title     string `json:"title"`
	Bookings  int    `json:"bookings"`
}

type Stats struct {
	TotalBookings    int              `json:"total_bookings"`
	TotalMeetings    int              `json:"total_meetings"`
	DistinctEmails   int              `json:"distinct_emails"`
	UpcomingMeetings int              `json:"upcoming_meetings"`
	PastMeetings     int              `json:"past_meetings"`
	TopMeetings      []TopMeeting     `json:"top_meetings"`
	RecentBookings   []models.Booking `json:"recent_bookings"`
}

func (e *Engine) AdminStats(ctx context.Context) (Stats, error) {
	meetings, err := e.src.GetAllMeetings(ctx)
	if err != nil {
		return Stats{}, err
	}

	bookings, err := e.src.GetAllBookings(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TotalBookings: len(bookings),
		TotalMeetings: len(meetings),
	}

	emails := map[string]struct{}{}
	counts := map[string]int{}
	for _, b := range bookings {
		emails[b.Email] = struct{}{}
		counts[b.MeetingID]++
	}
	stats.DistinctEmails = len(emails)

	now := e.now()
	for _, m := range meetings {
		if m.StartAt.Before(now) {
			stats.PastMeetings++
		} else {
			stats.UpcomingMeetings++
		}
	}

	top := make([]TopMeeting, 0, len(meetings))
	for _, m := range meetings {
		top = append(top, TopMeeting{
			MeetingID: m.ID,
			Title:     m.Title,
			Bookings:  counts[m.ID],
		})
	}
	// Stable sort keeps the original meeting order on ties.
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Bookings > top[j].Bookings
	})
	if len(top) > 5 {
		top = top[:5]
	}
	stats.TopMeetings = top

	recent := make([]models.Booking, len(bookings))
	copy(recent, bookings)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].BookedAt.After(recent[j].BookedAt)
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}
	stats.RecentBookings = recent

	return stats, nil
}

func capacityLabel(max *int) string {
	if max == nil {
		return "Unlimited"
	}
	return strconv.Itoa(*max)
}
