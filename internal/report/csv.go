package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
)

// Export types selectable on the CSV endpoint.
const (
	TypeBookings = "bookings"
	TypeMeetings = "meetings"
	TypeCombined = "combined"
)

var ErrUnknownReportType = errors.New("unknown report type")

// RenderCSV writes one report as RFC 4180 CSV. "bookings" is the raw
// booking list, "meetings" the per-meeting summary, "combined" every
// booking joined with its meeting details.
func (e *Engine) RenderCSV(ctx context.Context, reportType string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	switch reportType {
	case TypeBookings:
		bookings, err := e.src.GetAllBookings(ctx)
		if err != nil {
			return nil, err
		}

		w.Write([]string{"booking_id", "email", "meeting_id", "meeting_title", "booked_at"})
		for _, b := range bookings {
			w.Write([]string{b.ID, b.Email, b.MeetingID, b.MeetingTitle, b.BookedAt.Format(timeLayout)})
		}

	case TypeMeetings:
		rows, err := e.MeetingsSummary(ctx)
		if err != nil {
			return nil, err
		}

		w.Write([]string{"meeting_id", "title", "date", "time", "location", "current_attendees", "spots_remaining"})
		for _, r := range rows {
			w.Write([]string{r.MeetingID, r.Title, r.Date, r.Time, r.Location, strconv.Itoa(r.CurrentAttendees), r.SpotsRemaining})
		}

	case TypeCombined:
		rows, err := e.BookingReport(ctx)
		if err != nil {
			return nil, err
		}

		w.Write([]string{"booking_id", "email", "meeting_title", "meeting_date", "meeting_time", "meeting_location", "capacity", "booked_at"})
		for _, r := range rows {
			w.Write([]string{r.BookingID, r.Email, r.MeetingTitle, r.MeetingDate, r.MeetingTime, r.MeetingLocation, r.Capacity, r.BookedAt.Format(timeLayout)})
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, reportType)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}

	return buf.Bytes(), nil
}

const timeLayout = "2006-01-02 15:04:05"
