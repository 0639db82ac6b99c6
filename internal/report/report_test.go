package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meetingBooker/internal/models"
	"meetingBooker/internal/report"
	"meetingBooker/internal/report/mocks"
)

func intPtr(n int) *int {
	return &n
}

func meeting(id, title, date, timeOfDay string, max *int) models.Meeting {
	startAt, _ := time.Parse("2006-01-02 15:04", date+" "+timeOfDay)

	return models.Meeting{
		ID:              id,
		Title:           title,
		Date:            date,
		Time:            timeOfDay,
		StartAt:         startAt,
		DurationMinutes: 60,
		MaxAttendees:    max,
	}
}

func booking(id, email, meetingID string, bookedAt time.Time) models.Booking {
	return models.Booking{
		ID:        id,
		Email:     email,
		MeetingID: meetingID,
		BookedAt:  bookedAt,
	}
}

func TestMeetingsWithCountsEmptyStore(t *testing.T) {
	t.Parallel()

	src := mocks.NewSource(t)
	src.On("GetAllMeetings", mock.Anything).Return(nil, nil)
	src.On("GetAllBookings", mock.Anything).Return(nil, nil)

	engine := report.NewEngine(src)

	rows, err := engine.MeetingsWithCounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMeetingsWithCounts(t *testing.T) {
	t.Parallel()

	src := mocks.NewSource(t)
	src.On("GetAllMeetings", mock.Anything).Return([]models.Meeting{
		meeting("m-1", "Intro", "2025-06-15", "14:00", intPtr(3)),
		meeting("m-2", "Open house", "2025-06-16", "10:00", nil),
	}, nil)
	src.On("GetAllBookings", mock.Anything).Return([]models.Booking{
		booking("b-1", "a@x.com", "m-1", time.Now()),
		booking("b-2", "b@x.com", "m-1", time.Now()),
		booking("b-3", "c@x.com", "m-2", time.Now()),
	}, nil)

	engine := report.NewEngine(src)

	rows, err := engine.MeetingsWithCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].CurrentAttendees)
	require.NotNil(t, rows[0].SpotsRemaining)
	assert.Equal(t, 1, *rows[0].SpotsRemaining)

	assert.Equal(t, 1, rows[1].CurrentAttendees)
	assert.Nil(t, rows[1].SpotsRemaining, "unbounded meeting has no spots figure")
}

func TestMeetingsWithCountsDegradesOnBookingsFailure(t *testing.T) {
	t.Parallel()

	src := mocks.NewSource(t)
	src.On("GetAllMeetings", mock.Anything).Return([]models.Meeting{
		meeting("m-1", "Intro", "2025-06-15", "14:00", intPtr(3)),
	}, nil)
	src.On("GetAllBookings", mock.Anything).Return(nil, errors.New("store is down"))

	engine := report.NewEngine(src)

	rows, err := engine.MeetingsWithCounts(context.Background())
	require.NoError(t, err, "a bookings read failure must not break the listing")
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].CurrentAttendees)
}

func TestBookingReportUnknownMeeting(t *testing.T) {
	t.Parallel()

	older := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)

	orphan := booking("b-1", "a@x.com", "gone", older)
	orphan.MeetingTitle = "Deleted meeting"

	src := mocks.NewSource(t)
	src.On("GetAllMeetings", mock.Anything).Return([]models.Meeting{
		meeting("m-1", "Intro", "2025-06-15", "14:00", intPtr(5)),
	}, nil)
	src.On("GetAllBookings", mock.Anything).Return([]models.Booking{
		orphan,
		booking("b-2", "b@x.com", "m-1", newer),
	}, nil)

	engine := report.NewEngine(src)

	rows, err := engine.BookingReport(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Newest first.
	assert.Equal(t, "b-2", rows[0].BookingID)
	assert.Equal(t, "Intro", rows[0].MeetingTitle)
	assert.Equal(t, "5", rows[0].Capacity)

	assert.Equal(t, "b-1", rows[1].BookingID)
	assert.Equal(t, "Deleted meeting", rows[1].MeetingTitle,
		"denormalized title survives the meeting")
	assert.Equal(t, report.UnknownField, rows[1].MeetingDate)
	assert.Equal(t, report.UnknownField, rows[1].MeetingTime)
	assert.Equal(t, report.UnknownField, rows[1].Capacity)
}

func TestMeetingsSummarySortedByDateTime(t *testing.T) {
	t.Parallel()

	src := mocks.NewSource(t)
	src.On("GetAllMeetings", mock.Anything).Return([]models.Meeting{
		meeting("m-1", "Late June", "2025-06-20", "09:00", nil),
		meeting("m-2", "Early June afternoon", "2025-06-15", "15:00", intPtr(2)),
		meeting("m-3", "Early June morning", "2025-06-15", "09:00", nil),
	}, nil)
	src.On("GetAllBookings", mock.Anything).Return([]models.Booking{
		booking("b-1", "a@x.com", "m-2", time.Now()),
		booking("b-2", "b@x.com", "m-2", time.Now()),
		booking("b-3", "c@x.com", "m-2", time.Now()),
	}, nil)

	engine := report.NewEngine(src)

	rows, err := engine.MeetingsSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "m-3", rows[0].MeetingID)
	assert.Equal(t, "m-2", rows[1].MeetingID)
	assert.Equal(t, "m-1", rows[2].MeetingID)

	assert.Equal(t, "Unlimited", rows[0].SpotsRemaining)
	assert.Equal(t, "0", rows[1].SpotsRemaining, "overbooked legacy data clamps to zero")
	assert.Equal(t, 3, rows[1].CurrentAttendees)
}

func TestAdminStats(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	meetings := []models.Meeting{
		meeting("m-1", "Past", "2025-05-01", "10:00", nil),
		meeting("m-2", "Upcoming A", "2025-07-01", "10:00", nil),
		meeting("m-3", "Upcoming B", "2025-07-02", "10:00", nil),
		meeting("m-4", "Upcoming C", "2025-07-03", "10:00", nil),
		meeting("m-5", "Upcoming D", "2025-07-04", "10:00", nil),
		meeting("m-6", "Upcoming E", "2025-07-05", "10:00", nil),
	}

	var bookings []models.Booking
	add := func(id, email, meetingID string, offset time.Duration) {
		bookings = append(bookings, booking(id, email, meetingID, base.Add(offset)))
	}

	add("b-1", "a@x.com", "m-2", time.Minute)
	add("b-2", "b@x.com", "m-2", 2*time.Minute)
	add("b-3", "a@x.com", "m-3", 3*time.Minute)
	add("b-4", "c@x.com", "m-4", 4*time.Minute)
	add("b-5", "d@x.com", "m-1", 5*time.Minute)

	src := mocks.NewSource(t)
	src.On("GetAllMeetings", mock.Anything).Return(meetings, nil)
	src.On("GetAllBookings", mock.Anything).Return(bookings, nil)

	engine := report.NewEngineAt(src, func() time.Time { return base })

	stats, err := engine.AdminStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalBookings)
	assert.Equal(t, 6, stats.TotalMeetings)
	assert.Equal(t, 4, stats.DistinctEmails)
	assert.Equal(t, 1, stats.PastMeetings)
	assert.Equal(t, 5, stats.UpcomingMeetings)

	require.Len(t, stats.TopMeetings, 5)
	assert.Equal(t, "m-2", stats.TopMeetings[0].MeetingID)
	assert.Equal(t, 2, stats.TopMeetings[0].Bookings)
	// Ties keep original meeting order.
	assert.Equal(t, "m-1", stats.TopMeetings[1].MeetingID)
	assert.Equal(t, "m-3", stats.TopMeetings[2].MeetingID)
	assert.Equal(t, "m-4", stats.TopMeetings[3].MeetingID)

	require.Len(t, stats.RecentBookings, 5)
	assert.Equal(t, "b-5", stats.RecentBookings[0].ID, "most recent booking first")
}

func TestRenderCSVQuotesCommas(t *testing.T) {
	t.Parallel()

	m := meeting("m-1", `Budget, "final" review`, "2025-06-15", "14:00", intPtr(5))
	m.Location = "Room 4, East Wing"

	src := mocks.NewSource(t)
	src.On("GetAllMeetings", mock.Anything).Return([]models.Meeting{m}, nil)
	src.On("GetAllBookings", mock.Anything).Return(nil, nil)

	engine := report.NewEngine(src)

	data, err := engine.RenderCSV(context.Background(), report.TypeMeetings)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"Budget, ""final"" review"`)
	assert.Contains(t, out, `"Room 4, East Wing"`)
}

func TestRenderCSVUnknownType(t *testing.T) {
	t.Parallel()

	src := mocks.NewSource(t)
	engine := report.NewEngine(src)

	_, err := engine.RenderCSV(context.Background(), "payroll")
	require.ErrorIs(t, err, report.ErrUnknownReportType)
}

func TestRenderCSVCombined(t *testing.T) {
	t.Parallel()

	bookedAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	b := booking("b-1", "a@x.com", "m-1", bookedAt)
	b.MeetingTitle = "Intro"

	src := mocks.NewSource(t)
	src.On("GetAllMeetings", mock.Anything).Return([]models.Meeting{
		meeting("m-1", "Intro", "2025-06-15", "14:00", intPtr(5)),
	}, nil)
	src.On("GetAllBookings", mock.Anything).Return([]models.Booking{b}, nil)

	engine := report.NewEngine(src)

	data, err := engine.RenderCSV(context.Background(), report.TypeCombined)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "booking_id,email,meeting_title")
	assert.Contains(t, out, "b-1,a@x.com,Intro,2025-06-15,14:00,,5,2025-06-01 09:30:00")
}
