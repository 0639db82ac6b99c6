package listMeetings

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"meetingBooker/internal/lib/api/response"
	"meetingBooker/internal/lib/logger/sl"
	"meetingBooker/internal/report"
)

type MeetingsResponse struct {
	response.Response
	Meetings []report.MeetingWithCounts `json:"meetings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetingsLister
type MeetingsLister interface {
	MeetingsWithCounts(ctx context.Context) ([]report.MeetingWithCounts, error)
}

func New(log *slog.Logger, meetings MeetingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meeting.listMeetings.New"

		log = log.With(slog.String("op", op))

		list, err := meetings.MeetingsWithCounts(r.Context())
		if err != nil {
			log.Error("failed to get meetings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.ErrorWithCode(response.CodeInternal, "failed to get meetings"))
			return
		}

		log.Info("meetings retrieved successfully", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, meetings []report.MeetingWithCounts) {
	render.JSON(w, r, MeetingsResponse{
		Response: response.OK(),
		Meetings: meetings,
	})
}
