package deleteMeeting

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"meetingBooker/internal/lib/api/response"
	"meetingBooker/internal/lib/logger/sl"
	"meetingBooker/internal/models"
	"meetingBooker/internal/storage"
)

type MeetingResponse struct {
	response.Response
	Meeting         models.Meeting `json:"meeting"`
	RemovedBookings int            `json:"removed_bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetingDeleter
type MeetingDeleter interface {
	DeleteMeeting(ctx context.Context, id string) (models.Meeting, int, error)
}

func New(log *slog.Logger, meetings MeetingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meeting.deleteMeeting.New"

		log = log.With(slog.String("op", op))

		meetingID := chi.URLParam(r, "id")
		if meetingID == "" {
			log.Error("meeting id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("meeting id is required"))
			return
		}

		log = log.With(slog.String("meeting_id", meetingID))

		meeting, removedBookings, err := meetings.DeleteMeeting(r.Context(), meetingID)
		if err != nil {
			log.Error("failed to delete meeting", sl.Err(err))

			if errors.Is(err, storage.ErrMeetingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.ErrorWithCode(response.CodeNotFound, "meeting not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.ErrorWithCode(response.CodeInternal, "failed to delete meeting"))
			return
		}

		log.Info("meeting deleted", slog.Int("removed_bookings", removedBookings))

		responseOK(w, r, meeting, removedBookings)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, meeting models.Meeting, removedBookings int) {
	render.JSON(w, r, MeetingResponse{
		Response:        response.OK(),
		Meeting:         meeting,
		RemovedBookings: removedBookings,
	})
}
