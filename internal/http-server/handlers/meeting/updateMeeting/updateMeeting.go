package updateMeeting

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

// MeetingRequest is a partial update: absent fields keep their stored value.
type MeetingRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Date            *string `json:"date"`
	Time            *string `json:"time"`
	DurationMinutes *int    `json:"duration_minutes"`
	Location        *string `json:"location"`
	MinAttendees    *int    `json:"min_attendees"`
	MaxAttendees    *int    `json:"max_attendees"`
}

type MeetingResponse struct {
	response.Response
	Meeting models.Meeting `json:"meeting"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetingUpdater
type MeetingUpdater interface {
	UpdateMeeting(ctx context.Context, id string, input storage.UpdateMeetingInput) (models.Meeting, error)
}

func New(log *slog.Logger, meetings MeetingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meeting.updateMeeting.New"

		log = log.With(slog.String("op", op))

		meetingID := chi.URLParam(r, "id")
		if meetingID == "" {
			log.Error("meeting id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("meeting id is required"))
			return
		}

		log = log.With(slog.String("meeting_id", meetingID))

		var req MeetingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		meeting, err := meetings.UpdateMeeting(r.Context(), meetingID, storage.UpdateMeetingInput{
			Title:           req.Title,
			Description:     req.Description,
			Date:            req.Date,
			Time:            req.Time,
			DurationMinutes: req.DurationMinutes,
			Location:        req.Location,
			MinAttendees:    req.MinAttendees,
			MaxAttendees:    req.MaxAttendees,
		})
		if err != nil {
			log.Error("failed to update meeting", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrMeetingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.ErrorWithCode(response.CodeNotFound, "meeting not found"))
			case errors.Is(err, storage.ErrValidation):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ErrorWithCode(response.CodeValidation, err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.ErrorWithCode(response.CodeInternal, "failed to update meeting"))
			}
			return
		}

		log.Info("meeting updated")

		responseOK(w, r, meeting)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, meeting models.Meeting) {
	render.JSON(w, r, MeetingResponse{
		Response: response.OK(),
		Meeting:  meeting,
	})
}
