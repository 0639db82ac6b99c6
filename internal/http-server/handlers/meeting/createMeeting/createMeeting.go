package createMeeting

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"meetingBooker/internal/lib/api/response"
	"meetingBooker/internal/lib/logger/sl"
	"meetingBooker/internal/models"
	"meetingBooker/internal/storage"
)

type MeetingRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
	Location        string `json:"location"`
	MinAttendees    *int   `json:"min_attendees"`
	MaxAttendees    *int   `json:"max_attendees"`
}

type MeetingResponse struct {
	response.Response
	Meeting models.Meeting `json:"meeting"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetingCreator
type MeetingCreator interface {
	CreateMeeting(ctx context.Context, input storage.CreateMeetingInput) (models.Meeting, error)
}

func New(log *slog.Logger, meetings MeetingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meeting.createMeeting.New"

		log = log.With(slog.String("op", op))

		var req MeetingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		meeting, err := meetings.CreateMeeting(r.Context(), storage.CreateMeetingInput{
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
			log.Error("failed to create meeting", sl.Err(err))

			if errors.Is(err, storage.ErrValidation) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ErrorWithCode(response.CodeValidation, err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.ErrorWithCode(response.CodeInternal, "failed to create meeting"))
			return
		}

		log.Info("meeting created", slog.String("id", meeting.ID))

		responseOK(w, r, meeting)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, meeting models.Meeting) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, MeetingResponse{
		Response: response.OK(),
		Meeting:  meeting,
	})
}
