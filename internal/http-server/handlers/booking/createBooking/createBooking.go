package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"meetingBooker/internal/lib/api/response"
	"meetingBooker/internal/lib/logger/sl"
	"meetingBooker/internal/models"
	"meetingBooker/internal/storage"
)

type BookingRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type BookingResponse struct {
	response.Response
	Booking          models.Booking `json:"booking"`
	CurrentAttendees int            `json:"current_attendees"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ctx context.Context, email, meetingID string) (models.Booking, int, error)
}

func New(log *slog.Logger, bookings BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		meetingID := chi.URLParam(r, "id")
		if meetingID == "" {
			log.Error("meeting id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("meeting id is required"))
			return
		}

		log = log.With(slog.String("meeting_id", meetingID))

		var req BookingRequest

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

		booking, attendees, err := bookings.CreateBooking(r.Context(), req.Email, meetingID)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrMeetingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.ErrorWithCode(response.CodeNotFound, "meeting not found"))
			case errors.Is(err, storage.ErrAlreadyBooked):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.ErrorWithCode(response.CodeConflict, "already booked"))
			case errors.Is(err, storage.ErrAtCapacity):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.ErrorWithCode(response.CodeConflict, "at capacity"))
			case errors.Is(err, storage.ErrSlotConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.ErrorWithCode(response.CodeConflict, "time slot conflict"))
			case errors.Is(err, storage.ErrValidation):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ErrorWithCode(response.CodeValidation, err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.ErrorWithCode(response.CodeInternal, "failed to create booking"))
			}
			return
		}

		log.Info("booking created",
			slog.String("booking_id", booking.ID),
			slog.Int("current_attendees", attendees),
		)

		responseOK(w, r, booking, attendees)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking models.Booking, attendees int) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response:         response.OK(),
		Booking:          booking,
		CurrentAttendees: attendees,
	})
}
