package listBookings

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"meetingBooker/internal/lib/api/response"
	"meetingBooker/internal/lib/logger/sl"
	"meetingBooker/internal/report"
)

type BookingsResponse struct {
	response.Response
	Bookings []report.BookingRow `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingReporter
type BookingReporter interface {
	BookingReport(ctx context.Context) ([]report.BookingRow, error)
}

func New(log *slog.Logger, bookings BookingReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log = log.With(slog.String("op", op))

		rows, err := bookings.BookingReport(r.Context())
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.ErrorWithCode(response.CodeInternal, "failed to get bookings"))
			return
		}

		log.Info("bookings retrieved successfully", slog.Int("count", len(rows)))

		responseOK(w, r, rows)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, rows []report.BookingRow) {
	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: rows,
	})
}
