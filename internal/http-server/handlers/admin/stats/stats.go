package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"meetingBooker/internal/lib/api/response"
	"meetingBooker/internal/lib/logger/sl"
	"meetingBooker/internal/report"
)

type StatsResponse struct {
	response.Response
	Stats report.Stats `json:"stats"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsProvider
type StatsProvider interface {
	AdminStats(ctx context.Context) (report.Stats, error)
}

func New(log *slog.Logger, provider StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.stats.New"

		log = log.With(slog.String("op", op))

		adminStats, err := provider.AdminStats(r.Context())
		if err != nil {
			log.Error("failed to compute stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.ErrorWithCode(response.CodeInternal, "failed to compute stats"))
			return
		}

		log.Info("stats computed",
			slog.Int("total_bookings", adminStats.TotalBookings),
			slog.Int("total_meetings", adminStats.TotalMeetings),
		)

		responseOK(w, r, adminStats)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, adminStats report.Stats) {
	render.JSON(w, r, StatsResponse{
		Response: response.OK(),
		Stats:    adminStats,
	})
}
