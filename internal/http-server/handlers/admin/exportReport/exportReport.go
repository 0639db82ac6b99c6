package exportReport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"meetingBooker/internal/lib/api/response"
	"meetingBooker/internal/lib/logger/sl"
	"meetingBooker/internal/report"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CSVRenderer
type CSVRenderer interface {
	RenderCSV(ctx context.Context, reportType string) ([]byte, error)
}

func New(log *slog.Logger, reports CSVRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.exportReport.New"

		log = log.With(slog.String("op", op))

		reportType := r.URL.Query().Get("type")
		if reportType == "" {
			reportType = report.TypeCombined
		}

		log = log.With(slog.String("type", reportType))

		data, err := reports.RenderCSV(r.Context(), reportType)
		if err != nil {
			log.Error("failed to render export", sl.Err(err))

			if errors.Is(err, report.ErrUnknownReportType) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ErrorWithCode(response.CodeValidation, err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.ErrorWithCode(response.CodeInternal, "failed to render export"))
			return
		}

		log.Info("export rendered", slog.Int("bytes", len(data)))

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", reportType))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(data); err != nil {
			log.Error("failed to write export", sl.Err(err))
		}
	}
}
