package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"meetingBooker/internal/config"
	"meetingBooker/internal/http-server/handlers/admin/exportReport"
	"meetingBooker/internal/http-server/handlers/admin/stats"
	"meetingBooker/internal/http-server/handlers/admin/verify"
	"meetingBooker/internal/http-server/handlers/booking/createBooking"
	"meetingBooker/internal/http-server/handlers/booking/deleteBooking"
	"meetingBooker/internal/http-server/handlers/booking/listBookings"
	"meetingBooker/internal/http-server/handlers/meeting/createMeeting"
	"meetingBooker/internal/http-server/handlers/meeting/deleteMeeting"
	"meetingBooker/internal/http-server/handlers/meeting/listMeetings"
	"meetingBooker/internal/http-server/handlers/meeting/updateMeeting"
	"meetingBooker/internal/http-server/middleware/adminauth"
	"meetingBooker/internal/http-server/middleware/cors"
	"meetingBooker/internal/http-server/middleware/mwlogger"
	"meetingBooker/internal/lib/logger/handlers/slogpretty"
	"meetingBooker/internal/lib/logger/sl"
	"meetingBooker/internal/report"
	"meetingBooker/internal/storage"
	"meetingBooker/internal/storage/docstore"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting meeting booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	var (
		store    docstore.Store
		closeDB  func() error
		storeErr error
	)

	switch cfg.Storage.Type {
	case "postgres":
		pg, err := docstore.NewPostgresStore(&cfg.Storage.Postgres)
		if err != nil {
			storeErr = err
			break
		}
		store = pg
		closeDB = pg.Close
	default:
		store, storeErr = docstore.NewFileStore(cfg.Storage.Path)
	}

	if storeErr != nil {
		log.Error("failed to init storage", sl.Err(storeErr))
		os.Exit(1)
	}

	repo := storage.New(store)
	reports := report.NewEngine(repo)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.New())

	router.Get("/meetings", listMeetings.New(log, reports))
	router.Post("/meetings/{id}/bookings", createBooking.New(log, repo))

	router.Route("/admin", func(r chi.Router) {
		r.Use(adminauth.New(log, cfg.Admin.Secret))

		r.Post("/verify", verify.New(log))
		r.Post("/meetings", createMeeting.New(log, repo))
		r.Put("/meetings/{id}", updateMeeting.New(log, repo))
		r.Delete("/meetings/{id}", deleteMeeting.New(log, repo))
		r.Get("/bookings", listBookings.New(log, reports))
		r.Delete("/bookings/{id}", deleteBooking.New(log, repo))
		r.Get("/stats", stats.New(log, reports))
		r.Get("/export", exportReport.New(log, reports))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if closeDB != nil {
		if err := closeDB(); err != nil {
			log.Error("failed to close postgres connection", sl.Err(err))
		}

		log.Info("postgres connection closed")
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
