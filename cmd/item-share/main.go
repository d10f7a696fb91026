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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"itemshare/internal/config"
	"itemshare/internal/http-server/handlers/booking/createBooking"
	"itemshare/internal/http-server/handlers/booking/getBookerBookings"
	"itemshare/internal/http-server/handlers/booking/getBooking"
	"itemshare/internal/http-server/handlers/booking/getOwnerBookings"
	"itemshare/internal/http-server/handlers/booking/setApproval"
	"itemshare/internal/http-server/handlers/item/addComment"
	"itemshare/internal/http-server/handlers/item/createItem"
	"itemshare/internal/http-server/handlers/item/deleteItem"
	"itemshare/internal/http-server/handlers/item/getItem"
	"itemshare/internal/http-server/handlers/item/getOwnerItems"
	"itemshare/internal/http-server/handlers/item/searchItems"
	"itemshare/internal/http-server/handlers/item/updateItem"
	"itemshare/internal/http-server/handlers/request/createRequest"
	"itemshare/internal/http-server/handlers/request/getAllRequests"
	"itemshare/internal/http-server/handlers/request/getRequest"
	"itemshare/internal/http-server/handlers/request/getUserRequests"
	"itemshare/internal/http-server/handlers/user/createUser"
	"itemshare/internal/http-server/handlers/user/deleteUser"
	"itemshare/internal/http-server/handlers/user/getAllUsers"
	"itemshare/internal/http-server/handlers/user/getUser"
	"itemshare/internal/http-server/handlers/user/updateUser"
	"itemshare/internal/http-server/middleware/mwlogger"
	"itemshare/internal/http-server/middleware/mwmetrics"
	"itemshare/internal/http-server/middleware/mwrequestid"
	"itemshare/internal/lib/logger/handlers/slogpretty"
	"itemshare/internal/lib/logger/sl"
	"itemshare/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting item share", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(mwrequestid.New())
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mwmetrics.New())

	router.Route("/users", func(r chi.Router) {
		r.Post("/", createUser.New(log, storage))
		r.Get("/", getAllUsers.New(log, storage))
		r.Get("/{id}", getUser.New(log, storage))
		r.Patch("/{id}", updateUser.New(log, storage))
		r.Delete("/{id}", deleteUser.New(log, storage))
	})

	router.Route("/items", func(r chi.Router) {
		r.Post("/", createItem.New(log, storage))
		r.Get("/", getOwnerItems.New(log, storage))
		r.Get("/search", searchItems.New(log, storage))
		r.Get("/{id}", getItem.New(log, storage))
		r.Patch("/{id}", updateItem.New(log, storage))
		r.Delete("/{id}", deleteItem.New(log, storage))
		r.Post("/{id}/comment", addComment.New(log, storage))
	})

	router.Route("/bookings", func(r chi.Router) {
		r.Post("/", createBooking.New(log, storage))
		r.Get("/", getBookerBookings.New(log, storage))
		r.Get("/owner", getOwnerBookings.New(log, storage))
		r.Get("/{id}", getBooking.New(log, storage))
		r.Patch("/{id}", setApproval.New(log, storage))
	})

	router.Route("/requests", func(r chi.Router) {
		r.Post("/", createRequest.New(log, storage))
		r.Get("/", getUserRequests.New(log, storage))
		r.Get("/all", getAllRequests.New(log, storage))
		r.Get("/{id}", getRequest.New(log, storage))
	})

	router.Handle("/metrics", promhttp.Handler())

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
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
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
