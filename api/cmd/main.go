package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/eventcal/scheduler/internal/application/event"
	"github.com/eventcal/scheduler/internal/config"
	"github.com/eventcal/scheduler/internal/infrastructure/db/sqlstore"
	"github.com/eventcal/scheduler/internal/logger"
	"github.com/eventcal/scheduler/internal/transport/http/handlers"
	"github.com/eventcal/scheduler/internal/transport/http/router"
)

// sysClock implements the Clock interfaces using system time
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App holds all dependencies for the service
type App struct {
	Config *config.Config
	Server *http.Server
	DB     *sql.DB
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, driver, err := sqlstore.Open(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			zlog.Fatal().Err(err).Msg("db ping failed")
		}
	}

	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sqlstore.InitSchema(ctx, db, driver); err != nil {
			zlog.Fatal().Err(err).Msg("schema init failed")
		}
	}
	zlog.Info().Str("driver", driver).Msg("database schema initialized")

	app := NewApp(cfg, db, driver)

	errCh := make(chan error, 1)
	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		errCh <- app.Server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server crashed")
		}
	case sig := <-stop:
		zlog.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(ctx); err != nil {
			zlog.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}

func NewApp(cfg *config.Config, db *sql.DB, driver string) *App {
	// 1) Infrastructure
	repo := sqlstore.New(db, driver)

	// 2) Application
	svc := event.New(repo, sysClock{})

	// 3) Transport
	h := handlers.NewEventsHandler(svc)
	z := handlers.NewHealthHandler(sysClock{})

	// 4) Router
	httpHandler := router.New(h, z, cfg)

	// 5) Server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config: cfg,
		Server: srv,
		DB:     db,
	}
}
