package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ordering/cmd"
	"ordering/internal/pkg/clock"
	"ordering/internal/pkg/logging"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, logCloser := logging.New(logging.Config{
		Level:      config.Logging.Level,
		Format:     config.Logging.Format,
		File:       config.Logging.File,
		MaxSizeMB:  config.Logging.MaxSizeMB,
		MaxBackups: config.Logging.MaxBackups,
		MaxAgeDays: config.Logging.MaxAgeDays,
	})
	defer logCloser.Close()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, logger); err != nil {
		logger.Error("service stopped with error", "error", err)
		logCloser.Close()
		log.Fatalf("Error running service: %v", err)
	}
	logger.Info("service stopped")
}

func run(ctx context.Context, config cmd.Config, logger *slog.Logger) error {
	app, err := cmd.NewCompositionRoot(ctx, config, clock.System{}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to close connections", "error", err)
		}
	}()

	if config.App.SeedUsers {
		if err := app.SeedUsers(ctx); err != nil {
			return err
		}
	}

	router, err := app.CreateRouter()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         config.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  config.HTTP.ReadTimeout,
		WriteTimeout: config.HTTP.WriteTimeout,
		IdleTimeout:  config.HTTP.IdleTimeout,
	}

	if config.Jobs.Enabled {
		jobManager, err := app.CreateJobManager()
		if err != nil {
			return err
		}
		if err := jobManager.StartAll(); err != nil {
			return err
		}
		defer jobManager.StopAll()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening",
			"addr", config.HTTP.Addr,
			"storage", config.Database.Driver,
			"env", config.App.Env,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
