package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ewilliams-labs/lumiya/internal/adapters/groq"
	"github.com/ewilliams-labs/lumiya/internal/adapters/ollama"
	"github.com/ewilliams-labs/lumiya/internal/adapters/rest"
	"github.com/ewilliams-labs/lumiya/internal/adapters/spotify"
	"github.com/ewilliams-labs/lumiya/internal/adapters/sqlite"
	"github.com/ewilliams-labs/lumiya/internal/config"
	"github.com/ewilliams-labs/lumiya/internal/core/ports"
	"github.com/ewilliams-labs/lumiya/internal/core/services"
	"github.com/ewilliams-labs/lumiya/internal/logging"
)

func main() {
	// 1. Configuration (.env, then environment variables)
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("could not read .env file")
	}
	cfg := config.Load()

	format := logging.FormatText
	if cfg.IsProduction() {
		format = logging.FormatJSON
	}
	logging.Setup(cfg.LogLevel, format)

	// Missing secrets are not fatal: the page still loads and the affected
	// endpoint reports the upstream failure.
	if missing := cfg.Missing(); len(missing) > 0 {
		logrus.WithField("vars", missing).Warn("required credentials are not set")
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
		}); err != nil {
			logrus.WithError(err).Warn("sentry init failed")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// 2. Initialize "Driven" Adapters
	// -- Interaction log
	var journal ports.InteractionLog
	var repoCloser func() error

	switch cfg.StorageDriver {
	case "sqlite":
		dbAdapter, err := sqlite.NewAdapter(cfg.DatabasePath)
		if err != nil {
			logrus.WithError(err).Fatal("failed to initialize database")
		}
		journal = dbAdapter
		repoCloser = dbAdapter.Close
	case "none":
		logrus.Info("interaction logging disabled")
		repoCloser = func() error { return nil }
	default:
		logrus.Fatalf("unknown storage driver: %s", cfg.StorageDriver)
	}
	defer func() {
		if err := repoCloser(); err != nil {
			logrus.WithError(err).Warn("failed to close database")
		}
	}()

	// -- Spotify Adapter
	spotifyClient := spotify.NewClient(spotify.Config{
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
		TokenURL:     cfg.SpotifyTokenURL,
		BaseURL:      cfg.SpotifyAPIBaseURL,
	})

	// -- Reflection Adapter
	var reflector ports.DiaryReflector
	switch cfg.ReflectionProvider {
	case config.ProviderGroq:
		reflector = groq.NewClient(groq.Config{
			APIKey:  cfg.GroqAPIKey,
			BaseURL: cfg.GroqBaseURL,
			Model:   cfg.GroqModel,
		})
	case config.ProviderOllama:
		reflector = ollama.NewClient(cfg.OllamaHost, cfg.OllamaModel)
	default:
		logrus.Fatalf("unknown reflection provider: %s", cfg.ReflectionProvider)
	}

	// 3. Initialize Core Logic
	svc := services.NewOrchestrator(spotifyClient, reflector, journal)

	// 4. Initialize "Driving" Adapter
	handler := rest.NewHandler(svc, rest.Options{
		StaticDir:      cfg.StaticDir,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// 5. Start the Server
	logrus.WithFields(logrus.Fields{
		"port":       cfg.Port,
		"reflection": cfg.ReflectionProvider,
		"storage":    cfg.StorageDriver,
	}).Info("🎶 Lumiya API is running")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			logrus.WithError(err).Error("server stopped")
		}
	case <-ctx.Done():
		logrus.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("shutdown error")
		}
	}
}
