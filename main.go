package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"whisper/api"
	"whisper/config"
	"whisper/handlers"
	"whisper/services/catalog"
	"whisper/services/preferences"
	"whisper/services/tmdb"
)

func newLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			logger.WithError(err).Warn("could not create log directory, logging to stdout only")
			return logger
		}
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		logger.SetOutput(io.MultiWriter(os.Stdout, fileWriter))
	}

	return logger
}

func main() {
	portOverride := flag.Int("port", 0, "override server port from config")
	flag.Parse()

	configPath := os.Getenv("WHISPER_CONFIG")
	if configPath == "" {
		configPath = filepath.Join("cache", "settings.json")
	}

	cfgManager := config.NewManager(configPath)
	settings, err := cfgManager.Load()
	if err != nil {
		logrus.Fatalf("failed to load settings: %v", err)
	}

	if *portOverride > 0 {
		settings.Server.Port = *portOverride
	}

	logger := newLogger(settings.Log)

	if settings.TMDB.APIKey == "" {
		logger.Warn("MOVIE_DB_API_KEY not set; provider calls will fail and pages will render empty")
	}

	store, err := preferences.NewSQLiteStore(settings.Database.Path)
	if err != nil {
		logger.Fatalf("failed to open preference store: %v", err)
	}
	defer store.Close()

	prefSvc, err := preferences.NewService(store)
	if err != nil {
		logger.Fatalf("failed to create preference service: %v", err)
	}

	tmdbClient := tmdb.NewClient(settings.TMDB, nil, logger)
	catalogSvc := catalog.NewService(tmdbClient, logger)

	r := mux.NewRouter()
	api.Register(
		r,
		handlers.NewCatalogHandler(catalogSvc),
		handlers.NewDetailsHandler(catalogSvc),
		handlers.NewVideosHandler(tmdbClient),
		handlers.NewPreferencesHandler(prefSvc),
		handlers.NewSettingsHandler(cfgManager),
		handlers.NewHealthHandler(tmdbClient.IsConfigured),
		logger,
	)

	addr := fmt.Sprintf("%s:%d", settings.Server.Host, settings.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.WithField("addr", addr).Info("whisper backend listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownChan
	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server shutdown error")
	}
	logger.Info("shutdown complete")
}
