package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"people-pets-api/internal/adapters/storage"
	"people-pets-api/internal/config"
	"people-pets-api/internal/platform/logger"
	"people-pets-api/internal/router"
)

// @title People & Pets API
// @version 1.0
// @description API REST de personas y sus mascotas.
// @BasePath /
func main() {
	cfg, warnings, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	for _, w := range warnings {
		log.Warn("config", map[string]any{"warning": w})
	}

	store, err := storage.Open(context.Background(), cfg.Database)
	if err != nil {
		log.Error("could not open store", map[string]any{"store": cfg.Database.Store, "error": err.Error()})
		os.Exit(1)
	}
	defer store.Close()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{Store: store, Logger: log}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store": store.Kind})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("server error", map[string]any{"error": err.Error()})
		_ = store.Close()
		os.Exit(1)
	case sig := <-quit:
		log.Info("shutting down server", map[string]any{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", map[string]any{"error": err.Error()})
		return
	}
	log.Info("server exited", nil)
}
