package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/intentai/config"
	"github.com/spacesedan/intentai/internal/handlers"
	"github.com/spacesedan/intentai/internal/logging"
	"github.com/spacesedan/intentai/internal/sentiment"
)

func main() {
	if err := run(); err != nil {
		slog.Error("[Classifier] Fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	config.LoadEnv(config.AppEnv())

	cfg, err := config.LoadClassifierConfig()
	if err != nil {
		return err
	}
	logging.InitLogger(cfg.LogLevel)

	scorer, err := sentiment.NewScorer(cfg.ModelPath)
	if err != nil {
		return fmt.Errorf("failed to create scorer: %w", err)
	}
	defer func() {
		if err := scorer.Close(); err != nil {
			slog.Warn("[Classifier] Failed to release scorer", slog.String("error", err.Error()))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handlers.NewClassifierRouter(handlers.NewPredictHandler(scorer)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("[Classifier] Intent classifier running", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("[Classifier] Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
