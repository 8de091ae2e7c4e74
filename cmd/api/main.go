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
	"github.com/spacesedan/intentai/internal/analysis"
	"github.com/spacesedan/intentai/internal/clients"
	"github.com/spacesedan/intentai/internal/handlers"
	"github.com/spacesedan/intentai/internal/logging"
	"github.com/spacesedan/intentai/internal/monitoring"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("[Main] Fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	config.LoadEnv(config.AppEnv())

	cfg, err := config.LoadAPIConfig()
	if err != nil {
		return err
	}
	logging.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	classifier := clients.NewClassifierClient(cfg.LocalIntentURL, cfg.ClassifierHealthURL)
	completer := clients.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	service := analysis.NewService(classifier, completer,
		analysis.WithUpstreamTimeout(cfg.UpstreamTimeout))

	health := &monitoring.ClassifierHealth{}
	if cfg.HealthcheckInterval > 0 && cfg.ClassifierHealthURL != "" {
		go monitoring.MonitorClassifierHealth(ctx, classifier, cfg.HealthcheckInterval, health)
	}

	server := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: handlers.NewAPIRouter(
			handlers.NewAnalyzeHandler(service),
			handlers.NewHealthHandler(health),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("[Main] API running", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("[Main] Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
