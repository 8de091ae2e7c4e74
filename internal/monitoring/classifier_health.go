package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const (
	StatusUnknown   = "unknown"
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// ClassifierHealth holds the result of the latest probe.
type ClassifierHealth struct {
	checked atomic.Bool
	healthy atomic.Bool
}

func (h *ClassifierHealth) Store(healthy bool) {
	h.healthy.Store(healthy)
	h.checked.Store(true)
}

func (h *ClassifierHealth) Status() string {
	if !h.checked.Load() {
		return StatusUnknown
	}
	if h.healthy.Load() {
		return StatusHealthy
	}
	return StatusUnhealthy
}

// MonitorClassifierHealth probes once immediately and then every interval until ctx is done.
// Only transitions are logged.
func MonitorClassifierHealth(ctx context.Context, checker HealthChecker, interval time.Duration, health *ClassifierHealth) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	probe := func() {
		previous := health.Status()
		isHealthy := checker.HealthCheck(ctx)
		health.Store(isHealthy)

		current := health.Status()
		if current == previous {
			return
		}
		if isHealthy {
			slog.Info("[HealthCheck] Classifier is healthy")
		} else {
			slog.Warn("[HealthCheck] Classifier is unhealthy")
		}
	}

	probe()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}
