package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/contact-api/internal/config"
	"github.com/deppfellow/contact-api/internal/middleware"
	"github.com/deppfellow/contact-api/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	defaultHealthTimeout = 5 * time.Second
)

// dependencyCheck pings one dependency. A failing required check makes the
// whole service unhealthy; an optional one is only reported.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	checks  []dependencyCheck
	timeout time.Duration
}

// NewHealthHandler registers the checks named in
// observability.health_checks.checks. The database is required; Redis only
// backs the rate limiter, which fails open, so it is optional.
func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
		timeout: defaultHealthTimeout,
	}

	hc := config.DefaultObservabilityConfig().HealthChecks
	if s.Config.Observability != nil {
		hc = s.Config.Observability.HealthChecks
	}
	if !hc.Enabled {
		return h
	}
	if hc.Timeout > 0 {
		h.timeout = hc.Timeout
	}

	if hc.Has("database") && s.DB != nil {
		h.checks = append(h.checks, dependencyCheck{
			name:     "database",
			required: true,
			ping:     s.DB.Pool.Ping,
		})
	}

	if hc.Has("redis") && s.Redis != nil {
		h.checks = append(h.checks, dependencyCheck{
			name: "redis",
			ping: func(ctx context.Context) error {
				return s.Redis.Ping(ctx).Err()
			},
		})
	}

	return h
}

// CheckHealth returns 200 when every required dependency answers and 503
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{}, len(h.checks))
	isHealthy := true

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		responseTime := time.Since(checkStart)
		cancel()

		if err != nil {
			checks[check.name] = map[string]interface{}{
				"status":        statusUnhealthy,
				"response_time": responseTime.String(),
				"error":         err.Error(),
			}

			if check.required {
				isHealthy = false
			}

			logger.Error().
				Err(err).
				Str("check", check.name).
				Dur("response_time", responseTime).
				Msg("health check failed")

			h.recordHealthEvent(map[string]interface{}{
				"check_type":       check.name,
				"operation":        "health_check",
				"error_type":       check.name + "_unhealthy",
				"response_time_ms": responseTime.Milliseconds(),
				"error_message":    err.Error(),
			})
			continue
		}

		checks[check.name] = map[string]interface{}{
			"status":        statusHealthy,
			"response_time": responseTime.String(),
		}

		logger.Debug().
			Str("check", check.name).
			Dur("response_time", responseTime).
			Msg("health check passed")
	}

	response := map[string]interface{}{
		"status":      statusHealthy,
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !isHealthy {
		response["status"] = statusUnhealthy

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthEvent(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// recordHealthEvent sends a HealthCheckError custom event to New Relic.
func (h *HealthHandler) recordHealthEvent(attrs map[string]interface{}) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}
