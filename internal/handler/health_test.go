package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/contact-api/internal/config"
	"github.com/deppfellow/contact-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthHandler(checks ...dependencyCheck) *HealthHandler {
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}
	return &HealthHandler{
		Handler: NewHandler(s),
		checks:  checks,
		timeout: time.Second,
	}
}

func runHealth(t *testing.T, h *HealthHandler) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)

	require.NoError(t, h.CheckHealth(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func ok(ctx context.Context) error { return nil }

func failing(ctx context.Context) error { return errors.New("connection refused") }

func TestCheckHealth_AllHealthy(t *testing.T) {
	code, body := runHealth(t, newHealthHandler(
		dependencyCheck{name: "database", required: true, ping: ok},
		dependencyCheck{name: "redis", ping: ok},
	))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, statusHealthy, body["status"])
	assert.Equal(t, "test", body["environment"])

	checks := body["checks"].(map[string]any)
	assert.Equal(t, statusHealthy, checks["database"].(map[string]any)["status"])
	assert.Equal(t, statusHealthy, checks["redis"].(map[string]any)["status"])
}

func TestCheckHealth_RequiredFailure(t *testing.T) {
	code, body := runHealth(t, newHealthHandler(
		dependencyCheck{name: "database", required: true, ping: failing},
	))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, statusUnhealthy, body["status"])

	database := body["checks"].(map[string]any)["database"].(map[string]any)
	assert.Equal(t, statusUnhealthy, database["status"])
	assert.Equal(t, "connection refused", database["error"])
}

func TestCheckHealth_OptionalFailure(t *testing.T) {
	code, body := runHealth(t, newHealthHandler(
		dependencyCheck{name: "database", required: true, ping: ok},
		dependencyCheck{name: "redis", ping: failing},
	))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, statusHealthy, body["status"])
	assert.Equal(t, statusUnhealthy, body["checks"].(map[string]any)["redis"].(map[string]any)["status"])
}

func TestCheckHealth_Timeout(t *testing.T) {
	h := newHealthHandler(dependencyCheck{
		name:     "database",
		required: true,
		ping: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})
	h.timeout = 10 * time.Millisecond

	code, _ := runHealth(t, h)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestNewHealthHandler_SkipsUnconfiguredDependencies(t *testing.T) {
	logger := zerolog.Nop()
	obs := config.DefaultObservabilityConfig()
	s := &server.Server{
		Config: &config.Config{Observability: obs},
		Logger: &logger,
	}

	h := NewHealthHandler(s)
	assert.Empty(t, h.checks)
	assert.Equal(t, obs.HealthChecks.Timeout, h.timeout)
}
