package logger

import (
	"testing"

	"github.com/deppfellow/contact-api/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelDebug, GetPgxTraceLogLevel(zerolog.DebugLevel))
	assert.Equal(t, tracelog.LogLevelError, GetPgxTraceLogLevel(zerolog.ErrorLevel))
	assert.Equal(t, tracelog.LogLevelNone, GetPgxTraceLogLevel(zerolog.Disabled))
}

func TestNewLoggerServiceWithoutLicense(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	service := NewLoggerService(cfg)
	assert.Nil(t, service.GetApplication())

	logger := NewLoggerWithService(cfg, service)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	// Shutdown on a disabled service is a no-op.
	service.Shutdown()
}
