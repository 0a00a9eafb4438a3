// Package config manages environment variables.
//
// It reads variables from the `.env` file, loads them into structured
// Go types and validates that required values are present so they
// can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before anything below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix CONTACT_. The prefix is removed, the
	key is lowercased and "." marks nesting:

		CONTACT_SERVER.PORT        -> server.port        -> Config.Server.Port
		CONTACT_EMAIL.SES.REGION   -> email.ses.region   -> Config.Email.SES.Region

	Comma separated values decode into slices (server.cors_allowed_origins)
	and Go duration strings decode into time.Duration (rate_limit.window).
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "CONTACT_"

// Config is the root configuration object for the application.
//
// Redis is optional: an empty address switches rate limiting to the
// in-process store. Observability is a pointer because it is optional;
// defaults are injected before env values are applied.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Email         EmailConfig          `koanf:"email" validate:"required"`
	RateLimit     RateLimitConfig      `koanf:"rate_limit" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// TrustProxy takes the client IP from X-Forwarded-For. Enable it only
	// behind a reverse proxy that sets the header.
	TrustProxy bool `koanf:"trust_proxy"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details ("host:port").
type RedisConfig struct {
	Address string `koanf:"address"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// Email providers understood by the notifier.
const (
	EmailProviderResend = "resend"
	EmailProviderSES    = "ses"
	EmailProviderLog    = "log"
)

// EmailConfig configures the operator notification transport.
//
// FromAddress is the verified sender identity of the transport.
// OperatorAddress receives one message per accepted submission.
type EmailConfig struct {
	Provider        string    `koanf:"provider" validate:"required,oneof=resend ses log"`
	FromAddress     string    `koanf:"from_address" validate:"required"`
	OperatorAddress string    `koanf:"operator_address" validate:"required,email"`
	ResendAPIKey    string    `koanf:"resend_api_key" validate:"required_if=Provider resend"`
	SES             SESConfig `koanf:"ses"`
}

// SESConfig holds AWS SES credentials. Empty keys fall back to the
// default AWS credential chain (env, shared config, instance role).
type SESConfig struct {
	Region          string `koanf:"region"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
}

// RateLimitConfig caps requests per client within a fixed window.
type RateLimitConfig struct {
	Window time.Duration `koanf:"window" validate:"required,min=1s"`
	Max    int           `koanf:"max" validate:"required,min=1"`
}

// listKeys are the env keys holding comma-separated lists.
var listKeys = map[string]struct{}{
	"server.cors_allowed_origins":        {},
	"observability.health_checks.checks": {},
}

// splitList splits a comma-separated value, trimming blanks around items
// and dropping empty ones.
func splitList(value string) []string {
	items := make([]string, 0, strings.Count(value, ",")+1)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, applies observability defaults and validates the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if _, ok := listKeys[key]; ok {
			return key, splitList(value)
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	// Defaults go in first so a partially configured observability block
	// only overrides what it names.
	mainConfig := &Config{
		Observability: DefaultObservabilityConfig(),
	}

	if err = k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err = validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Service naming is fixed so telemetry stays consistent.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
