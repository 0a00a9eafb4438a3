// Package ratelimit holds the shared rate-limit store used when the
// service runs with Redis, so every instance counts against the same
// window.
package ratelimit

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	defaultPrefix  = "contact:ratelimit"
	defaultTimeout = 500 * time.Millisecond
)

// RedisStore is a fixed-window counter keyed by client identifier. It
// satisfies echo's middleware.RateLimiterStore.
type RedisStore struct {
	rdb     *redis.Client
	logger  *zerolog.Logger
	max     int64
	window  time.Duration
	prefix  string
	timeout time.Duration
}

type Option func(*RedisStore)

func WithPrefix(prefix string) Option {
	return func(s *RedisStore) { s.prefix = strings.Trim(prefix, ":") }
}

// WithTimeout bounds each Redis round trip.
func WithTimeout(d time.Duration) Option {
	return func(s *RedisStore) { s.timeout = d }
}

// NewRedisStore allows max requests per identifier in every window.
func NewRedisStore(rdb *redis.Client, max int, window time.Duration, logger *zerolog.Logger, opts ...Option) *RedisStore {
	s := &RedisStore{
		rdb:     rdb,
		logger:  logger,
		max:     int64(max),
		window:  window,
		prefix:  defaultPrefix,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Allow counts one request for identifier. Redis failures are logged and
// the request is let through.
func (s *RedisStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	key := s.prefix + ":" + identifier

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("rate limit store unavailable, allowing request")
		return true, nil
	}

	// First hit of a window, or a counter that lost its expiry.
	if incr.Val() == 1 || ttl.Val() < 0 {
		if err := s.rdb.PExpire(ctx, key, s.window).Err(); err != nil {
			s.logger.Error().Err(err).Str("key", key).Msg("failed to set rate limit window")
		}
	}

	return incr.Val() <= s.max, nil
}
