package middleware

import (
	"github.com/deppfellow/contact-api/internal/errs"
	"github.com/deppfellow/contact-api/internal/lib/ratelimit"
	"github.com/deppfellow/contact-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitMessage is returned with every 429.
const RateLimitMessage = "Too many requests, please try again later."

// RateLimitMiddleware enforces rate_limit.max requests per client IP and
// rate_limit.window. The store is built once, so every route using Limit
// shares the same counters.
type RateLimitMiddleware struct {
	server *server.Server
	store  middleware.RateLimiterStore
}

// NewRateLimitMiddleware picks the Redis fixed-window store when Redis is
// configured and Echo's in-memory token bucket otherwise.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	cfg := s.Config.RateLimit

	var store middleware.RateLimiterStore
	if s.Redis != nil {
		store = ratelimit.NewRedisStore(s.Redis, cfg.Max, cfg.Window, s.Logger)
	} else {
		store = middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(cfg.Max) / cfg.Window.Seconds()),
			Burst:     cfg.Max,
			ExpiresIn: cfg.Window,
		})
	}

	return &RateLimitMiddleware{
		server: s,
		store:  store,
	}
}

// Limit returns the enforcing middleware.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: r.store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().Str("client", identifier).Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError(RateLimitMessage)
		},
	})
}

// RecordRateLimitHit records a RateLimitHit custom event in New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
