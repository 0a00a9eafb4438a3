// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API routes,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/contact-api/internal/handler"
	"github.com/deppfellow/contact-api/internal/middleware"
	"github.com/deppfellow/contact-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with global middleware, error
// handling and every route.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	if s.Config.Server.TrustProxy {
		router.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		router.IPExtractor = echo.ExtractIPDirect()
	}

	// Tracing first so the transaction exists for everything after it;
	// RequestID before ContextEnhancer so the logger carries it.
	router.Use(
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
	)

	registerSystemRoutes(router, s, h)
	registerSubmissionRoutes(router, h, middlewares.RateLimit.Limit())

	return router
}
