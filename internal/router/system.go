package router

import (
	"github.com/deppfellow/contact-api/internal/handler"
	"github.com/deppfellow/contact-api/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// contact-form API: health, docs and, in local runs, email previews.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.GET("/docs/openapi.json", h.OpenAPI.OpenAPISpecRoute())

	if s.Config.Primary.Env == "local" && h.EmailPreview != nil {
		r.GET("/docs/email/:template", h.EmailPreview.PreviewEmailRoute())
	}
}
