package handler

import (
	_ "embed"
	"net/http"

	"github.com/deppfellow/contact-api/internal/server"
	"github.com/labstack/echo/v4"
)

var (
	//go:embed static/openapi.html
	openAPIUI []byte

	//go:embed static/openapi.json
	openAPISpec []byte
)

// docsContentSecurityPolicy replaces the global policy on the docs page,
// which loads its renderer from jsDelivr.
const docsContentSecurityPolicy = "default-src 'self'; style-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; script-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; font-src 'self' data: https://cdn.jsdelivr.net; img-src 'self' data:"

// OpenAPIHandler serves the API reference page and the OpenAPI document.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves the reference page. Caching is disabled so doc
// updates show up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, "no-cache")
	header.Set(echo.HeaderContentSecurityPolicy, docsContentSecurityPolicy)

	return c.HTMLBlob(http.StatusOK, openAPIUI)
}

type openAPISpecRequest struct{}

func (r *openAPISpecRequest) Validate() error {
	return nil
}

// OpenAPISpec returns the OpenAPI document.
func (h *OpenAPIHandler) OpenAPISpec(c echo.Context, _ *openAPISpecRequest) ([]byte, error) {
	return openAPISpec, nil
}

// OpenAPISpecRoute is the download route for the OpenAPI document.
func (h *OpenAPIHandler) OpenAPISpecRoute() echo.HandlerFunc {
	return HandleFile(h.Handler, h.OpenAPISpec, http.StatusOK, &openAPISpecRequest{}, "openapi.json", echo.MIMEApplicationJSON)
}
