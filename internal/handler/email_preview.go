package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/deppfellow/contact-api/internal/errs"
	"github.com/deppfellow/contact-api/internal/lib/email"
	"github.com/deppfellow/contact-api/internal/server"
	"github.com/deppfellow/contact-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// EmailPreviewHandler renders email templates with sample data. The router
// mounts it only in the local environment.
type EmailPreviewHandler struct {
	Handler
}

func NewEmailPreviewHandler(s *server.Server) *EmailPreviewHandler {
	return &EmailPreviewHandler{
		Handler: NewHandler(s),
	}
}

type emailPreviewRequest struct {
	Template string `param:"template"`
}

func (r *emailPreviewRequest) Validate() error {
	r.Template = strings.TrimSpace(r.Template)
	if r.Template == "" {
		return validation.CustomValidationErrors{{Field: "template", Message: "is required"}}
	}
	return nil
}

// PreviewEmail renders the named template.
func (h *EmailPreviewHandler) PreviewEmail(c echo.Context, req *emailPreviewRequest) (string, error) {
	page, err := email.Preview(email.Template(req.Template))
	if errors.Is(err, email.ErrUnknownTemplate) {
		return "", errs.NewNotFoundError("Email template not found", false, nil)
	}
	return page, err
}

// PreviewEmailRoute is the route for PreviewEmail.
func (h *EmailPreviewHandler) PreviewEmailRoute() echo.HandlerFunc {
	return HandleHTML(h.Handler, h.PreviewEmail, http.StatusOK, &emailPreviewRequest{})
}
