package router

import (
	"net/http"

	"github.com/deppfellow/contact-api/internal/handler"
	"github.com/deppfellow/contact-api/internal/model/submission"
	"github.com/labstack/echo/v4"
)

// registerSubmissionRoutes registers the contact-form API. Every route,
// including the legacy aliases, shares one rate limiter.
func registerSubmissionRoutes(r *echo.Echo, h *handler.Handlers, limit echo.MiddlewareFunc) {
	sh := h.Submission

	list := handler.Handle(sh.Handler, sh.ListSubmissions, http.StatusOK, &submission.ListSubmissionsRequest{})
	get := handler.Handle(sh.Handler, sh.GetSubmission, http.StatusOK, &submission.SubmissionIDRequest{})
	deleteOne := handler.HandleText(sh.Handler, sh.DeleteSubmission, http.StatusOK, &submission.SubmissionIDRequest{})
	deleteAll := handler.HandleText(sh.Handler, sh.DeleteAllSubmissions, http.StatusOK, &submission.DeleteAllSubmissionsRequest{})
	submit := handler.HandleText(sh.Handler, sh.SubmitContact, http.StatusOK, &submission.SubmitContactRequest{})

	r.POST("/submit", submit, limit)

	r.GET("/all", list, limit)
	r.DELETE("/all", deleteAll, limit)
	r.GET("/item/:id", get, limit)
	r.DELETE("/item/:id", deleteOne, limit)

	// Legacy paths.
	r.GET("/getAll", list, limit)
	r.GET("/get/:id", get, limit)
	r.DELETE("/delete/:id", deleteOne, limit)
	r.DELETE("/deleteAll", deleteAll, limit)
}
