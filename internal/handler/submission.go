package handler

import (
	"fmt"

	"github.com/deppfellow/contact-api/internal/middleware"
	"github.com/deppfellow/contact-api/internal/model/submission"
	"github.com/deppfellow/contact-api/internal/server"
	"github.com/deppfellow/contact-api/internal/service"
	"github.com/labstack/echo/v4"
)

// Confirmation texts returned by the write endpoints.
const (
	SubmitSuccessMessage    = "Submission successful."
	DeleteAllSuccessMessage = "All records deleted"
)

type SubmissionHandler struct {
	Handler
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(s *server.Server, submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		Handler:           NewHandler(s),
		submissionService: submissionService,
	}
}

func (h *SubmissionHandler) ListSubmissions(c echo.Context, _ *submission.ListSubmissionsRequest) ([]submission.Submission, error) {
	return h.submissionService.List(c.Request().Context())
}

func (h *SubmissionHandler) GetSubmission(c echo.Context, req *submission.SubmissionIDRequest) (*submission.Submission, error) {
	return h.submissionService.Get(c.Request().Context(), req.ID)
}

func (h *SubmissionHandler) DeleteSubmission(c echo.Context, req *submission.SubmissionIDRequest) (string, error) {
	if err := h.submissionService.Delete(c.Request().Context(), req.ID); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted record with id %d", req.ID), nil
}

func (h *SubmissionHandler) DeleteAllSubmissions(c echo.Context, _ *submission.DeleteAllSubmissionsRequest) (string, error) {
	if _, err := h.submissionService.DeleteAll(c.Request().Context()); err != nil {
		return "", err
	}
	return DeleteAllSuccessMessage, nil
}

// SubmitContact stores the submission and answers as soon as it is
// persisted. The operator notification continues in the background.
func (h *SubmissionHandler) SubmitContact(c echo.Context, req *submission.SubmitContactRequest) (string, error) {
	sub, err := h.submissionService.Submit(c.Request().Context(), req)
	if err != nil {
		return "", err
	}

	middleware.GetLogger(c).Info().Int64("submission_id", sub.ID).Msg("contact submission stored")
	return SubmitSuccessMessage, nil
}
