package service

import (
	"context"

	"github.com/deppfellow/contact-api/internal/model/submission"
	"github.com/rs/zerolog"
)

// SubmissionStore is the persistence the service needs.
// *repository.SubmissionRepository satisfies it.
type SubmissionStore interface {
	List(ctx context.Context) ([]submission.Submission, error)
	Get(ctx context.Context, id int64) (*submission.Submission, error)
	Insert(ctx context.Context, fields submission.Fields) (*submission.Submission, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

// Notifier tells the operator about a new submission.
// *email.Client satisfies it.
type Notifier interface {
	SendContactNotification(ctx context.Context, sub submission.Submission) error
}

type SubmissionService struct {
	store    SubmissionStore
	notifier Notifier
	logger   *zerolog.Logger
}

func NewSubmissionService(store SubmissionStore, notifier Notifier, logger *zerolog.Logger) *SubmissionService {
	return &SubmissionService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *SubmissionService) List(ctx context.Context) ([]submission.Submission, error) {
	return s.store.List(ctx)
}

func (s *SubmissionService) Get(ctx context.Context, id int64) (*submission.Submission, error) {
	return s.store.Get(ctx, id)
}

func (s *SubmissionService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *SubmissionService) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("deleted", deleted).Msg("deleted all contact submissions")
	return deleted, nil
}

// Submit stores an already validated request and starts the operator
// notification without waiting for it. A failed insert sends nothing.
// Notification errors are logged and never reach the caller.
func (s *SubmissionService) Submit(ctx context.Context, req *submission.SubmitContactRequest) (*submission.Submission, error) {
	sub, err := s.store.Insert(ctx, req.Sanitize())
	if err != nil {
		return nil, err
	}

	// The request context is cancelled once the response is written.
	go s.notify(context.WithoutCancel(ctx), *sub)

	return sub, nil
}

func (s *SubmissionService) notify(ctx context.Context, sub submission.Submission) {
	if s.notifier == nil {
		return
	}

	logger := s.logger.With().Int64("submission_id", sub.ID).Logger()

	if err := s.notifier.SendContactNotification(ctx, sub); err != nil {
		logger.Error().Err(err).Msg("failed to send contact notification")
		return
	}

	logger.Info().Msg("contact notification sent")
}
