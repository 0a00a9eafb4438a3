// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/contact-api/internal/repository"
	"github.com/deppfellow/contact-api/internal/server"
)

type Services struct {
	Submission *SubmissionService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Submission: NewSubmissionService(repos.Submission, s.Email, s.Logger),
	}, nil
}
