// Package submission holds the contact-form Submission entity and the
// request payloads the HTTP layer binds for it.
package submission

import "time"

// Submission is one persisted contact-form entry. Content fields are
// stored already sanitized; rows are never updated.
type Submission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Fields are the four content fields of a submission, after validation
// and sanitization.
type Fields struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Fields returns the content fields of s.
func (s Submission) Fields() Fields {
	return Fields{
		Name:    s.Name,
		Email:   s.Email,
		Subject: s.Subject,
		Message: s.Message,
	}
}
