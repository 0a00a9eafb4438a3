package submission

import (
	"strings"

	"github.com/deppfellow/contact-api/internal/validation"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SubmitContactRequest is the JSON body of POST /submit.
type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,max=255,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=10000"`
}

// NULMessage is the field error for values carrying a NUL character,
// which PostgreSQL text columns reject.
const NULMessage = "must not contain NUL characters"

// Validate trims surrounding whitespace, so blank fields count as missing,
// then checks presence, lengths and the email grammar. Values holding a
// NUL character are rejected last.
func (r *SubmitContactRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)

	if err := validate.Struct(r); err != nil {
		return err
	}

	var nulErrs validation.CustomValidationErrors
	for _, f := range []struct{ field, value string }{
		{"name", r.Name},
		{"email", r.Email},
		{"subject", r.Subject},
		{"message", r.Message},
	} {
		if strings.ContainsRune(f.value, 0) {
			nulErrs = append(nulErrs, validation.CustomValidationError{Field: f.field, Message: NULMessage})
		}
	}
	if len(nulErrs) > 0 {
		return nulErrs
	}

	return nil
}

// Sanitize returns the fields with markup-sensitive characters escaped.
// Call it only after Validate succeeded.
func (r *SubmitContactRequest) Sanitize() Fields {
	return Fields{
		Name:    validation.Escape(r.Name),
		Email:   validation.Escape(r.Email),
		Subject: validation.Escape(r.Subject),
		Message: validation.Escape(r.Message),
	}
}

// ListSubmissionsRequest is the (empty) payload of GET /all.
type ListSubmissionsRequest struct{}

func (r *ListSubmissionsRequest) Validate() error {
	return nil
}

// DeleteAllSubmissionsRequest is the (empty) payload of DELETE /all.
type DeleteAllSubmissionsRequest struct{}

func (r *DeleteAllSubmissionsRequest) Validate() error {
	return nil
}

// SubmissionIDRequest carries the :id path parameter of the item routes.
// The id never comes from the body.
type SubmissionIDRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *SubmissionIDRequest) Validate() error {
	return nil
}
