package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/contact-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello", "Hello"},
		{"<script>alert('x')</script>", "&lt;script&gt;alert(&#x27;x&#x27;)&lt;&#x2F;script&gt;"},
		{`Tom & "Jerry"`, "Tom &amp; &quot;Jerry&quot;"},
		{"back\\slash `tick`", "back&#x5C;slash &#96;tick&#96;"},
		{"ann@x.com", "ann@x.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Escape(tt.in), tt.in)
	}
}

func TestEscapeIsIdempotent(t *testing.T) {
	inputs := []string{
		"<b>bold</b>",
		"Tom & Jerry",
		"&amp;amp;",
		"already &lt;escaped&gt;",
		"a/b\\c`d'e\"f",
	}

	for _, in := range inputs {
		once := Escape(in)
		assert.Equal(t, once, Escape(once), in)
		assert.NotContains(t, once, "<")
		assert.NotContains(t, once, ">")
	}
}

type testPayload struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=5"`
}

func (p *testPayload) Validate() error {
	return validator.New().Struct(p)
}

type customPayload struct{}

func (p *customPayload) Validate() error {
	return CustomValidationErrors{{Field: "id", Message: "is not allowed"}}
}

type plainErrPayload struct{}

func (p *plainErrPayload) Validate() error {
	return errors.New("boom")
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	return httpErr
}

func TestBindAndValidate_OK(t *testing.T) {
	p := &testPayload{}
	require.NoError(t, BindAndValidate(newContext(`{"email":"ann@x.com","name":"Ann"}`), p))
	assert.Equal(t, "ann@x.com", p.Email)
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	err := BindAndValidate(newContext(`{"email":"not-an-email","name":"Annabelle"}`), &testPayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "email", Error: "must be a valid email address"},
		{Field: "name", Error: "must not exceed 5 characters"},
	}, httpErr.Errors)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	err := BindAndValidate(newContext(`{"email":`), &testPayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	httpErr := requireHTTPError(t, BindAndValidate(newContext(`{}`), &customPayload{}))
	assert.Equal(t, []errs.FieldError{{Field: "id", Error: "is not allowed"}}, httpErr.Errors)
}

func TestBindAndValidate_PlainError(t *testing.T) {
	httpErr := requireHTTPError(t, BindAndValidate(newContext(`{}`), &plainErrPayload{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed: boom", httpErr.Message)
}
