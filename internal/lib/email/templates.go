package email

import (
	"embed"
	"html/template"
)

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateContactSubmission corresponds to templates/contact_submission.html
	TemplateContactSubmission Template = "contact_submission"
)

func (t Template) file() string {
	return string(t) + ".html"
}

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
