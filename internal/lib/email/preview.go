package email

import "github.com/pkg/errors"

// ErrUnknownTemplate is returned by Preview for a template without
// preview data.
var ErrUnknownTemplate = errors.New("unknown email template")

// PreviewData contains sample template data for local preview/testing.
//
//	templateName -> (templateVariableName -> exampleValue)
var PreviewData = map[Template]map[string]string{
	TemplateContactSubmission: {
		"ID":      "42",
		"Name":    "Ann Example",
		"Email":   "ann@example.com",
		"Subject": "Question about pricing",
		"Message": "Hello,\ndo you offer a yearly plan?",
	},
}

// Preview renders templateName with its PreviewData.
func Preview(templateName Template) (string, error) {
	data, ok := PreviewData[templateName]
	if !ok {
		return "", ErrUnknownTemplate
	}
	return render(templateName, data)
}
