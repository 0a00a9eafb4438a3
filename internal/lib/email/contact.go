package email

import (
	"context"
	"fmt"
	"html"
	"strconv"

	"github.com/deppfellow/contact-api/internal/model/submission"
)

// ContactNotificationSubject is the subject of every operator notification.
const ContactNotificationSubject = "New Contact Submission"

// SendContactNotification emails the operator about sub. Replies go to the
// submitter.
//
// Stored fields are HTML-escaped; they are unescaped here because the
// template escapes on render and the text part is plain text.
func (c *Client) SendContactNotification(ctx context.Context, sub submission.Submission) error {
	name := html.UnescapeString(sub.Name)
	email := html.UnescapeString(sub.Email)
	subject := html.UnescapeString(sub.Subject)
	message := html.UnescapeString(sub.Message)

	msg := Message{
		To:      c.operator,
		ReplyTo: email,
		Subject: ContactNotificationSubject,
		Text:    fmt.Sprintf("Name: %s, Email: %s, Subject: %s, Message: %s", name, email, subject, message),
	}

	data := map[string]string{
		"ID":      strconv.FormatInt(sub.ID, 10),
		"Name":    name,
		"Email":   email,
		"Subject": subject,
		"Message": message,
	}

	return c.SendEmail(ctx, msg, TemplateContactSubmission, data)
}
