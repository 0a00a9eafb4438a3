// Package email sends the operator notification for new contact
// submissions.
//
// Bodies are rendered from embedded HTML templates. Delivery goes through
// one of three transports chosen by config: Resend, AWS SES v2, or a
// logging transport for local runs.
package email

import (
	"bytes"
	"context"
	"fmt"

	"github.com/deppfellow/contact-api/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Message is a single outgoing email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// sender is one delivery transport.
type sender interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}

// Client renders and delivers emails through the configured transport.
type Client struct {
	sender   sender
	from     string
	operator string
	logger   *zerolog.Logger
}

// NewClient builds a Client for cfg.Provider.
func NewClient(ctx context.Context, cfg *config.EmailConfig, logger *zerolog.Logger) (*Client, error) {
	var s sender

	switch cfg.Provider {
	case config.EmailProviderResend:
		s = newResendSender(cfg.ResendAPIKey)
	case config.EmailProviderSES:
		ses, err := newSESSender(ctx, cfg.SES)
		if err != nil {
			return nil, err
		}
		s = ses
	case config.EmailProviderLog:
		s = &logSender{logger: logger}
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}

	logger.Info().Str("provider", s.Name()).Msg("email client initialized")

	return newClient(s, cfg.FromAddress, cfg.OperatorAddress, logger), nil
}

func newClient(s sender, from, operator string, logger *zerolog.Logger) *Client {
	return &Client{
		sender:   s,
		from:     from,
		operator: operator,
		logger:   logger,
	}
}

// Provider names the transport in use.
func (c *Client) Provider() string {
	return c.sender.Name()
}

// SendEmail renders templateName with data into msg.HTML and delivers msg.
// An empty msg.From defaults to the configured sender address.
func (c *Client) SendEmail(ctx context.Context, msg Message, templateName Template, data map[string]string) error {
	body, err := render(templateName, data)
	if err != nil {
		return err
	}

	msg.HTML = body
	if msg.From == "" {
		msg.From = c.from
	}

	if err := c.sender.Send(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to send email via %s", c.sender.Name())
	}

	return nil
}

// render executes the named embedded template.
func render(templateName Template, data map[string]string) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, templateName.file(), data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}
	return body.String(), nil
}
