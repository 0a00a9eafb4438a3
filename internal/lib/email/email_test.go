package email

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/contact-api/internal/config"
	"github.com/deppfellow/contact-api/internal/model/submission"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	messages []Message
	err      error
}

func (s *recordingSender) Name() string { return "recording" }

func (s *recordingSender) Send(ctx context.Context, msg Message) error {
	s.messages = append(s.messages, msg)
	return s.err
}

func newTestClient(s sender) *Client {
	logger := zerolog.Nop()
	return newClient(s, "noreply@example.com", "ops@example.com", &logger)
}

func TestSendContactNotification(t *testing.T) {
	rec := &recordingSender{}
	client := newTestClient(rec)

	sub := submission.Submission{
		ID:      7,
		Name:    "Ann",
		Email:   "ann@x.com",
		Subject: "Q&amp;A",
		Message: "&lt;b&gt;Hello&lt;&#x2F;b&gt;",
	}

	require.NoError(t, client.SendContactNotification(context.Background(), sub))
	require.Len(t, rec.messages, 1)

	msg := rec.messages[0]
	assert.Equal(t, "noreply@example.com", msg.From)
	assert.Equal(t, "ops@example.com", msg.To)
	assert.Equal(t, "ann@x.com", msg.ReplyTo)
	assert.Equal(t, ContactNotificationSubject, msg.Subject)
	assert.Equal(t, "Name: Ann, Email: ann@x.com, Subject: Q&A, Message: <b>Hello</b>", msg.Text)

	assert.Contains(t, msg.HTML, "Q&amp;A")
	assert.Contains(t, msg.HTML, "&lt;b&gt;Hello&lt;/b&gt;")
	assert.NotContains(t, msg.HTML, "<b>Hello")
	assert.NotContains(t, msg.HTML, "&amp;lt;")
	assert.Contains(t, msg.HTML, "mailto:ann@x.com")
}

func TestSendContactNotification_TransportError(t *testing.T) {
	boom := errors.New("quota exceeded")
	client := newTestClient(&recordingSender{err: boom})

	err := client.SendContactNotification(context.Background(), submission.Submission{ID: 1, Email: "a@b.co"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "recording")
}

func TestPreviewTemplates(t *testing.T) {
	for name := range PreviewData {
		body, err := Preview(name)
		require.NoError(t, err, name)
		assert.Contains(t, body, "Ann Example")
	}

	_, err := Preview("missing")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name     string
		cfg      config.EmailConfig
		provider string
		wantErr  bool
	}{
		{
			name:     "log",
			cfg:      config.EmailConfig{Provider: config.EmailProviderLog},
			provider: config.EmailProviderLog,
		},
		{
			name:     "resend",
			cfg:      config.EmailConfig{Provider: config.EmailProviderResend, ResendAPIKey: "re_test"},
			provider: config.EmailProviderResend,
		},
		{
			name: "ses",
			cfg: config.EmailConfig{
				Provider: config.EmailProviderSES,
				SES:      config.SESConfig{Region: "eu-west-1", AccessKeyID: "AKID", SecretAccessKey: "secret"},
			},
			provider: config.EmailProviderSES,
		},
		{
			name:    "unknown",
			cfg:     config.EmailConfig{Provider: "carrier-pigeon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(context.Background(), &tt.cfg, &logger)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.provider, client.Provider())
		})
	}
}

func TestLogSender(t *testing.T) {
	logger := zerolog.Nop()
	client := newClient(&logSender{logger: &logger}, "noreply@example.com", "ops@example.com", &logger)

	assert.NoError(t, client.SendContactNotification(context.Background(), submission.Submission{ID: 1, Name: "Ann", Email: "ann@x.com"}))
}
