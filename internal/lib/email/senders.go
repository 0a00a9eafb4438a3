package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/deppfellow/contact-api/internal/config"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// resendSender delivers through the Resend API.
type resendSender struct {
	client *resend.Client
}

func newResendSender(apiKey string) *resendSender {
	return &resendSender{client: resend.NewClient(apiKey)}
}

func (s *resendSender) Name() string {
	return config.EmailProviderResend
}

func (s *resendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: %w", err)
	}

	return nil
}

// sesSender delivers through AWS SES v2.
type sesSender struct {
	client *sesv2.Client
}

// newSESSender loads AWS config. Static keys are used when both are set,
// otherwise the default credential chain applies.
func newSESSender(ctx context.Context, cfg config.SESConfig) (*sesSender, error) {
	var opts []func(*awsconfig.LoadOptions) error

	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &sesSender{client: sesv2.NewFromConfig(awsCfg)}, nil
}

func (s *sesSender) Name() string {
	return config.EmailProviderSES
}

func (s *sesSender) Send(ctx context.Context, msg Message) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses: %w", err)
	}

	return nil
}

// logSender writes messages to the logger instead of delivering them.
type logSender struct {
	logger *zerolog.Logger
}

func (s *logSender) Name() string {
	return config.EmailProviderLog
}

func (s *logSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info().
		Str("from", msg.From).
		Str("to", msg.To).
		Str("reply_to", msg.ReplyTo).
		Str("subject", msg.Subject).
		Str("text", msg.Text).
		Msg("email (log transport)")
	return nil
}
