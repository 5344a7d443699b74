package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// EmailMessage is a single outbound email.
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// EmailSender defines the interface for sending emails
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// AWSSESEmailSender sends emails using AWS SES
type AWSSESEmailSender struct {
	sesClient   *ses.Client
	fromAddress string
	logger      *slog.Logger
}

// NewAWSSESEmailSender creates a new AWS SES email sender
func NewAWSSESEmailSender(region, fromAddress string, logger *slog.Logger) (*AWSSESEmailSender, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSSESEmailSender{
		sesClient:   ses.NewFromConfig(cfg),
		fromAddress: fromAddress,
		logger:      logger,
	}, nil
}

// Send dispatches a single email via SES
func (s *AWSSESEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	input := &ses.SendEmailInput{
		Source: aws.String(s.fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(msg.Subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(msg.HTMLBody),
				},
				Text: &types.Content{
					Data: aws.String(msg.TextBody),
				},
			},
		},
	}

	result, err := s.sesClient.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("email sent",
		slog.String("subject", msg.Subject),
		slog.String("message_id", *result.MessageId))

	return nil
}

// DisabledEmailSender drops all messages. Used when no email transport
// is configured so the rest of the service keeps working.
type DisabledEmailSender struct {
	logger *slog.Logger
}

// NewDisabledEmailSender creates a sender that silently drops everything
func NewDisabledEmailSender(logger *slog.Logger) *DisabledEmailSender {
	logger.Warn("no email provider configured, notifications disabled")
	return &DisabledEmailSender{logger: logger}
}

func (s *DisabledEmailSender) Send(_ context.Context, msg EmailMessage) error {
	s.logger.Debug("email transport disabled, dropping message",
		slog.String("subject", msg.Subject))
	return nil
}
