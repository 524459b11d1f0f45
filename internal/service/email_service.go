package service

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/sirupsen/logrus"
)

// EmailService sends transactional email via Amazon SES. When no sender
// address is configured the service runs disabled and only logs what it
// would have sent.
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
}

// NewEmailService creates a new email service
func NewEmailService(ctx context.Context, awsRegion, fromEmail, fromName string) (*EmailService, error) {
	if fromEmail == "" {
		logrus.Info("email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"from":   fromEmail,
		"region": awsRegion,
	}).Info("email service enabled")

	return &EmailService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendWelcomeEmail sends the post-registration welcome message. Delivery
// failures are logged, never surfaced: registration must not fail because
// the welcome email did.
func (s *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, childName string) {
	if s == nil || !s.enabled {
		logrus.WithField("to", toEmail).Info("welcome email skipped (service disabled)")
		return
	}

	subject := "Bem-vindo à Feliz Education! 🎉"
	body := fmt.Sprintf(
		"Olá!\n\nA conta de %s está pronta. A jornada começa pela Alfabetização Mágica: "+
			"uma letra por vez, no ritmo da criança.\n\nBons estudos!\nEquipe Feliz Education",
		childName,
	)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		logrus.WithField("to", toEmail).WithError(err).Warn("failed to send welcome email")
		return
	}
	logrus.WithField("to", toEmail).Info("welcome email sent")
}
