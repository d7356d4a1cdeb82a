package services

import (
	"context"
	"fmt"
	"log/slog"

	"meetspace/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendRegistrationNotice tells the registrant which key prefix was issued, using the "registration" template.
func (s *emailService) SendRegistrationNotice(ctx context.Context, data *domain.RegistrationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("registration", data)
	if err != nil {
		return fmt.Errorf("failed to render registration template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send registration email: %w", err)
	}
	s.logger.InfoContext(ctx, "registration notice sent", "key_prefix", data.KeyPrefix)
	return nil
}
