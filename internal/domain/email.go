package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RegistrationEmailData holds data for the registration notice. It must never
// carry the plaintext key; only the non-secret prefix is shown.
type RegistrationEmailData struct {
	Email     string
	AgentName string
	KeyPrefix string
	Tier      Tier
	RateLimit int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRegistrationNotice(ctx context.Context, data *RegistrationEmailData) error
}
