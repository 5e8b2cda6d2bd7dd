package domain

import "context"

// Mailer sends a single email message.
type Mailer interface {
	Send(to, subject, htmlBody, textBody string) error
}

// EmailTemplateRenderer renders a named email template with the given data
// and returns the subject, HTML body, and plain-text body.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EnrollmentConfirmationEmailData is the data for the enrollment confirmation template.
type EnrollmentConfirmationEmailData struct {
	ParticipantName string
	Email           string
	EventName       string
	EventDate       string
}

// EmailService defines outbound email flows. Sends are best-effort from the
// caller's point of view: a failed confirmation never rolls back an enrollment.
type EmailService interface {
	SendEnrollmentConfirmation(ctx context.Context, data *EnrollmentConfirmationEmailData) error
}
