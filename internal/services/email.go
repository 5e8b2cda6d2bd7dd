package services

import (
	"context"
	"fmt"
	"log"

	"eventhub/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendEnrollmentConfirmation sends the enrollment confirmation email using the
// "enrollment_confirmation" template and the given data.
func (s *emailService) SendEnrollmentConfirmation(ctx context.Context, data *domain.EnrollmentConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("enrollment confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("enrollment_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render enrollment_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send enrollment confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Enrollment confirmation sent to %s", data.Email)
	return nil
}
