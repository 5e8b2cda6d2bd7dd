package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/validation"
)

type enrollmentService struct {
	eventRepo       domain.EventRepository
	participantRepo domain.ParticipantRepository
	enrollmentRepo  domain.EnrollmentRepository
	emailService    domain.EmailService
}

// NewEnrollmentService creates an EnrollmentService with the given
// repositories. emailService may be nil; confirmation emails are then skipped.
func NewEnrollmentService(
	eventRepo domain.EventRepository,
	participantRepo domain.ParticipantRepository,
	enrollmentRepo domain.EnrollmentRepository,
	emailService domain.EmailService,
) domain.EnrollmentService {
	return &enrollmentService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		enrollmentRepo:  enrollmentRepo,
		emailService:    emailService,
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, eventID, participantID string) (*domain.EnrollmentWithRelations, error) {
	if !validation.ValidID(eventID) {
		return nil, fmt.Errorf("%w: event id must be a valid UUID", domain.ErrInvalidID)
	}
	if !validation.ValidID(participantID) {
		return nil, fmt.Errorf("%w: participant id must be a valid UUID", domain.ErrInvalidID)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	participant, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}

	// The insert itself decides uniqueness. Two concurrent enrolls for the
	// same pair both reach this point; the pair constraint lets only one win.
	enrollment := domain.NewEnrollment(eventID, participantID, time.Now())
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		if errors.Is(err, domain.ErrDuplicateEnrollment) {
			return nil, domain.ErrDuplicateEnrollment
		}
		return nil, fmt.Errorf("create enrollment: %w", err)
	}

	if s.emailService != nil {
		data := &domain.EnrollmentConfirmationEmailData{
			ParticipantName: participant.Name,
			Email:           participant.Email,
			EventName:       event.Name,
			EventDate:       event.Date.Format(time.RFC3339),
		}
		if err := s.emailService.SendEnrollmentConfirmation(ctx, data); err != nil {
			log.Printf("[ENROLLMENT] confirmation email to %s failed: %v", participant.Email, err)
		}
	}

	return &domain.EnrollmentWithRelations{
		Enrollment:  enrollment,
		Event:       event,
		Participant: participant,
	}, nil
}

func (s *enrollmentService) Unenroll(ctx context.Context, eventID, participantID string) error {
	if !validation.ValidID(eventID) {
		return fmt.Errorf("%w: event id must be a valid UUID", domain.ErrInvalidID)
	}
	if !validation.ValidID(participantID) {
		return fmt.Errorf("%w: participant id must be a valid UUID", domain.ErrInvalidID)
	}
	if err := s.enrollmentRepo.DeleteByPair(ctx, eventID, participantID); err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return domain.ErrEnrollmentNotFound
		}
		return fmt.Errorf("delete enrollment: %w", err)
	}
	return nil
}

func (s *enrollmentService) ListEventParticipants(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	if !validation.ValidID(eventID) {
		return nil, fmt.Errorf("%w: event id must be a valid UUID", domain.ErrInvalidID)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	items, err := s.enrollmentRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	participants := make([]*domain.Participant, 0, len(items))
	for _, it := range items {
		participants = append(participants, it.Participant)
	}
	return participants, nil
}

func (s *enrollmentService) ListParticipantEvents(ctx context.Context, participantID string) ([]*domain.Event, error) {
	if !validation.ValidID(participantID) {
		return nil, fmt.Errorf("%w: participant id must be a valid UUID", domain.ErrInvalidID)
	}
	if _, err := s.participantRepo.GetByID(ctx, participantID); err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}

	items, err := s.enrollmentRepo.ListByParticipantID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	events := make([]*domain.Event, 0, len(items))
	for _, it := range items {
		events = append(events, it.Event)
	}
	return events, nil
}
