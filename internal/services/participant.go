package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/validation"
)

type participantService struct {
	participantRepo domain.ParticipantRepository
}

// NewParticipantService creates a ParticipantService backed by the given repository.
func NewParticipantService(participantRepo domain.ParticipantRepository) domain.ParticipantService {
	return &participantService{participantRepo: participantRepo}
}

// validateParticipantFields checks and normalizes the mutable participant
// fields, returning the canonical email and digits-only phone.
func validateParticipantFields(name, email, phone string) (normName, normEmail, normPhone string, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", "", fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	email = validation.NormalizeEmail(email)
	if email == "" {
		return "", "", "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if !validation.ValidEmail(email) {
		return "", "", "", fmt.Errorf("%w: email format is invalid", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(phone) == "" {
		return "", "", "", fmt.Errorf("%w: phone is required", domain.ErrInvalidInput)
	}
	if !validation.ValidPhone(phone) {
		return "", "", "", fmt.Errorf("%w: phone must contain 10 or 11 digits", domain.ErrInvalidInput)
	}
	return name, email, validation.NormalizePhone(phone), nil
}

func (s *participantService) Create(ctx context.Context, name, email, phone string) (*domain.Participant, error) {
	name, email, phone, err := validateParticipantFields(name, email, phone)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	participant := domain.NewParticipant(name, email, phone, now, now)
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create participant: %w", err)
	}
	return participant, nil
}

func (s *participantService) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	if !validation.ValidID(id) {
		return nil, fmt.Errorf("%w: participant id must be a valid UUID", domain.ErrInvalidID)
	}
	participant, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}
	return participant, nil
}

func (s *participantService) List(ctx context.Context) ([]*domain.Participant, error) {
	participants, err := s.participantRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	if participants == nil {
		participants = []*domain.Participant{}
	}
	return participants, nil
}

func (s *participantService) EmailExists(ctx context.Context, email string) (bool, error) {
	email = validation.NormalizeEmail(email)
	if !validation.ValidEmail(email) {
		return false, fmt.Errorf("%w: email format is invalid", domain.ErrInvalidInput)
	}
	_, err := s.participantRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get participant by email: %w", err)
	}
	return true, nil
}

func (s *participantService) Update(ctx context.Context, id, name, email, phone string) (*domain.Participant, error) {
	if !validation.ValidID(id) {
		return nil, fmt.Errorf("%w: participant id must be a valid UUID", domain.ErrInvalidID)
	}
	name, email, phone, err := validateParticipantFields(name, email, phone)
	if err != nil {
		return nil, err
	}

	participant, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}

	participant.Name = name
	participant.Email = email
	participant.Phone = phone
	participant.UpdatedAt = time.Now()
	if err := s.participantRepo.Update(ctx, participant); err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return nil, domain.ErrParticipantNotFound
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update participant: %w", err)
	}
	return participant, nil
}

func (s *participantService) Delete(ctx context.Context, id string) error {
	if !validation.ValidID(id) {
		return fmt.Errorf("%w: participant id must be a valid UUID", domain.ErrInvalidID)
	}
	if err := s.participantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return domain.ErrParticipantNotFound
		}
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}
