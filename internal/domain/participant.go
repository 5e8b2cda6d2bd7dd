package domain

import (
	"context"
	"time"
)

// Participant represents a person who can be enrolled in events.
// Email is unique across all participants; Phone is stored as digits only.
// swagger:model Participant
type Participant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewParticipant returns a new Participant with the given fields. ID is set by the repository on create.
func NewParticipant(name, email, phone string, createdAt, updatedAt time.Time) *Participant {
	return &Participant{
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ParticipantRepository defines storage operations for participants.
type ParticipantRepository interface {
	Create(ctx context.Context, p *Participant) error
	GetByID(ctx context.Context, id string) (*Participant, error)
	GetByEmail(ctx context.Context, email string) (*Participant, error)
	List(ctx context.Context) ([]*Participant, error)
	Update(ctx context.Context, p *Participant) error
	// Delete removes the participant and every enrollment referencing them in
	// a single transaction. Returns ErrParticipantNotFound if the id does not resolve.
	Delete(ctx context.Context, id string) error
}

// ParticipantService defines the business logic for participant management.
type ParticipantService interface {
	Create(ctx context.Context, name, email, phone string) (*Participant, error)
	GetByID(ctx context.Context, id string) (*Participant, error)
	List(ctx context.Context) ([]*Participant, error)
	// EmailExists reports whether a participant with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id, name, email, phone string) (*Participant, error)
	Delete(ctx context.Context, id string) error
}
