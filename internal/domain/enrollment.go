package domain

import (
	"context"
	"time"
)

// Enrollment is the join record linking one Event to one Participant.
// The (EventID, ParticipantID) pair is unique: a participant may be enrolled
// in a given event at most once.
// swagger:model Enrollment
type Enrollment struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	ParticipantID string    `json:"participant_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewEnrollment returns a new Enrollment for the given pair. ID is set by the repository on create.
func NewEnrollment(eventID, participantID string, createdAt time.Time) *Enrollment {
	return &Enrollment{
		EventID:       eventID,
		ParticipantID: participantID,
		CreatedAt:     createdAt,
	}
}

// EnrollmentWithRelations bundles an enrollment with the event and
// participant it references.
type EnrollmentWithRelations struct {
	Enrollment  *Enrollment  `json:"enrollment"`
	Event       *Event       `json:"event"`
	Participant *Participant `json:"participant"`
}

// EnrollmentRepository defines storage operations for the event-participant
// relation. Uniqueness of the pair is enforced by the storage layer: Create
// returns ErrDuplicateEnrollment when the pair already exists, so concurrent
// enrolls for the same pair cannot both succeed.
type EnrollmentRepository interface {
	Create(ctx context.Context, e *Enrollment) error
	// DeleteByPair removes the enrollment for the pair. Returns
	// ErrEnrollmentNotFound if no such pair exists.
	DeleteByPair(ctx context.Context, eventID, participantID string) error
	// ListByEventID returns enrollments for the event joined with their participants.
	ListByEventID(ctx context.Context, eventID string) ([]*EnrollmentWithRelations, error)
	// ListByParticipantID returns enrollments for the participant joined with their events.
	ListByParticipantID(ctx context.Context, participantID string) ([]*EnrollmentWithRelations, error)
}

// EnrollmentService defines the business logic for the enrollment relation.
type EnrollmentService interface {
	// Enroll adds the participant to the event. Both sides must exist;
	// enrolling the same pair twice fails with ErrDuplicateEnrollment.
	Enroll(ctx context.Context, eventID, participantID string) (*EnrollmentWithRelations, error)
	// Unenroll removes the participant from the event. Fails with
	// ErrEnrollmentNotFound if the pair does not exist.
	Unenroll(ctx context.Context, eventID, participantID string) error
	// ListEventParticipants returns the participants enrolled in the event.
	ListEventParticipants(ctx context.Context, eventID string) ([]*Participant, error)
	// ListParticipantEvents returns the events the participant is enrolled in.
	ListParticipantEvents(ctx context.Context, participantID string) ([]*Event, error)
}
