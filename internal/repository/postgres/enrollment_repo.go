package postgres

import (
	"context"
	"database/sql"

	"eventhub/internal/domain"
)

type enrollmentRepository struct {
	DB *sql.DB
}

// NewEnrollmentRepository returns a Postgres-backed domain.EnrollmentRepository.
// The compound unique constraint on (event_id, participant_id) is the source
// of truth for the pair invariant; Create surfaces it as ErrDuplicateEnrollment.
func NewEnrollmentRepository(db *sql.DB) domain.EnrollmentRepository {
	return &enrollmentRepository{DB: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) error {
	query := `
		INSERT INTO enrollments (event_id, participant_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, e.EventID, e.ParticipantID, e.CreatedAt).
		Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err, enrollmentsPairConstraint) {
			return domain.ErrDuplicateEnrollment
		}
		return err
	}
	return nil
}

func (r *enrollmentRepository) DeleteByPair(ctx context.Context, eventID, participantID string) error {
	query := `DELETE FROM enrollments WHERE event_id = $1 AND participant_id = $2`
	result, err := r.DB.ExecContext(ctx, query, eventID, participantID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}

// ListByEventID returns the event's enrollments joined with their
// participants; the Event field of each item is left nil.
func (r *enrollmentRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.EnrollmentWithRelations, error) {
	query := `
		SELECT en.id, en.event_id, en.participant_id, en.created_at,
		       p.id, p.name, p.email, p.phone, p.created_at, p.updated_at
		FROM enrollments en
		JOIN participants p ON p.id = en.participant_id
		WHERE en.event_id = $1
		ORDER BY en.created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.EnrollmentWithRelations, 0)
	for rows.Next() {
		en := &domain.Enrollment{}
		p := &domain.Participant{}
		if err := rows.Scan(
			&en.ID, &en.EventID, &en.ParticipantID, &en.CreatedAt,
			&p.ID, &p.Name, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &domain.EnrollmentWithRelations{Enrollment: en, Participant: p})
	}
	return items, rows.Err()
}

// ListByParticipantID returns the participant's enrollments joined with their
// events; the Participant field of each item is left nil.
func (r *enrollmentRepository) ListByParticipantID(ctx context.Context, participantID string) ([]*domain.EnrollmentWithRelations, error) {
	query := `
		SELECT en.id, en.event_id, en.participant_id, en.created_at,
		       e.id, e.name, e.description, e.date, e.created_at, e.updated_at
		FROM enrollments en
		JOIN events e ON e.id = en.event_id
		WHERE en.participant_id = $1
		ORDER BY e.date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, participantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.EnrollmentWithRelations, 0)
	for rows.Next() {
		en := &domain.Enrollment{}
		e := &domain.Event{}
		if err := rows.Scan(
			&en.ID, &en.EventID, &en.ParticipantID, &en.CreatedAt,
			&e.ID, &e.Name, &e.Description, &e.Date, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &domain.EnrollmentWithRelations{Enrollment: en, Event: e})
	}
	return items, rows.Err()
}
