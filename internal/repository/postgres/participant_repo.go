package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventhub/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

// NewParticipantRepository returns a Postgres-backed domain.ParticipantRepository.
func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{DB: db}
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participants (name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, p.Name, p.Email, p.Phone, p.CreatedAt, p.UpdatedAt).
		Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err, participantsEmailConstraint) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM participants
		WHERE id = $1
	`
	p := &domain.Participant{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) GetByEmail(ctx context.Context, email string) (*domain.Participant, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM participants
		WHERE email = $1
	`
	p := &domain.Participant{}
	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) List(ctx context.Context) ([]*domain.Participant, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM participants
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p := &domain.Participant{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *participantRepository) Update(ctx context.Context, p *domain.Participant) error {
	query := `
		UPDATE participants
		SET name = $1, email = $2, phone = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := r.DB.ExecContext(ctx, query, p.Name, p.Email, p.Phone, p.UpdatedAt, p.ID)
	if err != nil {
		if isUniqueViolation(err, participantsEmailConstraint) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

// Delete removes the participant's enrollments and the participant row in one
// transaction so a partial cascade is never observable.
func (r *participantRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete participant: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM enrollments WHERE participant_id = $1`, id); err != nil {
		return fmt.Errorf("delete participant enrollments: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrParticipantNotFound
	}

	return tx.Commit()
}
