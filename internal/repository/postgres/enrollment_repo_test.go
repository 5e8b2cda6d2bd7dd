package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func TestEnrollmentRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success assigns generated id",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO enrollments`).
					WithArgs("event-uuid-1", "participant-uuid-1", now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("enrollment-uuid-1"))
			},
		},
		{
			name: "duplicate pair unique violation",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO enrollments`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "enrollments_event_participant_key"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicateEnrollment,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO enrollments`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEnrollmentRepository(db)
			enrollment := domain.NewEnrollment("event-uuid-1", "participant-uuid-1", now)
			err = repo.Create(ctx, enrollment)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, "enrollment-uuid-1", enrollment.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnrollmentRepository_DeleteByPair(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM enrollments WHERE event_id .+ AND participant_id`).
			WithArgs("event-uuid-1", "participant-uuid-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewEnrollmentRepository(db)
		require.NoError(t, repo.DeleteByPair(ctx, "event-uuid-1", "participant-uuid-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pair not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM enrollments`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewEnrollmentRepository(db)
		err = repo.DeleteByPair(ctx, "event-uuid-1", "participant-uuid-1")
		require.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEnrollmentRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "event_id", "participant_id", "created_at",
		"id", "name", "email", "phone", "created_at", "updated_at",
	}).
		AddRow("en1", "e1", "p1", now, "p1", "Ana", "ana@x.com", "11912345678", now, now).
		AddRow("en2", "e1", "p2", now, "p2", "Bia", "bia@x.com", "1112345678", now, now)
	mock.ExpectQuery(`FROM enrollments en\s+JOIN participants p`).
		WithArgs("e1").
		WillReturnRows(rows)

	repo := NewEnrollmentRepository(db)
	items, err := repo.ListByEventID(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Ana", items[0].Participant.Name)
	require.Equal(t, "p2", items[1].Enrollment.ParticipantID)
	require.Nil(t, items[0].Event)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepository_ListByParticipantID(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "event_id", "participant_id", "created_at",
		"id", "name", "description", "date", "created_at", "updated_at",
	}).
		AddRow("en1", "e1", "p1", now, "e1", "Conf", "desc", now, now, now)
	mock.ExpectQuery(`FROM enrollments en\s+JOIN events e`).
		WithArgs("p1").
		WillReturnRows(rows)

	repo := NewEnrollmentRepository(db)
	items, err := repo.ListByParticipantID(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Conf", items[0].Event.Name)
	require.Nil(t, items[0].Participant)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepository_ListByEventID_Empty(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "event_id", "participant_id", "created_at",
		"id", "name", "email", "phone", "created_at", "updated_at",
	})
	mock.ExpectQuery(`FROM enrollments en\s+JOIN participants p`).
		WithArgs("e1").
		WillReturnRows(rows)

	repo := NewEnrollmentRepository(db)
	items, err := repo.ListByEventID(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
	require.NoError(t, mock.ExpectationsWereMet())
}
