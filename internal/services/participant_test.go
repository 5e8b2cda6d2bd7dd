package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func TestParticipantService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		pName     string
		email     string
		phone     string
		wantEmail string
		wantPhone string
		wantErr   error
	}{
		{
			name:      "success normalizes email and phone",
			pName:     "Ana Silva",
			email:     "  Ana.Silva@Example.COM ",
			phone:     "(11) 91234-5678",
			wantEmail: "ana.silva@example.com",
			wantPhone: "11912345678",
		},
		{
			name:      "ten digit phone accepted",
			pName:     "Bia",
			email:     "bia@example.com",
			phone:     "11 1234-5678",
			wantEmail: "bia@example.com",
			wantPhone: "1112345678",
		},
		{
			name:    "missing name",
			pName:   "",
			email:   "ana@example.com",
			phone:   "11912345678",
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "invalid email shape",
			pName:   "Ana",
			email:   "not-an-email",
			phone:   "11912345678",
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "phone with too few digits",
			pName:   "Ana",
			email:   "ana@example.com",
			phone:   "123",
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			svc := NewParticipantService(&fakeParticipantRepo{store: store})

			p, err := svc.Create(ctx, tt.pName, tt.email, tt.phone)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, store.participants)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, tt.wantEmail, p.Email)
			assert.Equal(t, tt.wantPhone, p.Phone)
		})
	}
}

func TestParticipantService_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewParticipantService(&fakeParticipantRepo{store: store})

	_, err := svc.Create(ctx, "Ana", "ana@example.com", "11912345678")
	require.NoError(t, err)

	// Same address in a different case normalizes to the same canonical email.
	_, err = svc.Create(ctx, "Ana Again", "ANA@Example.com", "11987654321")
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.Len(t, store.participants, 1)
}

func TestParticipantService_EmailExists(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewParticipantService(&fakeParticipantRepo{store: store})

	_, err := svc.Create(ctx, "Ana", "ana@example.com", "11912345678")
	require.NoError(t, err)

	t.Run("registered email", func(t *testing.T) {
		exists, err := svc.EmailExists(ctx, "Ana@Example.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("unregistered email", func(t *testing.T) {
		exists, err := svc.EmailExists(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("invalid email shape", func(t *testing.T) {
		_, err := svc.EmailExists(ctx, "not-an-email")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestParticipantService_Update(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewParticipantService(&fakeParticipantRepo{store: store})

	ana, err := svc.Create(ctx, "Ana", "ana@example.com", "11912345678")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Bia", "bia@example.com", "11987654321")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		updated, err := svc.Update(ctx, ana.ID, "Ana Maria", "ana.maria@example.com", "(11) 91234-5678")
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", updated.Name)
		assert.Equal(t, "ana.maria@example.com", updated.Email)
		assert.Equal(t, "11912345678", updated.Phone)
	})

	t.Run("email taken by another participant", func(t *testing.T) {
		_, err := svc.Update(ctx, ana.ID, "Ana", "bia@example.com", "11912345678")
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.Update(ctx, "not-a-uuid", "Ana", "ana@example.com", "11912345678")
		require.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, "00000000-0000-0000-0000-000000000000", "Ana", "new@example.com", "11912345678")
		require.ErrorIs(t, err, domain.ErrParticipantNotFound)
	})
}

func TestParticipantService_Delete(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewParticipantService(&fakeParticipantRepo{store: store})

	ana, err := svc.Create(ctx, "Ana", "ana@example.com", "11912345678")
	require.NoError(t, err)

	t.Run("malformed id", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, "not-a-uuid"), domain.ErrInvalidID)
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, ana.ID))
		assert.Empty(t, store.participants)
	})

	t.Run("already deleted", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, ana.ID), domain.ErrParticipantNotFound)
	})
}
