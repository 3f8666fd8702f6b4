package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/learnsync/internal/server/storage"
)

var testTime = time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)

func newTestUser(email string) *storage.User {
	return &storage.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "$2a$10$hash",
		FirstName:    "Ana",
		LastName:     "Diaz",
		Role:         "refugee",
		CreatedAt:    testTime,
		UpdatedAt:    testTime,
	}
}

func TestUserStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	user := newTestUser("ana@example.com")
	require.NoError(t, s.CreateUser(ctx, user))

	byEmail, err := s.GetUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "Ana", byEmail.FirstName)
	assert.True(t, testTime.Equal(byEmail.CreatedAt))
	assert.False(t, byEmail.PasswordChangedAt.Valid)

	byID, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", byID.Email)
}

func TestUserStorage_Errors(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	require.NoError(t, s.CreateUser(ctx, newTestUser("ana@example.com")))

	tests := []struct {
		call    func() error
		wantErr error
		name    string
	}{
		{
			name:    "duplicate email",
			call:    func() error { return s.CreateUser(ctx, newTestUser("ana@example.com")) },
			wantErr: storage.ErrUserAlreadyExists,
		},
		{
			name: "unknown email",
			call: func() error {
				_, err := s.GetUserByEmail(ctx, "nobody@example.com")
				return err
			},
			wantErr: storage.ErrUserNotFound,
		},
		{
			name: "unknown id",
			call: func() error {
				_, err := s.GetUserByID(ctx, "missing")
				return err
			},
			wantErr: storage.ErrUserNotFound,
		},
		{
			name: "profile of unknown user",
			call: func() error {
				_, err := s.UpdateProfile(ctx, "missing", storage.ProfileFields{}, testTime)
				return err
			},
			wantErr: storage.ErrUserNotFound,
		},
		{
			name:    "password of unknown user",
			call:    func() error { return s.RecordPasswordChange(ctx, "missing", testTime) },
			wantErr: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), tt.wantErr)
		})
	}
}

func TestUserStorage_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	user := newTestUser("ana@example.com")
	require.NoError(t, s.CreateUser(ctx, user))

	bio := "Nurse"
	later := testTime.Add(time.Hour)
	updated, err := s.UpdateProfile(ctx, user.ID, storage.ProfileFields{Bio: &bio}, later)
	require.NoError(t, err)
	assert.Equal(t, "Nurse", updated.Bio)
	assert.Equal(t, "Ana", updated.FirstName, "незаданные поля не меняются")

	stored, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nurse", stored.Bio)
	assert.True(t, later.Equal(stored.UpdatedAt))
}

func TestUserStorage_Password(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	user := newTestUser("ana@example.com")
	require.NoError(t, s.CreateUser(ctx, user))

	// Уведомление не трогает хеш
	require.NoError(t, s.RecordPasswordChange(ctx, user.ID, testTime.Add(time.Minute)))
	stored, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)
	require.True(t, stored.PasswordChangedAt.Valid)

	require.NoError(t, s.SetPasswordHash(ctx, user.ID, "$2a$10$other", testTime.Add(time.Hour)))
	stored, err = s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$other", stored.PasswordHash)
}
