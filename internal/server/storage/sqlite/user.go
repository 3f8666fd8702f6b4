package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/learnsync/internal/server/storage"
)

const userColumns = `id, email, password_hash, first_name, last_name, role, phone, bio, location,
	created_at, updated_at, password_changed_at`

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *storage.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (:id, :email, :password_hash, :first_name, :last_name, :role, :phone, :bio, :location,
			:created_at, :updated_at, :password_changed_at)
	`

	if _, err := s.db.NamedExecContext(ctx, query, user); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves user by email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*storage.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*storage.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, userID)
}

func (s *Storage) getUser(ctx context.Context, query string, arg any) (*storage.User, error) {
	var user storage.User
	if err := s.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateProfile applies profile fields in one transaction
func (s *Storage) UpdateProfile(ctx context.Context, userID string, fields storage.ProfileFields, at time.Time) (*storage.User, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var user storage.User
	if err := tx.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = ?`, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&user.FirstName, fields.FirstName)
	apply(&user.LastName, fields.LastName)
	apply(&user.Phone, fields.Phone)
	apply(&user.Bio, fields.Bio)
	apply(&user.Location, fields.Location)
	user.UpdatedAt = at

	query := `
		UPDATE users
		SET first_name = :first_name, last_name = :last_name, phone = :phone, bio = :bio,
			location = :location, updated_at = :updated_at
		WHERE id = :id
	`
	if _, err := tx.NamedExecContext(ctx, query, &user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit profile update: %w", err)
	}
	return &user, nil
}

// SetPasswordHash replaces the password hash
func (s *Storage) SetPasswordHash(ctx context.Context, userID, hash string, at time.Time) error {
	return s.execUser(ctx,
		`UPDATE users SET password_hash = ?, password_changed_at = ?, updated_at = ? WHERE id = ?`,
		hash, at, at, userID)
}

// RecordPasswordChange stores the notification time only
func (s *Storage) RecordPasswordChange(ctx context.Context, userID string, at time.Time) error {
	return s.execUser(ctx,
		`UPDATE users SET password_changed_at = ?, updated_at = ? WHERE id = ?`,
		at, at, userID)
}

// execUser выполняет UPDATE одной строки users
func (s *Storage) execUser(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return storage.ErrUserNotFound
	}
	return nil
}
