package storage

import (
	"context"
	"database/sql"
	"time"
)

// User учетная запись на сервере
type User struct {
	CreatedAt         time.Time    `db:"created_at"`
	UpdatedAt         time.Time    `db:"updated_at"`
	PasswordChangedAt sql.NullTime `db:"password_changed_at"` // последнее уведомление о смене пароля
	ID                string       `db:"id"`
	Email             string       `db:"email"`
	PasswordHash      string       `db:"password_hash"` // bcrypt
	FirstName         string       `db:"first_name"`
	LastName          string       `db:"last_name"`
	Role              string       `db:"role"`
	Phone             string       `db:"phone"`
	Bio               string       `db:"bio"`
	Location          string       `db:"location"`
}

// ProfileFields изменяемые поля профиля, nil поля не меняются
type ProfileFields struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Bio       *string
	Location  *string
}

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if email is taken
	CreateUser(ctx context.Context, user *User) error

	// GetUserByEmail retrieves user by email
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*User, error)

	// UpdateProfile applies profile fields and returns the updated user
	UpdateProfile(ctx context.Context, userID string, fields ProfileFields, at time.Time) (*User, error)

	// SetPasswordHash replaces the password hash
	SetPasswordHash(ctx context.Context, userID, hash string, at time.Time) error

	// RecordPasswordChange stores a password change notification without touching the hash
	RecordPasswordChange(ctx context.Context, userID string, at time.Time) error
}
