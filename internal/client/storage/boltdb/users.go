package boltdb

import (
	"context"
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/iudanet/learnsync/internal/models"
)

// userRecord адаптер models.User для коллекции users
type userRecord struct {
	u *models.User
}

func (r userRecord) key() []byte {
	if r.u.ID == 0 {
		return nil
	}
	return itob(r.u.ID)
}

func (r userRecord) setID(id uint64) { r.u.ID = id }
func (r userRecord) value() any      { return r.u }

func (r userRecord) indexValues() map[string]string {
	return map[string]string{
		"email":    r.u.Email,
		"username": r.u.Username,
		"role":     string(r.u.Role),
		"isActive": strconv.FormatBool(r.u.IsActive),
	}
}

// PutUser создает или перезаписывает пользователя.
// При нарушении уникальности email/username возвращает storage.ErrConstraint.
func (s *Storage) PutUser(ctx context.Context, user *models.User) (uint64, error) {
	id := user.ID
	err := s.update(func(tx *bbolt.Tx) error {
		// Работаем с копией, чтобы при откате транзакции не оставить выданный ID
		u := *user
		if _, err := usersCollection.put(tx, userRecord{u: &u}); err != nil {
			return err
		}
		id = u.ID
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save user: %w", err)
	}
	user.ID = id
	return id, nil
}

// GetUser возвращает пользователя по локальному ID
func (s *Storage) GetUser(ctx context.Context, id uint64) (*models.User, bool, error) {
	var (
		user  *models.User
		found bool
	)
	err := s.view(func(tx *bbolt.Tx) error {
		var err error
		user, found, err = get[models.User](tx, usersCollection, itob(id))
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}
	return user, found, nil
}

// GetUserByEmail возвращает пользователя по email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	var (
		user  *models.User
		found bool
	)
	err := s.view(func(tx *bbolt.Tx) error {
		var err error
		user, found, err = getByUnique[models.User](tx, usersCollection, "email", email)
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, found, nil
}

// ListUsers возвращает всех пользователей в порядке создания
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := s.view(func(tx *bbolt.Tx) error {
		var err error
		users, err = all[models.User](tx, usersCollection)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListUsersByRole возвращает пользователей с ролью role
func (s *Storage) ListUsersByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	var users []*models.User
	err := s.view(func(tx *bbolt.Tx) error {
		var err error
		users, err = listByIndex[models.User](tx, usersCollection, "role", string(role))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	return users, nil
}

// DeleteUser удаляет пользователя и его индексы, отсутствие записи не ошибка
func (s *Storage) DeleteUser(ctx context.Context, id uint64) error {
	err := s.update(func(tx *bbolt.Tx) error {
		return usersCollection.delete(tx, itob(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
