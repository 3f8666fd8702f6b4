package storage

import (
	"context"

	"github.com/iudanet/learnsync/internal/models"
)

// UserStore хранит локальные учетные записи.
// Промах при чтении возвращает found=false без ошибки.
type UserStore interface {
	// PutUser создает пользователя (ID == 0) или перезаписывает существующего.
	// Нарушение уникальности email возвращает ErrConstraint.
	PutUser(ctx context.Context, user *models.User) (uint64, error)
	GetUser(ctx context.Context, id uint64) (*models.User, bool, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, bool, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	ListUsersByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	// DeleteUser идемпотентна
	DeleteUser(ctx context.Context, id uint64) error
}
