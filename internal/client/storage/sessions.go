package storage

import (
	"context"
	"time"

	"github.com/iudanet/learnsync/internal/models"
)

// SessionStore хранит сессии входа
type SessionStore interface {
	PutSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, bool, error)
	// DeleteSession идемпотентна
	DeleteSession(ctx context.Context, id string) error
	ListSessionsByUser(ctx context.Context, userID uint64) ([]*models.Session, error)
	// DeleteExpiredSessions удаляет сессии с ExpiresAt <= now
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error)
}
