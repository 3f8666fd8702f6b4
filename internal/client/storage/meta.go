package storage

import (
	"context"
	"time"
)

// MetaStore служебные значения устройства
type MetaStore interface {
	// SetCurrentSession сохраняет указатель на единственную текущую сессию
	SetCurrentSession(ctx context.Context, sessionID string) error
	GetCurrentSession(ctx context.Context) (string, bool, error)
	ClearCurrentSession(ctx context.Context) error

	SetLastSync(ctx context.Context, at time.Time) error
	GetLastSync(ctx context.Context) (time.Time, bool, error)
}

// Wiper полностью очищает пользовательские данные устройства
type Wiper interface {
	Wipe(ctx context.Context) error
}
