package storage

import (
	"context"

	"github.com/iudanet/learnsync/internal/models"
)

//go:generate moq -out actions_mock.go . ActionStore

// ActionStore журнал отложенных действий.
// Порядок ключей совпадает с порядком добавления.
type ActionStore interface {
	AppendAction(ctx context.Context, action *models.PendingAction) (uint64, error)
	// ListActions возвращает действия в порядке добавления (FIFO)
	ListActions(ctx context.Context) ([]*models.PendingAction, error)
	ListActionsByUser(ctx context.Context, userID uint64) ([]*models.PendingAction, error)
	// DeleteAction идемпотентна
	DeleteAction(ctx context.Context, id uint64) error
	CountActions(ctx context.Context) (int, error)
}
