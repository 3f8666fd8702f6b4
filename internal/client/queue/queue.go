// Package queue журнал мутаций, которые еще не дошли до сервера.
package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/learnsync/internal/client/apperr"
	"github.com/iudanet/learnsync/internal/client/storage"
	"github.com/iudanet/learnsync/internal/models"
)

// Queue очередь отложенных действий поверх storage.ActionStore.
// Обработанное действие удаляется, поэтому длина очереди равна объему
// несинхронизированной работы.
type Queue struct {
	store  storage.ActionStore
	logger *slog.Logger
	now    func() time.Time
}

// New создает очередь. now может быть nil, тогда используется time.Now.
func New(store storage.ActionStore, logger *slog.Logger, now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{store: store, logger: logger, now: now}
}

// Enqueue добавляет действие в конец очереди.
// Ошибка хранилища возвращается как apperr.ErrStore.
func (q *Queue) Enqueue(ctx context.Context, action models.Action) (*models.PendingAction, error) {
	pa := &models.PendingAction{
		Action:     action,
		CreatedAt:  q.now(),
		SyncStatus: models.ActionStatusPending,
	}

	if _, err := q.store.AppendAction(ctx, pa); err != nil {
		return nil, apperr.Store("enqueue "+string(action.Type()), err)
	}

	q.logger.InfoContext(ctx, "action queued",
		slog.Uint64("action_id", pa.ID),
		slog.String("type", string(action.Type())),
		slog.Uint64("user_id", action.TargetUser()))

	return pa, nil
}

// Pending возвращает действия в порядке добавления
func (q *Queue) Pending(ctx context.Context) ([]*models.PendingAction, error) {
	actions, err := q.store.ListActions(ctx)
	if err != nil {
		return nil, apperr.Store("list pending actions", err)
	}
	return actions, nil
}

// PendingForUser возвращает действия пользователя в порядке добавления
func (q *Queue) PendingForUser(ctx context.Context, userID uint64) ([]*models.PendingAction, error) {
	actions, err := q.store.ListActionsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Store("list user actions", err)
	}
	return actions, nil
}

// Remove удаляет обработанное действие. Повторное удаление не ошибка.
func (q *Queue) Remove(ctx context.Context, id uint64) error {
	if err := q.store.DeleteAction(ctx, id); err != nil {
		return apperr.Store("remove action", err)
	}
	return nil
}

// Len возвращает длину очереди
func (q *Queue) Len(ctx context.Context) (int, error) {
	n, err := q.store.CountActions(ctx)
	if err != nil {
		return 0, apperr.Store("count actions", err)
	}
	return n, nil
}
