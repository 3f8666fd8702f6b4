package boltdb

import (
	"context"
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/iudanet/learnsync/internal/models"
)

type actionRecord struct {
	a *models.PendingAction
}

func (r actionRecord) key() []byte {
	if r.a.ID == 0 {
		return nil
	}
	return itob(r.a.ID)
}

func (r actionRecord) setID(id uint64) { r.a.ID = id }
func (r actionRecord) value() any      { return r.a }

func (r actionRecord) indexValues() map[string]string {
	return map[string]string{
		"type":      string(r.a.Action.Type()),
		"userId":    strconv.FormatUint(r.a.Action.TargetUser(), 10),
		"createdAt": sortableTime(r.a.CreatedAt),
	}
}

// AppendAction добавляет действие в конец очереди
func (s *Storage) AppendAction(ctx context.Context, action *models.PendingAction) (uint64, error) {
	if action.Action == nil {
		return 0, fmt.Errorf("pending action has no payload")
	}

	id := action.ID
	err := s.update(func(tx *bbolt.Tx) error {
		a := *action
		if _, err := actionsCollection.put(tx, actionRecord{a: &a}); err != nil {
			return err
		}
		id = a.ID
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to append action: %w", err)
	}
	action.ID = id
	return id, nil
}

// ListActions возвращает очередь в порядке добавления
func (s *Storage) ListActions(ctx context.Context) ([]*models.PendingAction, error) {
	var actions []*models.PendingAction
	err := s.view(func(tx *bbolt.Tx) error {
		var err error
		actions, err = all[models.PendingAction](tx, actionsCollection)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}
	return actions, nil
}

// ListActionsByUser возвращает действия пользователя в порядке добавления
func (s *Storage) ListActionsByUser(ctx context.Context, userID uint64) ([]*models.PendingAction, error) {
	var actions []*models.PendingAction
	err := s.view(func(tx *bbolt.Tx) error {
		var err error
		actions, err = listByIndex[models.PendingAction](tx, actionsCollection, "userId", strconv.FormatUint(userID, 10))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list user actions: %w", err)
	}
	return actions, nil
}

// DeleteAction удаляет действие из очереди
func (s *Storage) DeleteAction(ctx context.Context, id uint64) error {
	err := s.update(func(tx *bbolt.Tx) error {
		return actionsCollection.delete(tx, itob(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete action: %w", err)
	}
	return nil
}

// CountActions возвращает длину очереди
func (s *Storage) CountActions(ctx context.Context) (int, error) {
	count := 0
	err := s.view(func(tx *bbolt.Tx) error {
		count = tx.Bucket(actionsCollection.name).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count actions: %w", err)
	}
	return count, nil
}
