package boltdb

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/learnsync/internal/models"
)

type sessionRecord struct {
	s *models.Session
}

func (r sessionRecord) key() []byte  { return []byte(r.s.ID) }
func (r sessionRecord) setID(uint64) {}
func (r sessionRecord) value() any   { return r.s }

func (r sessionRecord) indexValues() map[string]string {
	return map[string]string{
		"userId":    strconv.FormatUint(r.s.UserID, 10),
		"expiresAt": sortableTime(r.s.ExpiresAt),
	}
}

// sortableTime кодирует время так, что лексикографический порядок
// совпадает с хронологическим
func sortableTime(t time.Time) string {
	return fmt.Sprintf("%020d", t.UnixNano())
}

// PutSession сохраняет сессию
func (s *Storage) PutSession(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	err := s.update(func(tx *bbolt.Tx) error {
		_, err := sessionsCollection.put(tx, sessionRecord{s: session})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession возвращает сессию по ID
func (s *Storage) GetSession(ctx context.Context, id string) (*models.Session, bool, error) {
	var (
		session *models.Session
		found   bool
	)
	err := s.view(func(tx *bbolt.Tx) error {
		var err error
		session, found, err = get[models.Session](tx, sessionsCollection, []byte(id))
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get session: %w", err)
	}
	return session, found, nil
}

// DeleteSession удаляет сессию, отсутствие сессии не ошибка
func (s *Storage) DeleteSession(ctx context.Context, id string) error {
	err := s.update(func(tx *bbolt.Tx) error {
		return sessionsCollection.delete(tx, []byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ListSessionsByUser возвращает все сессии пользователя
func (s *Storage) ListSessionsByUser(ctx context.Context, userID uint64) ([]*models.Session, error) {
	var sessions []*models.Session
	err := s.view(func(tx *bbolt.Tx) error {
		var err error
		sessions, err = listByIndex[models.Session](tx, sessionsCollection, "userId", strconv.FormatUint(userID, 10))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// DeleteExpiredSessions удаляет сессии с ExpiresAt <= now.
// Проходит индекс expiresAt по возрастанию и останавливается на первой живой сессии.
func (s *Storage) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	deleted := 0
	err := s.update(func(tx *bbolt.Tx) error {
		limit := []byte(sortableTime(now))
		cur := tx.Bucket(sessionsCollection.indexBucket("expiresAt")).Cursor()

		// Сначала собираем ключи: удалять во время обхода курсора нельзя
		var expired [][]byte
		for k, pk := cur.First(); k != nil; k, pk = cur.Next() {
			value, _, _ := bytes.Cut(k, []byte{0})
			if bytes.Compare(value, limit) > 0 {
				break
			}
			expired = append(expired, bytes.Clone(pk))
		}

		for _, pk := range expired {
			if err := sessionsCollection.delete(tx, pk); err != nil {
				return err
			}
		}
		deleted = len(expired)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return deleted, nil
}
