package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var (
	metaCurrentSession   = []byte("currentSession")
	metaLastSync         = []byte("lastSync")
	metaActiveGeneration = []byte("activeGeneration")
)

func (s *Storage) putMeta(key, value []byte) error {
	return s.update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(key, value)
	})
}

func (s *Storage) getMeta(key []byte) ([]byte, error) {
	var value []byte
	err := s.view(func(tx *bbolt.Tx) error {
		// Копируем: память bbolt валидна только внутри транзакции
		if v := tx.Bucket(bucketMeta).Get(key); v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	return value, err
}

func (s *Storage) deleteMeta(key []byte) error {
	return s.update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Delete(key)
	})
}

// SetCurrentSession сохраняет ID текущей сессии
func (s *Storage) SetCurrentSession(ctx context.Context, sessionID string) error {
	if err := s.putMeta(metaCurrentSession, []byte(sessionID)); err != nil {
		return fmt.Errorf("failed to set current session: %w", err)
	}
	return nil
}

// GetCurrentSession возвращает ID текущей сессии
func (s *Storage) GetCurrentSession(ctx context.Context) (string, bool, error) {
	v, err := s.getMeta(metaCurrentSession)
	if err != nil {
		return "", false, fmt.Errorf("failed to get current session: %w", err)
	}
	if len(v) == 0 {
		return "", false, nil
	}
	return string(v), true, nil
}

// ClearCurrentSession удаляет указатель на текущую сессию
func (s *Storage) ClearCurrentSession(ctx context.Context) error {
	if err := s.deleteMeta(metaCurrentSession); err != nil {
		return fmt.Errorf("failed to clear current session: %w", err)
	}
	return nil
}

// SetLastSync запоминает время последней синхронизации
func (s *Storage) SetLastSync(ctx context.Context, at time.Time) error {
	data, err := at.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to encode last sync time: %w", err)
	}
	if err := s.putMeta(metaLastSync, data); err != nil {
		return fmt.Errorf("failed to set last sync: %w", err)
	}
	return nil
}

// GetLastSync возвращает время последней синхронизации
func (s *Storage) GetLastSync(ctx context.Context) (time.Time, bool, error) {
	v, err := s.getMeta(metaLastSync)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to get last sync: %w", err)
	}
	if len(v) == 0 {
		return time.Time{}, false, nil
	}
	var at time.Time
	if err := at.UnmarshalText(v); err != nil {
		return time.Time{}, false, fmt.Errorf("failed to decode last sync time: %w", err)
	}
	return at, true, nil
}
