package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/learnsync/internal/client/storage"
)

// CreateGeneration создает пустое поколение кеша, если его нет
func (s *Storage) CreateGeneration(ctx context.Context, generation string) error {
	if generation == "" {
		return fmt.Errorf("generation name is required")
	}
	err := s.update(func(tx *bbolt.Tx) error {
		_, err := tx.Bucket(bucketHTTPCache).CreateBucketIfNotExists([]byte(generation))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create cache generation: %w", err)
	}
	return nil
}

// Generations возвращает имена всех поколений
func (s *Storage) Generations(ctx context.Context) ([]string, error) {
	var gens []string
	err := s.view(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketHTTPCache).ForEachBucket(func(k []byte) error {
			gens = append(gens, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cache generations: %w", err)
	}
	return gens, nil
}

// DeleteGeneration удаляет поколение вместе со всеми ответами
func (s *Storage) DeleteGeneration(ctx context.Context, generation string) error {
	err := s.update(func(tx *bbolt.Tx) error {
		err := tx.Bucket(bucketHTTPCache).DeleteBucket([]byte(generation))
		if errors.Is(err, bbolt.ErrBucketNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		// Сбрасываем указатель, если удалили активное поколение
		meta := tx.Bucket(bucketMeta)
		if string(meta.Get(metaActiveGeneration)) == generation {
			return meta.Delete(metaActiveGeneration)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete cache generation: %w", err)
	}
	return nil
}

// ActiveGeneration возвращает поколение, из которого обслуживаются запросы
func (s *Storage) ActiveGeneration(ctx context.Context) (string, bool, error) {
	v, err := s.getMeta(metaActiveGeneration)
	if err != nil {
		return "", false, fmt.Errorf("failed to get active generation: %w", err)
	}
	if len(v) == 0 {
		return "", false, nil
	}
	return string(v), true, nil
}

// SetActiveGeneration делает поколение активным. Поколение должно существовать.
func (s *Storage) SetActiveGeneration(ctx context.Context, generation string) error {
	err := s.update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketHTTPCache).Bucket([]byte(generation)) == nil {
			return storage.ErrNoGeneration
		}
		return tx.Bucket(bucketMeta).Put(metaActiveGeneration, []byte(generation))
	})
	if err != nil {
		return fmt.Errorf("failed to set active generation: %w", err)
	}
	return nil
}

// PutResponse сохраняет ответ в поколении generation
func (s *Storage) PutResponse(ctx context.Context, generation, key string, resp *storage.CachedResponse) error {
	err := s.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketHTTPCache).Bucket([]byte(generation))
		if b == nil {
			return storage.ErrNoGeneration
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(resp)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		return b.Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("failed to cache response: %w", err)
	}
	return nil
}

// GetResponse читает ответ из поколения. Отсутствие поколения равносильно промаху.
func (s *Storage) GetResponse(ctx context.Context, generation, key string) (*storage.CachedResponse, bool, error) {
	var (
		resp  *storage.CachedResponse
		found bool
	)
	err := s.view(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketHTTPCache).Bucket([]byte(generation))
		if b == nil {
			return nil
		}
		data := b.Get([]byte(key))
		if data == nil {
			return nil
		}
		resp = &storage.CachedResponse{}
		if err := json.Unmarshal(data, resp); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
		found = true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached response: %w", err)
	}
	return resp, found, nil
}

// CountResponses возвращает количество ответов в поколении
func (s *Storage) CountResponses(ctx context.Context, generation string) (int, error) {
	count := 0
	err := s.view(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketHTTPCache).Bucket([]byte(generation))
		if b == nil {
			return storage.ErrNoGeneration
		}
		count = b.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count responses: %w", err)
	}
	return count, nil
}
