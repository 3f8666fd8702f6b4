package boltdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/learnsync/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketMeta      = []byte("meta")
	bucketHTTPCache = []byte("httpcache")
)

// Коллекции с индексами
var (
	usersCollection = &collection{
		name:          []byte("users"),
		autoIncrement: true,
		indexes: []index{
			{name: "email", unique: true},
			{name: "username", unique: true},
			{name: "role"},
			{name: "isActive"},
		},
	}
	sessionsCollection = &collection{
		name: []byte("sessions"),
		indexes: []index{
			{name: "userId"},
			{name: "expiresAt"},
		},
	}
	actionsCollection = &collection{
		name:          []byte("pendingActions"),
		autoIncrement: true,
		indexes: []index{
			{name: "type"},
			{name: "userId"},
			{name: "createdAt"},
		},
	}
	coursesCollection  = &collection{name: []byte("courses")}
	progressCollection = &collection{name: []byte("progress")}

	// entityCollections очищаются при Wipe
	entityCollections = []*collection{
		usersCollection,
		sessionsCollection,
		actionsCollection,
		coursesCollection,
		progressCollection,
	}
)

// Storage represents BoltDB storage implementation for client.
// Every method runs in exactly one bbolt transaction.
type Storage struct {
	db *bbolt.DB
	mu sync.RWMutex
}

var (
	_ storage.UserStore     = (*Storage)(nil)
	_ storage.SessionStore  = (*Storage)(nil)
	_ storage.ActionStore   = (*Storage)(nil)
	_ storage.CourseStore   = (*Storage)(nil)
	_ storage.ProgressStore = (*Storage)(nil)
	_ storage.MetaStore     = (*Storage)(nil)
	_ storage.ResponseCache = (*Storage)(nil)
	_ storage.Wiper         = (*Storage)(nil)
)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection. Repeated calls are no-ops.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, c := range entityCollections {
			if err := c.create(tx); err != nil {
				return err
			}
		}

		if _, err := tx.CreateBucketIfNotExists(bucketMeta); err != nil {
			return fmt.Errorf("failed to create meta bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists(bucketHTTPCache); err != nil {
			return fmt.Errorf("failed to create http cache bucket: %w", err)
		}

		return nil
	})
}

// Wipe удаляет всех пользователей, сессии, очередь и кеш курсов.
// Кеш HTTP ответов и активное поколение сохраняются.
func (s *Storage) Wipe(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		for _, c := range entityCollections {
			if err := c.drop(tx); err != nil {
				return err
			}
			if err := c.create(tx); err != nil {
				return err
			}
		}

		meta := tx.Bucket(bucketMeta)
		for _, key := range [][]byte{metaCurrentSession, metaLastSync} {
			if err := meta.Delete(key); err != nil {
				return fmt.Errorf("failed to delete meta key %s: %w", key, err)
			}
		}
		return nil
	})
}

// update выполняет fn в транзакции на запись
func (s *Storage) update(fn func(tx *bbolt.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(fn)
}

// view выполняет fn в транзакции на чтение
func (s *Storage) view(fn func(tx *bbolt.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.View(fn)
}
