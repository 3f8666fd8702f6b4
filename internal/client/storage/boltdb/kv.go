package boltdb

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/learnsync/internal/client/storage"
)

// collection описывает bucket с записями и его индексы.
//
// Для каждого индекса заводится отдельный bucket "idx:<collection>:<index>":
//   - unique:     значение -> первичный ключ
//   - non-unique: значение 0x00 первичный ключ -> первичный ключ
//
// Bucket "rev:<collection>" хранит проиндексированные значения каждой записи,
// чтобы при перезаписи и удалении убрать старые элементы индексов.
type collection struct {
	name          []byte
	indexes       []index
	autoIncrement bool
}

type index struct {
	name   string
	unique bool
}

// record адаптер модели для записи в коллекцию
type record interface {
	// key первичный ключ, пустой для новой записи autoincrement коллекции
	key() []byte
	// setID вызывается с выданным autoincrement идентификатором
	setID(id uint64)
	indexValues() map[string]string
	value() any
}

func (c *collection) indexBucket(name string) []byte {
	return []byte("idx:" + string(c.name) + ":" + name)
}

func (c *collection) reverseBucket() []byte {
	return []byte("rev:" + string(c.name))
}

// create создает bucket коллекции, индексов и обратного индекса
func (c *collection) create(tx *bbolt.Tx) error {
	if _, err := tx.CreateBucketIfNotExists(c.name); err != nil {
		return fmt.Errorf("failed to create %s bucket: %w", c.name, err)
	}
	for _, idx := range c.indexes {
		if _, err := tx.CreateBucketIfNotExists(c.indexBucket(idx.name)); err != nil {
			return fmt.Errorf("failed to create %s index bucket: %w", idx.name, err)
		}
	}
	if _, err := tx.CreateBucketIfNotExists(c.reverseBucket()); err != nil {
		return fmt.Errorf("failed to create %s reverse bucket: %w", c.name, err)
	}
	return nil
}

// drop удаляет все buckets коллекции
func (c *collection) drop(tx *bbolt.Tx) error {
	names := [][]byte{c.name, c.reverseBucket()}
	for _, idx := range c.indexes {
		names = append(names, c.indexBucket(idx.name))
	}
	for _, name := range names {
		if err := tx.DeleteBucket(name); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return fmt.Errorf("failed to drop %s bucket: %w", name, err)
		}
	}
	return nil
}

// put записывает запись и обновляет индексы. Возвращает первичный ключ.
func (c *collection) put(tx *bbolt.Tx, r record) ([]byte, error) {
	b := tx.Bucket(c.name)
	if b == nil {
		return nil, fmt.Errorf("%s bucket not found", c.name)
	}

	key := r.key()
	values := r.indexValues()

	// Проверяем уникальные индексы до выдачи идентификатора
	for _, idx := range c.indexes {
		v := values[idx.name]
		if !idx.unique || v == "" {
			continue
		}
		existing := tx.Bucket(c.indexBucket(idx.name)).Get([]byte(v))
		if existing != nil && !bytes.Equal(existing, key) {
			return nil, fmt.Errorf("%w: %s.%s", storage.ErrConstraint, c.name, idx.name)
		}
	}

	if len(key) == 0 {
		if !c.autoIncrement {
			return nil, fmt.Errorf("%s: record has no key", c.name)
		}
		seq, err := b.NextSequence()
		if err != nil {
			return nil, fmt.Errorf("failed to allocate %s id: %w", c.name, err)
		}
		r.setID(seq)
		key = itob(seq)
	}

	// Убираем старые элементы индексов
	if err := c.unindex(tx, key); err != nil {
		return nil, err
	}

	// Сериализуем данные в JSON
	data, err := json.Marshal(r.value())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s record: %w", c.name, err)
	}
	if err := b.Put(key, data); err != nil {
		return nil, fmt.Errorf("failed to put %s record: %w", c.name, err)
	}

	if err := c.index(tx, key, values); err != nil {
		return nil, err
	}
	return key, nil
}

// index добавляет элементы индексов для записи key
func (c *collection) index(tx *bbolt.Tx, key []byte, values map[string]string) error {
	stored := make(map[string]string, len(c.indexes))
	for _, idx := range c.indexes {
		v, ok := values[idx.name]
		if !ok || (idx.unique && v == "") {
			continue
		}
		ib := tx.Bucket(c.indexBucket(idx.name))
		var err error
		if idx.unique {
			err = ib.Put([]byte(v), key)
		} else {
			err = ib.Put(compositeKey(v, key), key)
		}
		if err != nil {
			return fmt.Errorf("failed to index %s.%s: %w", c.name, idx.name, err)
		}
		stored[idx.name] = v
	}

	if len(c.indexes) == 0 {
		return nil
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal %s index values: %w", c.name, err)
	}
	return tx.Bucket(c.reverseBucket()).Put(key, data)
}

// unindex удаляет элементы индексов, записанные для key
func (c *collection) unindex(tx *bbolt.Tx, key []byte) error {
	rev := tx.Bucket(c.reverseBucket())
	data := rev.Get(key)
	if data == nil {
		return nil
	}

	var stored map[string]string
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("failed to unmarshal %s index values: %w", c.name, err)
	}

	for _, idx := range c.indexes {
		v, ok := stored[idx.name]
		if !ok {
			continue
		}
		ib := tx.Bucket(c.indexBucket(idx.name))
		if idx.unique {
			// Элемент мог уже принадлежать другой записи
			if bytes.Equal(ib.Get([]byte(v)), key) {
				if err := ib.Delete([]byte(v)); err != nil {
					return fmt.Errorf("failed to unindex %s.%s: %w", c.name, idx.name, err)
				}
			}
			continue
		}
		if err := ib.Delete(compositeKey(v, key)); err != nil {
			return fmt.Errorf("failed to unindex %s.%s: %w", c.name, idx.name, err)
		}
	}

	return rev.Delete(key)
}

// delete удаляет запись и ее индексы. Отсутствие записи не ошибка.
func (c *collection) delete(tx *bbolt.Tx, key []byte) error {
	if err := c.unindex(tx, key); err != nil {
		return err
	}
	if err := tx.Bucket(c.name).Delete(key); err != nil {
		return fmt.Errorf("failed to delete %s record: %w", c.name, err)
	}
	return nil
}

// get читает запись по первичному ключу
func get[T any](tx *bbolt.Tx, c *collection, key []byte) (*T, bool, error) {
	data := tx.Bucket(c.name).Get(key)
	if data == nil {
		return nil, false, nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal %s record: %w", c.name, err)
	}
	return &v, true, nil
}

// getByUnique читает запись по значению уникального индекса
func getByUnique[T any](tx *bbolt.Tx, c *collection, indexName, value string) (*T, bool, error) {
	key := tx.Bucket(c.indexBucket(indexName)).Get([]byte(value))
	if key == nil {
		return nil, false, nil
	}
	return get[T](tx, c, key)
}

// listByIndex возвращает записи с заданным значением неуникального индекса
// в порядке первичных ключей
func listByIndex[T any](tx *bbolt.Tx, c *collection, indexName, value string) ([]*T, error) {
	prefix := compositeKey(value, nil)
	cur := tx.Bucket(c.indexBucket(indexName)).Cursor()

	var result []*T
	for k, pk := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, pk = cur.Next() {
		v, ok, err := get[T](tx, c, pk)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, v)
		}
	}
	return result, nil
}

// all возвращает все записи коллекции в порядке ключей
func all[T any](tx *bbolt.Tx, c *collection) ([]*T, error) {
	var result []*T
	err := tx.Bucket(c.name).ForEach(func(k, data []byte) error {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("failed to unmarshal %s record: %w", c.name, err)
		}
		result = append(result, &v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// compositeKey ключ неуникального индекса: значение, 0x00, первичный ключ
func compositeKey(value string, key []byte) []byte {
	out := make([]byte, 0, len(value)+1+len(key))
	out = append(out, value...)
	out = append(out, 0)
	return append(out, key...)
}

// itob кодирует идентификатор в 8 байт big-endian, порядок ключей = порядок id
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
