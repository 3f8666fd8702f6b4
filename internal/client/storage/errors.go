package storage

import "errors"

// Common client storage errors
var (
	// ErrConstraint indicates that a unique index already holds the value
	ErrConstraint = errors.New("unique constraint violation")

	// ErrNotFound indicates that a record required by the operation does not exist
	ErrNotFound = errors.New("record not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrNoGeneration indicates that the cache generation does not exist
	ErrNoGeneration = errors.New("cache generation not found")
)
