package storage

import (
	"context"
	"net/http"
	"time"
)

// CachedResponse сохраненный HTTP ответ
type CachedResponse struct {
	StoredAt   time.Time   `json:"storedAt"`
	Header     http.Header `json:"header"`
	Method     string      `json:"method"`
	URL        string      `json:"url"`
	Body       []byte      `json:"body"`
	StatusCode int         `json:"statusCode"`
}

// ResponseCache кеш HTTP ответов, разбитый на поколения.
// Поколение удаляется целиком, отдельные записи не истекают.
type ResponseCache interface {
	CreateGeneration(ctx context.Context, generation string) error
	Generations(ctx context.Context) ([]string, error)
	// DeleteGeneration идемпотентна
	DeleteGeneration(ctx context.Context, generation string) error

	ActiveGeneration(ctx context.Context) (string, bool, error)
	SetActiveGeneration(ctx context.Context, generation string) error

	// PutResponse возвращает ErrNoGeneration, если поколения нет
	PutResponse(ctx context.Context, generation, key string, resp *CachedResponse) error
	GetResponse(ctx context.Context, generation, key string) (*CachedResponse, bool, error)
	CountResponses(ctx context.Context, generation string) (int, error)
}
