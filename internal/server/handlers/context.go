package handlers

import "context"

type contextKey string

// Ключи контекста, которые заполняет AuthMiddleware
const (
	UserIDKey contextKey = "user_id"
	EmailKey  contextKey = "email"
)

// UserIDFromContext возвращает id аутентифицированного пользователя
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}
