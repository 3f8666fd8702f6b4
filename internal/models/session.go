package models

import "time"

// Session подтверждение входа пользователя на устройстве
type Session struct {
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`             // CreatedAt + TTL, не продлевается
	ID          string    `json:"id"`                    // sess_<cuid2>
	Token       string    `json:"token"`                 // локальный bearer (JWT)
	ServerToken string    `json:"serverToken,omitempty"` // access token сервера, если вход онлайн удался
	UserID      uint64    `json:"userId"`
}

// ValidAt сообщает, действует ли сессия в момент now.
// Сессия недействительна начиная с ExpiresAt включительно.
func (s *Session) ValidAt(now time.Time) bool {
	return s != nil && now.Before(s.ExpiresAt)
}
