package api

import (
	"encoding/json"
	"fmt"
)

// Response общий формат ответа сервера {success, message, data}
type Response struct {
	Data                 any    `json:"data,omitempty"`
	Message              string `json:"message,omitempty"`
	Success              bool   `json:"success"`
	Offline              bool   `json:"offline,omitempty"`              // ответ синтезирован без сети
	RequiresOnlineAccess bool   `json:"requiresOnlineAccess,omitempty"` // данные появятся только после визита онлайн
}

// RawResponse Response с несериализованным data, используется клиентом
type RawResponse struct {
	Data                 json.RawMessage `json:"data,omitempty"`
	Message              string          `json:"message,omitempty"`
	Success              bool            `json:"success"`
	Offline              bool            `json:"offline,omitempty"`
	RequiresOnlineAccess bool            `json:"requiresOnlineAccess,omitempty"`
}

// HealthResponse ответ GET /api/health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// StatusError неуспешный ответ сервера
type StatusError struct {
	Message string
	Code    int
	Offline bool // ответ синтезирован перехватчиком без сети
}

func (e *StatusError) Error() string {
	switch {
	case e.Offline:
		return fmt.Sprintf("offline (%d): %s", e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
	default:
		return fmt.Sprintf("request failed with status %d", e.Code)
	}
}
