package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/learnsync/pkg/api"
)

// sendJSON отправляет JSON ответ
func sendJSON(w http.ResponseWriter, logger *slog.Logger, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendData отправляет успешный ответ в конверте {success, message, data}
func sendData(w http.ResponseWriter, logger *slog.Logger, data any, message string, statusCode int) {
	sendJSON(w, logger, api.Response{Success: true, Message: message, Data: data}, statusCode)
}

// sendError отправляет ответ с ошибкой в конверте
func sendError(w http.ResponseWriter, logger *slog.Logger, message string, statusCode int) {
	sendJSON(w, logger, api.Response{Success: false, Message: message}, statusCode)
}

// decodeJSON читает тело запроса, лишние поля запрещены
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
