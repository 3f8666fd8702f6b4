package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/learnsync/pkg/api"
)

// writeError отвечает ошибкой в общем конверте API
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Response{Success: false, Message: message})
}
