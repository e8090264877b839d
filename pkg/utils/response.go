package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// MessageResponse is the body of every error and of plain confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondJSON 发送JSON响应
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// RespondError 发送错误响应
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, MessageResponse{Message: message})
}
