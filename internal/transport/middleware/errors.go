package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/debate-backend/internal/domain"
)

// Middleware wraps an http.Handler. Values of this type plug into chi's Use.
type Middleware func(http.Handler) http.Handler

type errorBody struct {
	Code    domain.Code `json:"code"`
	Message string      `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code domain.Code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Code: code, Message: message})
}
