package http

import (
	"encoding/json"
	"net/http"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Fail(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, APIError{Message: msg})
}

// FailCode carries a machine-readable code alongside the message. Account
// endpoints use it so clients can branch without parsing messages.
func FailCode(w http.ResponseWriter, status int, code, msg string) {
	WriteJSON(w, status, APIError{Message: msg, Code: code})
}
