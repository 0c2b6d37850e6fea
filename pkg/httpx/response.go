package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body of every API response.
type Envelope struct {
	StatusCode int          `json:"statusCode"`
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Data       any          `json:"data"`
	Errors     []FieldError `json:"errors,omitempty"`
	Stack      string       `json:"stack,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// Respond writes data wrapped in the standard envelope.
func Respond(w http.ResponseWriter, code int, message string, data any) {
	WriteJSON(w, code, Envelope{
		StatusCode: code,
		Success:    code < http.StatusBadRequest,
		Message:    message,
		Data:       data,
	})
}
