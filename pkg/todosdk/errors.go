package todosdk

import (
	"errors"
	"fmt"
	"net/http"
)

// Messages the service uses for token failures. The session keys its
// refresh on MessageAccessTokenExpired.
const (
	MessageAccessTokenExpired = "Access token expired"
	MessageRefreshTokenReused = "Refresh token is expired or used"
)

var ErrNoRefreshToken = errors.New("todosdk: access token expired and no refresh token available")

// APIError is a non-2xx response decoded from the envelope.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []FieldError
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("todosdk: %d %s (%s: %s)", e.StatusCode, e.Message, e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("todosdk: %d %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool     { return StatusCode(err) == http.StatusNotFound }
func IsUnauthorized(err error) bool { return StatusCode(err) == http.StatusUnauthorized }
func IsConflict(err error) bool     { return StatusCode(err) == http.StatusConflict }
func IsBadRequest(err error) bool   { return StatusCode(err) == http.StatusBadRequest }

func isAccessTokenExpired(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		apiErr.StatusCode == http.StatusUnauthorized &&
		apiErr.Message == MessageAccessTokenExpired
}
