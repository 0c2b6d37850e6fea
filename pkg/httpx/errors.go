package httpx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/samber/oops"
)

// FieldError points at one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is an error that is safe to show to the client. Err holds the
// underlying cause for logs and never reaches the response body.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []FieldError
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// Wrap returns a copy of e carrying cause.
func (e *APIError) Wrap(cause error) *APIError {
	cp := *e
	cp.Err = cause
	return &cp
}

func NewError(code int, message string) *APIError {
	return &APIError{StatusCode: code, Message: message}
}

func BadRequest(message string, fields ...FieldError) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Message: message, Errors: fields}
}

func Unauthorized(message string) *APIError {
	return NewError(http.StatusUnauthorized, message)
}

func NotFound(message string) *APIError {
	return NewError(http.StatusNotFound, message)
}

func Conflict(message string) *APIError {
	return NewError(http.StatusConflict, message)
}

// Internal hides cause behind a generic message.
func Internal(cause error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    http.StatusText(http.StatusInternalServerError),
		Err:        cause,
	}
}

// ExposeStacks marks requests so WriteError includes stack traces in the
// response body. Only install it outside production.
func ExposeStacks() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), ctxKeyExposeStacks, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func stacksExposed(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyExposeStacks).(bool)
	return v
}

// WriteError is the single exit point for failed requests. Anything that is
// not an *APIError becomes a 500 with a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = Internal(err)
	}
	code := apiErr.StatusCode
	if code < http.StatusBadRequest {
		code = http.StatusInternalServerError
	}

	stack := ""
	attrs := []any{
		slog.Int("statusCode", code),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	}
	if oopsErr, ok := oops.AsOops(err); ok {
		stack = oopsErr.Stacktrace()
		attrs = append(attrs, slog.Any("context", oopsErr.Context()))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	if code >= http.StatusInternalServerError {
		log.Error(apiErr.Message, append(attrs, slog.String("stack", stack))...)
	} else {
		log.Warn(apiErr.Message, attrs...)
	}

	env := Envelope{
		StatusCode: code,
		Success:    false,
		Message:    apiErr.Message,
		Errors:     apiErr.Errors,
	}
	if stacksExposed(ctx) {
		env.Stack = stack
	}
	WriteJSON(w, code, env)
}
