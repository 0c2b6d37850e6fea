package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DecodeJSON decodes a single JSON object from the request body into dst.
// Unknown fields are rejected so every endpoint has one canonical shape.
func DecodeJSON(r *http.Request, dst any) error {
	return decodeJSON(r, dst, false)
}

// DecodeOptionalJSON is DecodeJSON for endpoints where the body may be
// omitted entirely.
func DecodeOptionalJSON(r *http.Request, dst any) error {
	return decodeJSON(r, dst, true)
}

func decodeJSON(r *http.Request, dst any, optional bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		if optional {
			return nil
		}
		return BadRequest("Request body is required")
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var (
			maxErr    *http.MaxBytesError
			typeErr   *json.UnmarshalTypeError
			syntaxErr *json.SyntaxError
		)
		switch {
		case errors.As(err, &maxErr):
			return NewError(http.StatusRequestEntityTooLarge, "Request body too large").Wrap(err)
		case errors.Is(err, io.EOF):
			if optional {
				return nil
			}
			return BadRequest("Request body is required")
		case errors.As(err, &typeErr):
			return BadRequest("Invalid request body", FieldError{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
			}).Wrap(err)
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
			return BadRequest("Invalid JSON in request body").Wrap(err)
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
			return BadRequest(fmt.Sprintf("Unknown field %q", field), FieldError{
				Field:   field,
				Message: "unknown field",
			})
		default:
			return BadRequest("Invalid request body").Wrap(err)
		}
	}

	if dec.More() {
		return BadRequest("Request body must contain a single JSON object")
	}
	return nil
}

// Nullable tells apart a field that was left out, one sent as null, and one
// sent with a value. Partial updates need all three.
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Null = true
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}
