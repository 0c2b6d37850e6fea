package httpx

import "net/http"

// DefaultBodyLimit caps request bodies at 10 KiB.
const DefaultBodyLimit int64 = 10 << 10

// BodyLimit caps the request body. DecodeJSON reports an oversized body
// as 413.
func BodyLimit(n int64) Middleware {
	if n <= 0 {
		n = DefaultBodyLimit
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > n {
				WriteError(w, r, NewError(http.StatusRequestEntityTooLarge, "Request body too large"))
				return
			}
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
