package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

// SessionVerifier authenticates a request from the accessToken cookie or a
// Bearer Authorization header. It only checks that the user still exists;
// access tokens cannot be revoked before they expire.
type SessionVerifier struct {
	Tokens *service.TokenService
	Auth   *service.AuthService
}

func bearerToken(r *http.Request) string {
	if v := cookieValue(r, accessTokenCookie); v != "" {
		return v
	}
	h := r.Header.Get("Authorization")
	if scheme, token, ok := strings.Cut(h, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}

func (v *SessionVerifier) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			claims, err := v.Tokens.VerifyAccess(bearerToken(r))
			if err != nil {
				writeError(w, r, err)
				return
			}

			user, err := v.Auth.CurrentUser(ctx, claims.UserID())
			if err != nil {
				if errors.Is(err, service.ErrUserNotFound) {
					err = service.ErrInvalidAccessToken
				}
				writeError(w, r, err)
				return
			}

			ctx = httpx.WithIdentity(ctx, httpx.Identity{
				UserID:   user.ID,
				Email:    user.Email,
				Username: user.Username,
			})
			ctx = slogx.With(ctx, "user_id", user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// identity returns the caller attached by SessionVerifier.
func identity(r *http.Request) (httpx.Identity, error) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		return httpx.Identity{}, service.ErrAccessTokenMissing
	}
	return id, nil
}
