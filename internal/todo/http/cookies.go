package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// authCookie builds an auth cookie. A negative maxAge deletes it.
func authCookie(name, value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func setAuthCookies(w http.ResponseWriter, pair domain.TokenPair, secure bool) {
	http.SetCookie(w, authCookie(accessTokenCookie, pair.AccessToken, int(pair.AccessTokenTTL/time.Second), secure))
	http.SetCookie(w, authCookie(refreshTokenCookie, pair.RefreshToken, int(pair.RefreshTokenTTL/time.Second), secure))
}

// clearAuthCookies expires both cookies on the client.
func clearAuthCookies(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, authCookie(accessTokenCookie, "", -1, secure))
	http.SetCookie(w, authCookie(refreshTokenCookie, "", -1, secure))
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
