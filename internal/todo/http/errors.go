package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/httpx"
)

// serviceErrors maps service sentinels onto the client-facing error.
var serviceErrors = []struct {
	err error
	api *httpx.APIError
}{
	{service.ErrUserExists, httpx.Conflict("User with email or username already exists")},
	{service.ErrUserNotFound, httpx.NotFound("User does not exist")},
	{service.ErrInvalidCredentials, httpx.Unauthorized("Invalid email or password")},
	{service.ErrInvalidOldPassword, httpx.Unauthorized("Invalid old password")},
	{service.ErrSamePassword, httpx.BadRequest("New password cannot be same as old password")},
	{cryptox.ErrPasswordTooLong, httpx.BadRequest(fmt.Sprintf("Password must be at most %d bytes", cryptox.MaxPasswordBytes))},
	{service.ErrEmailAlreadyVerified, httpx.Conflict("Email is already verified")},
	{service.ErrTokenInvalidOrExpired, httpx.BadRequest("Token is invalid or expired")},

	{service.ErrAccessTokenMissing, httpx.Unauthorized("Unauthorized request")},
	{service.ErrInvalidAccessToken, httpx.Unauthorized("Invalid access token")},
	{service.ErrAccessTokenExpired, httpx.Unauthorized("Access token expired")},
	{service.ErrRefreshTokenMissing, httpx.Unauthorized("Refresh token is missing")},
	{service.ErrInvalidRefreshToken, httpx.Unauthorized("Invalid refresh token")},
	{service.ErrRefreshTokenReused, httpx.Unauthorized("Refresh token is expired or used")},

	{service.ErrTodoNotFound, httpx.NotFound("Todo not found")},
	{service.ErrCategoryNotFound, httpx.NotFound("Category not found")},
	{service.ErrCategoryExists, httpx.Conflict("Category with this name already exists")},
	{service.ErrNoFieldsToUpdate, httpx.BadRequest("No fields to update")},
}

// toAPIError turns a service error into something WriteError can render.
// Unrecognised errors fall through and become a generic 500.
func toAPIError(err error) error {
	var apiErr *httpx.APIError
	if errors.As(err, &apiErr) {
		return err
	}

	var lte *service.LoginTypeError
	if errors.As(err, &lte) {
		return httpx.BadRequest(lte.Error()).Wrap(err)
	}

	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			return m.api.Wrap(err)
		}
	}
	return err
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	httpx.WriteError(w, r, toAPIError(err))
}

// notFoundHandler answers unmatched routes with the standard envelope.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(w, r, httpx.NotFound("Route not found"))
}
