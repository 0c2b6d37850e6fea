package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

// Client-facing failures. The HTTP layer maps each one to a status code;
// anything not listed here is an internal error.
var (
	ErrUserExists           = errors.New("user with email or username already exists")
	ErrUserNotFound         = errors.New("user does not exist")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidOldPassword   = errors.New("invalid old password")
	ErrSamePassword         = errors.New("new password cannot be same as old password")
	ErrEmailAlreadyVerified = errors.New("email is already verified")

	ErrTokenInvalidOrExpired = errors.New("token is invalid or expired")

	ErrAccessTokenMissing  = errors.New("unauthorized request")
	ErrInvalidAccessToken  = errors.New("invalid access token")
	ErrAccessTokenExpired  = errors.New("access token expired")
	ErrRefreshTokenMissing = errors.New("refresh token is missing")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenReused  = errors.New("refresh token is expired or used")

	ErrTodoNotFound     = errors.New("todo not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category with this name already exists")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// LoginTypeError rejects a password login for an account created through
// another provider.
type LoginTypeError struct {
	LoginType domain.LoginType
}

func (e *LoginTypeError) Error() string {
	return fmt.Sprintf("You have previously registered using %s. Please use the %s login option to access your account.",
		e.LoginType, e.LoginType)
}
