package http

import (
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
)

// UsersHandler serves the account endpoints under /api/v1/users.
type UsersHandler struct {
	Auth   *service.AuthService
	Tokens *service.TokenService

	// CookieSecure sets the Secure flag on auth cookies.
	CookieSecure bool
}

// HandleRegister creates an account.
//
//	@Summary		Register a user
//	@Description	Creates an unverified account and mails a verification link.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		registerRequest								true	"New account"
//	@Success		201		{object}	httpx.Envelope{data=domain.PublicUser}	"User registered successfully"
//	@Failure		400		{object}	httpx.Envelope							"Validation failed"
//	@Failure		409		{object}	httpx.Envelope							"User with email or username already exists"
//	@Router			/api/v1/users/register [post]
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.Auth.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, "User registered successfully", user)
}

// HandleLogin exchanges credentials for a token pair.
//
//	@Summary		Log in
//	@Description	Returns the user and a fresh access/refresh pair. The tokens are also set as HTTP-only cookies.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest								true	"Credentials"
//	@Success		200		{object}	httpx.Envelope{data=domain.LoginResult}	"User logged in successfully"
//	@Failure		401		{object}	httpx.Envelope							"Invalid email or password"
//	@Router			/api/v1/users/login [post]
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	setAuthCookies(w, res.TokenPair, h.CookieSecure)
	httpx.Respond(w, http.StatusOK, "User logged in successfully", res)
}

// HandleLogout revokes the refresh token and clears the cookies.
//
//	@Summary	Log out
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	httpx.Envelope	"User logged out"
//	@Failure	401	{object}	httpx.Envelope	"Unauthorized request"
//	@Router		/api/v1/users/logout [post]
func (h *UsersHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Auth.Logout(r.Context(), id.UserID); err != nil {
		writeError(w, r, err)
		return
	}
	clearAuthCookies(w, h.CookieSecure)
	httpx.Respond(w, http.StatusOK, "User logged out", struct{}{})
}

// HandleRefresh rotates the refresh token.
//
//	@Summary		Refresh the access token
//	@Description	Takes the refresh token from the refreshToken cookie or the body. The presented token is consumed; reusing it fails.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		refreshRequest								false	"Refresh token when not sent as a cookie"
//	@Success		200		{object}	httpx.Envelope{data=domain.TokenPair}	"Access token refreshed"
//	@Failure		401		{object}	httpx.Envelope							"Refresh token is missing, invalid, expired or used"
//	@Router			/api/v1/users/refresh-token [post]
func (h *UsersHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := httpx.DecodeOptionalJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token := cookieValue(r, refreshTokenCookie)
	if token == "" {
		token = req.RefreshToken
	}

	pair, err := h.Tokens.Refresh(r.Context(), token)
	if err != nil {
		writeError(w, r, err)
		return
	}
	setAuthCookies(w, pair, h.CookieSecure)
	httpx.Respond(w, http.StatusOK, "Access token refreshed", pair)
}

type emailVerifiedResponse struct {
	IsEmailVerified bool `json:"isEmailVerified"`
}

// HandleVerifyEmail consumes an email verification token.
//
//	@Summary	Verify email address
//	@Tags		Users
//	@Produce	json
//	@Param		token	path		string										true	"Token from the verification email"
//	@Success	200		{object}	httpx.Envelope{data=emailVerifiedResponse}	"Email verified"
//	@Failure	400		{object}	httpx.Envelope								"Token is invalid or expired"
//	@Router		/api/v1/users/verify-email/{token} [get]
//	@Router		/api/v1/users/verify-email/{token} [post]
func (h *UsersHandler) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.VerifyEmail(r.Context(), r.PathValue("token")); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Email verified", emailVerifiedResponse{IsEmailVerified: true})
}

// HandleResendVerification mails a new verification link.
//
//	@Summary	Resend the verification email
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	httpx.Envelope	"Mail has been sent to your mail ID"
//	@Failure	409	{object}	httpx.Envelope	"Email is already verified"
//	@Router		/api/v1/users/resend-email-verification [post]
func (h *UsersHandler) HandleResendVerification(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Auth.ResendEmailVerification(r.Context(), id.UserID); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Mail has been sent to your mail ID", struct{}{})
}

// HandleForgotPassword mails a password reset link.
//
//	@Summary	Request a password reset
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		body	body		forgotPasswordRequest	true	"Account email"
//	@Success	200		{object}	httpx.Envelope			"Password reset mail has been sent on your mail id"
//	@Failure	404		{object}	httpx.Envelope			"User does not exist"
//	@Router		/api/v1/users/forgot-password [post]
func (h *UsersHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Auth.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Password reset mail has been sent on your mail id", struct{}{})
}

// HandleResetPassword consumes a reset token. The token comes from the
// path, or from the body on the path-less route.
//
//	@Summary	Reset a forgotten password
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		token	path		string					true	"Token from the reset email"
//	@Param		body	body		resetPasswordRequest	true	"New password"
//	@Success	200		{object}	httpx.Envelope			"Password reset successfully"
//	@Failure	400		{object}	httpx.Envelope			"Token is invalid or expired"
//	@Router		/api/v1/users/reset-password/{token} [post]
func (h *UsersHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token := r.PathValue("token")
	if token == "" {
		token = req.Token
	}
	if token == "" {
		writeError(w, r, httpx.BadRequest("token is required", httpx.FieldError{Field: "token", Message: "token is required"}))
		return
	}

	if err := h.Auth.ResetPassword(r.Context(), token, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Password reset successfully", struct{}{})
}

// HandleChangePassword replaces the password of the signed-in user.
//
//	@Summary	Change password
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		changePasswordRequest	true	"Old and new password"
//	@Success	200		{object}	httpx.Envelope			"Password changed successfully"
//	@Failure	400		{object}	httpx.Envelope			"New password cannot be same as old password"
//	@Failure	401		{object}	httpx.Envelope			"Invalid old password"
//	@Router		/api/v1/users/change-password [post]
func (h *UsersHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req changePasswordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Auth.ChangePassword(r.Context(), id.UserID, req.OldPassword, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Password changed successfully", struct{}{})
}

// HandleCurrentUser returns the signed-in user.
//
//	@Summary	Current user
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	httpx.Envelope{data=domain.PublicUser}	"Current user fetched successfully"
//	@Failure	401	{object}	httpx.Envelope							"Unauthorized request"
//	@Router		/api/v1/users/current-user [get]
func (h *UsersHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.Auth.CurrentUser(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Current user fetched successfully", user)
}
