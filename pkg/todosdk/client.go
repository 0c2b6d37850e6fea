package todosdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SDKClient is a client for the todo service. It provides access to
// unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client with a 10 second request timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an unverified account.
func (c *SDKClient) Register(ctx context.Context, email, username, password string) (*User, error) {
	var u User
	body := map[string]string{"email": email, "username": username, "password": password}
	if err := c.call(ctx, http.MethodPost, "/api/v1/users/register", body, "", http.StatusCreated, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login authenticates with email and password and returns a Session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var res LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.call(ctx, http.MethodPost, "/api/v1/users/login", body, "", http.StatusOK, &res); err != nil {
		return nil, err
	}
	return c.NewSessionFromTokens(res.AccessToken, res.RefreshToken), nil
}

// NewSessionFromTokens resumes a session from a stored token pair.
func (c *SDKClient) NewSessionFromTokens(accessToken, refreshToken string) *Session {
	return &Session{
		client:       c,
		accessToken:  accessToken,
		refreshToken: refreshToken,
	}
}

// Refresh exchanges a refresh token for a new pair. The presented token
// stops working once this returns.
func (c *SDKClient) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair TokenPair
	body := map[string]string{"refreshToken": refreshToken}
	if err := c.call(ctx, http.MethodPost, "/api/v1/users/refresh-token", body, "", http.StatusOK, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// VerifyEmail consumes the token from a verification email.
func (c *SDKClient) VerifyEmail(ctx context.Context, token string) error {
	return c.call(ctx, http.MethodPost, "/api/v1/users/verify-email/"+url.PathEscape(token), nil, "", http.StatusOK, nil)
}

// ForgotPassword asks the service to mail a reset link.
func (c *SDKClient) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.call(ctx, http.MethodPost, "/api/v1/users/forgot-password", body, "", http.StatusOK, nil)
}

// ResetPassword consumes a reset token and sets a new password.
func (c *SDKClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"newPassword": newPassword}
	return c.call(ctx, http.MethodPost, "/api/v1/users/reset-password/"+url.PathEscape(token), body, "", http.StatusOK, nil)
}

// Healthcheck calls /api/v1/healthcheck.
func (c *SDKClient) Healthcheck(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/api/v1/healthcheck", nil, "", http.StatusOK, nil)
}

// Livez returns the liveness probe.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	var h HealthResponse
	if _, err := c.getJSON(ctx, "/livez", &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Readyz returns the readiness probe. A 503 still decodes; check Status.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	var h HealthResponse
	if _, err := c.getJSON(ctx, "/readyz", &h); err != nil {
		return nil, err
	}
	return &h, nil
}
