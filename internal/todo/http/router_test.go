package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "Passw0rd!"

var roomy = httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}

type mailbox struct {
	mu    sync.Mutex
	links map[string]string
}

func (m *mailbox) record(to, link string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links[to] = link
}

func (m *mailbox) SendVerificationEmail(_ context.Context, to, _, link string) error {
	m.record("verify:"+to, link)
	return nil
}

func (m *mailbox) SendPasswordResetEmail(_ context.Context, to, _, link string) error {
	m.record("reset:"+to, link)
	return nil
}

// token returns the last path segment of the newest link of kind for to.
func (m *mailbox) token(kind, to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	link := m.links[kind+":"+to]
	return link[strings.LastIndex(link, "/")+1:]
}

type testAPI struct {
	router *Router
	mail   *mailbox
	reg    *prometheus.Registry
}

func newTestAPI(t *testing.T, limits Limits) *testAPI {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	secret := []byte("http-test-secret-http-test-secret")
	signer, err := jwtx.NewHS256Signer(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewHS256Verifier(secret, "todo-test", 0)
	require.NoError(t, err)
	refreshSecret := []byte("http-refresh-secret-http-refresh!")
	refreshSigner, err := jwtx.NewHS256Signer(refreshSecret)
	require.NoError(t, err)
	refreshVerifier, err := jwtx.NewHS256Verifier(refreshSecret, "todo-test", 0)
	require.NoError(t, err)

	tokens := &service.TokenService{
		Store:           st,
		AccessSigner:    signer,
		AccessVerifier:  verifier,
		RefreshSigner:   refreshSigner,
		RefreshVerifier: refreshVerifier,
		Issuer:          "todo-test",
	}
	mail := &mailbox{links: map[string]string{}}

	reg := prometheus.NewRegistry()
	r := NewRouter(st, slogx.Discard(), Options{
		Version:  "test",
		Limits:   limits,
		Metrics:  httpx.NewMetrics(reg, "todo"),
		Gatherer: reg,
	})
	r.Tokens = tokens
	r.Auth = &service.AuthService{
		Store:                     st,
		Tokens:                    tokens,
		Mailer:                    mail,
		BcryptCost:                bcrypt.MinCost,
		PublicBaseURL:             "http://localhost:8080",
		ForgotPasswordRedirectURL: "http://localhost:3000/reset-password",
	}
	r.Todos = &service.TodoService{Store: st}
	r.Categories = &service.CategoryService{Store: st}
	r.ApplyRoutes()

	return &testAPI{router: r, mail: mail, reg: reg}
}

func newRoomyAPI(t *testing.T) *testAPI {
	return newTestAPI(t, Limits{Strict: roomy, Moderate: roomy, Lenient: roomy, Public: roomy})
}

type response struct {
	StatusCode int                `json:"statusCode"`
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       json.RawMessage    `json:"data"`
	Errors     []httpx.FieldError `json:"errors"`

	rec *httptest.ResponseRecorder
}

func (r response) decode(t *testing.T, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, dst))
}

type requestOpt func(*http.Request)

func bearer(token string) requestOpt {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withCookies(cookies []*http.Cookie) requestOpt {
	return func(r *http.Request) {
		for _, c := range cookies {
			r.AddCookie(c)
		}
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body any, opts ...requestOpt) response {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, o := range opts {
		o(req)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var res response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res), rec.Body.String())
	require.Equal(t, rec.Code, res.StatusCode)
	require.Equal(t, rec.Code < 400, res.Success)
	res.rec = rec
	return res
}

func (a *testAPI) register(t *testing.T, email, username string) domain.PublicUser {
	t.Helper()
	res := a.do(t, http.MethodPost, "/api/v1/users/register", map[string]string{
		"email": email, "username": username, "password": testPassword,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, res.Message)
	var u domain.PublicUser
	res.decode(t, &u)
	return u
}

func (a *testAPI) login(t *testing.T, email string) domain.LoginResult {
	t.Helper()
	res := a.do(t, http.MethodPost, "/api/v1/users/login", map[string]string{
		"email": email, "password": testPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, res.Message)
	var out domain.LoginResult
	res.decode(t, &out)
	return out
}

// signup registers and logs in, returning an access token.
func (a *testAPI) signup(t *testing.T, email, username string) string {
	t.Helper()
	a.register(t, email, username)
	return a.login(t, email).AccessToken
}

func TestRegisterAndLogin(t *testing.T) {
	api := newRoomyAPI(t)

	u := api.register(t, "Alice@Example.com", "Alice")
	require.Equal(t, "alice@example.com", u.Email)
	require.Equal(t, "alice", u.Username)
	require.False(t, u.IsEmailVerified)

	res := api.do(t, http.MethodPost, "/api/v1/users/register", map[string]string{
		"email": "alice@example.com", "username": "other", "password": testPassword,
	})
	require.Equal(t, http.StatusConflict, res.StatusCode)
	require.Equal(t, "User with email or username already exists", res.Message)

	res = api.do(t, http.MethodPost, "/api/v1/users/login", map[string]string{
		"email": "alice@example.com", "password": testPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "User logged in successfully", res.Message)

	var out domain.LoginResult
	res.decode(t, &out)
	require.Equal(t, u.ID, out.User.ID)
	require.NotEmpty(t, out.AccessToken)
	require.NotEmpty(t, out.RefreshToken)

	cookies := res.rec.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		require.True(t, c.HttpOnly)
		require.Positive(t, c.MaxAge)
	}

	// The cookie alone authenticates.
	res = api.do(t, http.MethodGet, "/api/v1/users/current-user", nil, withCookies(cookies))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Current user fetched successfully", res.Message)

	res = api.do(t, http.MethodGet, "/api/v1/users/current-user", nil, bearer(out.AccessToken))
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestLoginFailuresDoNotEnumerate(t *testing.T) {
	api := newRoomyAPI(t)
	api.register(t, "bob@example.com", "bob")

	for _, body := range []map[string]string{
		{"email": "bob@example.com", "password": "Wr0ngPassword"},
		{"email": "nobody@example.com", "password": testPassword},
	} {
		res := api.do(t, http.MethodPost, "/api/v1/users/login", body)
		require.Equal(t, http.StatusUnauthorized, res.StatusCode)
		require.Equal(t, "Invalid email or password", res.Message)
	}
}

func TestRegisterValidation(t *testing.T) {
	api := newRoomyAPI(t)

	res := api.do(t, http.MethodPost, "/api/v1/users/register", map[string]string{
		"email": "not-an-email", "username": "a!", "password": "short",
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Len(t, res.Errors, 3)

	res = api.do(t, http.MethodPost, "/api/v1/users/register", `{"email":`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "Invalid JSON in request body", res.Message)
}

func TestMultibytePasswordsOverBcryptLimit(t *testing.T) {
	api := newRoomyAPI(t)
	// 63 characters, 123 bytes.
	long := "Aa1" + strings.Repeat("é", 60)

	res := api.do(t, http.MethodPost, "/api/v1/users/register", map[string]string{
		"email": "uma@example.com", "username": "uma", "password": long,
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "password must be at most 72 bytes", res.Message)
	require.Equal(t, "password", res.Errors[0].Field)

	token := api.signup(t, "uma@example.com", "uma")

	res = api.do(t, http.MethodPost, "/api/v1/users/change-password",
		map[string]string{"oldPassword": testPassword, "newPassword": long}, bearer(token))
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "newPassword must be at most 72 bytes", res.Message)

	res = api.do(t, http.MethodPost, "/api/v1/users/forgot-password", map[string]string{"email": "uma@example.com"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	res = api.do(t, http.MethodPost, "/api/v1/users/reset-password/"+api.mail.token("reset", "uma@example.com"),
		map[string]string{"newPassword": long})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "newPassword must be at most 72 bytes", res.Message)

	// Multibyte passwords inside the limit are fine.
	res = api.do(t, http.MethodPost, "/api/v1/users/change-password",
		map[string]string{"oldPassword": testPassword, "newPassword": "Aa1" + strings.Repeat("é", 30)}, bearer(token))
	require.Equal(t, http.StatusOK, res.StatusCode, res.Message)
}

func TestAccessTokenRequired(t *testing.T) {
	api := newRoomyAPI(t)

	res := api.do(t, http.MethodGet, "/api/v1/users/current-user", nil)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "Unauthorized request", res.Message)

	res = api.do(t, http.MethodGet, "/api/v1/todos", nil, bearer("garbage"))
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "Invalid access token", res.Message)
}

func TestExpiredAccessToken(t *testing.T) {
	api := newRoomyAPI(t)
	u := api.register(t, "eve@example.com", "eve")

	expired, err := api.router.Tokens.AccessSigner.Sign(
		jwtx.NewAccessClaims(u.ID, u.Email, u.Username, "todo-test", time.Minute, time.Now().Add(-time.Hour)))
	require.NoError(t, err)

	res := api.do(t, http.MethodGet, "/api/v1/users/current-user", nil, bearer(expired))
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "Access token expired", res.Message)

	// Same claims under a foreign secret are invalid, not expired.
	other, err := jwtx.NewHS256Signer([]byte("some-other-secret-some-other-secret"))
	require.NoError(t, err)
	forged, err := other.Sign(jwtx.NewAccessClaims(u.ID, u.Email, u.Username, "todo-test", time.Minute, time.Now()))
	require.NoError(t, err)

	res = api.do(t, http.MethodGet, "/api/v1/todos", nil, bearer(forged))
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "Invalid access token", res.Message)
}

func TestRefreshTokenRotation(t *testing.T) {
	api := newRoomyAPI(t)
	api.register(t, "carol@example.com", "carol")
	first := api.login(t, "carol@example.com")

	res := api.do(t, http.MethodPost, "/api/v1/users/refresh-token", nil)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "Refresh token is missing", res.Message)

	res = api.do(t, http.MethodPost, "/api/v1/users/refresh-token", map[string]string{"refreshToken": first.RefreshToken})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Access token refreshed", res.Message)
	var second domain.TokenPair
	res.decode(t, &second)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The consumed token is dead.
	res = api.do(t, http.MethodPost, "/api/v1/users/refresh-token", map[string]string{"refreshToken": first.RefreshToken})
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "Refresh token is expired or used", res.Message)

	// The cookie wins over the body.
	res = api.do(t, http.MethodPost, "/api/v1/users/refresh-token", nil,
		withCookies([]*http.Cookie{{Name: refreshTokenCookie, Value: second.RefreshToken}}))
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = api.do(t, http.MethodPost, "/api/v1/users/refresh-token", map[string]string{"refreshToken": "nonsense"})
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "Invalid refresh token", res.Message)
}

func TestLogout(t *testing.T) {
	api := newRoomyAPI(t)
	api.register(t, "dave@example.com", "dave")
	out := api.login(t, "dave@example.com")

	res := api.do(t, http.MethodPost, "/api/v1/users/logout", nil, bearer(out.AccessToken))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "User logged out", res.Message)
	for _, c := range res.rec.Result().Cookies() {
		require.Negative(t, c.MaxAge, c.Name)
		require.Empty(t, c.Value)
	}

	res = api.do(t, http.MethodPost, "/api/v1/users/refresh-token", map[string]string{"refreshToken": out.RefreshToken})
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestVerifyEmail(t *testing.T) {
	api := newRoomyAPI(t)
	token := api.signup(t, "erin@example.com", "erin")

	res := api.do(t, http.MethodGet, "/api/v1/users/verify-email/"+api.mail.token("verify", "erin@example.com"), nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Email verified", res.Message)
	require.JSONEq(t, `{"isEmailVerified":true}`, string(res.Data))

	// Tokens are single use.
	res = api.do(t, http.MethodPost, "/api/v1/users/verify-email/"+api.mail.token("verify", "erin@example.com"), nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "Token is invalid or expired", res.Message)

	res = api.do(t, http.MethodPost, "/api/v1/users/resend-email-verification", nil, bearer(token))
	require.Equal(t, http.StatusConflict, res.StatusCode)
	require.Equal(t, "Email is already verified", res.Message)
}

func TestPasswordReset(t *testing.T) {
	api := newRoomyAPI(t)
	api.register(t, "frank@example.com", "frank")

	res := api.do(t, http.MethodPost, "/api/v1/users/forgot-password", map[string]string{"email": "ghost@example.com"})
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, "User does not exist", res.Message)

	res = api.do(t, http.MethodPost, "/api/v1/users/forgot-password", map[string]string{"email": "frank@example.com"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	tok := api.mail.token("reset", "frank@example.com")

	res = api.do(t, http.MethodPost, "/api/v1/users/reset-password/"+tok, map[string]string{"newPassword": testPassword})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "New password cannot be same as old password", res.Message)

	res = api.do(t, http.MethodPost, "/api/v1/users/reset-password", map[string]string{"token": tok, "newPassword": "Brand9New"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Password reset successfully", res.Message)

	res = api.do(t, http.MethodPost, "/api/v1/users/login", map[string]string{"email": "frank@example.com", "password": "Brand9New"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = api.do(t, http.MethodPost, "/api/v1/users/reset-password", map[string]string{"newPassword": "Another1Pass"})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestChangePassword(t *testing.T) {
	api := newRoomyAPI(t)
	token := api.signup(t, "gina@example.com", "gina")

	res := api.do(t, http.MethodPost, "/api/v1/users/change-password",
		map[string]string{"oldPassword": "Wr0ngPass", "newPassword": "Brand9New"}, bearer(token))
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "Invalid old password", res.Message)

	res = api.do(t, http.MethodPost, "/api/v1/users/change-password",
		map[string]string{"oldPassword": testPassword, "newPassword": "Brand9New"}, bearer(token))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Password changed successfully", res.Message)
}

func TestTodoLifecycle(t *testing.T) {
	api := newRoomyAPI(t)
	token := api.signup(t, "hank@example.com", "hank")
	auth := bearer(token)

	res := api.do(t, http.MethodPost, "/api/v1/todos", map[string]any{
		"title": "  Buy milk  ", "dueDate": "2030-01-02", "priority": "high",
	}, auth)
	require.Equal(t, http.StatusCreated, res.StatusCode, res.Message)
	require.Equal(t, "Todo created successfully", res.Message)
	var todo domain.Todo
	res.decode(t, &todo)
	require.Equal(t, "Buy milk", todo.Title)
	require.Equal(t, domain.PriorityHigh, todo.Priority)
	require.NotNil(t, todo.DueDate)
	require.False(t, todo.IsCompleted)

	res = api.do(t, http.MethodGet, "/api/v1/todos/not-a-uuid", nil, auth)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "Invalid todo ID", res.Message)

	res = api.do(t, http.MethodGet, "/api/v1/todos/"+todo.ID, nil, auth)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = api.do(t, http.MethodPut, "/api/v1/todos/"+todo.ID, map[string]any{}, auth)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "No fields to update", res.Message)

	res = api.do(t, http.MethodPut, "/api/v1/todos/"+todo.ID, `{"dueDate":null,"description":"two litres"}`, auth)
	require.Equal(t, http.StatusOK, res.StatusCode, res.Message)
	res.decode(t, &todo)
	require.Nil(t, todo.DueDate)
	require.Equal(t, "two litres", *todo.Description)

	res = api.do(t, http.MethodPatch, "/api/v1/todos/"+todo.ID+"/toggle", nil, auth)
	require.Equal(t, "Todo marked as completed", res.Message)
	res = api.do(t, http.MethodPatch, "/api/v1/todos/"+todo.ID+"/toggle", nil, auth)
	require.Equal(t, "Todo marked as incomplete", res.Message)

	res = api.do(t, http.MethodDelete, "/api/v1/todos/"+todo.ID, nil, auth)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Todo deleted successfully", res.Message)

	res = api.do(t, http.MethodGet, "/api/v1/todos/"+todo.ID, nil, auth)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, "Todo not found", res.Message)
}

func TestTodosAreScopedToOwner(t *testing.T) {
	api := newRoomyAPI(t)
	owner := api.signup(t, "ivy@example.com", "ivy")
	other := api.signup(t, "jack@example.com", "jack")

	res := api.do(t, http.MethodPost, "/api/v1/todos", map[string]any{"title": "private"}, bearer(owner))
	var todo domain.Todo
	res.decode(t, &todo)

	res = api.do(t, http.MethodGet, "/api/v1/todos/"+todo.ID, nil, bearer(other))
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	res = api.do(t, http.MethodGet, "/api/v1/todos", nil, bearer(other))
	var page domain.Page[domain.Todo]
	res.decode(t, &page)
	require.Empty(t, page.Data)
	require.Equal(t, 0, page.Meta.Total)
}

func TestListTodosQuery(t *testing.T) {
	api := newRoomyAPI(t)
	auth := bearer(api.signup(t, "kim@example.com", "kim"))

	for i, prio := range []string{"low", "high", "high", "medium"} {
		res := api.do(t, http.MethodPost, "/api/v1/todos/", map[string]any{
			"title": "task " + string(rune('a'+i)), "priority": prio,
		}, auth)
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	res := api.do(t, http.MethodGet, "/api/v1/todos/?priority=high&limit=1", nil, auth)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Todos fetched successfully", res.Message)
	var page domain.Page[domain.Todo]
	res.decode(t, &page)
	require.Len(t, page.Data, 1)
	require.Equal(t, 2, page.Meta.Total)
	require.Equal(t, 2, page.Meta.TotalPages)
	require.True(t, page.Meta.HasNextPage)

	res = api.do(t, http.MethodGet, "/api/v1/todos?sortBy=priority&sortOrder=asc", nil, auth)
	res.decode(t, &page)
	require.Len(t, page.Data, 4)
	require.Equal(t, domain.PriorityLow, page.Data[0].Priority)
	require.Equal(t, domain.PriorityHigh, page.Data[3].Priority)

	// A page far past the end is empty, never a wrapped-around page 1.
	res = api.do(t, http.MethodGet, "/api/v1/todos?page=1000000000000000000&limit=10", nil, auth)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.decode(t, &page)
	require.Empty(t, page.Data)
	require.Equal(t, 1_000_000_000_000_000_000, page.Meta.Page)
	require.Equal(t, 4, page.Meta.Total)
	require.False(t, page.Meta.HasNextPage)

	for _, q := range []string{"page=0", "limit=101", "sortBy=title", "sortOrder=up", "priority=urgent", "completed=yes", "categoryId=42"} {
		res = api.do(t, http.MethodGet, "/api/v1/todos?"+q, nil, auth)
		require.Equal(t, http.StatusBadRequest, res.StatusCode, q)
	}
}

func TestCategories(t *testing.T) {
	api := newRoomyAPI(t)
	auth := bearer(api.signup(t, "lee@example.com", "lee"))

	res := api.do(t, http.MethodPost, "/api/v1/categories", map[string]string{"name": " Work "}, auth)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "Category created successfully", res.Message)
	var cat domain.Category
	res.decode(t, &cat)
	require.Equal(t, "Work", cat.Name)

	res = api.do(t, http.MethodPost, "/api/v1/categories", map[string]string{"name": "Work"}, auth)
	require.Equal(t, http.StatusConflict, res.StatusCode)
	require.Equal(t, "Category with this name already exists", res.Message)

	res = api.do(t, http.MethodPost, "/api/v1/categories", map[string]string{"name": "   "}, auth)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = api.do(t, http.MethodGet, "/api/v1/categories/nope", nil, auth)
	require.Equal(t, "Invalid category ID", res.Message)

	res = api.do(t, http.MethodPut, "/api/v1/categories/"+cat.ID, map[string]string{"name": "Office"}, auth)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.decode(t, &cat)
	require.Equal(t, "Office", cat.Name)

	res = api.do(t, http.MethodPost, "/api/v1/todos", map[string]any{"title": "file taxes", "categoryId": cat.ID}, auth)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	var todo domain.Todo
	res.decode(t, &todo)
	require.Equal(t, cat.ID, *todo.CategoryID)

	res = api.do(t, http.MethodGet, "/api/v1/categories?search=off&sortBy=name", nil, auth)
	var page domain.Page[domain.Category]
	res.decode(t, &page)
	require.Len(t, page.Data, 1)

	res = api.do(t, http.MethodDelete, "/api/v1/categories/"+cat.ID, nil, auth)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Category deleted successfully", res.Message)

	res = api.do(t, http.MethodGet, "/api/v1/todos/"+todo.ID, nil, auth)
	res.decode(t, &todo)
	require.Nil(t, todo.CategoryID)

	res = api.do(t, http.MethodGet, "/api/v1/categories/"+cat.ID, nil, auth)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, "Category not found", res.Message)
}

func TestSystemRoutes(t *testing.T) {
	api := newRoomyAPI(t)

	res := api.do(t, http.MethodGet, "/api/v1/healthcheck", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Health Check Passed", res.Message)
	require.JSONEq(t, `"OK"`, string(res.Data))

	res = api.do(t, http.MethodGet, "/api/v1/nothing-here", nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, "Route not found", res.Message)

	for _, path := range []string{"/livez", "/readyz"} {
		rec := httptest.NewRecorder()
		api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Contains(t, rec.Body.String(), `"status":"ok"`)
	}

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `todo_http_requests_total{method="GET",route="GET /api/v1/healthcheck",status="200"} 1`)
}

func TestReadyzReportsDatabaseFailure(t *testing.T) {
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.Close())

	rec := httptest.NewRecorder()
	ReadyzHandler(time.Now(), "test", st)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"degraded"`)
}

func TestBodyLimit(t *testing.T) {
	api := newRoomyAPI(t)
	big := `{"email":"` + strings.Repeat("a", int(httpx.DefaultBodyLimit)) + `@example.com"}`

	res := api.do(t, http.MethodPost, "/api/v1/users/forgot-password", big)
	require.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode)
}

func TestStrictRateLimit(t *testing.T) {
	strict := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	api := newTestAPI(t, Limits{Strict: strict})

	body := map[string]string{"email": "nobody@example.com", "password": testPassword}
	for range 2 {
		res := api.do(t, http.MethodPost, "/api/v1/users/login", body)
		require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	}
	res := api.do(t, http.MethodPost, "/api/v1/users/login", body)
	require.Equal(t, http.StatusTooManyRequests, res.StatusCode)
}
