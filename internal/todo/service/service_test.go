package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessSecret  = "access-secret-access-secret-0123"
	refreshSecret = "refresh-secret-refresh-secret-01"
)

// fakeMailer keeps the last link sent to each address.
type fakeMailer struct {
	mu     sync.Mutex
	verify map[string]string
	reset  map[string]string
	err    error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{verify: map[string]string{}, reset: map[string]string{}}
}

func (m *fakeMailer) SendVerificationEmail(_ context.Context, to, _, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.verify[to] = link
	return nil
}

func (m *fakeMailer) SendPasswordResetEmail(_ context.Context, to, _, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.reset[to] = link
	return nil
}

// lastToken returns the final path segment of a mailed link.
func lastToken(link string) string {
	return link[strings.LastIndex(link, "/")+1:]
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type env struct {
	store      *sqlite.Store
	mailer     *fakeMailer
	clock      *testClock
	tokens     *TokenService
	auth       *AuthService
	todos      *TodoService
	categories *CategoryService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	accessSigner, err := jwtx.NewHS256Signer([]byte(accessSecret))
	require.NoError(t, err)
	accessVerifier, err := jwtx.NewHS256Verifier([]byte(accessSecret), "todo-test", 0)
	require.NoError(t, err)
	refreshSigner, err := jwtx.NewHS256Signer([]byte(refreshSecret))
	require.NoError(t, err)
	refreshVerifier, err := jwtx.NewHS256Verifier([]byte(refreshSecret), "todo-test", 0)
	require.NoError(t, err)

	clock := &testClock{now: time.Now().UTC()}
	mailer := newFakeMailer()

	tokens := &TokenService{
		Store:           s,
		AccessSigner:    accessSigner,
		AccessVerifier:  accessVerifier,
		RefreshSigner:   refreshSigner,
		RefreshVerifier: refreshVerifier,
		Issuer:          "todo-test",
		AccessTTL:       time.Minute,
		RefreshTTL:      time.Hour,
		Clock:           clock.Now,
	}

	return &env{
		store:  s,
		mailer: mailer,
		clock:  clock,
		tokens: tokens,
		auth: &AuthService{
			Store:                     s,
			Tokens:                    tokens,
			Mailer:                    mailer,
			BcryptCost:                bcrypt.MinCost,
			PublicBaseURL:             "http://localhost:8080/",
			ForgotPasswordRedirectURL: "http://localhost:3000/reset-password",
			Clock:                     clock.Now,
		},
		todos:      &TodoService{Store: s, Clock: clock.Now},
		categories: &CategoryService{Store: s, Clock: clock.Now},
	}
}

func (e *env) register(t *testing.T, email, username string) string {
	t.Helper()
	u, err := e.auth.Register(context.Background(), RegisterInput{
		Email: email, Username: username, Password: "Passw0rd!",
	})
	require.NoError(t, err)
	return u.ID
}
