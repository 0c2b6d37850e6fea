package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/google/uuid"
	"github.com/samber/oops"
)

// Mailer delivers the account emails.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, username, link string) error
	SendPasswordResetEmail(ctx context.Context, to, username, link string) error
}

// AuthService owns the account lifecycle: registration, login, email
// verification and password recovery.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
	Mailer Mailer

	BcryptCost        int
	TemporaryTokenTTL time.Duration

	// PublicBaseURL prefixes the emailed verification link.
	PublicBaseURL string
	// ForgotPasswordRedirectURL is where the reset link points; the token
	// is appended as the last path segment.
	ForgotPasswordRedirectURL string
	// ConcealUnknownEmail makes ForgotPassword succeed for unknown addresses.
	ConcealUnknownEmail bool

	Metrics *AuthMetrics
	Clock   Clock
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) newTemporaryToken() (cryptox.TemporaryToken, error) {
	tok, err := cryptox.GenerateTemporaryToken(s.TemporaryTokenTTL)
	if err != nil {
		return cryptox.TemporaryToken{}, oops.Code("TEMP_TOKEN_FAILED").Wrap(err)
	}
	ttl := s.TemporaryTokenTTL
	if ttl <= 0 {
		ttl = cryptox.TemporaryTokenTTL
	}
	tok.ExpiresAt = s.Clock.now().Add(ttl)
	return tok, nil
}

func (s *AuthService) verificationLink(plain string) string {
	return strings.TrimRight(s.PublicBaseURL, "/") + "/api/v1/users/verify-email/" + plain
}

func (s *AuthService) resetLink(plain string) string {
	return strings.TrimRight(s.ForgotPasswordRedirectURL, "/") + "/" + plain
}

// Register creates an unverified account and mails a verification link. A
// failed send is logged and does not fail the registration.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (user domain.PublicUser, err error) {
	defer func() { s.Metrics.observe(EventRegister, err) }()
	l := slogx.FromContext(ctx)

	email := normalizeEmail(in.Email)
	username := strings.ToLower(strings.TrimSpace(in.Username))

	exists, err := s.Store.Users().ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return domain.PublicUser{}, err
	}
	if exists {
		return domain.PublicUser{}, ErrUserExists
	}

	hash, err := cryptox.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return domain.PublicUser{}, oops.Code("PASSWORD_HASH_FAILED").Wrap(err)
	}

	tok, err := s.newTemporaryToken()
	if err != nil {
		return domain.PublicUser{}, err
	}

	now := s.Clock.now()
	u := domain.User{
		ID:                         uuid.NewString(),
		Email:                      email,
		Username:                   username,
		LoginType:                  domain.LoginTypeEmailPassword,
		PasswordHash:               hash,
		EmailVerificationTokenHash: &tok.Hash,
		EmailVerificationExpiresAt: &tok.ExpiresAt,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.PublicUser{}, ErrUserExists
		}
		return domain.PublicUser{}, oops.Code("USER_CREATE_FAILED").Wrap(err)
	}

	if err := s.Mailer.SendVerificationEmail(ctx, u.Email, u.Username, s.verificationLink(tok.Plain)); err != nil {
		l.Error("verification email not sent", slog.String("user_id", u.ID), slog.Any("error", err))
	}

	l.Info("user registered", slog.String("user_id", u.ID))
	return u.Public(), nil
}

// Login checks the password and issues a fresh token pair. Unknown emails
// and wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (res domain.LoginResult, err error) {
	defer func() { s.Metrics.observe(EventLogin, err) }()

	user, err := s.Store.Users().GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.LoginResult{}, ErrInvalidCredentials
		}
		return domain.LoginResult{}, oops.With("operation", "login").Wrap(err)
	}

	if user.LoginType != "" && user.LoginType != domain.LoginTypeEmailPassword {
		return domain.LoginResult{}, &LoginTypeError{LoginType: user.LoginType}
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.LoginResult{}, ErrInvalidCredentials
		}
		return domain.LoginResult{}, oops.With("user_id", user.ID).Wrap(err)
	}

	pair, err := s.Tokens.issueFor(ctx, user)
	if err != nil {
		return domain.LoginResult{}, err
	}

	slogx.FromContext(ctx).Info("user logged in", slog.String("user_id", user.ID))
	return domain.LoginResult{User: user.Public(), TokenPair: pair}, nil
}

// Logout revokes the stored refresh token. Access tokens stay valid until
// they expire.
func (s *AuthService) Logout(ctx context.Context, userID string) (err error) {
	defer func() { s.Metrics.observe(EventLogout, err) }()
	return s.Tokens.Revoke(ctx, userID)
}

// VerifyEmail consumes a verification token.
func (s *AuthService) VerifyEmail(ctx context.Context, plain string) (err error) {
	defer func() { s.Metrics.observe(EventVerifyEmail, err) }()

	plain = strings.TrimSpace(plain)
	if plain == "" {
		return ErrTokenInvalidOrExpired
	}
	hash := cryptox.HashTemporaryToken(plain)
	now := s.Clock.now()

	user, err := s.Store.Users().GetUserByEmailVerificationToken(ctx, hash, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTokenInvalidOrExpired
		}
		return oops.With("operation", "verify email").Wrap(err)
	}

	ok, err := s.Store.Users().MarkEmailVerified(ctx, user.ID, hash, now)
	if err != nil {
		return oops.With("operation", "verify email").With("user_id", user.ID).Wrap(err)
	}
	if !ok {
		return ErrTokenInvalidOrExpired
	}
	return nil
}

// ResendEmailVerification issues a new verification token, replacing any
// earlier one, and mails it.
func (s *AuthService) ResendEmailVerification(ctx context.Context, userID string) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsEmailVerified {
		return ErrEmailAlreadyVerified
	}

	tok, err := s.newTemporaryToken()
	if err != nil {
		return err
	}
	if err := s.Store.Users().SetEmailVerificationToken(ctx, user.ID, tok.Hash, tok.ExpiresAt); err != nil {
		return oops.Code("TEMP_TOKEN_PERSIST_FAILED").With("user_id", user.ID).Wrap(err)
	}
	return s.Mailer.SendVerificationEmail(ctx, user.Email, user.Username, s.verificationLink(tok.Plain))
}

// ForgotPassword issues a reset token and mails the reset link.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (err error) {
	defer func() { s.Metrics.observe(EventForgotPassword, err) }()

	user, err := s.Store.Users().GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			if s.ConcealUnknownEmail {
				return nil
			}
			return ErrUserNotFound
		}
		return oops.With("operation", "forgot password").Wrap(err)
	}

	tok, err := s.newTemporaryToken()
	if err != nil {
		return err
	}
	if err := s.Store.Users().SetForgotPasswordToken(ctx, user.ID, tok.Hash, tok.ExpiresAt); err != nil {
		return oops.Code("TEMP_TOKEN_PERSIST_FAILED").With("user_id", user.ID).Wrap(err)
	}
	return s.Mailer.SendPasswordResetEmail(ctx, user.Email, user.Username, s.resetLink(tok.Plain))
}

// ResetPassword consumes a reset token and sets a new password. It also
// signs the user out everywhere by clearing the refresh token.
func (s *AuthService) ResetPassword(ctx context.Context, plain, newPassword string) (err error) {
	defer func() { s.Metrics.observe(EventResetPassword, err) }()

	plain = strings.TrimSpace(plain)
	if plain == "" {
		return ErrTokenInvalidOrExpired
	}
	hash := cryptox.HashTemporaryToken(plain)
	now := s.Clock.now()

	user, err := s.Store.Users().GetUserByForgotPasswordToken(ctx, hash, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTokenInvalidOrExpired
		}
		return oops.With("operation", "reset password").Wrap(err)
	}

	if cryptox.VerifyPassword(newPassword, user.PasswordHash) == nil {
		return ErrSamePassword
	}

	passwordHash, err := cryptox.HashPassword(newPassword, s.BcryptCost)
	if err != nil {
		return oops.Code("PASSWORD_HASH_FAILED").Wrap(err)
	}

	ok, err := s.Store.Users().ResetPassword(ctx, user.ID, hash, passwordHash, now)
	if err != nil {
		return oops.With("operation", "reset password").With("user_id", user.ID).Wrap(err)
	}
	if !ok {
		return ErrTokenInvalidOrExpired
	}
	slogx.FromContext(ctx).Info("password reset", slog.String("user_id", user.ID))
	return nil
}

// ChangePassword replaces the password of a signed-in user.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) (err error) {
	defer func() { s.Metrics.observe(EventChangePassword, err) }()

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := cryptox.VerifyPassword(oldPassword, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return ErrInvalidOldPassword
		}
		return oops.With("user_id", user.ID).Wrap(err)
	}
	if oldPassword == newPassword {
		return ErrSamePassword
	}

	passwordHash, err := cryptox.HashPassword(newPassword, s.BcryptCost)
	if err != nil {
		return oops.Code("PASSWORD_HASH_FAILED").Wrap(err)
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, passwordHash, s.Clock.now()); err != nil {
		return oops.With("operation", "change password").With("user_id", user.ID).Wrap(err)
	}
	return nil
}

// CurrentUser returns the sanitised record of the signed-in user.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (domain.PublicUser, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.PublicUser{}, err
	}
	return user.Public(), nil
}

func (s *AuthService) getUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, oops.With("operation", "get user").With("user_id", userID).Wrap(err)
	}
	return user, nil
}
