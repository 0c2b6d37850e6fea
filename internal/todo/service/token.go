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
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/samber/oops"
)

// TokenService issues and rotates the access/refresh pair. Each user has a
// single refresh slot holding the hash of the latest refresh token, so any
// older refresh token is dead as soon as a new one is issued.
type TokenService struct {
	Store store.Store

	AccessSigner    jwtx.Signer
	AccessVerifier  jwtx.Verifier
	RefreshSigner   jwtx.Signer
	RefreshVerifier jwtx.Verifier

	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	Metrics *AuthMetrics
	Clock   Clock
}

func (s *TokenService) accessTTL() time.Duration {
	if s.AccessTTL <= 0 {
		return jwtx.DefaultAccessTokenTTL
	}
	return s.AccessTTL
}

func (s *TokenService) refreshTTL() time.Duration {
	if s.RefreshTTL <= 0 {
		return jwtx.DefaultRefreshTokenTTL
	}
	return s.RefreshTTL
}

// Issue mints a new pair for userID and stores the refresh token hash,
// revoking whatever refresh token the user held before.
func (s *TokenService) Issue(ctx context.Context, userID string) (domain.TokenPair, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrUserNotFound
		}
		return domain.TokenPair{}, oops.With("operation", "issue tokens").With("user_id", userID).Wrap(err)
	}
	return s.issueFor(ctx, user)
}

func (s *TokenService) issueFor(ctx context.Context, user domain.User) (domain.TokenPair, error) {
	pair, err := s.mint(user, s.Clock.now())
	if err != nil {
		return domain.TokenPair{}, err
	}

	hash := cryptox.HashTemporaryToken(pair.RefreshToken)
	if err := s.Store.Users().SetRefreshTokenHash(ctx, user.ID, &hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrUserNotFound
		}
		return domain.TokenPair{}, oops.Code("TOKEN_PERSIST_FAILED").With("user_id", user.ID).Wrap(err)
	}
	return pair, nil
}

func (s *TokenService) mint(user domain.User, now time.Time) (domain.TokenPair, error) {
	access, err := s.AccessSigner.Sign(jwtx.NewAccessClaims(user.ID, user.Email, user.Username, s.Issuer, s.accessTTL(), now))
	if err != nil {
		return domain.TokenPair{}, oops.Code("TOKEN_SIGN_FAILED").With("kind", "access").Wrap(err)
	}
	refresh, err := s.RefreshSigner.Sign(jwtx.NewRefreshClaims(user.ID, s.Issuer, s.refreshTTL(), now))
	if err != nil {
		return domain.TokenPair{}, oops.Code("TOKEN_SIGN_FAILED").With("kind", "refresh").Wrap(err)
	}
	return domain.TokenPair{
		AccessToken:     access,
		RefreshToken:    refresh,
		AccessTokenTTL:  s.accessTTL(),
		RefreshTokenTTL: s.refreshTTL(),
	}, nil
}

// Refresh exchanges a refresh token for a new pair. The swap is a single
// conditional update, so of two concurrent refreshes with the same token
// exactly one wins and the other gets ErrRefreshTokenReused.
func (s *TokenService) Refresh(ctx context.Context, presented string) (pair domain.TokenPair, err error) {
	defer func() { s.Metrics.observe(EventRefresh, err) }()
	l := slogx.FromContext(ctx)

	presented = strings.TrimSpace(presented)
	if presented == "" {
		return domain.TokenPair{}, ErrRefreshTokenMissing
	}

	claims, err := s.RefreshVerifier.Verify(presented)
	if err != nil {
		l.Debug("refresh token rejected", slog.String("reason", err.Error()))
		return domain.TokenPair{}, ErrInvalidRefreshToken
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrInvalidRefreshToken
		}
		return domain.TokenPair{}, oops.With("operation", "refresh").Wrap(err)
	}

	pair, err = s.mint(user, s.Clock.now())
	if err != nil {
		return domain.TokenPair{}, err
	}

	swapped, err := s.Store.Users().RotateRefreshTokenHash(ctx, user.ID,
		cryptox.HashTemporaryToken(presented),
		cryptox.HashTemporaryToken(pair.RefreshToken),
	)
	if err != nil {
		return domain.TokenPair{}, oops.Code("TOKEN_ROTATE_FAILED").With("user_id", user.ID).Wrap(err)
	}
	if !swapped {
		l.Info("refresh token reuse rejected", slog.String("user_id", user.ID))
		return domain.TokenPair{}, ErrRefreshTokenReused
	}
	return pair, nil
}

// Revoke empties the user's refresh slot.
func (s *TokenService) Revoke(ctx context.Context, userID string) error {
	if err := s.Store.Users().SetRefreshTokenHash(ctx, userID, nil); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return oops.With("operation", "revoke refresh token").With("user_id", userID).Wrap(err)
	}
	return nil
}

// VerifyAccess checks an access token. An expired token is reported apart
// from a malformed one so clients know to refresh rather than log in again.
func (s *TokenService) VerifyAccess(token string) (jwtx.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return jwtx.Claims{}, ErrAccessTokenMissing
	}
	claims, err := s.AccessVerifier.Verify(token)
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwtx.ErrExpired):
		return jwtx.Claims{}, ErrAccessTokenExpired
	default:
		return jwtx.Claims{}, ErrInvalidAccessToken
	}
}
