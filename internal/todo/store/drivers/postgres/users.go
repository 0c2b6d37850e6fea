package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"
)

const userColumns = `id, email, username, login_type, profile_picture, password_hash,
	is_email_verified, refresh_token_hash,
	email_verification_token_hash, email_verification_expires_at,
	forgot_password_token_hash, forgot_password_expires_at,
	created_at, updated_at`

type usersRepo struct {
	pool poolIface
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u         domain.User
		username  *string
		loginType string
	)
	err := row.Scan(
		&u.ID, &u.Email, &username, &loginType, &u.ProfilePicture, &u.PasswordHash,
		&u.IsEmailVerified, &u.RefreshTokenHash,
		&u.EmailVerificationTokenHash, &u.EmailVerificationExpiresAt,
		&u.ForgotPasswordTokenHash, &u.ForgotPasswordExpiresAt,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	if username != nil {
		u.Username = *username
	}
	u.LoginType = domain.LoginType(loginType)
	return u, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	if u.LoginType == "" {
		u.LoginType = domain.LoginTypeEmailPassword
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		u.ID, u.Email, nullIfEmpty(u.Username), string(u.LoginType), u.ProfilePicture, u.PasswordHash,
		u.IsEmailVerified, u.RefreshTokenHash,
		u.EmailVerificationTokenHash, u.EmailVerificationExpiresAt,
		u.ForgotPasswordTokenHash, u.ForgotPasswordExpiresAt,
		u.CreatedAt, u.UpdatedAt,
	)
	return mapErr(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *usersRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)`,
		email, username,
	).Scan(&exists)
	if err != nil {
		return false, oops.With("operation", "user exists").Wrap(err)
	}
	return exists, nil
}

func (r *usersRepo) SetRefreshTokenHash(ctx context.Context, userID string, hash *string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET refresh_token_hash = $1 WHERE id = $2`, hash, userID)
	if err != nil {
		return oops.With("operation", "set refresh token").With("user_id", userID).Wrap(err)
	}
	return requireOne(tag)
}

func (r *usersRepo) RotateRefreshTokenHash(ctx context.Context, userID, presented, next string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET refresh_token_hash = $1 WHERE id = $2 AND refresh_token_hash = $3`,
		next, userID, presented,
	)
	if err != nil {
		return false, oops.With("operation", "rotate refresh token").With("user_id", userID).Wrap(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *usersRepo) SetEmailVerificationToken(ctx context.Context, userID, hash string, expiresAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET email_verification_token_hash = $1, email_verification_expires_at = $2 WHERE id = $3`,
		hash, expiresAt, userID,
	)
	if err != nil {
		return oops.With("operation", "set email verification token").With("user_id", userID).Wrap(err)
	}
	return requireOne(tag)
}

func (r *usersRepo) GetUserByEmailVerificationToken(ctx context.Context, hash string, now time.Time) (domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE email_verification_token_hash = $1 AND email_verification_expires_at > $2`,
		hash, now,
	))
}

func (r *usersRepo) MarkEmailVerified(ctx context.Context, userID, hash string, now time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET is_email_verified = TRUE,
		    email_verification_token_hash = NULL,
		    email_verification_expires_at = NULL,
		    updated_at = $1
		WHERE id = $2 AND email_verification_token_hash = $3`,
		now, userID, hash,
	)
	if err != nil {
		return false, oops.With("operation", "mark email verified").With("user_id", userID).Wrap(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *usersRepo) SetForgotPasswordToken(ctx context.Context, userID, hash string, expiresAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET forgot_password_token_hash = $1, forgot_password_expires_at = $2 WHERE id = $3`,
		hash, expiresAt, userID,
	)
	if err != nil {
		return oops.With("operation", "set forgot password token").With("user_id", userID).Wrap(err)
	}
	return requireOne(tag)
}

func (r *usersRepo) GetUserByForgotPasswordToken(ctx context.Context, hash string, now time.Time) (domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE forgot_password_token_hash = $1 AND forgot_password_expires_at > $2`,
		hash, now,
	))
}

func (r *usersRepo) ResetPassword(ctx context.Context, userID, hash, passwordHash string, now time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET password_hash = $1,
		    forgot_password_token_hash = NULL,
		    forgot_password_expires_at = NULL,
		    refresh_token_hash = NULL,
		    updated_at = $2
		WHERE id = $3 AND forgot_password_token_hash = $4`,
		passwordHash, now, userID, hash,
	)
	if err != nil {
		return false, oops.With("operation", "reset password").With("user_id", userID).Wrap(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, passwordHash string, now time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		passwordHash, now, userID,
	)
	if err != nil {
		return oops.With("operation", "update password").With("user_id", userID).Wrap(err)
	}
	return requireOne(tag)
}

func (r *usersRepo) ClearExpiredTemporaryTokens(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email_verification_token_hash = CASE WHEN email_verification_expires_at <= $1 THEN NULL ELSE email_verification_token_hash END,
		    email_verification_expires_at = CASE WHEN email_verification_expires_at <= $1 THEN NULL ELSE email_verification_expires_at END,
		    forgot_password_token_hash    = CASE WHEN forgot_password_expires_at <= $1 THEN NULL ELSE forgot_password_token_hash END,
		    forgot_password_expires_at    = CASE WHEN forgot_password_expires_at <= $1 THEN NULL ELSE forgot_password_expires_at END
		WHERE email_verification_expires_at <= $1 OR forgot_password_expires_at <= $1`,
		now,
	)
	if err != nil {
		return 0, oops.With("operation", "clear expired tokens").Wrap(err)
	}
	return tag.RowsAffected(), nil
}
