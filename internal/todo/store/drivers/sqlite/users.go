package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/samber/oops"
)

const userColumns = `id, email, username, login_type, profile_picture, password_hash,
	is_email_verified, refresh_token_hash,
	email_verification_token_hash, email_verification_expires_at,
	forgot_password_token_hash, forgot_password_expires_at,
	created_at, updated_at`

type usersRepo struct {
	db dbtx
}

func scanUser(row scanner) (domain.User, error) {
	var (
		u                       domain.User
		username, picture       sql.NullString
		refresh, evHash, fpHash sql.NullString
		loginType               string
		evExp, fpExp            sqlTime
		created, updated        sqlTime
	)
	err := row.Scan(
		&u.ID, &u.Email, &username, &loginType, &picture, &u.PasswordHash,
		&u.IsEmailVerified, &refresh,
		&evHash, &evExp,
		&fpHash, &fpExp,
		&created, &updated,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.Username = username.String
	u.LoginType = domain.LoginType(loginType)
	u.ProfilePicture = mapNullStringPtr(picture)
	u.RefreshTokenHash = mapNullStringPtr(refresh)
	u.EmailVerificationTokenHash = mapNullStringPtr(evHash)
	u.EmailVerificationExpiresAt = evExp.ptr()
	u.ForgotPasswordTokenHash = mapNullStringPtr(fpHash)
	u.ForgotPasswordExpiresAt = fpExp.ptr()
	u.CreatedAt = created.Time
	u.UpdatedAt = updated.Time
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	if u.LoginType == "" {
		u.LoginType = domain.LoginTypeEmailPassword
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email, username, login_type, profile_picture, password_hash,
			is_email_verified, refresh_token_hash,
			email_verification_token_hash, email_verification_expires_at,
			forgot_password_token_hash, forgot_password_expires_at,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, mapStringNull(u.Username), string(u.LoginType), mapOptionalString(u.ProfilePicture), u.PasswordHash,
		u.IsEmailVerified, mapOptionalString(u.RefreshTokenHash),
		mapOptionalString(u.EmailVerificationTokenHash), optionalTimeArg(u.EmailVerificationExpiresAt),
		mapOptionalString(u.ForgotPasswordTokenHash), optionalTimeArg(u.ForgotPasswordExpiresAt),
		timeArg(u.CreatedAt), timeArg(u.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *usersRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = ? OR username = ?)`,
		email, username,
	).Scan(&exists)
	if err != nil {
		return false, oops.With("operation", "user exists").Wrap(err)
	}
	return exists, nil
}

func (r *usersRepo) SetRefreshTokenHash(ctx context.Context, userID string, hash *string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET refresh_token_hash = ? WHERE id = ?`,
		mapOptionalString(hash), userID,
	)
	if err != nil {
		return err
	}
	return requireOne(res)
}

func (r *usersRepo) RotateRefreshTokenHash(ctx context.Context, userID, presented, next string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET refresh_token_hash = ? WHERE id = ? AND refresh_token_hash = ?`,
		next, userID, presented,
	)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

func (r *usersRepo) SetEmailVerificationToken(ctx context.Context, userID, hash string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET email_verification_token_hash = ?, email_verification_expires_at = ? WHERE id = ?`,
		hash, timeArg(expiresAt), userID,
	)
	if err != nil {
		return err
	}
	return requireOne(res)
}

func (r *usersRepo) GetUserByEmailVerificationToken(ctx context.Context, hash string, now time.Time) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE email_verification_token_hash = ? AND email_verification_expires_at > ?`,
		hash, timeArg(now),
	))
}

func (r *usersRepo) MarkEmailVerified(ctx context.Context, userID, hash string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET is_email_verified = 1,
		    email_verification_token_hash = NULL,
		    email_verification_expires_at = NULL,
		    updated_at = ?
		WHERE id = ? AND email_verification_token_hash = ?`,
		timeArg(now), userID, hash,
	)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

func (r *usersRepo) SetForgotPasswordToken(ctx context.Context, userID, hash string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET forgot_password_token_hash = ?, forgot_password_expires_at = ? WHERE id = ?`,
		hash, timeArg(expiresAt), userID,
	)
	if err != nil {
		return err
	}
	return requireOne(res)
}

func (r *usersRepo) GetUserByForgotPasswordToken(ctx context.Context, hash string, now time.Time) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE forgot_password_token_hash = ? AND forgot_password_expires_at > ?`,
		hash, timeArg(now),
	))
}

func (r *usersRepo) ResetPassword(ctx context.Context, userID, hash, passwordHash string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET password_hash = ?,
		    forgot_password_token_hash = NULL,
		    forgot_password_expires_at = NULL,
		    refresh_token_hash = NULL,
		    updated_at = ?
		WHERE id = ? AND forgot_password_token_hash = ?`,
		passwordHash, timeArg(now), userID, hash,
	)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, passwordHash string, now time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		passwordHash, timeArg(now), userID,
	)
	if err != nil {
		return err
	}
	return requireOne(res)
}

func (r *usersRepo) ClearExpiredTemporaryTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET email_verification_token_hash = CASE WHEN email_verification_expires_at <= ?1 THEN NULL ELSE email_verification_token_hash END,
		    email_verification_expires_at = CASE WHEN email_verification_expires_at <= ?1 THEN NULL ELSE email_verification_expires_at END,
		    forgot_password_token_hash    = CASE WHEN forgot_password_expires_at <= ?1 THEN NULL ELSE forgot_password_token_hash END,
		    forgot_password_expires_at    = CASE WHEN forgot_password_expires_at <= ?1 THEN NULL ELSE forgot_password_expires_at END
		WHERE email_verification_expires_at <= ?1 OR forgot_password_expires_at <= ?1`,
		timeArg(now),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
