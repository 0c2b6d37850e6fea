package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Repositories hang off the store so a Tx can hand out the
// same repositories bound to the transaction, and so nobody nests one
// transaction inside another by accident.
type Store interface {
	Users() Users
	Categories() Categories
	Todos() Todos

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction. It commits when fn returns nil
	// and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Migrator is implemented by drivers that can step migrations for the CLI.
type Migrator interface {
	ApplyMigrations() error
	RollbackMigration() error
	MigrationVersion() (version uint, dirty bool, err error)
}

type Users interface {
	// CreateUser inserts a new user. Duplicate email or username yields
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ExistsByEmailOrUsername reports whether either value is taken.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// SetRefreshTokenHash overwrites the single refresh token slot. A nil
	// hash clears it (logout).
	SetRefreshTokenHash(ctx context.Context, userID string, hash *string) error

	// RotateRefreshTokenHash replaces presented with next only if presented
	// is still the stored value. It reports whether the swap happened.
	RotateRefreshTokenHash(ctx context.Context, userID, presented, next string) (bool, error)

	// SetEmailVerificationToken overwrites any previous verification token.
	SetEmailVerificationToken(ctx context.Context, userID, hash string, expiresAt time.Time) error

	// GetUserByEmailVerificationToken finds the owner of an unexpired token.
	GetUserByEmailVerificationToken(ctx context.Context, hash string, now time.Time) (domain.User, error)

	// MarkEmailVerified sets the flag and clears the token, provided the
	// token is still hash. It reports whether the token was consumed.
	MarkEmailVerified(ctx context.Context, userID, hash string, now time.Time) (bool, error)

	// SetForgotPasswordToken overwrites any previous reset token.
	SetForgotPasswordToken(ctx context.Context, userID, hash string, expiresAt time.Time) error

	// GetUserByForgotPasswordToken finds the owner of an unexpired token.
	GetUserByForgotPasswordToken(ctx context.Context, hash string, now time.Time) (domain.User, error)

	// ResetPassword stores passwordHash and clears the reset token and the
	// refresh token, provided the reset token is still hash. It reports
	// whether the token was consumed.
	ResetPassword(ctx context.Context, userID, hash, passwordHash string, now time.Time) (bool, error)

	UpdatePasswordHash(ctx context.Context, userID, passwordHash string, now time.Time) error

	// ClearExpiredTemporaryTokens wipes verification and reset tokens whose
	// expiry has passed and returns how many users were touched.
	ClearExpiredTemporaryTokens(ctx context.Context, now time.Time) (int64, error)
}

// Categories are always scoped to their owner. A category owned by another
// user is reported as ErrNotFound.
type Categories interface {
	// CreateCategory yields ErrAlreadyExists when the owner already has a
	// category with the same name.
	CreateCategory(ctx context.Context, c domain.Category) error
	GetCategory(ctx context.Context, userID, id string) (domain.Category, error)
	ListCategories(ctx context.Context, userID string, f domain.CategoryFilter) ([]domain.Category, int, error)
	UpdateCategory(ctx context.Context, c domain.Category) error

	// DeleteCategory detaches the owner's todos from the category and
	// returns the deleted row.
	DeleteCategory(ctx context.Context, userID, id string) (domain.Category, error)
}

// Todos are always scoped to their owner, like Categories.
type Todos interface {
	CreateTodo(ctx context.Context, t domain.Todo) error
	GetTodo(ctx context.Context, userID, id string) (domain.Todo, error)
	ListTodos(ctx context.Context, userID string, f domain.TodoFilter) ([]domain.Todo, int, error)
	UpdateTodo(ctx context.Context, t domain.Todo) error

	// ToggleTodo flips the completion flag in a single statement.
	ToggleTodo(ctx context.Context, userID, id string, now time.Time) (domain.Todo, error)

	DeleteTodo(ctx context.Context, userID, id string) (domain.Todo, error)
}
