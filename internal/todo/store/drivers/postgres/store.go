package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
)

// poolIface is the query surface shared by *pgxpool.Pool, pgx.Tx and
// pgxmock, so repositories run unchanged inside and outside a transaction.
type poolIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// rootPool is what the Store itself needs on top of poolIface.
type rootPool interface {
	poolIface
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

type Store struct {
	pool rootPool
	dsn  string
}

// NewStore connects a pool to dsn. The dsn must be a postgres:// URL so the
// migrator can reuse it.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, oops.Code("DB_CONNECT_FAILED").Wrap(err)
	}
	return &Store{pool: pool, dsn: dsn}, nil
}

func newStoreWithPool(pool rootPool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, oops.With("operation", "begin tx").Wrap(err)
	}
	return &txStore{ctx: ctx, tx: tx}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users           { return &usersRepo{pool: s.pool} }
func (s *Store) Categories() store.Categories { return &categoriesRepo{pool: s.pool} }
func (s *Store) Todos() store.Todos           { return &todosRepo{pool: s.pool} }

// mapErr translates driver errors into store sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return store.ErrAlreadyExists
		case pgerrcode.InvalidTextRepresentation:
			// A malformed UUID cannot name an existing row.
			return store.ErrNotFound
		}
	}
	return err
}

// requireOne maps an update that matched nothing to ErrNotFound.
func requireOne(tag pgconn.CommandTag) error {
	if tag.RowsAffected() != 1 {
		return store.ErrNotFound
	}
	return nil
}

// args accumulates positional parameters and hands out their placeholders.
type args []any

func (a *args) add(v any) string {
	*a = append(*a, v)
	return fmt.Sprintf("$%d", len(*a))
}
