package postgres

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/jackc/pgx/v5"
)

var errNestedTx = errors.New("postgres: nested transactions are not supported")

type txStore struct {
	ctx context.Context
	tx  pgx.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit(t.ctx) }
func (t *txStore) Rollback() error { return t.tx.Rollback(t.ctx) }

func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errNestedTx
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errNestedTx
}

func (t *txStore) Users() store.Users           { return &usersRepo{pool: t.tx} }
func (t *txStore) Categories() store.Categories { return &categoriesRepo{pool: t.tx} }
func (t *txStore) Todos() store.Todos           { return &todosRepo{pool: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil }
