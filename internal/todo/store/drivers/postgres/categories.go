package postgres

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"
)

const categoryColumns = `id, user_id, name, created_at, updated_at`

type categoriesRepo struct {
	pool poolIface
}

func scanCategory(row pgx.Row) (domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Category{}, mapErr(err)
	}
	return c, nil
}

func (r *categoriesRepo) CreateCategory(ctx context.Context, c domain.Category) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO categories (`+categoryColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.UserID, c.Name, c.CreatedAt, c.UpdatedAt,
	)
	return mapErr(err)
}

func (r *categoriesRepo) GetCategory(ctx context.Context, userID, id string) (domain.Category, error) {
	return scanCategory(r.pool.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
}

func (r *categoriesRepo) ListCategories(ctx context.Context, userID string, f domain.CategoryFilter) ([]domain.Category, int, error) {
	p := f.ListParams.Normalize()

	var a args
	where := []string{"user_id = " + a.add(userID)}
	if term := strings.TrimSpace(p.Search); term != "" {
		where = append(where, `name ILIKE `+a.add(store.ContainsPattern(term))+` ESCAPE '\'`)
	}
	clause := strings.Join(where, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE `+clause, a...).Scan(&total); err != nil {
		return nil, 0, oops.With("operation", "count categories").With("user_id", userID).Wrap(err)
	}

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE ` + clause +
		` ORDER BY ` + store.CategoryOrderBy(p) +
		` LIMIT ` + a.add(p.Limit) + ` OFFSET ` + a.add(p.Offset())

	rows, err := r.pool.Query(ctx, query, a...)
	if err != nil {
		return nil, 0, oops.With("operation", "list categories").With("user_id", userID).Wrap(err)
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, oops.With("operation", "scan category row").Wrap(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, oops.With("operation", "iterate categories").Wrap(err)
	}
	return out, total, nil
}

func (r *categoriesRepo) UpdateCategory(ctx context.Context, c domain.Category) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE categories SET name = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`,
		c.Name, c.UpdatedAt, c.ID, c.UserID,
	)
	if err != nil {
		return mapErr(err)
	}
	return requireOne(tag)
}

func (r *categoriesRepo) DeleteCategory(ctx context.Context, userID, id string) (domain.Category, error) {
	// ON DELETE SET NULL on todos.category_id detaches the todos.
	return scanCategory(r.pool.QueryRow(ctx,
		`DELETE FROM categories WHERE id = $1 AND user_id = $2 RETURNING `+categoryColumns,
		id, userID,
	))
}
