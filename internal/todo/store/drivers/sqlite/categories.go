package sqlite

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/samber/oops"
)

const categoryColumns = `id, user_id, name, created_at, updated_at`

type categoriesRepo struct {
	db dbtx
}

func scanCategory(row scanner) (domain.Category, error) {
	var (
		c                domain.Category
		created, updated sqlTime
	)
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &created, &updated); err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	c.CreatedAt = created.Time
	c.UpdatedAt = updated.Time
	return c, nil
}

func (r *categoriesRepo) CreateCategory(ctx context.Context, c domain.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, user_id, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Name, timeArg(c.CreatedAt), timeArg(c.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *categoriesRepo) GetCategory(ctx context.Context, userID, id string) (domain.Category, error) {
	return scanCategory(r.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ? AND user_id = ?`,
		id, userID,
	))
}

func (r *categoriesRepo) ListCategories(ctx context.Context, userID string, f domain.CategoryFilter) ([]domain.Category, int, error) {
	p := f.ListParams.Normalize()

	where := []string{"user_id = ?"}
	args := []any{userID}
	if term := strings.TrimSpace(p.Search); term != "" {
		cond, arg := containsFold("name", term)
		where = append(where, cond)
		args = append(args, arg)
	}
	clause := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE `+clause, args...).Scan(&total); err != nil {
		return nil, 0, oops.With("operation", "count categories").Wrap(err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE `+clause+
			` ORDER BY `+store.CategoryOrderBy(p)+` LIMIT ? OFFSET ?`,
		append(args, p.Limit, p.Offset())...,
	)
	if err != nil {
		return nil, 0, oops.With("operation", "list categories").Wrap(err)
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
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		c.Name, timeArg(c.UpdatedAt), c.ID, c.UserID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireOne(res)
}

func (r *categoriesRepo) DeleteCategory(ctx context.Context, userID, id string) (domain.Category, error) {
	c, err := r.GetCategory(ctx, userID, id)
	if err != nil {
		return domain.Category{}, err
	}
	// ON DELETE SET NULL on todos.category_id detaches the todos.
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return domain.Category{}, err
	}
	if err := requireOne(res); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}
