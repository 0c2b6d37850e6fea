package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/samber/oops"
)

const todoColumns = `id, user_id, title, description, due_date, priority, category_id,
	is_completed, created_at, updated_at`

type todosRepo struct {
	db dbtx
}

func scanTodo(row scanner) (domain.Todo, error) {
	var (
		t                domain.Todo
		desc, categoryID sql.NullString
		priority         string
		due              sqlTime
		created, updated sqlTime
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &desc, &due, &priority, &categoryID,
		&t.IsCompleted, &created, &updated,
	)
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	t.Description = mapNullStringPtr(desc)
	t.DueDate = due.ptr()
	t.Priority = domain.Priority(priority)
	t.CategoryID = mapNullStringPtr(categoryID)
	t.CreatedAt = created.Time
	t.UpdatedAt = updated.Time
	return t, nil
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) error {
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO todos (`+todoColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, mapOptionalString(t.Description), optionalTimeArg(t.DueDate),
		string(t.Priority), mapOptionalString(t.CategoryID),
		t.IsCompleted, timeArg(t.CreatedAt), timeArg(t.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *todosRepo) GetTodo(ctx context.Context, userID, id string) (domain.Todo, error) {
	return scanTodo(r.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = ? AND user_id = ?`,
		id, userID,
	))
}

func (r *todosRepo) ListTodos(ctx context.Context, userID string, f domain.TodoFilter) ([]domain.Todo, int, error) {
	p := f.ListParams.Normalize()

	where := []string{"user_id = ?"}
	args := []any{userID}
	if f.Completed != nil {
		where = append(where, "is_completed = ?")
		args = append(args, *f.Completed)
	}
	if f.Priority != nil {
		where = append(where, "priority = ?")
		args = append(args, string(*f.Priority))
	}
	if f.CategoryID != nil {
		where = append(where, "category_id = ?")
		args = append(args, *f.CategoryID)
	}
	if term := strings.TrimSpace(p.Search); term != "" {
		cond, arg := containsFold("title", term)
		where = append(where, cond)
		args = append(args, arg)
	}
	clause := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos WHERE `+clause, args...).Scan(&total); err != nil {
		return nil, 0, oops.With("operation", "count todos").Wrap(err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE `+clause+
			` ORDER BY `+store.TodoOrderBy(p)+` LIMIT ? OFFSET ?`,
		append(args, p.Limit, p.Offset())...,
	)
	if err != nil {
		return nil, 0, oops.With("operation", "list todos").Wrap(err)
	}
	defer rows.Close()

	var out []domain.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, 0, oops.With("operation", "scan todo row").Wrap(err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, oops.With("operation", "iterate todos").Wrap(err)
	}
	return out, total, nil
}

func (r *todosRepo) UpdateTodo(ctx context.Context, t domain.Todo) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE todos
		SET title = ?, description = ?, due_date = ?, priority = ?, category_id = ?,
		    is_completed = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		t.Title, mapOptionalString(t.Description), optionalTimeArg(t.DueDate), string(t.Priority),
		mapOptionalString(t.CategoryID), t.IsCompleted, timeArg(t.UpdatedAt),
		t.ID, t.UserID,
	)
	if err != nil {
		return err
	}
	return requireOne(res)
}

func (r *todosRepo) ToggleTodo(ctx context.Context, userID, id string, now time.Time) (domain.Todo, error) {
	return scanTodo(r.db.QueryRowContext(ctx, `
		UPDATE todos
		SET is_completed = NOT is_completed, updated_at = ?
		WHERE id = ? AND user_id = ?
		RETURNING `+todoColumns,
		timeArg(now), id, userID,
	))
}

func (r *todosRepo) DeleteTodo(ctx context.Context, userID, id string) (domain.Todo, error) {
	return scanTodo(r.db.QueryRowContext(ctx,
		`DELETE FROM todos WHERE id = ? AND user_id = ? RETURNING `+todoColumns,
		id, userID,
	))
}
