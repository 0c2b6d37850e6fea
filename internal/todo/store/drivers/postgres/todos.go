package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"
)

const todoColumns = `id, user_id, title, description, due_date, priority, category_id,
	is_completed, created_at, updated_at`

type todosRepo struct {
	pool poolIface
}

func scanTodo(row pgx.Row) (domain.Todo, error) {
	var (
		t        domain.Todo
		priority string
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate, &priority, &t.CategoryID,
		&t.IsCompleted, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Todo{}, mapErr(err)
	}
	t.Priority = domain.Priority(priority)
	return t, nil
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) error {
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO todos (`+todoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.UserID, t.Title, t.Description, t.DueDate, string(t.Priority), t.CategoryID,
		t.IsCompleted, t.CreatedAt, t.UpdatedAt,
	)
	return mapErr(err)
}

func (r *todosRepo) GetTodo(ctx context.Context, userID, id string) (domain.Todo, error) {
	return scanTodo(r.pool.QueryRow(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
}

func (r *todosRepo) ListTodos(ctx context.Context, userID string, f domain.TodoFilter) ([]domain.Todo, int, error) {
	p := f.ListParams.Normalize()

	var a args
	where := []string{"user_id = " + a.add(userID)}
	if f.Completed != nil {
		where = append(where, "is_completed = "+a.add(*f.Completed))
	}
	if f.Priority != nil {
		where = append(where, "priority = "+a.add(string(*f.Priority)))
	}
	if f.CategoryID != nil {
		where = append(where, "category_id = "+a.add(*f.CategoryID))
	}
	if term := strings.TrimSpace(p.Search); term != "" {
		where = append(where, `title ILIKE `+a.add(store.ContainsPattern(term))+` ESCAPE '\'`)
	}
	clause := strings.Join(where, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM todos WHERE `+clause, a...).Scan(&total); err != nil {
		return nil, 0, oops.With("operation", "count todos").With("user_id", userID).Wrap(err)
	}

	query := `SELECT ` + todoColumns + ` FROM todos WHERE ` + clause +
		` ORDER BY ` + store.TodoOrderBy(p) +
		` LIMIT ` + a.add(p.Limit) + ` OFFSET ` + a.add(p.Offset())

	rows, err := r.pool.Query(ctx, query, a...)
	if err != nil {
		return nil, 0, oops.With("operation", "list todos").With("user_id", userID).Wrap(err)
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
	tag, err := r.pool.Exec(ctx, `
		UPDATE todos
		SET title = $1, description = $2, due_date = $3, priority = $4, category_id = $5,
		    is_completed = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9`,
		t.Title, t.Description, t.DueDate, string(t.Priority), t.CategoryID,
		t.IsCompleted, t.UpdatedAt, t.ID, t.UserID,
	)
	if err != nil {
		return oops.With("operation", "update todo").With("todo_id", t.ID).Wrap(err)
	}
	return requireOne(tag)
}

func (r *todosRepo) ToggleTodo(ctx context.Context, userID, id string, now time.Time) (domain.Todo, error) {
	return scanTodo(r.pool.QueryRow(ctx, `
		UPDATE todos
		SET is_completed = NOT is_completed, updated_at = $1
		WHERE id = $2 AND user_id = $3
		RETURNING `+todoColumns,
		now, id, userID,
	))
}

func (r *todosRepo) DeleteTodo(ctx context.Context, userID, id string) (domain.Todo, error) {
	return scanTodo(r.pool.QueryRow(ctx,
		`DELETE FROM todos WHERE id = $1 AND user_id = $2 RETURNING `+todoColumns,
		id, userID,
	))
}
