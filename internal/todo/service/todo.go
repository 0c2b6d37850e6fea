package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/google/uuid"
	"github.com/samber/oops"
)

// TodoService is ownership-scoped CRUD over todos. A todo or category that
// belongs to someone else is reported as not found.
type TodoService struct {
	Store store.Store
	Clock Clock
}

type CreateTodoInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    domain.Priority
	CategoryID  *string
}

// checkCategory confirms the category exists and belongs to userID.
func checkCategory(ctx context.Context, s store.Store, userID, categoryID string) error {
	if _, err := s.Categories().GetCategory(ctx, userID, categoryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return oops.With("operation", "check category").With("category_id", categoryID).Wrap(err)
	}
	return nil
}

// Create inserts a todo. The category check and the insert share a
// transaction so the category cannot vanish in between.
func (s *TodoService) Create(ctx context.Context, userID string, in CreateTodoInput) (domain.Todo, error) {
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := s.Clock.now()
	t := domain.Todo{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    priority,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if in.CategoryID != nil {
			if err := checkCategory(ctx, tx, userID, *in.CategoryID); err != nil {
				return err
			}
		}
		if err := tx.Todos().CreateTodo(ctx, t); err != nil {
			return oops.Code("TODO_CREATE_FAILED").With("user_id", userID).Wrap(err)
		}
		return nil
	})
	if err != nil {
		return domain.Todo{}, err
	}
	return t, nil
}

func (s *TodoService) Get(ctx context.Context, userID, id string) (domain.Todo, error) {
	t, err := s.Store.Todos().GetTodo(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Todo{}, ErrTodoNotFound
		}
		return domain.Todo{}, oops.With("operation", "get todo").With("todo_id", id).Wrap(err)
	}
	return t, nil
}

func (s *TodoService) List(ctx context.Context, userID string, f domain.TodoFilter) (domain.Page[domain.Todo], error) {
	f.ListParams = f.ListParams.Normalize()
	items, total, err := s.Store.Todos().ListTodos(ctx, userID, f)
	if err != nil {
		return domain.Page[domain.Todo]{}, oops.Code("TODO_LIST_FAILED").With("user_id", userID).Wrap(err)
	}
	return domain.NewPage(items, f.ListParams, total), nil
}

// Update applies a partial update. An empty patch is rejected. The read,
// the category check and the write run in one transaction.
func (s *TodoService) Update(ctx context.Context, userID, id string, patch domain.TodoPatch) (domain.Todo, error) {
	if patch.Empty() {
		return domain.Todo{}, ErrNoFieldsToUpdate
	}
	if patch.Title.Set && patch.Title.Value != nil {
		trimmed := strings.TrimSpace(*patch.Title.Value)
		patch.Title.Value = &trimmed
	}

	var t domain.Todo
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		t, err = tx.Todos().GetTodo(ctx, userID, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTodoNotFound
			}
			return oops.With("operation", "get todo").With("todo_id", id).Wrap(err)
		}

		if patch.CategoryID.Set && patch.CategoryID.Value != nil {
			if err := checkCategory(ctx, tx, userID, *patch.CategoryID.Value); err != nil {
				return err
			}
		}

		patch.Apply(&t)
		t.UpdatedAt = s.Clock.now()

		if err := tx.Todos().UpdateTodo(ctx, t); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTodoNotFound
			}
			return oops.Code("TODO_UPDATE_FAILED").With("todo_id", id).Wrap(err)
		}
		return nil
	})
	if err != nil {
		return domain.Todo{}, err
	}
	return t, nil
}

// Toggle flips the completion flag. Two toggles restore the original state.
func (s *TodoService) Toggle(ctx context.Context, userID, id string) (domain.Todo, error) {
	t, err := s.Store.Todos().ToggleTodo(ctx, userID, id, s.Clock.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Todo{}, ErrTodoNotFound
		}
		return domain.Todo{}, oops.Code("TODO_TOGGLE_FAILED").With("todo_id", id).Wrap(err)
	}
	return t, nil
}

// Delete removes the todo and returns it as it was.
func (s *TodoService) Delete(ctx context.Context, userID, id string) (domain.Todo, error) {
	t, err := s.Store.Todos().DeleteTodo(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Todo{}, ErrTodoNotFound
		}
		return domain.Todo{}, oops.Code("TODO_DELETE_FAILED").With("todo_id", id).Wrap(err)
	}
	return t, nil
}
