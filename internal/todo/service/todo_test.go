package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/stretchr/testify/require"
)

func TestTodoLifecycle(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	alice := e.register(t, "alice@example.com", "alice")

	td, err := e.todos.Create(ctx, alice, CreateTodoInput{Title: "  Buy milk ", Priority: domain.PriorityHigh})
	require.NoError(t, err)
	require.Equal(t, "Buy milk", td.Title)
	require.False(t, td.IsCompleted)
	require.Equal(t, domain.PriorityHigh, td.Priority)

	t.Run("priority defaults to medium", func(t *testing.T) {
		other, err := e.todos.Create(ctx, alice, CreateTodoInput{Title: "Walk dog"})
		require.NoError(t, err)
		require.Equal(t, domain.PriorityMedium, other.Priority)
	})

	t.Run("toggle flips each call", func(t *testing.T) {
		got, err := e.todos.Toggle(ctx, alice, td.ID)
		require.NoError(t, err)
		require.True(t, got.IsCompleted)

		got, err = e.todos.Toggle(ctx, alice, td.ID)
		require.NoError(t, err)
		require.False(t, got.IsCompleted)
	})

	t.Run("partial update", func(t *testing.T) {
		_, err := e.todos.Update(ctx, alice, td.ID, domain.TodoPatch{})
		require.ErrorIs(t, err, ErrNoFieldsToUpdate)

		due := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)
		e.clock.Advance(time.Minute)
		got, err := e.todos.Update(ctx, alice, td.ID, domain.TodoPatch{
			Description: domain.SetTo("two litres"),
			DueDate:     domain.SetTo(due),
		})
		require.NoError(t, err)
		require.Equal(t, "Buy milk", got.Title)
		require.Equal(t, "two litres", *got.Description)
		require.True(t, got.DueDate.Equal(due))
		require.True(t, got.UpdatedAt.After(got.CreatedAt))

		got, err = e.todos.Update(ctx, alice, td.ID, domain.TodoPatch{DueDate: domain.Clear[time.Time]()})
		require.NoError(t, err)
		require.Nil(t, got.DueDate)
		require.NotNil(t, got.Description)

		stored, err := e.todos.Get(ctx, alice, td.ID)
		require.NoError(t, err)
		require.Nil(t, stored.DueDate)
	})

	t.Run("delete returns the row", func(t *testing.T) {
		deleted, err := e.todos.Delete(ctx, alice, td.ID)
		require.NoError(t, err)
		require.Equal(t, td.ID, deleted.ID)

		_, err = e.todos.Get(ctx, alice, td.ID)
		require.ErrorIs(t, err, ErrTodoNotFound)
		_, err = e.todos.Toggle(ctx, alice, td.ID)
		require.ErrorIs(t, err, ErrTodoNotFound)
	})
}

func TestTodoOwnership(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	alice := e.register(t, "alice@example.com", "alice")
	bob := e.register(t, "bob@example.com", "bob")

	bobsCat, err := e.categories.Create(ctx, bob, "Bob stuff")
	require.NoError(t, err)

	t.Run("foreign category is not found", func(t *testing.T) {
		_, err := e.todos.Create(ctx, alice, CreateTodoInput{Title: "x", CategoryID: &bobsCat.ID})
		require.ErrorIs(t, err, ErrCategoryNotFound)

		page, err := e.todos.List(ctx, alice, domain.TodoFilter{})
		require.NoError(t, err)
		require.Empty(t, page.Data)
	})

	td, err := e.todos.Create(ctx, alice, CreateTodoInput{Title: "private"})
	require.NoError(t, err)

	t.Run("foreign todo is not found", func(t *testing.T) {
		_, err := e.todos.Get(ctx, bob, td.ID)
		require.ErrorIs(t, err, ErrTodoNotFound)
		_, err = e.todos.Update(ctx, bob, td.ID, domain.TodoPatch{Title: domain.SetTo("mine")})
		require.ErrorIs(t, err, ErrTodoNotFound)
		_, err = e.todos.Delete(ctx, bob, td.ID)
		require.ErrorIs(t, err, ErrTodoNotFound)
	})

	t.Run("moving to a foreign category is refused", func(t *testing.T) {
		_, err := e.todos.Update(ctx, alice, td.ID, domain.TodoPatch{
			Title:      domain.SetTo("renamed"),
			CategoryID: domain.SetTo(bobsCat.ID),
		})
		require.ErrorIs(t, err, ErrCategoryNotFound)

		got, err := e.todos.Get(ctx, alice, td.ID)
		require.NoError(t, err)
		require.Equal(t, "private", got.Title)
		require.Nil(t, got.CategoryID)
	})
}

func TestTodoListPaging(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	alice := e.register(t, "alice@example.com", "alice")

	for i := 1; i <= 25; i++ {
		e.clock.Advance(time.Second)
		_, err := e.todos.Create(ctx, alice, CreateTodoInput{Title: fmt.Sprintf("task %02d", i)})
		require.NoError(t, err)
	}

	page, err := e.todos.List(ctx, alice, domain.TodoFilter{
		ListParams: domain.ListParams{Page: 2, Limit: 10, SortBy: domain.SortByCreatedAt, SortOrder: domain.SortAsc},
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 10)
	require.Equal(t, "task 11", page.Data[0].Title)
	require.Equal(t, "task 20", page.Data[9].Title)
	require.Equal(t, domain.PageMeta{
		Page: 2, Limit: 10, Total: 25, TotalPages: 3, HasNextPage: true, HasPreviousPage: true,
	}, page.Meta)

	page, err = e.todos.List(ctx, alice, domain.TodoFilter{ListParams: domain.ListParams{Page: 3, Limit: 10}})
	require.NoError(t, err)
	require.Len(t, page.Data, 5)
	require.False(t, page.Meta.HasNextPage)
	require.Equal(t, "task 05", page.Data[0].Title)

	page, err = e.todos.List(ctx, alice, domain.TodoFilter{ListParams: domain.ListParams{Search: "nothing"}})
	require.NoError(t, err)
	require.NotNil(t, page.Data)
	require.Empty(t, page.Data)
	require.Equal(t, 0, page.Meta.TotalPages)
}
