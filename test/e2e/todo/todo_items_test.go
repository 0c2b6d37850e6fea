package todo_test

import (
	"testing"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

func TestTodoLifecycle(t *testing.T) {
	client := setupTodoContainer(t)
	session := signup(t, client, "Planner")
	ctx := t.Context()

	work, err := session.CreateCategory(ctx, "Work")
	require.NoError(t, err)

	desc := "quarterly numbers"
	report, err := session.CreateTodo(ctx, todosdk.CreateTodoRequest{
		Title:       "Write report",
		Description: &desc,
		Priority:    "high",
		CategoryID:  &work.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "high", report.Priority)
	require.False(t, report.IsCompleted)

	_, err = session.CreateTodo(ctx, todosdk.CreateTodoRequest{Title: "Buy milk"})
	require.NoError(t, err)

	toggled, err := session.ToggleTodo(ctx, report.ID)
	require.NoError(t, err)
	require.True(t, toggled.IsCompleted)

	done := true
	page, err := session.ListTodos(ctx, todosdk.TodoListParams{Completed: &done})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.Equal(t, report.ID, page.Data[0].ID)

	page, err = session.ListTodos(ctx, todosdk.TodoListParams{ListParams: todosdk.ListParams{Search: "milk"}})
	require.NoError(t, err)
	require.Equal(t, 1, page.Meta.Total)

	updated, err := session.UpdateTodo(ctx, report.ID, todosdk.UpdateTodoRequest{
		Title:       todosdk.Set("Write final report"),
		Description: todosdk.Null[string](),
	})
	require.NoError(t, err)
	require.Equal(t, "Write final report", updated.Title)
	require.Nil(t, updated.Description)
	require.Equal(t, "high", updated.Priority, "unset fields are left alone")

	// Deleting the category detaches its todos.
	_, err = session.DeleteCategory(ctx, work.ID)
	require.NoError(t, err)
	got, err := session.GetTodo(ctx, report.ID)
	require.NoError(t, err)
	require.Nil(t, got.CategoryID)

	_, err = session.DeleteTodo(ctx, report.ID)
	require.NoError(t, err)
	_, err = session.GetTodo(ctx, report.ID)
	require.True(t, todosdk.IsNotFound(err), "deleted todo: got %v", err)
}

func TestTodosAreScopedToOwner(t *testing.T) {
	client := setupTodoContainer(t)
	alice := signup(t, client, "Alice")
	bob := signup(t, client, "Bob")

	secret, err := alice.CreateTodo(t.Context(), todosdk.CreateTodoRequest{Title: "Alice only"})
	require.NoError(t, err)

	_, err = bob.GetTodo(t.Context(), secret.ID)
	require.True(t, todosdk.IsNotFound(err), "other user's todo: got %v", err)

	page, err := bob.ListTodos(t.Context(), todosdk.TodoListParams{})
	require.NoError(t, err)
	require.Empty(t, page.Data)
}
