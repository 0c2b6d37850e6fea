package http

import (
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
)

const invalidTodoID = "Invalid todo ID"

// TodosHandler serves /api/v1/todos. Every route runs behind SessionVerifier.
type TodosHandler struct {
	Todos *service.TodoService
}

// HandleList returns one page of the caller's todos.
//
//	@Summary	List todos
//	@Tags		Todos
//	@Security	BearerAuth
//	@Produce	json
//	@Param		page		query		int		false	"Page number"	minimum(1)	default(1)
//	@Param		limit		query		int		false	"Page size"		minimum(1)	maximum(100)	default(10)
//	@Param		search		query		string	false	"Case-insensitive title search"
//	@Param		completed	query		bool	false	"Completion filter"
//	@Param		priority	query		string	false	"Priority filter"	Enums(low, medium, high)
//	@Param		categoryId	query		string	false	"Category filter"	format(uuid)
//	@Param		sortBy		query		string	false	"Sort column"		Enums(createdAt, dueDate, priority)
//	@Param		sortOrder	query		string	false	"Sort direction"	Enums(asc, desc)
//	@Success	200			{object}	httpx.Envelope{data=domain.Page[domain.Todo]}	"Todos fetched successfully"
//	@Failure	400			{object}	httpx.Envelope									"Invalid query parameter"
//	@Router		/api/v1/todos [get]
func (h *TodosHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	f, err := parseTodoFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.Todos.List(r.Context(), id.UserID, f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Todos fetched successfully", page)
}

// HandleCreate adds a todo.
//
//	@Summary	Create a todo
//	@Tags		Todos
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		createTodoRequest						true	"New todo"
//	@Success	201		{object}	httpx.Envelope{data=domain.Todo}	"Todo created successfully"
//	@Failure	400		{object}	httpx.Envelope						"Validation failed"
//	@Failure	404		{object}	httpx.Envelope						"Category not found"
//	@Router		/api/v1/todos [post]
func (h *TodosHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req createTodoRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, r, err)
		return
	}

	t, err := h.Todos.Create(r.Context(), id.UserID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, "Todo created successfully", t)
}

// HandleGet returns a single todo.
//
//	@Summary	Get a todo
//	@Tags		Todos
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string								true	"Todo ID"	format(uuid)
//	@Success	200	{object}	httpx.Envelope{data=domain.Todo}	"Todo fetched successfully"
//	@Failure	400	{object}	httpx.Envelope						"Invalid todo ID"
//	@Failure	404	{object}	httpx.Envelope						"Todo not found"
//	@Router		/api/v1/todos/{id} [get]
func (h *TodosHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	todoID, err := pathID(r, invalidTodoID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	t, err := h.Todos.Get(r.Context(), id.UserID, todoID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Todo fetched successfully", t)
}

// HandleUpdate applies a partial update.
//
//	@Summary		Update a todo
//	@Description	Only the fields present in the body change. null clears description, dueDate or categoryId.
//	@Tags			Todos
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Todo ID"	format(uuid)
//	@Param			body	body		updateTodoRequest					true	"Fields to change"
//	@Success		200		{object}	httpx.Envelope{data=domain.Todo}	"Todo updated successfully"
//	@Failure		400		{object}	httpx.Envelope						"No fields to update"
//	@Failure		404		{object}	httpx.Envelope						"Todo not found"
//	@Router			/api/v1/todos/{id} [put]
func (h *TodosHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	todoID, err := pathID(r, invalidTodoID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateTodoRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		writeError(w, r, err)
		return
	}

	t, err := h.Todos.Update(r.Context(), id.UserID, todoID, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Todo updated successfully", t)
}

// HandleToggle flips the completion flag.
//
//	@Summary	Toggle completion
//	@Tags		Todos
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string								true	"Todo ID"	format(uuid)
//	@Success	200	{object}	httpx.Envelope{data=domain.Todo}	"Todo marked as completed"
//	@Failure	404	{object}	httpx.Envelope						"Todo not found"
//	@Router		/api/v1/todos/{id}/toggle [patch]
func (h *TodosHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	todoID, err := pathID(r, invalidTodoID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	t, err := h.Todos.Toggle(r.Context(), id.UserID, todoID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	msg := "Todo marked as incomplete"
	if t.IsCompleted {
		msg = "Todo marked as completed"
	}
	httpx.Respond(w, http.StatusOK, msg, t)
}

// HandleDelete removes a todo and returns it.
//
//	@Summary	Delete a todo
//	@Tags		Todos
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string								true	"Todo ID"	format(uuid)
//	@Success	200	{object}	httpx.Envelope{data=domain.Todo}	"Todo deleted successfully"
//	@Failure	404	{object}	httpx.Envelope						"Todo not found"
//	@Router		/api/v1/todos/{id} [delete]
func (h *TodosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	todoID, err := pathID(r, invalidTodoID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	t, err := h.Todos.Delete(r.Context(), id.UserID, todoID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Todo deleted successfully", t)
}
