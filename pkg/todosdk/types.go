package todosdk

import (
	"encoding/json"
	"time"
)

// Envelope is the body of every response from the service.
type Envelope[T any] struct {
	StatusCode int          `json:"statusCode"`
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Data       T            `json:"data"`
	Errors     []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	LoginType       string    `json:"loginType"`
	ProfilePicture  *string   `json:"profilePicture"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LoginResult struct {
	User User `json:"user"`
	TokenPair
}

type Todo struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    string     `json:"priority"`
	CategoryID  *string    `json:"categoryId"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PageMeta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// ListParams are the paging options shared by every list call. Zero values
// are left out of the query so the server defaults apply.
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

type TodoListParams struct {
	ListParams
	Completed  *bool
	Priority   string
	CategoryID string
}

type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	CategoryID  *string `json:"categoryId,omitempty"`
}

// Field is one member of a partial update: unset, null, or a value.
type Field[T any] struct {
	set   bool
	value *T
}

func Set[T any](v T) Field[T] { return Field[T]{set: true, value: &v} }

// Null clears the field on the server.
func Null[T any]() Field[T] { return Field[T]{set: true} }

// UpdateTodoRequest only sends the fields that were Set or Null.
type UpdateTodoRequest struct {
	Title       Field[string]
	Description Field[string]
	DueDate     Field[string]
	Priority    Field[string]
	CategoryID  Field[string]
}

func (r UpdateTodoRequest) MarshalJSON() ([]byte, error) {
	m := map[string]any{}
	put := func(name string, f Field[string]) {
		if !f.set {
			return
		}
		if f.value == nil {
			m[name] = nil
			return
		}
		m[name] = *f.value
	}
	put("title", r.Title)
	put("description", r.Description)
	put("dueDate", r.DueDate)
	put("priority", r.Priority)
	put("categoryId", r.CategoryID)
	return json.Marshal(m)
}
