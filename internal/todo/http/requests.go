package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/google/uuid"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email,max=256" example:"alice@example.com"`
	Username string `json:"username" validate:"required,min=3,max=30,username" example:"alice"`
	Password string `json:"password" validate:"required,min=8,max=72,maxbytes=72,password" example:"Passw0rd!"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Passw0rd!"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`
}

type resetPasswordRequest struct {
	Token       string `json:"token,omitempty"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72,maxbytes=72,password" example:"N3wPassword"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required" example:"Passw0rd!"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72,maxbytes=72,password" example:"N3wPassword"`
}

type createTodoRequest struct {
	Title       string  `json:"title" validate:"required,max=255" example:"Buy milk"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	DueDate     *string `json:"dueDate,omitempty" example:"2025-06-01"`
	Priority    string  `json:"priority,omitempty" validate:"omitempty,oneof=low medium high" example:"high"`
	CategoryID  *string `json:"categoryId,omitempty" validate:"omitempty,uuid"`
}

// updateTodoRequest is a partial update. A field sent as null is cleared.
type updateTodoRequest struct {
	Title       httpx.Nullable[string] `json:"title" swaggertype:"string"`
	Description httpx.Nullable[string] `json:"description" swaggertype:"string"`
	DueDate     httpx.Nullable[string] `json:"dueDate" swaggertype:"string"`
	Priority    httpx.Nullable[string] `json:"priority" swaggertype:"string" enums:"low,medium,high"`
	CategoryID  httpx.Nullable[string] `json:"categoryId" swaggertype:"string"`
}

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=256" example:"Work"`
}

// decodeAndValidate decodes the body into dst and runs its struct tags.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := httpx.DecodeJSON(r, dst); err != nil {
		return err
	}
	return httpx.Validate(dst)
}

const dateOnly = "2006-01-02"

// parseDueDate accepts an RFC 3339 timestamp or a bare date.
func parseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, httpx.BadRequest("dueDate must be an RFC 3339 timestamp or a YYYY-MM-DD date",
		httpx.FieldError{Field: "dueDate", Message: "dueDate must be an RFC 3339 timestamp or a YYYY-MM-DD date"})
}

func fieldError(fe *httpx.FieldError) error {
	return httpx.BadRequest(fe.Message, *fe)
}

func (req createTodoRequest) toInput() (service.CreateTodoInput, error) {
	in := service.CreateTodoInput{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Priority:    domain.Priority(req.Priority),
		CategoryID:  req.CategoryID,
	}
	if in.Title == "" {
		return in, httpx.BadRequest("title is required", httpx.FieldError{Field: "title", Message: "title is required"})
	}
	if req.DueDate != nil {
		due, err := parseDueDate(*req.DueDate)
		if err != nil {
			return in, err
		}
		in.DueDate = &due
	}
	return in, nil
}

func (req updateTodoRequest) toPatch() (domain.TodoPatch, error) {
	var p domain.TodoPatch

	if req.Title.Set {
		if req.Title.Null {
			return p, httpx.BadRequest("title cannot be null", httpx.FieldError{Field: "title", Message: "title cannot be null"})
		}
		title := strings.TrimSpace(req.Title.Value)
		if fe := httpx.ValidateField("title", title, "required,max=255"); fe != nil {
			return p, fieldError(fe)
		}
		p.Title = domain.SetTo(title)
	}

	if req.Description.Set {
		if req.Description.Null {
			p.Description = domain.Clear[string]()
		} else {
			if fe := httpx.ValidateField("description", req.Description.Value, "max=1000"); fe != nil {
				return p, fieldError(fe)
			}
			p.Description = domain.SetTo(req.Description.Value)
		}
	}

	if req.DueDate.Set {
		if req.DueDate.Null {
			p.DueDate = domain.Clear[time.Time]()
		} else {
			due, err := parseDueDate(req.DueDate.Value)
			if err != nil {
				return p, err
			}
			p.DueDate = domain.SetTo(due)
		}
	}

	if req.Priority.Set {
		if req.Priority.Null {
			return p, httpx.BadRequest("priority cannot be null", httpx.FieldError{Field: "priority", Message: "priority cannot be null"})
		}
		if fe := httpx.ValidateField("priority", req.Priority.Value, "oneof=low medium high"); fe != nil {
			return p, fieldError(fe)
		}
		p.Priority = domain.SetTo(domain.Priority(req.Priority.Value))
	}

	if req.CategoryID.Set {
		if req.CategoryID.Null {
			p.CategoryID = domain.Clear[string]()
		} else {
			if fe := httpx.ValidateField("categoryId", req.CategoryID.Value, "uuid"); fe != nil {
				return p, fieldError(fe)
			}
			p.CategoryID = domain.SetTo(req.CategoryID.Value)
		}
	}

	return p, nil
}

// pathID reads a UUID path parameter. Anything else is a 400 with message.
func pathID(r *http.Request, message string) (string, error) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", httpx.BadRequest(message)
	}
	return id, nil
}

func queryError(field, message string) error {
	return httpx.BadRequest(message, httpx.FieldError{Field: field, Message: message})
}

// parseListParams reads page, limit, search, sortBy and sortOrder.
func parseListParams(q url.Values, sortable ...string) (domain.ListParams, error) {
	p := domain.ListParams{Page: domain.DefaultPage, Limit: domain.DefaultLimit}

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, queryError("page", "page must be a positive integer")
		}
		p.Page = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > domain.MaxLimit {
			return p, queryError("limit", fmt.Sprintf("limit must be an integer between 1 and %d", domain.MaxLimit))
		}
		p.Limit = n
	}

	p.Search = strings.TrimSpace(q.Get("search"))
	if len(p.Search) > domain.MaxSearchLen {
		return p, queryError("search", fmt.Sprintf("search must be at most %d characters", domain.MaxSearchLen))
	}

	if v := q.Get("sortBy"); v != "" {
		ok := false
		for _, s := range sortable {
			if v == s {
				ok = true
				break
			}
		}
		if !ok {
			return p, queryError("sortBy", "sortBy must be one of: "+strings.Join(sortable, ", "))
		}
		p.SortBy = v
	}

	switch v := domain.SortOrder(q.Get("sortOrder")); v {
	case "":
	case domain.SortAsc, domain.SortDesc:
		p.SortOrder = v
	default:
		return p, queryError("sortOrder", "sortOrder must be one of: asc, desc")
	}

	return p.Normalize(), nil
}

func parseTodoFilter(q url.Values) (domain.TodoFilter, error) {
	params, err := parseListParams(q, domain.SortByCreatedAt, domain.SortByDueDate, domain.SortByPriority)
	if err != nil {
		return domain.TodoFilter{}, err
	}
	f := domain.TodoFilter{ListParams: params}

	switch v := q.Get("completed"); v {
	case "":
	case "true", "false":
		done := v == "true"
		f.Completed = &done
	default:
		return f, queryError("completed", "completed must be one of: true, false")
	}

	if v := q.Get("priority"); v != "" {
		prio := domain.Priority(v)
		if !prio.Valid() {
			return f, queryError("priority", "priority must be one of: low, medium, high")
		}
		f.Priority = &prio
	}

	if v := q.Get("categoryId"); v != "" {
		if _, err := uuid.Parse(v); err != nil {
			return f, queryError("categoryId", "categoryId must be a valid UUID")
		}
		f.CategoryID = &v
	}

	return f, nil
}

func parseCategoryFilter(q url.Values) (domain.CategoryFilter, error) {
	params, err := parseListParams(q, domain.SortByCreatedAt, domain.SortByName)
	if err != nil {
		return domain.CategoryFilter{}, err
	}
	return domain.CategoryFilter{ListParams: params}, nil
}
