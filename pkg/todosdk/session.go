package todosdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Session is an authenticated session. Requests that fail with "Access
// token expired" trigger one refresh and are retried once.
type Session struct {
	client *SDKClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string

	refreshes singleflight.Group
}

// AccessToken returns the current access token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// refresh rotates the token pair unless someone already replaced stale.
// Callers that arrive while a refresh is in flight wait for its result.
func (s *Session) refresh(ctx context.Context, stale string) error {
	_, err, _ := s.refreshes.Do("refresh", func() (any, error) {
		s.mu.RLock()
		current, rt := s.accessToken, s.refreshToken
		s.mu.RUnlock()

		if current != stale {
			return nil, nil
		}
		if rt == "" {
			return nil, ErrNoRefreshToken
		}

		// Shared by every waiter, so one caller's cancellation must not
		// fail the rest.
		pair, err := s.client.Refresh(context.WithoutCancel(ctx), rt)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh token: %w", err)
		}

		s.mu.Lock()
		s.accessToken = pair.AccessToken
		s.refreshToken = pair.RefreshToken
		s.mu.Unlock()
		return nil, nil
	})
	return err
}

// do sends an authenticated request, refreshing once on an expired token.
func (s *Session) do(ctx context.Context, method, path string, body any, expected int, out any) error {
	token := s.AccessToken()
	err := s.client.call(ctx, method, path, body, token, expected, out)
	if !isAccessTokenExpired(err) {
		return err
	}

	if err := s.refresh(ctx, token); err != nil {
		return err
	}
	return s.client.call(ctx, method, path, body, s.AccessToken(), expected, out)
}

// CurrentUser returns the signed-in user.
func (s *Session) CurrentUser(ctx context.Context) (*User, error) {
	var u User
	if err := s.do(ctx, http.MethodGet, "/api/v1/users/current-user", nil, http.StatusOK, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Logout revokes the refresh token on the server and forgets both tokens.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.do(ctx, http.MethodPost, "/api/v1/users/logout", nil, http.StatusOK, nil); err != nil {
		return err
	}
	s.mu.Lock()
	s.accessToken, s.refreshToken = "", ""
	s.mu.Unlock()
	return nil
}

func (s *Session) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return s.do(ctx, http.MethodPost, "/api/v1/users/change-password", body, http.StatusOK, nil)
}

func (s *Session) ResendEmailVerification(ctx context.Context) error {
	return s.do(ctx, http.MethodPost, "/api/v1/users/resend-email-verification", nil, http.StatusOK, nil)
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}
	return q
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func (s *Session) ListTodos(ctx context.Context, p TodoListParams) (*Page[Todo], error) {
	q := p.values()
	if p.Completed != nil {
		q.Set("completed", strconv.FormatBool(*p.Completed))
	}
	if p.Priority != "" {
		q.Set("priority", p.Priority)
	}
	if p.CategoryID != "" {
		q.Set("categoryId", p.CategoryID)
	}

	var page Page[Todo]
	if err := s.do(ctx, http.MethodGet, withQuery("/api/v1/todos", q), nil, http.StatusOK, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *Session) CreateTodo(ctx context.Context, req CreateTodoRequest) (*Todo, error) {
	return s.todo(ctx, http.MethodPost, "/api/v1/todos", req, http.StatusCreated)
}

func (s *Session) GetTodo(ctx context.Context, id string) (*Todo, error) {
	return s.todo(ctx, http.MethodGet, "/api/v1/todos/"+url.PathEscape(id), nil, http.StatusOK)
}

func (s *Session) UpdateTodo(ctx context.Context, id string, req UpdateTodoRequest) (*Todo, error) {
	return s.todo(ctx, http.MethodPut, "/api/v1/todos/"+url.PathEscape(id), req, http.StatusOK)
}

func (s *Session) ToggleTodo(ctx context.Context, id string) (*Todo, error) {
	return s.todo(ctx, http.MethodPatch, "/api/v1/todos/"+url.PathEscape(id)+"/toggle", nil, http.StatusOK)
}

// DeleteTodo removes the todo and returns it as it was.
func (s *Session) DeleteTodo(ctx context.Context, id string) (*Todo, error) {
	return s.todo(ctx, http.MethodDelete, "/api/v1/todos/"+url.PathEscape(id), nil, http.StatusOK)
}

func (s *Session) todo(ctx context.Context, method, path string, body any, expected int) (*Todo, error) {
	var t Todo
	if err := s.do(ctx, method, path, body, expected, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) ListCategories(ctx context.Context, p ListParams) (*Page[Category], error) {
	var page Page[Category]
	if err := s.do(ctx, http.MethodGet, withQuery("/api/v1/categories", p.values()), nil, http.StatusOK, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *Session) CreateCategory(ctx context.Context, name string) (*Category, error) {
	return s.category(ctx, http.MethodPost, "/api/v1/categories", map[string]string{"name": name}, http.StatusCreated)
}

func (s *Session) GetCategory(ctx context.Context, id string) (*Category, error) {
	return s.category(ctx, http.MethodGet, "/api/v1/categories/"+url.PathEscape(id), nil, http.StatusOK)
}

func (s *Session) RenameCategory(ctx context.Context, id, name string) (*Category, error) {
	return s.category(ctx, http.MethodPut, "/api/v1/categories/"+url.PathEscape(id), map[string]string{"name": name}, http.StatusOK)
}

// DeleteCategory removes the category. Its todos are kept without one.
func (s *Session) DeleteCategory(ctx context.Context, id string) (*Category, error) {
	return s.category(ctx, http.MethodDelete, "/api/v1/categories/"+url.PathEscape(id), nil, http.StatusOK)
}

func (s *Session) category(ctx context.Context, method, path string, body any, expected int) (*Category, error) {
	var c Category
	if err := s.do(ctx, method, path, body, expected, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
