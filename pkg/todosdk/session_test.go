package todosdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeEnvelope(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": code,
		"success":    code < 400,
		"message":    message,
		"data":       data,
	})
}

// fakeServer accepts access-2 only and swaps refresh-1 for the access-2 pair.
type fakeServer struct {
	refreshes atomic.Int32
	srv       *httptest.Server
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	f := &fakeServer{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/users/current-user", func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Bearer access-2":
			writeEnvelope(w, http.StatusOK, "Current user fetched successfully", todosdk.User{ID: "u1", Username: "alice"})
		case "Bearer access-1":
			writeEnvelope(w, http.StatusUnauthorized, todosdk.MessageAccessTokenExpired, nil)
		default:
			writeEnvelope(w, http.StatusUnauthorized, "Invalid access token", nil)
		}
	})
	mux.HandleFunc("POST /api/v1/users/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		f.refreshes.Add(1)
		// Hold the refresh open so concurrent callers pile up behind it.
		time.Sleep(50 * time.Millisecond)

		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.RefreshToken != "refresh-1" {
			writeEnvelope(w, http.StatusUnauthorized, todosdk.MessageRefreshTokenReused, nil)
			return
		}
		writeEnvelope(w, http.StatusOK, "Access token refreshed", todosdk.TokenPair{
			AccessToken: "access-2", RefreshToken: "refresh-2",
		})
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeServer) client() *todosdk.SDKClient {
	c := todosdk.NewSDKClient(f.srv.URL)
	c.HTTPClient = f.srv.Client()
	return c
}

func TestSessionRefreshesOnceForConcurrentRequests(t *testing.T) {
	f := newFakeServer(t)
	sess := f.client().NewSessionFromTokens("access-1", "refresh-1")

	const callers = 20
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = sess.CurrentUser(context.Background())
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, int32(1), f.refreshes.Load())
	require.Equal(t, "access-2", sess.AccessToken())
	require.Equal(t, "refresh-2", sess.RefreshToken())
}

func TestSessionDoesNotRefreshOnOtherUnauthorized(t *testing.T) {
	f := newFakeServer(t)
	sess := f.client().NewSessionFromTokens("forged", "refresh-1")

	_, err := sess.CurrentUser(context.Background())
	require.True(t, todosdk.IsUnauthorized(err))
	require.Zero(t, f.refreshes.Load())
}

func TestSessionRefreshFailure(t *testing.T) {
	f := newFakeServer(t)

	sess := f.client().NewSessionFromTokens("access-1", "stolen")
	_, err := sess.CurrentUser(context.Background())
	require.Error(t, err)
	require.True(t, todosdk.IsUnauthorized(err))

	var apiErr *todosdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, todosdk.MessageRefreshTokenReused, apiErr.Message)

	sess = f.client().NewSessionFromTokens("access-1", "")
	_, err = sess.CurrentUser(context.Background())
	require.ErrorIs(t, err, todosdk.ErrNoRefreshToken)
}

func TestListTodosQuery(t *testing.T) {
	var got atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.URL.RawQuery)
		writeEnvelope(w, http.StatusOK, "Todos fetched successfully", todosdk.Page[todosdk.Todo]{
			Data: []todosdk.Todo{{ID: "t1", Title: "milk"}},
			Meta: todosdk.PageMeta{Page: 2, Limit: 5, Total: 6, TotalPages: 2, HasPreviousPage: true},
		})
	}))
	t.Cleanup(srv.Close)

	c := todosdk.NewSDKClient(srv.URL + "/")
	c.HTTPClient = srv.Client()
	sess := c.NewSessionFromTokens("a", "r")

	done := false
	page, err := sess.ListTodos(context.Background(), todosdk.TodoListParams{
		ListParams: todosdk.ListParams{Page: 2, Limit: 5, SortBy: "priority"},
		Completed:  &done,
		Priority:   "high",
	})
	require.NoError(t, err)
	require.Equal(t, "completed=false&limit=5&page=2&priority=high&sortBy=priority", got.Load())
	require.Len(t, page.Data, 1)
	require.True(t, page.Meta.HasPreviousPage)
}

func TestAPIErrorCarriesFieldErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode":400,"success":false,"message":"title is required","data":null,"errors":[{"field":"title","message":"title is required"}]}`))
	}))
	t.Cleanup(srv.Close)

	c := todosdk.NewSDKClient(srv.URL)
	c.HTTPClient = srv.Client()

	_, err := c.NewSessionFromTokens("a", "r").CreateTodo(context.Background(), todosdk.CreateTodoRequest{})
	require.True(t, todosdk.IsBadRequest(err))

	var apiErr *todosdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, []todosdk.FieldError{{Field: "title", Message: "title is required"}}, apiErr.Errors)
	require.Contains(t, err.Error(), "title: title is required")
}

func TestUpdateTodoRequestSendsOnlySetFields(t *testing.T) {
	tests := []struct {
		name string
		req  todosdk.UpdateTodoRequest
		want string
	}{
		{"empty", todosdk.UpdateTodoRequest{}, `{}`},
		{"value", todosdk.UpdateTodoRequest{Title: todosdk.Set("milk")}, `{"title":"milk"}`},
		{"null", todosdk.UpdateTodoRequest{DueDate: todosdk.Null[string]()}, `{"dueDate":null}`},
		{"mixed", todosdk.UpdateTodoRequest{
			Priority:   todosdk.Set("low"),
			CategoryID: todosdk.Null[string](),
		}, `{"priority":"low","categoryId":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.req)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(b))
		})
	}
}
