package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-task-service/internal/domain/task"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
)

var createdAt = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

// withChiParams installs URL params the way chi does after routing.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for name, value := range params {
		rctx.URLParams.Add(name, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withCaller(r *http.Request, userID string, role user.Role) *http.Request {
	return r.WithContext(user.WithIdentity(r.Context(), user.Identity{UserID: userID, Role: role}))
}

func validTask() task.Task {
	return task.Task{
		ID:          "t1",
		Title:       "Ship release",
		Description: "Cut the tag",
		Status:      task.StatusTodo,
		Priority:    task.PriorityMedium,
		OwnerID:     "alice",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	assert.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
