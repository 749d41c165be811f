package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/go-task-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-task-service/internal/domain/task"
	"github.com/jsamuelsen11/go-task-service/mocks"
)

type routerFixture struct {
	router   http.Handler
	tasks    *mocks.MockTaskService
	auth     *mocks.MockAuthService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) routerFixture {
	t.Helper()
	return newTestRouterWithAPI(t, nil, middlewares...)
}

func newTestRouterWithAPI(
	t *testing.T,
	api func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) routerFixture {
	t.Helper()
	tasks := mocks.NewMockTaskService(t)
	auth := mocks.NewMockAuthService(t)
	registry := mocks.NewMockHealthRegistry(t)
	verifier := mocks.NewMockTokenVerifier(t)

	router := adapthttp.NewRouter(
		handlers.NewTaskHandler(tasks),
		handlers.NewAuthHandler(auth),
		handlers.NewHealthHandler(registry),
		api,
		middleware.Identity(verifier),
		middlewares...,
	)
	return routerFixture{router: router, tasks: tasks, auth: auth, registry: registry}
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	f := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/auth/register"},
		{http.MethodPost, "/api/v1/auth/login"},
		{http.MethodGet, "/api/v1/tasks"},
		{http.MethodPost, "/api/v1/tasks"},
		{http.MethodPost, "/api/v1/tasks/bulk-delete"},
		{http.MethodGet, "/api/v1/tasks/{id}"},
		{http.MethodPatch, "/api/v1/tasks/{id}"},
		{http.MethodDelete, "/api/v1/tasks/{id}"},
		{http.MethodGet, "/api/v1/users/{userId}/tasks"},
		{http.MethodDelete, "/api/v1/users/{userId}/tasks"},
	}

	chiRouter, ok := f.router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	f := newTestRouter(t, testMW)
	f.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	f.router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListMyTasks(t *testing.T) {
	t.Parallel()

	f := newTestRouter(t)
	f.tasks.EXPECT().GetByOwner(mock.Anything, "alice").Return([]task.Task{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.Header.Set("X-User-ID", "alice")
	req.Header.Set("X-Role", "USER")
	f.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_TaskRoutesRequireIdentity(t *testing.T) {
	t.Parallel()

	f := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/tasks"},
		{http.MethodGet, "/api/v1/tasks/abc"},
		{http.MethodDelete, "/api/v1/users/alice/tasks"},
	}

	for _, p := range paths {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(p.method, p.path, nil)
		f.router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want %d", p.method, p.path, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestRouter_HealthSkipsAPIMiddleware(t *testing.T) {
	t.Parallel()

	f := newTestRouterWithAPI(t, middleware.RateLimit(0.001, 1))

	// The API stack allows a single request; probes must never hit it.
	for range 3 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
		f.router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	}
}

func TestRouter_APIMiddlewareWrapsAuthRoutes(t *testing.T) {
	t.Parallel()

	f := newTestRouterWithAPI(t, middleware.RateLimit(0.001, 1))

	codes := make([]int, 0, 2)
	for range 2 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{"))
		f.router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusBadRequest {
		t.Errorf("first status = %d, want %d (malformed body)", codes[0], http.StatusBadRequest)
	}
	if codes[1] != http.StatusTooManyRequests {
		t.Errorf("second status = %d, want %d", codes[1], http.StatusTooManyRequests)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	f := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	f.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	f := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/auth/login", nil)
	f.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
