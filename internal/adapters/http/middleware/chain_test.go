package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/middleware"
)

func tag(order *[]string, name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name+">")
			next.ServeHTTP(w, r)
			*order = append(*order, "<"+name)
		})
	}
}

func TestChain_NoMiddlewareIsIdentity(t *testing.T) {
	t.Parallel()

	handler := middleware.Chain()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/t1", http.NoBody))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestChain_FirstArgumentIsOutermost(t *testing.T) {
	t.Parallel()

	var order []string
	handler := middleware.Chain(tag(&order, "timeout"), tag(&order, "ratelimit"))(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			order = append(order, "handler")
		}),
	)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody))

	want := []string{"timeout>", "ratelimit>", "handler", "<ratelimit", "<timeout"}
	if !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestChain_APIStackRejectsOverLimit(t *testing.T) {
	t.Parallel()

	calls := 0
	handler := middleware.Chain(
		middleware.Timeout(time.Second),
		middleware.RateLimit(0.001, 1),
	)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	statuses := make([]int, 0, 2)
	for range 2 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody))
		statuses = append(statuses, rec.Code)
	}

	if want := []int{http.StatusOK, http.StatusTooManyRequests}; !slices.Equal(statuses, want) {
		t.Errorf("statuses = %v, want %v", statuses, want)
	}
	if calls != 1 {
		t.Errorf("handler calls = %d, want 1", calls)
	}
}
