// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. api wraps every
// /api/v1 route and identity additionally guards the task routes, so health
// probes skip both. Either may be nil.
func NewRouter(
	taskHandler *handlers.TaskHandler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	api func(http.Handler) http.Handler,
	identity func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		if api != nil {
			r.Use(api)
		}

		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			if identity != nil {
				r.Use(identity)
			}

			r.Get("/tasks", taskHandler.ListMyTasks)
			r.Post("/tasks", taskHandler.CreateTask)
			r.Post("/tasks/bulk-delete", taskHandler.BulkDeleteTasks)
			r.Get("/tasks/{id}", taskHandler.GetTask)
			r.Patch("/tasks/{id}", taskHandler.UpdateTask)
			r.Delete("/tasks/{id}", taskHandler.DeleteTask)

			// Owner-scoped operations.
			r.Get("/users/{userId}/tasks", taskHandler.ListOwnerTasks)
			r.Delete("/users/{userId}/tasks", taskHandler.DeleteOwnerTasks)
		})
	})

	return r
}
