package ports

import "context"

// HealthChecker reports whether one dependency of the service can serve
// traffic. The SQLite database and the in-memory task store both implement
// it.
type HealthChecker interface {
	// Name keys the checker in readiness output, for example "sqlite".
	Name() string

	// HealthCheck returns nil while the dependency is usable. It is called
	// with a deadline and must return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry backs GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered checker and maps its name to the
	// result. A nil entry is healthy.
	CheckAll(ctx context.Context) map[string]error
}
