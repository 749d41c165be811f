package ports

import (
	"context"

	"github.com/jsamuelsen11/go-task-service/internal/domain/task"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
)

// TaskService defines the service port for task lifecycle operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TaskService interface {
	// Create validates the input, checks the owner and duplicate titles,
	// and stores a new task with status TODO.
	// Returns domain.ErrValidation for bad input or an overlapping title.
	// Returns domain.ErrNotFound if the owner does not exist.
	Create(ctx context.Context, in CreateTaskInput) (*task.Task, error)

	// Update applies the fields present in the input to an existing task.
	// Returns domain.ErrNotFound if the task does not exist.
	// Returns domain.ErrValidation for bad input or an overlapping title.
	Update(ctx context.Context, id string, in UpdateTaskInput) (*task.Task, error)

	// Delete removes a task. Deleting an absent task is a no-op.
	Delete(ctx context.Context, id string) error

	// DeleteByOwner removes every task of an owner and returns the count.
	// Returns domain.ErrNotFound if the owner does not exist.
	DeleteByOwner(ctx context.Context, ownerID string) (int, error)

	// DeleteMultiple removes the listed tasks and returns how many existed.
	// Returns domain.ErrValidation if ids is empty.
	DeleteMultiple(ctx context.Context, ids []string) (int, error)

	// GetByID returns a single task.
	// Returns domain.ErrNotFound if the task does not exist.
	GetByID(ctx context.Context, id string) (*task.Task, error)

	// GetByOwner returns every task of an owner.
	// Returns domain.ErrNotFound if the owner does not exist.
	GetByOwner(ctx context.Context, ownerID string) ([]task.Task, error)
}

// CreateTaskInput carries the raw fields of a create request. Optional
// fields are nil when absent.
type CreateTaskInput struct {
	Title       string
	Description *string
	Deadline    *string
	Priority    *string
	OwnerID     string
}

// UpdateTaskInput carries the raw fields of an update request. Nil means
// "do not change this field".
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Deadline    *string
	Priority    *string
}

// AuthService defines the service port for registration and login.
type AuthService interface {
	// Register creates a user and returns it with a signed access token.
	// Returns domain.ErrConflict if the email is already registered.
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)

	// Login verifies credentials and returns the user with a signed access
	// token.
	// Returns domain.ErrUnauthorized if the credentials do not match.
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
}

// RegisterInput carries a registration request. An empty Role means USER.
type RegisterInput struct {
	Email    string
	Password string
	Role     user.Role
}

// LoginInput carries a login request.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is returned by successful registration and login.
type AuthResult struct {
	User  *user.User
	Token string
}

// TokenVerifier validates bearer tokens issued by AuthService.
// Implemented by the auth platform package; called by the identity middleware.
type TokenVerifier interface {
	// Verify parses a token and returns the identity it was issued for.
	// Returns domain.ErrUnauthorized for malformed, expired or forged tokens.
	Verify(token string) (user.Identity, error)
}
