package ports

import (
	"context"

	"github.com/jsamuelsen11/go-task-service/internal/domain/task"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
)

// TaskStore owns the task collection. Implemented by storage adapters
// (memory, sqlite); called by the task lifecycle coordinator.
type TaskStore interface {
	// Save appends a task and returns the stored copy.
	Save(ctx context.Context, t *task.Task) (*task.Task, error)

	// Delete removes the task with the given ID. Deleting an absent ID is
	// not an error.
	Delete(ctx context.Context, id string) error

	// FindByID returns the task with the given ID.
	// Returns domain.ErrNotFound if no task matches.
	FindByID(ctx context.Context, id string) (*task.Task, error)

	// Update merges the non-nil patch fields into the stored task and
	// returns the merged record.
	// Returns domain.ErrNotFound if no task matches.
	Update(ctx context.Context, id string, patch task.Patch) (*task.Task, error)

	// FindByOwnerAndTitlePattern returns the owner's tasks whose title
	// contains pattern, ignoring case. A non-empty excludeID is left out of
	// the result.
	FindByOwnerAndTitlePattern(ctx context.Context, ownerID, pattern, excludeID string) ([]task.Task, error)

	// FindByOwner returns every task owned by ownerID in insertion order.
	FindByOwner(ctx context.Context, ownerID string) ([]task.Task, error)

	// DeleteByOwner removes every task owned by ownerID and returns how many
	// were removed.
	DeleteByOwner(ctx context.Context, ownerID string) (int, error)

	// DeleteMultiple removes every task whose ID is in ids and returns how
	// many were removed.
	DeleteMultiple(ctx context.Context, ids []string) (int, error)
}

// UserStore owns registered users. The task lifecycle only consults Exists;
// the registration flow uses the rest.
type UserStore interface {
	// Create stores a new user.
	// Returns domain.ErrConflict if the email is already registered.
	Create(ctx context.Context, u *user.User) (*user.User, error)

	// FindByID returns the user with the given ID.
	// Returns domain.ErrNotFound if no user matches.
	FindByID(ctx context.Context, id string) (*user.User, error)

	// FindByEmail returns the user registered under email, compared
	// case-insensitively.
	// Returns domain.ErrNotFound if no user matches.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// Exists reports whether a user with the given ID is registered.
	Exists(ctx context.Context, id string) (bool, error)
}
