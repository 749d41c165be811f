package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/app/fanout"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/task"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// Compile-time check that TaskGuard implements ports.TaskService.
var _ ports.TaskService = (*TaskGuard)(nil)

// DefaultBulkCheckWorkers bounds the concurrent ownership lookups of a
// bulk delete when no worker count is configured.
const DefaultBulkCheckWorkers = 4

// TaskGuard wraps a ports.TaskService with ownership checks based on the
// user.Identity carried by the request context. Admins may act on any
// owner's tasks; users only on their own.
type TaskGuard struct {
	next    ports.TaskService
	workers int
	logger  *slog.Logger
	now     func() time.Time
}

// NewTaskGuard creates a TaskGuard in front of next. workers bounds the
// concurrent lookups made when authorizing DeleteMultiple.
func NewTaskGuard(next ports.TaskService, workers int, logger *slog.Logger) *TaskGuard {
	if workers < 1 {
		workers = DefaultBulkCheckWorkers
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskGuard{next: next, workers: workers, logger: logger, now: time.Now}
}

// Create defaults an empty owner to the caller. Creating for another owner
// requires ADMIN.
func (g *TaskGuard) Create(ctx context.Context, in ports.CreateTaskInput) (*task.Task, error) {
	id, err := g.identity(ctx)
	if err != nil {
		return nil, err
	}
	if in.OwnerID == "" {
		in.OwnerID = id.UserID
	}
	if err := g.authorize(ctx, id, in.OwnerID, "Create"); err != nil {
		return nil, err
	}
	return g.next.Create(ctx, in)
}

// Update rejects an invalid body before looking the task up, so a bad PATCH
// reports its fields even when the id is unknown.
func (g *TaskGuard) Update(ctx context.Context, taskID string, in ports.UpdateTaskInput) (*task.Task, error) {
	if _, err := g.identity(ctx); err != nil {
		return nil, err
	}
	if _, err := validateUpdate(in, g.now().UTC()); err != nil {
		return nil, err
	}
	if _, err := g.load(ctx, taskID, "Update"); err != nil {
		return nil, err
	}
	return g.next.Update(ctx, taskID, in)
}

// Delete passes unknown ids through so that deleting them stays a no-op.
func (g *TaskGuard) Delete(ctx context.Context, taskID string) error {
	if _, err := g.load(ctx, taskID, "Delete"); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return g.next.Delete(ctx, taskID)
}

func (g *TaskGuard) DeleteByOwner(ctx context.Context, ownerID string) (int, error) {
	id, err := g.identity(ctx)
	if err != nil {
		return 0, err
	}
	if err := g.authorize(ctx, id, ownerID, "DeleteByOwner"); err != nil {
		return 0, err
	}
	return g.next.DeleteByOwner(ctx, ownerID)
}

// DeleteMultiple checks every existing id concurrently for non-admin
// callers. A single foreign task rejects the whole request.
func (g *TaskGuard) DeleteMultiple(ctx context.Context, ids []string) (int, error) {
	id, err := g.identity(ctx)
	if err != nil {
		return 0, err
	}

	if !id.IsAdmin() {
		err := fanout.Check(ctx, g.workers, ids, func(ctx context.Context, taskID string) error {
			t, err := g.next.GetByID(ctx, taskID)
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			return g.authorize(ctx, id, t.OwnerID, "DeleteMultiple")
		})
		if err != nil {
			return 0, err
		}
	}

	return g.next.DeleteMultiple(ctx, ids)
}

func (g *TaskGuard) GetByID(ctx context.Context, taskID string) (*task.Task, error) {
	return g.load(ctx, taskID, "GetByID")
}

func (g *TaskGuard) GetByOwner(ctx context.Context, ownerID string) ([]task.Task, error) {
	id, err := g.identity(ctx)
	if err != nil {
		return nil, err
	}
	if err := g.authorize(ctx, id, ownerID, "GetByOwner"); err != nil {
		return nil, err
	}
	return g.next.GetByOwner(ctx, ownerID)
}

// load fetches a task and verifies the caller may access it.
func (g *TaskGuard) load(ctx context.Context, taskID, op string) (*task.Task, error) {
	id, err := g.identity(ctx)
	if err != nil {
		return nil, err
	}
	t, err := g.next.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := g.authorize(ctx, id, t.OwnerID, op); err != nil {
		return nil, err
	}
	return t, nil
}

func (g *TaskGuard) identity(ctx context.Context) (user.Identity, error) {
	id, ok := user.IdentityFrom(ctx)
	if !ok {
		return user.Identity{}, fmt.Errorf("no caller identity: %w", domain.ErrUnauthorized)
	}
	return id, nil
}

func (g *TaskGuard) authorize(ctx context.Context, id user.Identity, ownerID, op string) error {
	if id.CanAccess(ownerID) {
		return nil
	}
	g.logger.WarnContext(ctx, "access denied",
		slog.String("operation", op),
		slog.String("user_id", id.UserID),
		slog.String("owner_id", ownerID),
	)
	return fmt.Errorf("user %s on tasks of %s: %w", id.UserID, ownerID, domain.ErrForbidden)
}
