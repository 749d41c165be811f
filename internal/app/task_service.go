package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-task-service/internal/app/txlog"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/task"
	"github.com/jsamuelsen11/go-task-service/internal/platform/cache"
	"github.com/jsamuelsen11/go-task-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

const tracerName = "github.com/jsamuelsen11/go-task-service/internal/app"

// taskKey is the cache key of a single task.
func taskKey(id string) string { return "task:" + id }

// ownerKey is the cache key of an owner's task list.
func ownerKey(ownerID string) string { return "tasks:owner:" + ownerID }

// TaskService implements ports.TaskService. It sequences validation, owner
// and duplicate checks, persistence and cache invalidation for every task
// operation, running each mutation inside a txlog transaction.
//
// Rollback does not undo mutations already applied to the store. Concurrent
// creates for the same owner may both pass the duplicate check.
type TaskService struct {
	tasks   ports.TaskStore
	users   ports.UserStore
	cache   *cache.Cache
	logger  *slog.Logger
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	now     func() time.Time
	newID   func() string
}

// TaskServiceOption configures a TaskService.
type TaskServiceOption func(*TaskService)

// WithClock overrides the time source used for deadlines and timestamps.
func WithClock(now func() time.Time) TaskServiceOption {
	return func(s *TaskService) {
		s.now = now
	}
}

// WithIDGenerator overrides task ID generation.
func WithIDGenerator(newID func() string) TaskServiceOption {
	return func(s *TaskService) {
		s.newID = newID
	}
}

// WithTaskMetrics records every operation outcome on m.
func WithTaskMetrics(m *telemetry.Metrics) TaskServiceOption {
	return func(s *TaskService) {
		s.metrics = m
	}
}

// NewTaskService creates a TaskService over the given stores and cache.
func NewTaskService(tasks ports.TaskStore, users ports.UserStore, c *cache.Cache, logger *slog.Logger, opts ...TaskServiceOption) *TaskService {
	s := &TaskService{
		tasks:  tasks,
		users:  users,
		cache:  c,
		logger: logger,
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates in, verifies the owner, rejects overlapping titles and
// stores a new TODO task.
func (s *TaskService) Create(ctx context.Context, in ports.CreateTaskInput) (_ *task.Task, err error) {
	ctx, span := s.start(ctx, "Create", attribute.String("owner_id", in.OwnerID))
	defer func() { s.finish(ctx, span, "Create", err) }()

	s.logger.InfoContext(ctx, "creating task", slog.String("owner_id", in.OwnerID))

	now := s.now().UTC()
	fields, err := validateCreate(in, now)
	if err != nil {
		return nil, err
	}

	var created *task.Task
	err = s.inTransaction(ctx, func(tx *txlog.Log) error {
		if err := s.requireOwner(ctx, in.OwnerID); err != nil {
			return err
		}
		if err := s.checkDuplicateTitle(ctx, in.OwnerID, fields.title, ""); err != nil {
			return err
		}

		t := &task.Task{
			ID:          s.newID(),
			Title:       fields.title,
			Description: fields.description,
			Status:      task.StatusTodo,
			Deadline:    fields.deadline,
			Priority:    fields.priority,
			OwnerID:     in.OwnerID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		saved, err := s.tasks.Save(ctx, t)
		if err != nil {
			return fmt.Errorf("saving task: %w", err)
		}
		if err := tx.AddOperation("delete task "+saved.ID, func() error {
			return s.tasks.Delete(ctx, saved.ID)
		}); err != nil {
			return err
		}

		s.cache.Invalidate(ownerKey(in.OwnerID))
		created = saved
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "Create"),
			slog.String("owner_id", in.OwnerID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// Update applies the fields present in in to an existing task.
func (s *TaskService) Update(ctx context.Context, id string, in ports.UpdateTaskInput) (_ *task.Task, err error) {
	ctx, span := s.start(ctx, "Update", attribute.String("task_id", id))
	defer func() { s.finish(ctx, span, "Update", err) }()

	s.logger.InfoContext(ctx, "updating task", slog.String("task_id", id))

	patch, err := validateUpdate(in, s.now().UTC())
	if err != nil {
		return nil, err
	}

	var updated *task.Task
	err = s.inTransaction(ctx, func(tx *txlog.Log) error {
		existing, err := s.tasks.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if patch.Title != nil {
			if err := s.checkDuplicateTitle(ctx, existing.OwnerID, *patch.Title, id); err != nil {
				return err
			}
		}

		merged, err := s.tasks.Update(ctx, id, patch)
		if err != nil {
			return fmt.Errorf("updating task: %w", err)
		}
		if err := tx.AddOperation("restore task "+id, func() error {
			_, err := s.tasks.Update(ctx, id, restorePatch(existing))
			return err
		}); err != nil {
			return err
		}

		s.cache.Invalidate(taskKey(id))
		s.cache.Invalidate(ownerKey(existing.OwnerID))
		updated = merged
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "Update"),
			slog.String("task_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// Delete removes a task and its cache entries. Deleting an absent task is
// a no-op.
func (s *TaskService) Delete(ctx context.Context, id string) (err error) {
	ctx, span := s.start(ctx, "Delete", attribute.String("task_id", id))
	defer func() { s.finish(ctx, span, "Delete", err) }()

	s.logger.InfoContext(ctx, "deleting task", slog.String("task_id", id))

	owners := s.ownersOf(ctx, []string{id})

	if err := s.tasks.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "Delete"),
			slog.String("task_id", id),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting task: %w", err)
	}

	s.cache.Invalidate(taskKey(id))
	for _, ownerID := range owners {
		s.cache.Invalidate(ownerKey(ownerID))
	}
	return nil
}

// DeleteByOwner removes every task of ownerID and clears the whole cache.
func (s *TaskService) DeleteByOwner(ctx context.Context, ownerID string) (_ int, err error) {
	ctx, span := s.start(ctx, "DeleteByOwner", attribute.String("owner_id", ownerID))
	defer func() { s.finish(ctx, span, "DeleteByOwner", err) }()

	s.logger.InfoContext(ctx, "deleting tasks by owner", slog.String("owner_id", ownerID))

	if err := s.requireOwner(ctx, ownerID); err != nil {
		return 0, err
	}

	var removed int
	err = s.inTransaction(ctx, func(tx *txlog.Log) error {
		n, err := s.tasks.DeleteByOwner(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("deleting owner tasks: %w", err)
		}
		if err := tx.AddOperation(fmt.Sprintf("delete %d tasks of owner %s", n, ownerID), txlog.Irreversible); err != nil {
			return err
		}

		s.cache.Clear()
		removed = n
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete tasks by owner",
			slog.String("operation", "DeleteByOwner"),
			slog.String("owner_id", ownerID),
			slog.Any("error", err),
		)
		return 0, err
	}

	return removed, nil
}

// DeleteMultiple removes the listed tasks and returns how many existed.
func (s *TaskService) DeleteMultiple(ctx context.Context, ids []string) (_ int, err error) {
	ctx, span := s.start(ctx, "DeleteMultiple", attribute.Int("ids", len(ids)))
	defer func() { s.finish(ctx, span, "DeleteMultiple", err) }()

	s.logger.InfoContext(ctx, "deleting multiple tasks", slog.Int("count", len(ids)))

	if len(ids) == 0 {
		return 0, domain.NewValidationError("ids", domain.MsgMustNotEmpty)
	}

	owners := s.ownersOf(ctx, ids)

	var removed int
	err = s.inTransaction(ctx, func(tx *txlog.Log) error {
		n, err := s.tasks.DeleteMultiple(ctx, ids)
		if err != nil {
			return fmt.Errorf("deleting tasks: %w", err)
		}
		if err := tx.AddOperation(fmt.Sprintf("delete %d of %d tasks", n, len(ids)), txlog.Irreversible); err != nil {
			return err
		}

		for _, id := range ids {
			s.cache.Invalidate(taskKey(id))
		}
		for _, ownerID := range owners {
			s.cache.Invalidate(ownerKey(ownerID))
		}
		removed = n
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete multiple tasks",
			slog.String("operation", "DeleteMultiple"),
			slog.Int("count", len(ids)),
			slog.Any("error", err),
		)
		return 0, err
	}

	return removed, nil
}

// GetByID returns a task, reading through the cache.
func (s *TaskService) GetByID(ctx context.Context, id string) (_ *task.Task, err error) {
	ctx, span := s.start(ctx, "GetByID", attribute.String("task_id", id))
	defer func() { s.finish(ctx, span, "GetByID", err) }()

	t, err := cache.GetOrFetch(ctx, s.cache, taskKey(id), func(ctx context.Context) (task.Task, error) {
		found, err := s.tasks.FindByID(ctx, id)
		if err != nil {
			return task.Task{}, err
		}
		return *found, nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to fetch task",
				slog.String("operation", "GetByID"),
				slog.String("task_id", id),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	out := t.Clone()
	return &out, nil
}

// GetByOwner returns every task of ownerID, reading through the cache.
func (s *TaskService) GetByOwner(ctx context.Context, ownerID string) (_ []task.Task, err error) {
	ctx, span := s.start(ctx, "GetByOwner", attribute.String("owner_id", ownerID))
	defer func() { s.finish(ctx, span, "GetByOwner", err) }()

	if err := s.requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	tasks, err := cache.GetOrFetch(ctx, s.cache, ownerKey(ownerID), func(ctx context.Context) ([]task.Task, error) {
		return s.tasks.FindByOwner(ctx, ownerID)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "GetByOwner"),
			slog.String("owner_id", ownerID),
			slog.Any("error", err),
		)
		return nil, err
	}

	out := make([]task.Task, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].Clone()
	}
	return out, nil
}

// inTransaction runs fn inside a fresh transaction, committing on success
// and rolling back on failure. The error from fn is returned unchanged.
func (s *TaskService) inTransaction(ctx context.Context, fn func(tx *txlog.Log) error) error {
	tx := txlog.New()
	tx.Begin(ctx)

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			s.logger.ErrorContext(ctx, "rollback failed", slog.Any("error", rbErr))
		}
		return err
	}
	return tx.Commit(ctx)
}

// requireOwner returns domain.ErrNotFound if ownerID is not a registered user.
func (s *TaskService) requireOwner(ctx context.Context, ownerID string) error {
	ok, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("checking owner: %w", err)
	}
	if !ok {
		return fmt.Errorf("owner %s: %w", ownerID, domain.ErrNotFound)
	}
	return nil
}

// checkDuplicateTitle returns a validation error if any task of ownerID
// other than excludeID overlaps title in either direction: an existing title
// containing a term of title, or title containing a term of an existing one.
func (s *TaskService) checkDuplicateTitle(ctx context.Context, ownerID, title, excludeID string) error {
	for _, term := range task.TitleSearchTerms(title) {
		matches, err := s.tasks.FindByOwnerAndTitlePattern(ctx, ownerID, term, excludeID)
		if err != nil {
			return fmt.Errorf("checking duplicate titles: %w", err)
		}
		if len(matches) > 0 {
			return overlapError(matches[0].Title)
		}
	}

	owned, err := s.tasks.FindByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("checking duplicate titles: %w", err)
	}
	for _, existing := range owned {
		if existing.ID != excludeID && task.TitlesOverlap(title, existing.Title) {
			return overlapError(existing.Title)
		}
	}
	return nil
}

func overlapError(existing string) error {
	return domain.NewValidationError("title", fmt.Sprintf("overlaps existing task %q", existing))
}

// ownersOf returns the distinct owners of the tasks in ids that exist.
// Lookup failures are skipped; the result only drives cache invalidation.
func (s *TaskService) ownersOf(ctx context.Context, ids []string) []string {
	var owners []string
	for _, id := range ids {
		t, err := s.tasks.FindByID(ctx, id)
		if err != nil {
			continue
		}
		if !slices.Contains(owners, t.OwnerID) {
			owners = append(owners, t.OwnerID)
		}
	}
	return owners
}

// restorePatch rebuilds the mutable fields of t as a patch.
func restorePatch(t *task.Task) task.Patch {
	return task.Patch{
		Title:       &t.Title,
		Description: &t.Description,
		Status:      &t.Status,
		Deadline:    t.Deadline,
		Priority:    &t.Priority,
	}
}

func (s *TaskService) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "TaskService."+op, trace.WithAttributes(attrs...))
}

// finish closes the span and records the outcome of op.
func (s *TaskService) finish(ctx context.Context, span trace.Span, op string, err error) {
	result := "success"
	if err != nil {
		result = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	if s.metrics != nil {
		s.metrics.TaskOperations.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrOperation.String(op),
			telemetry.AttrResult.String(result),
		))
	}
}
