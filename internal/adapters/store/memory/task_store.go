// Package memory provides process-local implementations of the store ports.
// State lives for the lifetime of the process and is lost on restart.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/task"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// Compile-time checks.
var (
	_ ports.TaskStore     = (*TaskStore)(nil)
	_ ports.HealthChecker = (*TaskStore)(nil)
)

// TaskStore keeps tasks in a slice in insertion order.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []task.Task
	now   func() time.Time
}

// NewTaskStore creates an empty TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{now: time.Now}
}

// Name implements ports.HealthChecker.
func (s *TaskStore) Name() string { return "task-store" }

// HealthCheck implements ports.HealthChecker. The memory store is always
// healthy while the process is running.
func (s *TaskStore) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}

// Save appends t and returns a copy of the stored record.
func (s *TaskStore) Save(ctx context.Context, t *task.Task) (*task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(t.ID) >= 0 {
		return nil, fmt.Errorf("task %s: %w", t.ID, domain.ErrConflict)
	}
	s.tasks = append(s.tasks, t.Clone())
	out := t.Clone()
	return &out, nil
}

// Delete removes the task with the given ID if present.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.tasks = slices.Delete(s.tasks, i, i+1)
	}
	return nil
}

// FindByID returns a copy of the task with the given ID.
func (s *TaskStore) FindByID(ctx context.Context, id string) (*task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	out := s.tasks[i].Clone()
	return &out, nil
}

// Update merges patch into the stored task.
func (s *TaskStore) Update(ctx context.Context, id string, patch task.Patch) (*task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	s.tasks[i].Apply(patch, s.now().UTC())
	out := s.tasks[i].Clone()
	return &out, nil
}

// FindByOwnerAndTitlePattern returns the owner's tasks whose title contains
// pattern, ignoring case.
func (s *TaskStore) FindByOwnerAndTitlePattern(ctx context.Context, ownerID, pattern, excludeID string) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []task.Task
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.OwnerID != ownerID || (excludeID != "" && t.ID == excludeID) {
			continue
		}
		if task.MatchesTitle(t.Title, pattern) {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

// FindByOwner returns the owner's tasks in insertion order.
func (s *TaskStore) FindByOwner(ctx context.Context, ownerID string) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]task.Task, 0)
	for i := range s.tasks {
		if s.tasks[i].OwnerID == ownerID {
			out = append(out, s.tasks[i].Clone())
		}
	}
	return out, nil
}

// DeleteByOwner removes the owner's tasks and returns how many were removed.
func (s *TaskStore) DeleteByOwner(ctx context.Context, ownerID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t task.Task) bool {
		return t.OwnerID == ownerID
	})
	return before - len(s.tasks), nil
}

// DeleteMultiple removes every listed task and returns how many were removed.
func (s *TaskStore) DeleteMultiple(ctx context.Context, ids []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t task.Task) bool {
		_, ok := set[t.ID]
		return ok
	})
	return before - len(s.tasks), nil
}

// indexOf must be called with mu held.
func (s *TaskStore) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool {
		return t.ID == id
	})
}
