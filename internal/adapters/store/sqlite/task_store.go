package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/task"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// Compile-time check that TaskStore implements ports.TaskStore.
var _ ports.TaskStore = (*TaskStore)(nil)

const taskColumns = `id, title, description, status, deadline, priority, owner_id, created_at, updated_at`

// TaskStore implements ports.TaskStore with a tasks table ordered by
// insertion sequence.
type TaskStore struct {
	db  *sql.DB
	now func() time.Time
}

// Save inserts t and returns the stored record.
func (s *TaskStore) Save(ctx context.Context, t *task.Task) (*task.Task, error) {
	query := `INSERT INTO tasks (` + taskColumns + `, title_lower) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		t.ID, t.Title, t.Description, string(t.Status), formatTimePtr(t.Deadline),
		string(t.Priority), t.OwnerID, formatTime(t.CreatedAt), formatTime(t.UpdatedAt),
		strings.ToLower(t.Title),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("task %s: %w", t.ID, domain.ErrConflict)
		}
		return nil, fmt.Errorf("inserting task: %w", err)
	}

	return s.FindByID(ctx, t.ID)
}

// Delete removes the task with the given ID if present.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// FindByID returns the task with the given ID.
func (s *TaskStore) FindByID(ctx context.Context, id string) (*task.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return t, nil
}

// Update merges patch into the stored task inside a transaction.
func (s *TaskStore) Update(ctx context.Context, id string, patch task.Patch) (*task.Task, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Apply(patch, s.now().UTC())

	_, err = tx.ExecContext(ctx, `
	UPDATE tasks
	SET title = ?, title_lower = ?, description = ?, status = ?, deadline = ?, priority = ?, updated_at = ?
	WHERE id = ?`,
		t.Title, strings.ToLower(t.Title), t.Description, string(t.Status), formatTimePtr(t.Deadline),
		string(t.Priority), formatTime(t.UpdatedAt), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing update: %w", err)
	}
	return t, nil
}

// FindByOwnerAndTitlePattern returns the owner's tasks whose title contains
// pattern, ignoring case. SQLite's lower() folds ASCII only, so titles are
// matched against title_lower, which is folded in Go on every write.
func (s *TaskStore) FindByOwnerAndTitlePattern(ctx context.Context, ownerID, pattern, excludeID string) ([]task.Task, error) {
	query := `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE owner_id = ? AND instr(title_lower, ?) > 0 AND id <> ?
	ORDER BY seq ASC`

	return s.queryTasks(ctx, query, ownerID, strings.ToLower(pattern), excludeID)
}

// FindByOwner returns the owner's tasks in insertion order.
func (s *TaskStore) FindByOwner(ctx context.Context, ownerID string) ([]task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = ? ORDER BY seq ASC`
	return s.queryTasks(ctx, query, ownerID)
}

// DeleteByOwner removes the owner's tasks and returns how many were removed.
func (s *TaskStore) DeleteByOwner(ctx context.Context, ownerID string) (int, error) {
	return s.execCount(ctx, `DELETE FROM tasks WHERE owner_id = ?`, ownerID)
}

// DeleteMultiple removes every listed task and returns how many were removed.
func (s *TaskStore) DeleteMultiple(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return s.execCount(ctx, `DELETE FROM tasks WHERE id IN (`+placeholders+`)`, args...)
}

func (s *TaskStore) execCount(ctx context.Context, query string, args ...any) (int, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting tasks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows affected: %w", err)
	}
	return int(n), nil
}

func (s *TaskStore) queryTasks(ctx context.Context, query string, args ...any) ([]task.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	out := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return out, nil
}

func scanTask(sc scanner) (*task.Task, error) {
	var (
		t                    task.Task
		status, priority     string
		deadline             sql.NullString
		createdAt, updatedAt string
	)

	err := sc.Scan(&t.ID, &t.Title, &t.Description, &status, &deadline, &priority,
		&t.OwnerID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	t.Status = task.Status(status)
	t.Priority = task.Priority(priority)

	if deadline.Valid {
		d, err := parseTime(deadline.String)
		if err != nil {
			return nil, fmt.Errorf("parsing deadline: %w", err)
		}
		t.Deadline = &d
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}
