// Package storetest holds the behavioural contract shared by every
// implementation of the store ports. Adapter packages call it from their
// own tests.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/task"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// NewTask returns a valid task owned by ownerID.
func NewTask(ownerID, title string) *task.Task {
	return &task.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    task.StatusTodo,
		Priority:  task.PriorityMedium,
		OwnerID:   ownerID,
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
	}
}

func titles(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].Title
	}
	return out
}

// RunTaskStore exercises a ports.TaskStore built fresh by newStore for every
// subtest.
func RunTaskStore(t *testing.T, newStore func(t *testing.T) ports.TaskStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("save and find by id", func(t *testing.T) {
		s := newStore(t)
		deadline := baseTime.Add(48 * time.Hour)
		in := NewTask("u1", "Write report")
		in.Description = "quarterly"
		in.Deadline = &deadline

		saved, err := s.Save(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, in.ID, saved.ID)

		got, err := s.FindByID(ctx, in.ID)
		require.NoError(t, err)
		assert.Equal(t, "Write report", got.Title)
		assert.Equal(t, "quarterly", got.Description)
		assert.Equal(t, task.StatusTodo, got.Status)
		assert.Equal(t, task.PriorityMedium, got.Priority)
		require.NotNil(t, got.Deadline)
		assert.True(t, got.Deadline.Equal(deadline))
		assert.True(t, got.CreatedAt.Equal(baseTime))
	})

	t.Run("find missing returns not found", func(t *testing.T) {
		s := newStore(t)
		_, err := s.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete absent id is not an error", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Delete(ctx, "missing"))
	})

	t.Run("delete removes task", func(t *testing.T) {
		s := newStore(t)
		in := NewTask("u1", "Write report")
		_, err := s.Save(ctx, in)
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, in.ID))
		_, err = s.FindByID(ctx, in.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update merges present fields", func(t *testing.T) {
		s := newStore(t)
		in := NewTask("u1", "Write report")
		_, err := s.Save(ctx, in)
		require.NoError(t, err)

		title := "Write summary"
		status := task.StatusInProgress
		got, err := s.Update(ctx, in.ID, task.Patch{Title: &title, Status: &status})
		require.NoError(t, err)
		assert.Equal(t, "Write summary", got.Title)
		assert.Equal(t, task.StatusInProgress, got.Status)
		assert.Equal(t, task.PriorityMedium, got.Priority)
		assert.Equal(t, "u1", got.OwnerID)

		reread, err := s.FindByID(ctx, in.ID)
		require.NoError(t, err)
		assert.Equal(t, "Write summary", reread.Title)
	})

	t.Run("update missing returns not found", func(t *testing.T) {
		s := newStore(t)
		title := "Anything"
		_, err := s.Update(ctx, "missing", task.Patch{Title: &title})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("title pattern is case-insensitive and owner scoped", func(t *testing.T) {
		s := newStore(t)
		mine := NewTask("u1", "Write Report")
		other := NewTask("u2", "Read report")
		unrelated := NewTask("u1", "Gym")
		for _, tk := range []*task.Task{mine, other, unrelated} {
			_, err := s.Save(ctx, tk)
			require.NoError(t, err)
		}

		got, err := s.FindByOwnerAndTitlePattern(ctx, "u1", "REPORT", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Write Report"}, titles(got))

		got, err = s.FindByOwnerAndTitlePattern(ctx, "u1", "report", mine.ID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("title pattern folds non-ASCII case", func(t *testing.T) {
		s := newStore(t)
		saved, err := s.Save(ctx, NewTask("u1", "Übersicht planen"))
		require.NoError(t, err)

		got, err := s.FindByOwnerAndTitlePattern(ctx, "u1", "übersicht", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Übersicht planen"}, titles(got))

		renamed := "Ärger mit ÖL"
		_, err = s.Update(ctx, saved.ID, task.Patch{Title: &renamed})
		require.NoError(t, err)

		got, err = s.FindByOwnerAndTitlePattern(ctx, "u1", "äRGER", "")
		require.NoError(t, err)
		assert.Equal(t, []string{renamed}, titles(got))

		got, err = s.FindByOwnerAndTitlePattern(ctx, "u1", "übersicht", "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("find by owner keeps insertion order", func(t *testing.T) {
		s := newStore(t)
		for _, title := range []string{"First task", "Second task", "Third task"} {
			_, err := s.Save(ctx, NewTask("u1", title))
			require.NoError(t, err)
		}
		_, err := s.Save(ctx, NewTask("u2", "Foreign task"))
		require.NoError(t, err)

		got, err := s.FindByOwner(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"First task", "Second task", "Third task"}, titles(got))

		none, err := s.FindByOwner(ctx, "nobody")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("delete by owner counts removed", func(t *testing.T) {
		s := newStore(t)
		for _, title := range []string{"One task", "Two task"} {
			_, err := s.Save(ctx, NewTask("u1", title))
			require.NoError(t, err)
		}
		keep := NewTask("u2", "Keep me")
		_, err := s.Save(ctx, keep)
		require.NoError(t, err)

		n, err := s.DeleteByOwner(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		_, err = s.FindByID(ctx, keep.ID)
		assert.NoError(t, err)
	})

	t.Run("delete multiple counts only existing", func(t *testing.T) {
		s := newStore(t)
		a := NewTask("u1", "Task alpha")
		b := NewTask("u2", "Task beta")
		for _, tk := range []*task.Task{a, b} {
			_, err := s.Save(ctx, tk)
			require.NoError(t, err)
		}

		n, err := s.DeleteMultiple(ctx, []string{a.ID, "missing"})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = s.FindByID(ctx, b.ID)
		assert.NoError(t, err)
	})
}

// RunUserStore exercises a ports.UserStore built fresh by newStore for every
// subtest.
func RunUserStore(t *testing.T, newStore func(t *testing.T) ports.UserStore) {
	t.Helper()
	ctx := context.Background()

	newUser := func(email string) *user.User {
		return &user.User{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: "hash",
			Role:         user.RoleUser,
			CreatedAt:    baseTime,
		}
	}

	t.Run("create and find", func(t *testing.T) {
		s := newStore(t)
		u := newUser("Alice@Example.com")

		created, err := s.Create(ctx, u)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", created.Email)

		byID, err := s.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, user.RoleUser, byID.Role)

		byEmail, err := s.FindByEmail(ctx, "ALICE@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)

		ok, err := s.Exists(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Create(ctx, newUser("bob@example.com"))
		require.NoError(t, err)

		_, err = s.Create(ctx, newUser("BOB@example.com"))
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("missing user", func(t *testing.T) {
		s := newStore(t)

		_, err := s.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = s.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		ok, err := s.Exists(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
