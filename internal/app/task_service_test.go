package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/task"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
	"github.com/jsamuelsen11/go-task-service/internal/platform/cache"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
	"github.com/jsamuelsen11/go-task-service/mocks"
)

var testNow = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strPtr(s string) *string { return &s }

type serviceFixture struct {
	svc   *TaskService
	tasks *memory.TaskStore
	users *memory.UserStore
	cache *cache.Cache
}

// newServiceFixture wires a TaskService over memory stores with two
// registered users, "alice" and "bob".
func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	f := &serviceFixture{
		tasks: memory.NewTaskStore(),
		users: memory.NewUserStore(),
		cache: cache.New(time.Minute, cache.WithClock(func() time.Time { return testNow })),
	}
	for _, id := range []string{"alice", "bob"} {
		_, err := f.users.Create(context.Background(), &user.User{
			ID:        id,
			Email:     id + "@example.com",
			Role:      user.RoleUser,
			CreatedAt: testNow,
		})
		require.NoError(t, err)
	}

	f.svc = NewTaskService(f.tasks, f.users, f.cache, discardLogger(),
		WithClock(func() time.Time { return testNow }),
	)
	return f
}

func (f *serviceFixture) create(t *testing.T, ownerID, title string) *task.Task {
	t.Helper()
	created, err := f.svc.Create(context.Background(), ports.CreateTaskInput{Title: title, OwnerID: ownerID})
	require.NoError(t, err)
	return created
}

// --- Create ---

func TestTaskService_Create(t *testing.T) {
	t.Parallel()

	t.Run("stores a TODO task with defaults", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)

		got, err := f.svc.Create(context.Background(), ports.CreateTaskInput{
			Title:       "  Buy groceries  ",
			Description: strPtr("  milk and eggs "),
			OwnerID:     "alice",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "Buy groceries", got.Title)
		assert.Equal(t, "milk and eggs", got.Description)
		assert.Equal(t, task.StatusTodo, got.Status)
		assert.Equal(t, task.PriorityMedium, got.Priority)
		assert.Nil(t, got.Deadline)
		assert.Equal(t, testNow, got.CreatedAt)
		assert.Equal(t, testNow, got.UpdatedAt)

		stored, err := f.tasks.FindByID(context.Background(), got.ID)
		require.NoError(t, err)
		assert.Equal(t, got.Title, stored.Title)
	})

	t.Run("title length boundaries", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			title   string
			wantErr bool
		}{
			{name: "empty", title: "", wantErr: true},
			{name: "two characters", title: "ab", wantErr: true},
			{name: "padded two characters", title: "   ab   ", wantErr: true},
			{name: "three characters", title: "abc", wantErr: false},
			{name: "one hundred characters", title: strings.Repeat("x", 100), wantErr: false},
			{name: "one hundred one characters", title: strings.Repeat("x", 101), wantErr: true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				f := newServiceFixture(t)

				_, err := f.svc.Create(context.Background(), ports.CreateTaskInput{Title: tt.title, OwnerID: "alice"})
				if tt.wantErr {
					if !errors.Is(err, domain.ErrValidation) {
						t.Fatalf("Create(%q) error = %v, want ErrValidation", tt.title, err)
					}
					return
				}
				if err != nil {
					t.Fatalf("Create(%q) error = %v, want nil", tt.title, err)
				}
			})
		}
	})

	t.Run("unknown owner persists nothing", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)

		_, err := f.svc.Create(context.Background(), ports.CreateTaskInput{Title: "Valid title", OwnerID: "ghost"})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Create() error = %v, want ErrNotFound", err)
		}

		stored, err := f.tasks.FindByOwner(context.Background(), "ghost")
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("overlapping title is rejected", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		f.create(t, "alice", "Write report")

		_, err := f.svc.Create(context.Background(), ports.CreateTaskInput{Title: "report writing", OwnerID: "alice"})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "title")

		stored, err := f.tasks.FindByOwner(context.Background(), "alice")
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})

	t.Run("title containing an existing title is rejected", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		f.create(t, "alice", "Email")

		_, err := f.svc.Create(context.Background(), ports.CreateTaskInput{Title: "Emails to send", OwnerID: "alice"})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, `overlaps existing task "Email"`, verr.Fields["title"])

		stored, err := f.tasks.FindByOwner(context.Background(), "alice")
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})

	t.Run("same title for another owner is allowed", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		f.create(t, "alice", "Write report")

		_, err := f.svc.Create(context.Background(), ports.CreateTaskInput{Title: "Write report", OwnerID: "bob"})
		assert.NoError(t, err)
	})

	t.Run("deadline horizon", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			deadline time.Time
			wantErr  bool
		}{
			{name: "now", deadline: testNow, wantErr: true},
			{name: "past", deadline: testNow.Add(-time.Hour), wantErr: true},
			{name: "one second ahead", deadline: testNow.Add(time.Second), wantErr: false},
			{name: "exactly five years", deadline: testNow.AddDate(5, 0, 0), wantErr: false},
			{name: "five years and one second", deadline: testNow.AddDate(5, 0, 0).Add(time.Second), wantErr: true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				f := newServiceFixture(t)

				got, err := f.svc.Create(context.Background(), ports.CreateTaskInput{
					Title:    "Ship release",
					Deadline: strPtr(tt.deadline.Format(time.RFC3339)),
					OwnerID:  "alice",
				})
				if tt.wantErr {
					if !errors.Is(err, domain.ErrValidation) {
						t.Fatalf("Create(deadline=%s) error = %v, want ErrValidation", tt.deadline, err)
					}
					return
				}
				require.NoError(t, err)
				require.NotNil(t, got.Deadline)
				assert.True(t, got.Deadline.Equal(tt.deadline))
			})
		}
	})

	t.Run("unknown priority is rejected", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)

		_, err := f.svc.Create(context.Background(), ports.CreateTaskInput{
			Title:    "Ship release",
			Priority: strPtr("URGENT"),
			OwnerID:  "alice",
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Create() error = %v, want ErrValidation", err)
		}
	})

	t.Run("invalidates the owner list", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)

		before, err := f.svc.GetByOwner(context.Background(), "alice")
		require.NoError(t, err)
		require.Empty(t, before)

		f.create(t, "alice", "Ship release")

		after, err := f.svc.GetByOwner(context.Background(), "alice")
		require.NoError(t, err)
		assert.Len(t, after, 1)
	})
}

// --- Update ---

func TestTaskService_Update(t *testing.T) {
	t.Parallel()

	t.Run("applies present fields only", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		created := f.create(t, "alice", "Ship release")

		got, err := f.svc.Update(context.Background(), created.ID, ports.UpdateTaskInput{
			Status:   strPtr("IN_PROGRESS"),
			Priority: strPtr("HIGH"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Ship release", got.Title)
		assert.Equal(t, task.StatusInProgress, got.Status)
		assert.Equal(t, task.PriorityHigh, got.Priority)
	})

	t.Run("any status may follow any other", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		created := f.create(t, "alice", "Ship release")

		for _, st := range []string{"DONE", "TODO", "CANCELLED", "IN_PROGRESS"} {
			got, err := f.svc.Update(context.Background(), created.ID, ports.UpdateTaskInput{Status: strPtr(st)})
			require.NoError(t, err)
			assert.Equal(t, task.Status(st), got.Status)
		}
	})

	t.Run("own title does not count as overlap", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		created := f.create(t, "alice", "Write report")

		got, err := f.svc.Update(context.Background(), created.ID, ports.UpdateTaskInput{Title: strPtr("Write report draft")})
		require.NoError(t, err)
		assert.Equal(t, "Write report draft", got.Title)
	})

	t.Run("title overlapping another task is rejected", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		f.create(t, "alice", "Write report")
		other := f.create(t, "alice", "Buy groceries")

		_, err := f.svc.Update(context.Background(), other.ID, ports.UpdateTaskInput{Title: strPtr("report writing")})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Update() error = %v, want ErrValidation", err)
		}

		stored, err := f.tasks.FindByID(context.Background(), other.ID)
		require.NoError(t, err)
		assert.Equal(t, "Buy groceries", stored.Title)
	})

	t.Run("unknown task", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)

		_, err := f.svc.Update(context.Background(), "missing", ports.UpdateTaskInput{Status: strPtr("DONE")})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Update() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		created := f.create(t, "alice", "Ship release")

		_, err := f.svc.Update(context.Background(), created.ID, ports.UpdateTaskInput{Status: strPtr("ARCHIVED")})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Update() error = %v, want ErrValidation", err)
		}
	})

	t.Run("invalidates cached task and owner list", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		created := f.create(t, "alice", "Ship release")

		_, err := f.svc.GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		_, err = f.svc.GetByOwner(context.Background(), "alice")
		require.NoError(t, err)

		_, err = f.svc.Update(context.Background(), created.ID, ports.UpdateTaskInput{Title: strPtr("Ship hotfix")})
		require.NoError(t, err)

		got, err := f.svc.GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ship hotfix", got.Title)

		list, err := f.svc.GetByOwner(context.Background(), "alice")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Ship hotfix", list[0].Title)
	})
}

// --- Delete ---

func TestTaskService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("absent id is a no-op", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)

		if err := f.svc.Delete(context.Background(), "missing"); err != nil {
			t.Fatalf("Delete(missing) error = %v, want nil", err)
		}
	})

	t.Run("removes the task and its cache entry", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		created := f.create(t, "alice", "Ship release")

		_, err := f.svc.GetByID(context.Background(), created.ID)
		require.NoError(t, err)

		require.NoError(t, f.svc.Delete(context.Background(), created.ID))

		_, err = f.svc.GetByID(context.Background(), created.ID)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetByID() after Delete error = %v, want ErrNotFound", err)
		}

		list, err := f.svc.GetByOwner(context.Background(), "alice")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

// --- DeleteByOwner ---

func TestTaskService_DeleteByOwner(t *testing.T) {
	t.Parallel()

	t.Run("clears the whole cache", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		f.create(t, "alice", "Ship release")
		f.create(t, "alice", "Buy groceries")
		bobs := f.create(t, "bob", "Plan vacation")

		_, err := f.svc.GetByID(context.Background(), bobs.ID)
		require.NoError(t, err)
		_, err = f.svc.GetByOwner(context.Background(), "bob")
		require.NoError(t, err)
		require.Positive(t, f.cache.Len())

		n, err := f.svc.DeleteByOwner(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 0, f.cache.Len())

		remaining, err := f.svc.GetByOwner(context.Background(), "bob")
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})

	t.Run("unknown owner", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)

		_, err := f.svc.DeleteByOwner(context.Background(), "ghost")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("DeleteByOwner() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("owner without tasks", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)

		n, err := f.svc.DeleteByOwner(context.Background(), "bob")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

// --- DeleteMultiple ---

func TestTaskService_DeleteMultiple(t *testing.T) {
	t.Parallel()

	t.Run("empty ids", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)

		_, err := f.svc.DeleteMultiple(context.Background(), nil)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("DeleteMultiple(nil) error = %v, want ErrValidation", err)
		}
	})

	t.Run("counts only existing tasks", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		created := f.create(t, "alice", "Ship release")

		_, err := f.svc.GetByID(context.Background(), created.ID)
		require.NoError(t, err)

		n, err := f.svc.DeleteMultiple(context.Background(), []string{created.ID, "missing"})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = f.svc.GetByID(context.Background(), created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

// --- GetByID ---

func TestTaskService_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("second read within TTL is served from cache", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTaskStore(t)
		users := mocks.NewMockUserStore(t)
		c := cache.New(time.Minute, cache.WithClock(func() time.Time { return testNow }))
		svc := NewTaskService(store, users, c, discardLogger(), WithClock(func() time.Time { return testNow }))

		want := &task.Task{ID: "t1", Title: "Ship release", Status: task.StatusTodo, OwnerID: "alice"}
		store.EXPECT().FindByID(mock.Anything, "t1").Return(want, nil).Once()

		first, err := svc.GetByID(context.Background(), "t1")
		require.NoError(t, err)
		second, err := svc.GetByID(context.Background(), "t1")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("returned task does not alias the cache", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		created := f.create(t, "alice", "Ship release")

		first, err := f.svc.GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		first.Title = "mutated"

		second, err := f.svc.GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ship release", second.Title)
	})

	t.Run("misses are not cached", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTaskStore(t)
		users := mocks.NewMockUserStore(t)
		c := cache.New(time.Minute)
		svc := NewTaskService(store, users, c, discardLogger())

		store.EXPECT().FindByID(mock.Anything, "t1").Return(nil, domain.ErrNotFound).Twice()

		for range 2 {
			_, err := svc.GetByID(context.Background(), "t1")
			assert.ErrorIs(t, err, domain.ErrNotFound)
		}
		assert.Zero(t, c.Len())
	})
}

// --- GetByOwner ---

func TestTaskService_GetByOwner(t *testing.T) {
	t.Parallel()

	t.Run("unknown owner", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)

		_, err := f.svc.GetByOwner(context.Background(), "ghost")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetByOwner() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("lists in insertion order", func(t *testing.T) {
		t.Parallel()
		f := newServiceFixture(t)
		f.create(t, "alice", "Ship release")
		f.create(t, "alice", "Buy groceries")
		f.create(t, "bob", "Plan vacation")

		got, err := f.svc.GetByOwner(context.Background(), "alice")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Ship release", got[0].Title)
		assert.Equal(t, "Buy groceries", got[1].Title)
	})

	t.Run("store errors are returned and not cached", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTaskStore(t)
		users := mocks.NewMockUserStore(t)
		c := cache.New(time.Minute)
		svc := NewTaskService(store, users, c, discardLogger())

		boom := errors.New("disk on fire")
		users.EXPECT().Exists(mock.Anything, "alice").Return(true, nil)
		store.EXPECT().FindByOwner(mock.Anything, "alice").Return(nil, boom).Once()

		_, err := svc.GetByOwner(context.Background(), "alice")
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, c.Len())
	})
}
