package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/task"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
	"github.com/jsamuelsen11/go-task-service/mocks"
)

func asUser(id string) context.Context {
	return user.WithIdentity(context.Background(), user.Identity{UserID: id, Role: user.RoleUser})
}

func asAdmin(id string) context.Context {
	return user.WithIdentity(context.Background(), user.Identity{UserID: id, Role: user.RoleAdmin})
}

func ownedTask(id, ownerID string) *task.Task {
	return &task.Task{ID: id, Title: "Task " + id, Status: task.StatusTodo, OwnerID: ownerID}
}

func TestTaskGuard_RequiresIdentity(t *testing.T) {
	t.Parallel()
	next := mocks.NewMockTaskService(t)
	g := NewTaskGuard(next, 2, discardLogger())
	ctx := context.Background()

	checks := map[string]error{}
	_, checks["Create"] = g.Create(ctx, ports.CreateTaskInput{Title: "abc"})
	_, checks["Update"] = g.Update(ctx, "t1", ports.UpdateTaskInput{})
	checks["Delete"] = g.Delete(ctx, "t1")
	_, checks["DeleteByOwner"] = g.DeleteByOwner(ctx, "alice")
	_, checks["DeleteMultiple"] = g.DeleteMultiple(ctx, []string{"t1"})
	_, checks["GetByID"] = g.GetByID(ctx, "t1")
	_, checks["GetByOwner"] = g.GetByOwner(ctx, "alice")

	for op, err := range checks {
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("%s() without identity error = %v, want ErrUnauthorized", op, err)
		}
	}
}

func TestTaskGuard_Create(t *testing.T) {
	t.Parallel()

	t.Run("empty owner defaults to caller", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewMockTaskService(t)
		g := NewTaskGuard(next, 2, discardLogger())

		next.EXPECT().Create(mock.Anything, ports.CreateTaskInput{Title: "Ship release", OwnerID: "alice"}).
			Return(ownedTask("t1", "alice"), nil)

		got, err := g.Create(asUser("alice"), ports.CreateTaskInput{Title: "Ship release"})
		require.NoError(t, err)
		assert.Equal(t, "alice", got.OwnerID)
	})

	t.Run("user cannot create for another owner", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewMockTaskService(t)
		g := NewTaskGuard(next, 2, discardLogger())

		_, err := g.Create(asUser("alice"), ports.CreateTaskInput{Title: "Ship release", OwnerID: "bob"})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("Create() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("admin can create for another owner", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewMockTaskService(t)
		g := NewTaskGuard(next, 2, discardLogger())

		in := ports.CreateTaskInput{Title: "Ship release", OwnerID: "bob"}
		next.EXPECT().Create(mock.Anything, in).Return(ownedTask("t1", "bob"), nil)

		_, err := g.Create(asAdmin("root"), in)
		assert.NoError(t, err)
	})
}

func TestTaskGuard_SingleTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctx     context.Context
		owner   string
		wantErr error
	}{
		{name: "owner", ctx: asUser("alice"), owner: "alice", wantErr: nil},
		{name: "other user", ctx: asUser("bob"), owner: "alice", wantErr: domain.ErrForbidden},
		{name: "admin", ctx: asAdmin("root"), owner: "alice", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/GetByID", func(t *testing.T) {
			t.Parallel()
			next := mocks.NewMockTaskService(t)
			g := NewTaskGuard(next, 2, discardLogger())
			next.EXPECT().GetByID(mock.Anything, "t1").Return(ownedTask("t1", tt.owner), nil)

			_, err := g.GetByID(tt.ctx, "t1")
			assertErrIs(t, err, tt.wantErr)
		})

		t.Run(tt.name+"/Update", func(t *testing.T) {
			t.Parallel()
			next := mocks.NewMockTaskService(t)
			g := NewTaskGuard(next, 2, discardLogger())
			next.EXPECT().GetByID(mock.Anything, "t1").Return(ownedTask("t1", tt.owner), nil)
			if tt.wantErr == nil {
				next.EXPECT().Update(mock.Anything, "t1", mock.Anything).Return(ownedTask("t1", tt.owner), nil)
			}

			_, err := g.Update(tt.ctx, "t1", ports.UpdateTaskInput{})
			assertErrIs(t, err, tt.wantErr)
		})

		t.Run(tt.name+"/Delete", func(t *testing.T) {
			t.Parallel()
			next := mocks.NewMockTaskService(t)
			g := NewTaskGuard(next, 2, discardLogger())
			next.EXPECT().GetByID(mock.Anything, "t1").Return(ownedTask("t1", tt.owner), nil)
			if tt.wantErr == nil {
				next.EXPECT().Delete(mock.Anything, "t1").Return(nil)
			}

			err := g.Delete(tt.ctx, "t1")
			assertErrIs(t, err, tt.wantErr)
		})
	}
}

func TestTaskGuard_DeleteUnknownPassesThrough(t *testing.T) {
	t.Parallel()
	next := mocks.NewMockTaskService(t)
	g := NewTaskGuard(next, 2, discardLogger())

	next.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrNotFound)
	next.EXPECT().Delete(mock.Anything, "missing").Return(nil)

	assert.NoError(t, g.Delete(asUser("alice"), "missing"))
}

func TestTaskGuard_OwnerScoped(t *testing.T) {
	t.Parallel()

	t.Run("user lists own tasks", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewMockTaskService(t)
		g := NewTaskGuard(next, 2, discardLogger())
		next.EXPECT().GetByOwner(mock.Anything, "alice").Return([]task.Task{*ownedTask("t1", "alice")}, nil)

		got, err := g.GetByOwner(asUser("alice"), "alice")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("user cannot list another owner", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewMockTaskService(t)
		g := NewTaskGuard(next, 2, discardLogger())

		_, err := g.GetByOwner(asUser("alice"), "bob")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("user cannot purge another owner", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewMockTaskService(t)
		g := NewTaskGuard(next, 2, discardLogger())

		_, err := g.DeleteByOwner(asUser("alice"), "bob")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("admin purges any owner", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewMockTaskService(t)
		g := NewTaskGuard(next, 2, discardLogger())
		next.EXPECT().DeleteByOwner(mock.Anything, "bob").Return(3, nil)

		n, err := g.DeleteByOwner(asAdmin("root"), "bob")
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
}

func TestTaskGuard_DeleteMultiple(t *testing.T) {
	t.Parallel()

	t.Run("own and unknown ids are deleted", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewMockTaskService(t)
		g := NewTaskGuard(next, 2, discardLogger())
		ids := []string{"t1", "t2", "missing"}

		next.EXPECT().GetByID(mock.Anything, "t1").Return(ownedTask("t1", "alice"), nil)
		next.EXPECT().GetByID(mock.Anything, "t2").Return(ownedTask("t2", "alice"), nil)
		next.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrNotFound)
		next.EXPECT().DeleteMultiple(mock.Anything, ids).Return(2, nil)

		n, err := g.DeleteMultiple(asUser("alice"), ids)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("a foreign id rejects the whole request", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewMockTaskService(t)
		g := NewTaskGuard(next, 1, discardLogger())

		next.EXPECT().GetByID(mock.Anything, "t1").Return(ownedTask("t1", "bob"), nil)

		_, err := g.DeleteMultiple(asUser("alice"), []string{"t1", "t2"})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("DeleteMultiple() error = %v, want ErrForbidden", err)
		}
		next.AssertNotCalled(t, "DeleteMultiple", mock.Anything, mock.Anything)
	})

	t.Run("admin skips ownership lookups", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewMockTaskService(t)
		g := NewTaskGuard(next, 2, discardLogger())
		ids := []string{"t1", "t2"}

		next.EXPECT().DeleteMultiple(mock.Anything, ids).Return(2, nil)

		n, err := g.DeleteMultiple(asAdmin("root"), ids)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("empty ids reach the service", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewMockTaskService(t)
		g := NewTaskGuard(next, 2, discardLogger())

		verr := domain.NewValidationError("ids", domain.MsgMustNotEmpty)
		next.EXPECT().DeleteMultiple(mock.Anything, []string(nil)).Return(0, verr)

		_, err := g.DeleteMultiple(asUser("alice"), nil)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func assertErrIs(t *testing.T, err, want error) {
	t.Helper()
	if want == nil {
		if err != nil {
			t.Fatalf("error = %v, want nil", err)
		}
		return
	}
	if !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}
}

func TestTaskGuard_UpdateValidatesBeforeLookup(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockTaskService(t)
	g := NewTaskGuard(next, 2, discardLogger())
	status := "ARCHIVED"

	_, err := g.Update(asUser("alice"), "missing", ports.UpdateTaskInput{Status: &status})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, `invalid: "ARCHIVED"`, verr.Fields["status"])
	next.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestTaskGuard_UpdateUnknownTask(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockTaskService(t)
	g := NewTaskGuard(next, 2, discardLogger())
	next.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrNotFound)
	status := "DONE"

	_, err := g.Update(asUser("alice"), "missing", ports.UpdateTaskInput{Status: &status})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
