package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/go-task-service/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

func TestTaskStore_Contract(t *testing.T) {
	t.Parallel()
	storetest.RunTaskStore(t, func(*testing.T) ports.TaskStore {
		return memory.NewTaskStore()
	})
}

func TestUserStore_Contract(t *testing.T) {
	t.Parallel()
	storetest.RunUserStore(t, func(*testing.T) ports.UserStore {
		return memory.NewUserStore()
	})
}

func TestTaskStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.NewTaskStore()
	in := storetest.NewTask("u1", "Write report")
	_, err := s.Save(ctx, in)
	assert.NoError(t, err)

	got, err := s.FindByID(ctx, in.ID)
	assert.NoError(t, err)
	got.Title = "mutated"

	again, err := s.FindByID(ctx, in.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Write report", again.Title)
}

func TestTaskStore_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := memory.NewTaskStore()
	_, err := s.Save(ctx, storetest.NewTask("u1", "Write report"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.HealthCheck(ctx), context.Canceled)
}
