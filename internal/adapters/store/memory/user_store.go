package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// Compile-time check that UserStore implements ports.UserStore.
var _ ports.UserStore = (*UserStore)(nil)

// UserStore keeps users keyed by ID with a secondary email index.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]user.User
	byEmail map[string]string
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]user.User),
		byEmail: make(map[string]string),
	}
}

// Create stores u. The email is normalized before the uniqueness check.
func (s *UserStore) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := *u
	stored.Email = user.NormalizeEmail(u.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[stored.Email]; ok {
		return nil, fmt.Errorf("email %s: %w", stored.Email, domain.ErrConflict)
	}
	if _, ok := s.byID[stored.ID]; ok {
		return nil, fmt.Errorf("user %s: %w", stored.ID, domain.ErrConflict)
	}
	s.byID[stored.ID] = stored
	s.byEmail[stored.Email] = stored.ID

	out := stored
	return &out, nil
}

// FindByID returns the user with the given ID.
func (s *UserStore) FindByID(ctx context.Context, id string) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

// FindByEmail returns the user registered under email.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[user.NormalizeEmail(email)]
	if !ok {
		return nil, fmt.Errorf("user with email: %w", domain.ErrNotFound)
	}
	u := s.byID[id]
	return &u, nil
}

// Exists reports whether a user with the given ID is registered.
func (s *UserStore) Exists(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byID[id]
	return ok, nil
}
