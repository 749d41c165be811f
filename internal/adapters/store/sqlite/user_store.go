package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// Compile-time check that UserStore implements ports.UserStore.
var _ ports.UserStore = (*UserStore)(nil)

const userColumns = `id, email, password_hash, role, created_at`

// UserStore implements ports.UserStore with a users table.
type UserStore struct {
	db *sql.DB
}

// Create inserts u. The unique email index reports duplicates.
func (s *UserStore) Create(ctx context.Context, u *user.User) (*user.User, error) {
	stored := *u
	stored.Email = user.NormalizeEmail(u.Email)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?)`,
		stored.ID, stored.Email, stored.PasswordHash, string(stored.Role), formatTime(stored.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email %s: %w", stored.Email, domain.ErrConflict)
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return &stored, nil
}

// FindByID returns the user with the given ID.
func (s *UserStore) FindByID(ctx context.Context, id string) (*user.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row, "user "+id)
}

// FindByEmail returns the user registered under email.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`,
		user.NormalizeEmail(email))
	return scanUser(row, "user with email")
}

// Exists reports whether a user with the given ID is registered.
func (s *UserStore) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM users WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking user: %w", err)
	}
	return n > 0, nil
}

func scanUser(sc scanner, what string) (*user.User, error) {
	var (
		u         user.User
		role      string
		createdAt string
	)
	err := sc.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", what, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	u.Role = user.Role(role)
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &u, nil
}
