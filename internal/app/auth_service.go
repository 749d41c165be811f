package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

var errInvalidCredentials = fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)

// AuthService implements ports.AuthService on top of a UserStore.
type AuthService struct {
	users  ports.UserStore
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewAuthService creates an AuthService. A nil logger discards output.
func NewAuthService(users ports.UserStore, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Register creates a user with a hashed password. An empty role means USER.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	email := user.NormalizeEmail(in.Email)

	fields := make(map[string]string)
	if email == "" {
		fields["email"] = domain.MsgRequired
	}
	if in.Password == "" {
		fields["password"] = domain.MsgRequired
	}
	role := in.Role
	if role == "" {
		role = user.RoleUser
	}
	if !role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", in.Role)
	}
	if err := domain.FieldErrors(fields); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	created, err := s.users.Create(ctx, &user.User{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if !errors.Is(err, domain.ErrConflict) {
			s.logger.ErrorContext(ctx, "failed to register user",
				slog.String("operation", "Register"),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID),
		slog.String("role", created.Role.String()),
	)
	return s.result(created)
}

// Login checks credentials. Unknown emails and wrong passwords fail the
// same way.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	u, err := s.users.FindByEmail(ctx, user.NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, in.Password); err != nil {
		s.logger.WarnContext(ctx, "login rejected", slog.String("user_id", u.ID))
		return nil, errInvalidCredentials
	}

	return s.result(u)
}

func (s *AuthService) result(u *user.User) (*ports.AuthResult, error) {
	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &ports.AuthResult{User: u, Token: token}, nil
}
