package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// MinSecretLength is the minimum accepted HMAC signing key length.
const MinSecretLength = 32

const clockSkew = 30 * time.Second

// ErrWeakSecret is returned by NewTokenIssuer when the signing key is too
// short.
var ErrWeakSecret = fmt.Errorf("auth: jwt secret must be at least %d bytes", MinSecretLength)

// Compile-time check that TokenIssuer implements ports.TokenVerifier.
var _ ports.TokenVerifier = (*TokenIssuer)(nil)

type claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	key    []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// TokenOption configures a TokenIssuer.
type TokenOption func(*TokenIssuer)

// WithTokenClock overrides the time source. Intended for tests.
func WithTokenClock(now func() time.Time) TokenOption {
	return func(t *TokenIssuer) {
		t.now = now
	}
}

// NewTokenIssuer creates a TokenIssuer. Returns ErrWeakSecret if secret is
// shorter than MinSecretLength.
func NewTokenIssuer(secret string, ttl time.Duration, issuer string, opts ...TokenOption) (*TokenIssuer, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	t := &TokenIssuer{
		key:    []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Issue returns a signed token for u.
func (t *TokenIssuer) Issue(u *user.User) (string, error) {
	now := t.now()
	c := claims{
		UserID: u.ID,
		Role:   string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses token and returns the identity it carries. Every failure
// wraps domain.ErrUnauthorized.
func (t *TokenIssuer) Verify(token string) (user.Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{},
		func(*jwt.Token) (any, error) { return t.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return user.Identity{}, fmt.Errorf("token expired: %w", domain.ErrUnauthorized)
		}
		return user.Identity{}, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.UserID == "" {
		return user.Identity{}, fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}
	role, ok := user.ParseRole(c.Role)
	if !ok {
		return user.Identity{}, fmt.Errorf("invalid token role: %w", domain.ErrUnauthorized)
	}
	return user.Identity{UserID: c.UserID, Role: role}, nil
}
