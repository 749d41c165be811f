// Package user holds the User entity and the request identity derived from it.
package user

import (
	"context"
	"strings"
	"time"
)

// Role controls what a user may do with tasks owned by others.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// ParseRole converts a case-insensitive role name. The boolean is false for
// unknown names.
func ParseRole(raw string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(raw)))
	return r, r.IsValid()
}

// User is a registered account. PasswordHash is opaque outside the auth
// package.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// NormalizeEmail lower-cases and trims an email so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the caller holds the ADMIN role.
func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

// CanAccess reports whether the caller may act on resources owned by ownerID.
func (id Identity) CanAccess(ownerID string) bool {
	return id.IsAdmin() || id.UserID == ownerID
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying the caller identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom extracts the caller identity from ctx.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
