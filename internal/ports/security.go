package ports

import "github.com/jsamuelsen11/go-task-service/internal/domain/user"

// PasswordHasher hashes and verifies user passwords.
// Implemented by the auth platform package; called by AuthService.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Compare returns nil if password matches hash.
	Compare(hash, password string) error
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	// Issue returns a signed token carrying the user's ID and role.
	Issue(u *user.User) (string, error)
}
