// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/task, domain/user).
// This root package holds sentinel errors and the validation error type that
// every layer maps or wraps.
package domain
