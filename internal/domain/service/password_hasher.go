// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// IdentityHints carries the user-supplied identity fields a password must
// not resemble.
type IdentityHints struct {
	FirstName string
	LastName  string
	Email     string
}

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool

	// ValidatePasswordStrength applies the configured strength policy.
	// Hints allow rejecting passwords too similar to the user's own data.
	ValidatePasswordStrength(password string, hints IdentityHints) error
}
