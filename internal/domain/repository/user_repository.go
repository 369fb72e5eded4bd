// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrConfirmTokenNotFound is returned when no confirmation token matches
	// the given email and key pair.
	ErrConfirmTokenNotFound = errors.New("confirm email token not found")
	// ErrAccessTokenNotFound is returned when a bearer key is unknown.
	ErrAccessTokenNotFound = errors.New("access token not found")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}

// TokenRepository defines operations for both kinds of opaque tokens.
type TokenRepository interface {
	// CreateConfirmToken persists a freshly generated confirmation token.
	CreateConfirmToken(ctx context.Context, token *entity.ConfirmEmailToken) error

	// FindConfirmToken retrieves the token matching the (email, key) pair.
	FindConfirmToken(ctx context.Context, email, key string) (*entity.ConfirmEmailToken, error)

	// DeleteConfirmTokensByUserID removes every confirmation token of a user.
	// Called after a successful confirmation so stale keys cannot be replayed.
	DeleteConfirmTokensByUserID(ctx context.Context, userID uint) error

	// CountConfirmTokensByUserID returns how many confirmation tokens a user has.
	CountConfirmTokensByUserID(ctx context.Context, userID uint) (int64, error)

	// GetOrCreateAccessToken returns the user's bearer credential, creating it
	// with the supplied key when the user has none yet. The stored key wins
	// over the supplied one, so repeated logins reuse the same token.
	GetOrCreateAccessToken(ctx context.Context, userID uint, key string) (*entity.AccessToken, error)

	// FindAccessTokenByKey resolves a bearer key back to its token record.
	FindAccessTokenByKey(ctx context.Context, key string) (*entity.AccessToken, error)
}
