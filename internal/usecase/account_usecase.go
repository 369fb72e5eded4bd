// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Company   string          `json:"company"`
	Position  string          `json:"position"`
	Type      entity.UserType `json:"type"`
}

// ConfirmInput defines the email and token pair that activates an account.
type ConfirmInput struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the bearer token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates an inactive account and mails a confirmation token.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Confirm activates the account matching the email and token pair.
	Confirm(ctx context.Context, input ConfirmInput) error

	// Login verifies the credentials and returns the user's bearer token.
	// The same token is handed out on every successful login.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Authenticate resolves a bearer key to the identity of its active
	// owner. Unknown keys and inactive owners fail the same way.
	Authenticate(ctx context.Context, key string) (entity.Identity, error)
}
