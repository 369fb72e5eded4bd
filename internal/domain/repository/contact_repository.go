// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrContactNotFound is returned when a user has no contact record.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines contact persistence operations.
type ContactRepository interface {
	// FindByUserID retrieves the contact record of a user.
	FindByUserID(ctx context.Context, userID uint) (*entity.Contact, error)

	// FindByID retrieves a contact by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Contact, error)

	// Create persists a new contact for a user.
	Create(ctx context.Context, contact *entity.Contact) error

	// Update modifies an existing contact record.
	Update(ctx context.Context, contact *entity.Contact) error

	// DeleteByUserID removes the contact record of a user.
	DeleteByUserID(ctx context.Context, userID uint) error
}
