package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// CreateContactInput defines the data for a new delivery contact.
type CreateContactInput struct {
	City      string `json:"city"`
	Street    string `json:"street"`
	House     string `json:"house"`
	Structure string `json:"structure"`
	Building  string `json:"building"`
	Apartment string `json:"apartment"`
	Phone     string `json:"phone"`
}

// PatchContactInput defines a partial contact update. Nil fields are left
// untouched.
type PatchContactInput struct {
	City      *string `json:"city,omitempty"`
	Street    *string `json:"street,omitempty"`
	House     *string `json:"house,omitempty"`
	Structure *string `json:"structure,omitempty"`
	Building  *string `json:"building,omitempty"`
	Apartment *string `json:"apartment,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// ContactUsecase defines delivery contact operations, all scoped to the
// authenticated user.
type ContactUsecase interface {
	// GetContact retrieves the user's contact record.
	GetContact(ctx context.Context, userID uint) (*entity.Contact, error)

	// CreateContact stores the user's delivery contact.
	CreateContact(ctx context.Context, userID uint, input CreateContactInput) (*entity.Contact, error)

	// PatchContact partially updates the user's existing contact.
	PatchContact(ctx context.Context, userID uint, input PatchContactInput) (*entity.Contact, error)

	// DeleteContact removes the user's contact record.
	DeleteContact(ctx context.Context, userID uint) error
}
