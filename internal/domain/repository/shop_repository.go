// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrShopNotFound is returned when a shop is not found.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository defines shop persistence operations.
type ShopRepository interface {
	// ListShops retrieves every shop.
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// FindByUserID retrieves the shop owned by the given user.
	FindByUserID(ctx context.Context, userID uint) (*entity.Shop, error)

	// GetOrCreateByNameAndUser upserts the shop keyed by (name, owning user)
	// and returns it. An existing shop keeps its URL and status.
	GetOrCreateByNameAndUser(ctx context.Context, name string, userID uint) (*entity.Shop, error)

	// UpdateStatusByUserID flips the accepting-orders flag of the user's shop.
	UpdateStatusByUserID(ctx context.Context, userID uint, status bool) error
}
