// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence operations for orders and their lines.
// Listings return OrderWithTotal aggregates whose totals are computed by the
// store, joining each line to the fulfilling shop's current listing price.
type OrderRepository interface {
	// GetOrCreateBasket returns the user's basket order, opening one if
	// none exists. Uniqueness of the basket is enforced by the store.
	GetOrCreateBasket(ctx context.Context, userID uint) (*entity.Order, error)

	// FindByIDForUser retrieves an order owned by the given user.
	FindByIDForUser(ctx context.Context, orderID, userID uint) (*entity.Order, error)

	// UpdateStatus sets the lifecycle state of an order, attaching or
	// detaching the delivery contact alongside.
	UpdateStatus(ctx context.Context, orderID uint, status entity.OrderStatus, contactID *uint) error

	// CreateItem appends a line to an order. Duplicate (product, shop)
	// lines are kept separate.
	CreateItem(ctx context.Context, item *entity.OrderItem) error

	// UpdateItemQuantity overwrites the quantity of every line of the order
	// matching (product, shop) and reports how many lines changed.
	UpdateItemQuantity(ctx context.Context, orderID, productID, shopID, quantity uint) (int64, error)

	// DeleteItems removes every line of the order matching (product, shop)
	// and reports how many lines were removed.
	DeleteItems(ctx context.Context, orderID, productID, shopID uint) (int64, error)

	// ListBasketsWithTotal retrieves the user's basket orders with items
	// and computed totals.
	ListBasketsWithTotal(ctx context.Context, userID uint) ([]*entity.OrderWithTotal, error)

	// ListPlacedWithTotal retrieves the user's non-basket orders with items
	// and computed totals.
	ListPlacedWithTotal(ctx context.Context, userID uint) ([]*entity.OrderWithTotal, error)

	// ListShopOrdersWithTotal retrieves non-basket orders containing at
	// least one line fulfilled by the shop owned by the given user.
	ListShopOrdersWithTotal(ctx context.Context, shopUserID uint) ([]*entity.OrderWithTotal, error)
}
