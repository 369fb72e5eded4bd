package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// BasketItemInput identifies a (product, shop) pair with a quantity.
type BasketItemInput struct {
	ProductID uint `json:"product_id"`
	ShopID    uint `json:"shop_id"`
	Quantity  uint `json:"quantity"`
}

// BasketUsecase defines the cart operations of a buyer.
type BasketUsecase interface {
	// GetBasket retrieves the user's basket orders with computed totals.
	GetBasket(ctx context.Context, userID uint) ([]*entity.OrderWithTotal, error)

	// AddItems appends one line per given triple to the user's basket,
	// opening the basket first if needed. Every referenced product and
	// shop is checked before anything is inserted; one bad reference
	// fails the whole request. Duplicate triples produce separate lines.
	// Returns the number of lines created.
	AddItems(ctx context.Context, userID uint, items []BasketItemInput) (int, error)

	// UpdateItems overwrites the quantity of the basket lines matching
	// each (product, shop) pair. Returns the number of lines changed.
	UpdateItems(ctx context.Context, userID uint, items []BasketItemInput) (int, error)

	// RemoveItems deletes the basket lines matching each (product, shop)
	// pair. Returns the number of lines removed.
	RemoveItems(ctx context.Context, userID uint, items []BasketItemInput) (int, error)
}
