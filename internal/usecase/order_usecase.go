package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// CheckoutInput identifies the basket order to place and the delivery
// contact to attach.
type CheckoutInput struct {
	OrderID   uint `json:"id"`
	ContactID uint `json:"contact"`
}

// OrderUsecase defines the buyer-side order lifecycle operations.
type OrderUsecase interface {
	// ListOrders retrieves the user's placed orders with computed totals.
	ListOrders(ctx context.Context, userID uint) ([]*entity.OrderWithTotal, error)

	// Checkout places the user's basket order and mails a status message
	// after the transaction commits.
	Checkout(ctx context.Context, userID uint, input CheckoutInput) error

	// Cancel reverts a placed order back to the basket state and mails a
	// status message after the transaction commits.
	Cancel(ctx context.Context, userID uint, orderID uint) error
}
