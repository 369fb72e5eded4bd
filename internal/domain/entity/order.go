// Package entity contains the core business objects of the project.
package entity

import "time"

// OrderStatus is the lifecycle state of an Order.
type OrderStatus string

const (
	// OrderStatusBasket is the mutable cart state. A user has at most one
	// order in this state at any time.
	OrderStatusBasket OrderStatus = "basket"
	// OrderStatusPlaced is the submitted state. The buyer can only cancel
	// it back to the basket state.
	OrderStatusPlaced OrderStatus = "order"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// Order is the aggregate root for a purchase: the basket while it is being
// assembled, the placed order after checkout.
type Order struct {
	ID        uint        // Numeric identifier of the order.
	UserID    uint        // The buyer who owns this order.
	Status    OrderStatus // Current lifecycle state.
	ContactID *uint       // Delivery contact, attached at checkout.
	CreatedAt time.Time   // Timestamp of when this order was opened.

	Items []OrderItem // The order's line items.
}

// OrderItem is a line of an order: a product fulfilled by a concrete shop.
// Duplicate (product, shop) lines are allowed and kept separate.
type OrderItem struct {
	ID        uint // Numeric identifier of the line.
	OrderID   uint // The owning order.
	ProductID uint // The ordered product.
	ShopID    uint // The shop fulfilling this line.
	Quantity  uint // Ordered quantity.
}

// OrderWithTotal is the read model for order listings: the order plus its
// monetary total, computed from the shops' current listings rather than
// stored on the row.
type OrderWithTotal struct {
	Order
	TotalSum int64 // Sum of quantity times the matching listing price.
}
