package model

import (
	"time"
)

// OrderModel mirrors the 'orders' table. The partial unique index keeps a
// user to at most one order in the basket state.
type OrderModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;uniqueIndex:udx_orders_user_basket,where:status = 'basket'"`
	Status    string `gorm:"type:varchar(15);not null;default:basket"`
	ContactID *uint
	CreatedAt time.Time

	Contact *ContactModel    `gorm:"foreignKey:ContactID"`
	Items   []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. There is no unique index
// over (order, product, shop): repeated additions of the same pair stack up
// as separate lines.
type OrderItemModel struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"not null;index"`
	ProductID uint `gorm:"not null"`
	ShopID    uint `gorm:"not null"`
	Quantity  uint `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
