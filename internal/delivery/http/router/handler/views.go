package handler

import (
	"time"

	"bazaar/internal/domain/entity"
)

// The view types below shape domain entities for JSON responses. Entities
// stay transport-free; handlers map them right before writing the envelope.

// UserView is the public projection of an account.
type UserView struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Type      string `json:"type"`
}

func toUserView(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	return &UserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Company:   u.Company,
		Position:  u.Position,
		Type:      string(u.Type),
	}
}

// ShopView is the public projection of a storefront.
type ShopView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	State bool   `json:"state"`
}

func toShopView(s *entity.Shop) *ShopView {
	if s == nil {
		return nil
	}

	return &ShopView{
		ID:    s.ID,
		Name:  s.Name,
		URL:   s.URL,
		State: s.Status,
	}
}

func toShopViews(shops []*entity.Shop) []*ShopView {
	views := make([]*ShopView, 0, len(shops))
	for _, s := range shops {
		views = append(views, toShopView(s))
	}

	return views
}

// CategoryView is the public projection of a category.
type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toCategoryViews(categories []*entity.Category) []*CategoryView {
	views := make([]*CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, &CategoryView{ID: c.ID, Name: c.Name})
	}

	return views
}

// ContactView is the projection of a delivery contact.
type ContactView struct {
	ID        uint   `json:"id"`
	City      string `json:"city"`
	Street    string `json:"street"`
	House     string `json:"house"`
	Structure string `json:"structure,omitempty"`
	Building  string `json:"building,omitempty"`
	Apartment string `json:"apartment,omitempty"`
	Phone     string `json:"phone"`
}

func toContactView(c *entity.Contact) *ContactView {
	if c == nil {
		return nil
	}

	return &ContactView{
		ID:        c.ID,
		City:      c.City,
		Street:    c.Street,
		House:     c.House,
		Structure: c.Structure,
		Building:  c.Building,
		Apartment: c.Apartment,
		Phone:     c.Phone,
	}
}

// OrderItemView is a single line of an order.
type OrderItemView struct {
	ID        uint `json:"id"`
	ProductID uint `json:"product_id"`
	ShopID    uint `json:"shop_id"`
	Quantity  uint `json:"quantity"`
}

// OrderView is an order together with its computed total.
type OrderView struct {
	ID        uint            `json:"id"`
	Status    string          `json:"status"`
	ContactID *uint           `json:"contact,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []OrderItemView `json:"items"`
	TotalSum  int64           `json:"total_sum"`
}

func toOrderView(o *entity.OrderWithTotal) *OrderView {
	items := make([]OrderItemView, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			ShopID:    item.ShopID,
			Quantity:  item.Quantity,
		})
	}

	return &OrderView{
		ID:        o.ID,
		Status:    o.Status.String(),
		ContactID: o.ContactID,
		CreatedAt: o.CreatedAt,
		Items:     items,
		TotalSum:  o.TotalSum,
	}
}

func toOrderViews(orders []*entity.OrderWithTotal) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}

	return views
}
