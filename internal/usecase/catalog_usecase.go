package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// ProductView is the public listing row: the per-shop offer joined with its
// product, category and attribute values.
type ProductView struct {
	ID           uint            `json:"id"`
	ProductID    uint            `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CategoryID   uint            `json:"category_id"`
	CategoryName string          `json:"category_name"`
	ShopID       uint            `json:"shop_id"`
	Model        string          `json:"model"`
	Quantity     uint            `json:"quantity"`
	Price        int64           `json:"price"`
	PriceRRC     *int64          `json:"price_rrc,omitempty"`
	Parameters   map[string]uint `json:"parameters"`
}

// ListProductsInput narrows the public product listing. Zero values mean
// "no filter".
type ListProductsInput struct {
	ShopID    uint
	ProductID uint
}

// CatalogUsecase defines the public, unauthenticated read views over the
// imported catalogs.
type CatalogUsecase interface {
	// ListShops retrieves every shop.
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// ListCategories retrieves every category.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListProducts retrieves listings from accepting shops only.
	ListProducts(ctx context.Context, input ListProductsInput) ([]*ProductView, error)
}
