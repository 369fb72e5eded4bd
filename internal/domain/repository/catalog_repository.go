// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a listing query. Zero values mean "no filter".
type ProductFilter struct {
	ShopID    uint
	ProductID uint
}

// CatalogRepository defines persistence operations for the shared product
// dictionary and the per-shop listings built from partner feeds.
type CatalogRepository interface {
	// ListCategories retrieves every category.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// UpsertCategory creates or refreshes a category under its feed-supplied id.
	UpsertCategory(ctx context.Context, category *entity.Category) error

	// AddCategoryToShop associates a category with a shop. Adding an existing
	// association is a no-op.
	AddCategoryToShop(ctx context.Context, categoryID, shopID uint) error

	// GetOrCreateProduct upserts a product keyed by (name, category).
	GetOrCreateProduct(ctx context.Context, name string, categoryID uint) (*entity.Product, error)

	// DeleteProductInfoByShop removes every listing of a shop. Imports call
	// this first: a feed is a full catalog replacement, not a merge.
	DeleteProductInfoByShop(ctx context.Context, shopID uint) error

	// CreateProductInfo persists a fresh listing.
	CreateProductInfo(ctx context.Context, info *entity.ProductInfo) error

	// GetOrCreateParameter upserts a parameter dictionary entry by name.
	GetOrCreateParameter(ctx context.Context, name string) (*entity.Parameter, error)

	// CreateProductParameter binds a parameter value to a listing.
	CreateProductParameter(ctx context.Context, binding *entity.ProductParameter) error

	// ListProductInfo retrieves listings of accepting shops only, filtered by
	// shop and/or product, with parameters and product data attached.
	ListProductInfo(ctx context.Context, filter ProductFilter) ([]*entity.ProductInfo, error)

	// ProductInfoExists reports whether a shop lists a product, regardless
	// of the shop's accepting-orders state.
	ProductInfoExists(ctx context.Context, productID, shopID uint) (bool, error)

	// CountProductInfoByShop returns the number of listings a shop has.
	CountProductInfoByShop(ctx context.Context, shopID uint) (int64, error)
}
