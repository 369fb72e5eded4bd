package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// ImportFeedOutput summarizes what an import produced.
type ImportFeedOutput struct {
	Shop     *entity.Shop
	Listings int
}

// PartnerUsecase defines the shop-side operations. The delivery layer only
// routes shop-type identities here.
type PartnerUsecase interface {
	// ImportFeed replaces the catalog of the user's shop with the document
	// at the given URL. The import is atomic: on any failure the previous
	// catalog stays in place.
	ImportFeed(ctx context.Context, userID uint, rawURL string) (*ImportFeedOutput, error)

	// GetState retrieves the user's shop.
	GetState(ctx context.Context, userID uint) (*entity.Shop, error)

	// SetState flips the accepting-orders flag. The raw value is parsed
	// leniently: yes/no, true/false, on/off, 1/0 in any case.
	SetState(ctx context.Context, userID uint, rawState string) error

	// ListShopOrders retrieves placed orders containing lines fulfilled by
	// the user's shop, with computed totals.
	ListShopOrders(ctx context.Context, userID uint) ([]*entity.OrderWithTotal, error)
}
