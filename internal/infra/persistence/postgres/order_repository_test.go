package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/internal/domain/entity"
)

func TestOrderRepository_GetOrCreateBasketIsIdempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	buyer := seedUser(t, db, "buyer@example.com", entity.UserTypeBuyer)

	first, err := repo.GetOrCreateBasket(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusBasket, first.Status)

	second, err := repo.GetOrCreateBasket(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestOrderRepository_DuplicateLinesStack(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	buyer := seedUser(t, db, "buyer@example.com", entity.UserTypeBuyer)
	shopUser := seedUser(t, db, "shop@example.com", entity.UserTypeShop)
	shop := seedShop(t, db, "Gadgets", shopUser.ID)
	info := seedListing(t, db, shop.ID, 1, "iPhone", 110000, 10)

	basket, err := repo.GetOrCreateBasket(ctx, buyer.ID)
	require.NoError(t, err)

	for range 2 {
		require.NoError(t, repo.CreateItem(ctx, &entity.OrderItem{
			OrderID:   basket.ID,
			ProductID: info.ProductID,
			ShopID:    shop.ID,
			Quantity:  1,
		}))
	}

	reloaded, err := repo.GetOrCreateBasket(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Items, 2)

	// Quantity updates and removals sweep every matching line at once.
	changed, err := repo.UpdateItemQuantity(ctx, basket.ID, info.ProductID, shop.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), changed)

	removed, err := repo.DeleteItems(ctx, basket.ID, info.ProductID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func TestOrderRepository_TotalsJoinOnProductAndShop(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	buyer := seedUser(t, db, "buyer@example.com", entity.UserTypeBuyer)

	userA := seedUser(t, db, "a@example.com", entity.UserTypeShop)
	shopA := seedShop(t, db, "A", userA.ID)
	infoA := seedListing(t, db, shopA.ID, 1, "iPhone", 110000, 10)

	// The same product listed cheaper by another shop must not leak into
	// the total of a line fulfilled by shop A.
	userB := seedUser(t, db, "b@example.com", entity.UserTypeShop)
	shopB := seedShop(t, db, "B", userB.ID)
	cheaper := seedListing(t, db, shopB.ID, 1, "iPhone", 90000, 10)
	require.Equal(t, infoA.ProductID, cheaper.ProductID)

	basket, err := repo.GetOrCreateBasket(ctx, buyer.ID)
	require.NoError(t, err)
	require.NoError(t, repo.CreateItem(ctx, &entity.OrderItem{
		OrderID:   basket.ID,
		ProductID: infoA.ProductID,
		ShopID:    shopA.ID,
		Quantity:  3,
	}))

	baskets, err := repo.ListBasketsWithTotal(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, baskets, 1)
	assert.Equal(t, int64(3*110000), baskets[0].TotalSum)
}

func TestOrderRepository_StatusTransitionsAndListings(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewOrderRepository(db)
	contactRepo := NewContactRepository(db)
	ctx := context.Background()

	buyer := seedUser(t, db, "buyer@example.com", entity.UserTypeBuyer)
	shopUser := seedUser(t, db, "shop@example.com", entity.UserTypeShop)
	shop := seedShop(t, db, "Gadgets", shopUser.ID)
	info := seedListing(t, db, shop.ID, 1, "iPhone", 110000, 10)

	contact := &entity.Contact{UserID: buyer.ID, City: "SPb", Street: "Nevsky", Phone: "+700"}
	require.NoError(t, contactRepo.Create(ctx, contact))

	basket, err := repo.GetOrCreateBasket(ctx, buyer.ID)
	require.NoError(t, err)
	require.NoError(t, repo.CreateItem(ctx, &entity.OrderItem{
		OrderID:   basket.ID,
		ProductID: info.ProductID,
		ShopID:    shop.ID,
		Quantity:  2,
	}))

	require.NoError(t, repo.UpdateStatus(ctx, basket.ID, entity.OrderStatusPlaced, &contact.ID))

	placed, err := repo.ListPlacedWithTotal(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, placed, 1)
	assert.Equal(t, entity.OrderStatusPlaced, placed[0].Status)
	require.NotNil(t, placed[0].ContactID)
	assert.Equal(t, contact.ID, *placed[0].ContactID)
	assert.Equal(t, int64(2*110000), placed[0].TotalSum)

	baskets, err := repo.ListBasketsWithTotal(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, baskets)

	// The fulfilling shop sees the placed order, other shops do not.
	shopOrders, err := repo.ListShopOrdersWithTotal(ctx, shopUser.ID)
	require.NoError(t, err)
	require.Len(t, shopOrders, 1)
	assert.Equal(t, placed[0].ID, shopOrders[0].ID)

	otherUser := seedUser(t, db, "other@example.com", entity.UserTypeShop)
	seedShop(t, db, "Other", otherUser.ID)
	otherOrders, err := repo.ListShopOrdersWithTotal(ctx, otherUser.ID)
	require.NoError(t, err)
	assert.Empty(t, otherOrders)

	// Cancelling detaches the contact and returns the order to the basket.
	require.NoError(t, repo.UpdateStatus(ctx, basket.ID, entity.OrderStatusBasket, nil))

	reloaded, err := repo.FindByIDForUser(ctx, basket.ID, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusBasket, reloaded.Status)
	assert.Nil(t, reloaded.ContactID)
}

func TestOrderRepository_FindByIDForUserScopesOwnership(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", entity.UserTypeBuyer)
	stranger := seedUser(t, db, "stranger@example.com", entity.UserTypeBuyer)

	basket, err := repo.GetOrCreateBasket(ctx, owner.ID)
	require.NoError(t, err)

	_, err = repo.FindByIDForUser(ctx, basket.ID, stranger.ID)
	assert.Error(t, err)
}
