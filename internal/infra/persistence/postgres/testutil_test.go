package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bazaar/internal/domain/entity"
	"bazaar/internal/infra/persistence/model"
)

// newTestDB opens an isolated in-memory database with the full schema.
// The repositories are plain GORM, so SQLite stands in for PostgreSQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

// seedUser inserts an active user and returns it.
func seedUser(t *testing.T, db *gorm.DB, email string, userType entity.UserType) *entity.User {
	t.Helper()

	user := &entity.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		Type:         userType,
		IsActive:     true,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

// seedShop inserts a shop owned by the given user.
func seedShop(t *testing.T, db *gorm.DB, name string, userID uint) *entity.Shop {
	t.Helper()

	shop, err := NewShopRepository(db).GetOrCreateByNameAndUser(context.Background(), name, userID)
	require.NoError(t, err)

	return shop
}

// seedListing inserts a category, product and listing for the shop and
// returns the listing.
func seedListing(t *testing.T, db *gorm.DB, shopID, categoryID uint, productName string, price int64, quantity uint) *entity.ProductInfo {
	t.Helper()

	ctx := context.Background()
	catalogRepo := NewCatalogRepository(db)

	require.NoError(t, catalogRepo.UpsertCategory(ctx, &entity.Category{ID: categoryID, Name: "Category"}))
	require.NoError(t, catalogRepo.AddCategoryToShop(ctx, categoryID, shopID))

	product, err := catalogRepo.GetOrCreateProduct(ctx, productName, categoryID)
	require.NoError(t, err)

	info := &entity.ProductInfo{
		ProductID: product.ID,
		ShopID:    shopID,
		Name:      productName,
		Quantity:  quantity,
		Price:     price,
	}
	require.NoError(t, catalogRepo.CreateProductInfo(ctx, info))

	return info
}
