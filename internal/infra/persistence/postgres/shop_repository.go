package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shopRepository implements the domain's ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// ListShops retrieves every shop ordered by name.
func (repo *shopRepository) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	var shopMs []model.ShopModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&shopMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopMs))
	for i := range shopMs {
		shops = append(shops, toShopDomain(&shopMs[i]))
	}

	return shops, nil
}

// FindByUserID retrieves the shop owned by the given user.
func (repo *shopRepository) FindByUserID(ctx context.Context, userID uint) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by user id")
	}

	return toShopDomain(&shopM), nil
}

// GetOrCreateByNameAndUser upserts the shop keyed by (name, owning user).
// An existing shop keeps its URL and accepting-orders status.
func (repo *shopRepository) GetOrCreateByNameAndUser(ctx context.Context, name string, userID uint) (*entity.Shop, error) {
	shopM := model.ShopModel{Name: name, UserID: &userID, Status: true}
	err := repo.db.WithContext(ctx).
		Where("name = ? AND user_id = ?", name, userID).
		FirstOrCreate(&shopM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrConflict.WrapMessage("shop name already taken")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get or create shop")
	}

	return toShopDomain(&shopM), nil
}

// UpdateStatusByUserID flips the accepting-orders flag of the user's shop.
func (repo *shopRepository) UpdateStatusByUserID(ctx context.Context, userID uint, status bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("user_id = ?", userID).
		Update("status", status)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:     data.ID,
		Name:   data.Name,
		URL:    data.URL,
		UserID: data.UserID,
		Status: data.Status,
	}
}
