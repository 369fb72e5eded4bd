package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalogRepository implements the domain's CatalogRepository interface using
// GORM. It owns the shared dictionaries (categories, products, parameters)
// and the per-shop listing rows rebuilt on every feed import.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// ListCategories retrieves every category ordered by name.
func (repo *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, &entity.Category{
			ID:   categoryMs[i].ID,
			Name: categoryMs[i].Name,
		})
	}

	return categories, nil
}

// UpsertCategory creates or refreshes a category under its feed-supplied id.
// A later import may rename a category; the latest name wins.
func (repo *catalogRepository) UpsertCategory(ctx context.Context, category *entity.Category) error {
	categoryM := model.CategoryModel{ID: category.ID, Name: category.Name}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(&categoryM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert category")
	}

	return nil
}

// AddCategoryToShop associates a category with a shop. Re-adding an existing
// association is a no-op.
func (repo *catalogRepository) AddCategoryToShop(ctx context.Context, categoryID, shopID uint) error {
	linkM := model.CategoryShopModel{CategoryID: categoryID, ShopID: shopID}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&linkM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to link category to shop")
	}

	return nil
}

// GetOrCreateProduct upserts a product keyed by (name, category).
func (repo *catalogRepository) GetOrCreateProduct(ctx context.Context, name string, categoryID uint) (*entity.Product, error) {
	productM := model.ProductModel{Name: name, CategoryID: categoryID}
	err := repo.db.WithContext(ctx).
		Where("name = ? AND category_id = ?", name, categoryID).
		FirstOrCreate(&productM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get or create product")
	}

	return &entity.Product{
		ID:         productM.ID,
		Name:       productM.Name,
		CategoryID: productM.CategoryID,
	}, nil
}

// DeleteProductInfoByShop removes every listing of a shop. Feed imports call
// this first: a feed is a full catalog replacement, not a merge. Parameter
// bindings go with the listings via the cascade constraint, but SQLite in
// tests does not enforce cascades by default, so they get deleted explicitly.
func (repo *catalogRepository) DeleteProductInfoByShop(ctx context.Context, shopID uint) error {
	err := repo.db.WithContext(ctx).
		Where("product_info_id IN (?)", repo.db.WithContext(ctx).
			Model(&model.ProductInfoModel{}).
			Select("id").
			Where("shop_id = ?", shopID),
		).
		Delete(&model.ProductParameterModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product parameters")
	}

	err = repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Delete(&model.ProductInfoModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product infos")
	}

	return nil
}

// CreateProductInfo persists a fresh listing.
func (repo *catalogRepository) CreateProductInfo(ctx context.Context, info *entity.ProductInfo) error {
	infoM := model.ProductInfoModel{
		ProductID: info.ProductID,
		ShopID:    info.ShopID,
		Name:      info.Name,
		Model:     info.Model,
		Quantity:  info.Quantity,
		Price:     info.Price,
		PriceRRC:  info.PriceRRC,
	}

	if err := repo.db.WithContext(ctx).Create(&infoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("listing already exists for this shop")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product info")
	}

	info.ID = infoM.ID

	return nil
}

// GetOrCreateParameter upserts a parameter dictionary entry by name.
func (repo *catalogRepository) GetOrCreateParameter(ctx context.Context, name string) (*entity.Parameter, error) {
	parameterM := model.ParameterModel{Name: name}
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		FirstOrCreate(&parameterM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get or create parameter")
	}

	return &entity.Parameter{ID: parameterM.ID, Name: parameterM.Name}, nil
}

// CreateProductParameter binds a parameter value to a listing.
func (repo *catalogRepository) CreateProductParameter(ctx context.Context, binding *entity.ProductParameter) error {
	bindingM := model.ProductParameterModel{
		ProductInfoID: binding.ProductInfoID,
		ParameterID:   binding.ParameterID,
		Value:         binding.Value,
	}

	if err := repo.db.WithContext(ctx).Create(&bindingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product parameter")
	}

	binding.ID = bindingM.ID

	return nil
}

// ListProductInfo retrieves listings of accepting shops only, filtered by
// shop and/or product, with parameters attached.
func (repo *catalogRepository) ListProductInfo(ctx context.Context, filter repository.ProductFilter) ([]*entity.ProductInfo, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductInfoModel{}).
		Joins("JOIN shops ON shops.id = product_infos.shop_id").
		Where("shops.status = ?", true).
		Preload("Parameters.Parameter").
		Preload("Product")

	if filter.ShopID != 0 {
		query = query.Where("product_infos.shop_id = ?", filter.ShopID)
	}
	if filter.ProductID != 0 {
		query = query.Where("product_infos.product_id = ?", filter.ProductID)
	}

	var infoMs []model.ProductInfoModel
	if err := query.Order("product_infos.id").Find(&infoMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list product infos")
	}

	infos := make([]*entity.ProductInfo, 0, len(infoMs))
	for i := range infoMs {
		infos = append(infos, toProductInfoDomain(&infoMs[i]))
	}

	return infos, nil
}

// ProductInfoExists reports whether a shop lists a product. Unlike
// ListProductInfo it ignores the shop's accepting-orders flag, so basket
// references stay valid while a shop is closed.
func (repo *catalogRepository) ProductInfoExists(ctx context.Context, productID, shopID uint) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProductInfoModel{}).
		Where("product_id = ? AND shop_id = ?", productID, shopID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check product info existence")
	}

	return count > 0, nil
}

// CountProductInfoByShop returns the number of listings a shop has.
func (repo *catalogRepository) CountProductInfoByShop(ctx context.Context, shopID uint) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProductInfoModel{}).
		Where("shop_id = ?", shopID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count product infos")
	}

	return count, nil
}

// --- Mapper Functions ---

func toProductInfoDomain(data *model.ProductInfoModel) *entity.ProductInfo {
	if data == nil {
		return nil
	}

	parameters := make([]entity.ProductParameter, 0, len(data.Parameters))
	for _, binding := range data.Parameters {
		parameterName := ""
		if binding.Parameter != nil {
			parameterName = binding.Parameter.Name
		}

		parameters = append(parameters, entity.ProductParameter{
			ID:            binding.ID,
			ProductInfoID: binding.ProductInfoID,
			ParameterID:   binding.ParameterID,
			ParameterName: parameterName,
			Value:         binding.Value,
		})
	}

	var product *entity.Product
	if data.Product != nil {
		product = &entity.Product{
			ID:         data.Product.ID,
			Name:       data.Product.Name,
			CategoryID: data.Product.CategoryID,
		}
	}

	return &entity.ProductInfo{
		ID:         data.ID,
		ProductID:  data.ProductID,
		ShopID:     data.ShopID,
		Name:       data.Name,
		Model:      data.Model,
		Quantity:   data.Quantity,
		Price:      data.Price,
		PriceRRC:   data.PriceRRC,
		Product:    product,
		Parameters: parameters,
	}
}
