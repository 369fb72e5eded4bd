package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. It only reads, so
// everything runs outside transactions on the resolver's read path.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	shopRepo    repository.ShopRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	ShopRepo    repository.ShopRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		shopRepo:    params.ShopRepo,
		logger:      params.Logger,
	}
}

// ListShops retrieves every shop.
func (srv *catalogService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	return srv.shopRepo.ListShops(ctx)
}

// ListCategories retrieves every category.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return srv.catalogRepo.ListCategories(ctx)
}

// ListProducts retrieves listings from accepting shops, joined with their
// product, category and attribute values.
func (srv *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) ([]*usecase.ProductView, error) {
	infos, err := srv.catalogRepo.ListProductInfo(ctx, repository.ProductFilter{
		ShopID:    input.ShopID,
		ProductID: input.ProductID,
	})
	if err != nil {
		return nil, err
	}

	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories for product view")
	}
	categoryNames := make(map[uint]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	views := make([]*usecase.ProductView, 0, len(infos))
	for _, info := range infos {
		parameters := make(map[string]uint, len(info.Parameters))
		for _, binding := range info.Parameters {
			parameters[binding.ParameterName] = binding.Value
		}

		view := &usecase.ProductView{
			ID:          info.ID,
			ProductID:   info.ProductID,
			ProductName: info.Name,
			ShopID:      info.ShopID,
			Model:       info.Model,
			Quantity:    info.Quantity,
			Price:       info.Price,
			PriceRRC:    info.PriceRRC,
			Parameters:  parameters,
		}
		if info.Product != nil {
			view.ProductName = info.Product.Name
			view.CategoryID = info.Product.CategoryID
			view.CategoryName = categoryNames[info.Product.CategoryID]
		}

		views = append(views, view)
	}

	return views, nil
}
