package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/feed"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// partnerService implements the PartnerUsecase interface.
type partnerService struct {
	txManager  repository.TransactionManager
	shopRepo   repository.ShopRepository
	orderRepo  repository.OrderRepository
	feedLoader service.FeedLoader
	logger     *slog.Logger
}

// PartnerServiceParams holds dependencies for partnerService, injected by Fx.
type PartnerServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ShopRepo   repository.ShopRepository
	OrderRepo  repository.OrderRepository
	FeedLoader service.FeedLoader
	Logger     *slog.Logger
}

// NewPartnerService is the constructor for partnerService.
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	return &partnerService{
		txManager:  params.TxManager,
		shopRepo:   params.ShopRepo,
		orderRepo:  params.OrderRepo,
		feedLoader: params.FeedLoader,
		logger:     params.Logger,
	}
}

func (srv *partnerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ImportFeed replaces the catalog of the user's shop with the document at
// the given URL. The fetch happens outside the transaction; the rebuild is
// atomic, so a failing import leaves the previous catalog intact.
func (srv *partnerService) ImportFeed(ctx context.Context, userID uint, rawURL string) (*usecase.ImportFeedOutput, error) {
	srv.log(ctx).Info("Starting feed import", slog.Any("userID", userID), slog.String("url", rawURL))

	parsed, err := srv.feedLoader.Load(ctx, rawURL)
	if err != nil {
		if errors.Is(err, feed.ErrInvalidURL) {
			return nil, domainerrors.ErrInvalidFeedURL
		}

		srv.log(ctx).Warn("Feed fetch failed", slog.String("url", rawURL), slog.Any("error", err))

		return nil, domainerrors.ErrFeedUnavailable.WrapMessage(err.Error())
	}

	var shop *entity.Shop
	listings := 0
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()
		catalogRepo := repoFactory.CatalogRepo()

		var shopErr error
		shop, shopErr = shopRepo.GetOrCreateByNameAndUser(ctx, parsed.ShopName, userID)
		if shopErr != nil {
			return shopErr
		}

		for _, category := range parsed.Categories {
			if upsertErr := catalogRepo.UpsertCategory(ctx, &entity.Category{
				ID:   category.ID,
				Name: category.Name,
			}); upsertErr != nil {
				return upsertErr
			}
			if linkErr := catalogRepo.AddCategoryToShop(ctx, category.ID, shop.ID); linkErr != nil {
				return linkErr
			}
		}

		// A feed is the full catalog: wipe the old listings first.
		if deleteErr := catalogRepo.DeleteProductInfoByShop(ctx, shop.ID); deleteErr != nil {
			return deleteErr
		}

		for _, good := range parsed.Goods {
			product, productErr := catalogRepo.GetOrCreateProduct(ctx, good.Name, good.CategoryID)
			if productErr != nil {
				return productErr
			}

			info := &entity.ProductInfo{
				ProductID: product.ID,
				ShopID:    shop.ID,
				Name:      good.Name,
				Model:     good.Model,
				Quantity:  good.Quantity,
				Price:     good.Price,
				PriceRRC:  good.PriceRRC,
			}
			if infoErr := catalogRepo.CreateProductInfo(ctx, info); infoErr != nil {
				return infoErr
			}
			listings++

			for name, value := range good.Parameters {
				parameter, parameterErr := catalogRepo.GetOrCreateParameter(ctx, name)
				if parameterErr != nil {
					return parameterErr
				}

				if bindErr := catalogRepo.CreateProductParameter(ctx, &entity.ProductParameter{
					ProductInfoID: info.ID,
					ParameterID:   parameter.ID,
					Value:         value,
				}); bindErr != nil {
					return bindErr
				}
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Feed import failed", slog.Any("userID", userID), slog.String("url", rawURL), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Feed import completed", slog.Any("shopID", shop.ID), slog.Int("listings", listings))

	return &usecase.ImportFeedOutput{Shop: shop, Listings: listings}, nil
}

// GetState retrieves the user's shop.
func (srv *partnerService) GetState(ctx context.Context, userID uint) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrShopNotFound) {
		return nil, domainerrors.ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shop")
	}

	return shop, nil
}

// SetState flips the accepting-orders flag of the user's shop.
func (srv *partnerService) SetState(ctx context.Context, userID uint, rawState string) error {
	state, ok := parseState(rawState)
	if !ok {
		return domainerrors.ErrValidationFailed.WrapMessage("state must be a boolean-like value")
	}

	err := srv.shopRepo.UpdateStatusByUserID(ctx, userID, state)
	if errors.Is(err, repository.ErrShopNotFound) {
		return domainerrors.ErrShopNotFound
	}

	return err
}

// ListShopOrders retrieves placed orders containing lines fulfilled by the
// user's shop, with computed totals.
func (srv *partnerService) ListShopOrders(ctx context.Context, userID uint) ([]*entity.OrderWithTotal, error) {
	return srv.orderRepo.ListShopOrdersWithTotal(ctx, userID)
}

// parseState accepts the boolean spellings partners actually send.
func parseState(raw string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	default:
		return false, false
	}
}
