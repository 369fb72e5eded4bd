package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"go.uber.org/fx"
)

// basketService implements the BasketUsecase interface.
type basketService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// BasketServiceParams holds dependencies for basketService, injected by Fx.
type BasketServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewBasketService is the constructor for basketService.
func NewBasketService(params BasketServiceParams) usecase.BasketUsecase {
	return &basketService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *basketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetBasket retrieves the user's basket orders with computed totals.
func (srv *basketService) GetBasket(ctx context.Context, userID uint) ([]*entity.OrderWithTotal, error) {
	return srv.orderRepo.ListBasketsWithTotal(ctx, userID)
}

// AddItems appends one line per triple to the user's basket. The whole item
// set is validated before the first insert, so one bad reference fails the
// request without creating anything. Duplicate triples stack as separate
// lines rather than merging.
func (srv *basketService) AddItems(ctx context.Context, userID uint, items []usecase.BasketItemInput) (int, error) {
	if len(items) == 0 {
		return 0, domainerrors.ErrMissingArguments
	}

	created := 0
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		catalogRepo := repoFactory.CatalogRepo()

		for _, item := range items {
			if item.ProductID == 0 || item.ShopID == 0 || item.Quantity == 0 {
				return domainerrors.ErrValidationFailed.WrapMessage("basket item needs product, shop and a positive quantity")
			}

			exists, existsErr := catalogRepo.ProductInfoExists(ctx, item.ProductID, item.ShopID)
			if existsErr != nil {
				return existsErr
			}
			if !exists {
				return domainerrors.ErrValidationFailed.WrapMessage(
					fmt.Sprintf("product %d is not offered by shop %d", item.ProductID, item.ShopID))
			}
		}

		basket, basketErr := orderRepo.GetOrCreateBasket(ctx, userID)
		if basketErr != nil {
			return basketErr
		}

		for _, item := range items {
			if createErr := orderRepo.CreateItem(ctx, &entity.OrderItem{
				OrderID:   basket.ID,
				ProductID: item.ProductID,
				ShopID:    item.ShopID,
				Quantity:  item.Quantity,
			}); createErr != nil {
				return createErr
			}
			created++
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add basket items", slog.Any("userID", userID), slog.Any("error", err))

		return 0, err
	}

	return created, nil
}

// UpdateItems overwrites the quantity of basket lines matching each
// (product, shop) pair and reports how many lines changed.
func (srv *basketService) UpdateItems(ctx context.Context, userID uint, items []usecase.BasketItemInput) (int, error) {
	if len(items) == 0 {
		return 0, domainerrors.ErrMissingArguments
	}

	updated := int64(0)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		basket, basketErr := orderRepo.GetOrCreateBasket(ctx, userID)
		if basketErr != nil {
			return basketErr
		}

		for _, item := range items {
			if item.Quantity == 0 {
				return domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
			}

			count, updateErr := orderRepo.UpdateItemQuantity(ctx, basket.ID, item.ProductID, item.ShopID, item.Quantity)
			if updateErr != nil {
				return updateErr
			}
			updated += count
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return int(updated), nil
}

// RemoveItems deletes basket lines matching each (product, shop) pair and
// reports how many lines were removed.
func (srv *basketService) RemoveItems(ctx context.Context, userID uint, items []usecase.BasketItemInput) (int, error) {
	if len(items) == 0 {
		return 0, domainerrors.ErrMissingArguments
	}

	removed := int64(0)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		basket, basketErr := orderRepo.GetOrCreateBasket(ctx, userID)
		if basketErr != nil {
			return basketErr
		}

		for _, item := range items {
			count, deleteErr := orderRepo.DeleteItems(ctx, basket.ID, item.ProductID, item.ShopID)
			if deleteErr != nil {
				return deleteErr
			}
			removed += count
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return int(removed), nil
}
