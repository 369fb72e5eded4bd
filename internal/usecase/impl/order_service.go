package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	mailer    service.Mailer
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Mailer    service.Mailer
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		mailer:    params.Mailer,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders retrieves the user's placed orders with computed totals.
func (srv *orderService) ListOrders(ctx context.Context, userID uint) ([]*entity.OrderWithTotal, error) {
	return srv.orderRepo.ListPlacedWithTotal(ctx, userID)
}

// Checkout places the user's basket order, attaching the delivery contact.
// The status mail goes out only after the transaction has committed.
func (srv *orderService) Checkout(ctx context.Context, userID uint, input usecase.CheckoutInput) error {
	if input.OrderID == 0 || input.ContactID == 0 {
		return domainerrors.ErrMissingArguments
	}

	var ownerEmail string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, findErr := orderRepo.FindByIDForUser(ctx, input.OrderID, userID)
		if errors.Is(findErr, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load order for checkout")
		}

		if order.Status == entity.OrderStatusPlaced {
			return domainerrors.ErrOrderAlreadyPlaced
		}

		contact, contactErr := repoFactory.ContactRepo().FindByID(ctx, input.ContactID)
		if errors.Is(contactErr, repository.ErrContactNotFound) {
			return domainerrors.ErrContactNotFound
		}
		if contactErr != nil {
			return errors.Wrap(contactErr, "failed to load contact for checkout")
		}
		// Only the buyer's own contact may be attached.
		if contact.UserID != userID {
			return domainerrors.ErrContactNotFound
		}

		user, userErr := repoFactory.UserRepo().FindByID(ctx, userID)
		if userErr != nil {
			return errors.Wrap(userErr, "failed to load user for checkout")
		}
		ownerEmail = user.Email

		contactID := contact.ID

		return orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusPlaced, &contactID)
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("userID", userID), slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return err
	}

	srv.notify(ctx, ownerEmail, input.OrderID, "Order placed", entity.OrderStatusPlaced.String())

	return nil
}

// Cancel reverts a placed order back to the basket state, detaching its
// contact, and mails a status message after commit.
func (srv *orderService) Cancel(ctx context.Context, userID uint, orderID uint) error {
	if orderID == 0 {
		return domainerrors.ErrMissingArguments
	}

	var ownerEmail string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, findErr := orderRepo.FindByIDForUser(ctx, orderID, userID)
		if errors.Is(findErr, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load order for cancellation")
		}

		if order.Status != entity.OrderStatusPlaced {
			return domainerrors.ErrOrderAlreadyBasket
		}

		user, userErr := repoFactory.UserRepo().FindByID(ctx, userID)
		if userErr != nil {
			return errors.Wrap(userErr, "failed to load user for cancellation")
		}
		ownerEmail = user.Email

		return orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusBasket, nil)
	})
	if err != nil {
		srv.log(ctx).Warn("Cancellation failed", slog.Any("userID", userID), slog.Any("orderID", orderID), slog.Any("error", err))

		return err
	}

	srv.notify(ctx, ownerEmail, orderID, "Order cancelled", entity.OrderStatusBasket.String())

	return nil
}

// notify sends an order status mail. Failures are logged, never surfaced:
// the state change has already committed.
func (srv *orderService) notify(ctx context.Context, email string, orderID uint, subject, status string) {
	if email == "" {
		return
	}

	body := fmt.Sprintf("Status of order %d: %s", orderID, status)
	if err := srv.mailer.Send(ctx, subject, body, []string{email}); err != nil {
		srv.log(ctx).Error("Failed to send order status mail", slog.String("email", email), slog.Any("orderID", orderID), slog.Any("error", err))
	}
}
