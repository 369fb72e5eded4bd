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

// orderRepository implements the domain's OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// GetOrCreateBasket returns the user's basket order, opening one if none
// exists. The partial unique index on (user_id) where status = 'basket'
// backs this up under concurrent requests.
func (repo *orderRepository) GetOrCreateBasket(ctx context.Context, userID uint) (*entity.Order, error) {
	orderM := model.OrderModel{
		UserID: userID,
		Status: entity.OrderStatusBasket.String(),
	}
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, entity.OrderStatusBasket.String()).
		Preload("Items").
		FirstOrCreate(&orderM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get or create basket")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUser retrieves an order owned by the given user.
func (repo *orderRepository) FindByIDForUser(ctx context.Context, orderID, userID uint) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateStatus sets the lifecycle state of an order, attaching or detaching
// the delivery contact alongside.
func (repo *orderRepository) UpdateStatus(ctx context.Context, orderID uint, status entity.OrderStatus, contactID *uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"status":     status.String(),
			"contact_id": contactID,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// CreateItem appends a line to an order. Duplicate (product, shop) lines are
// kept separate.
func (repo *orderRepository) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	itemM := model.OrderItemModel{
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		ShopID:    item.ShopID,
		Quantity:  item.Quantity,
	}

	if err := repo.db.WithContext(ctx).Create(&itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order item")
	}

	item.ID = itemM.ID

	return nil
}

// UpdateItemQuantity overwrites the quantity of every line of the order
// matching (product, shop) and reports how many lines changed.
func (repo *orderRepository) UpdateItemQuantity(ctx context.Context, orderID, productID, shopID, quantity uint) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("order_id = ? AND product_id = ? AND shop_id = ?", orderID, productID, shopID).
		Update("quantity", quantity)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update item quantity")
	}

	return result.RowsAffected, nil
}

// DeleteItems removes every line of the order matching (product, shop) and
// reports how many lines were removed.
func (repo *orderRepository) DeleteItems(ctx context.Context, orderID, productID, shopID uint) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ? AND shop_id = ?", orderID, productID, shopID).
		Delete(&model.OrderItemModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order items")
	}

	return result.RowsAffected, nil
}

// ListBasketsWithTotal retrieves the user's basket orders with items and
// computed totals.
func (repo *orderRepository) ListBasketsWithTotal(ctx context.Context, userID uint) ([]*entity.OrderWithTotal, error) {
	return repo.listWithTotal(ctx, repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, entity.OrderStatusBasket.String()))
}

// ListPlacedWithTotal retrieves the user's non-basket orders with items and
// computed totals.
func (repo *orderRepository) ListPlacedWithTotal(ctx context.Context, userID uint) ([]*entity.OrderWithTotal, error) {
	return repo.listWithTotal(ctx, repo.db.WithContext(ctx).
		Where("user_id = ? AND status <> ?", userID, entity.OrderStatusBasket.String()))
}

// ListShopOrdersWithTotal retrieves non-basket orders containing at least one
// line fulfilled by the shop owned by the given user.
func (repo *orderRepository) ListShopOrdersWithTotal(ctx context.Context, shopUserID uint) ([]*entity.OrderWithTotal, error) {
	itemOrders := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Select("order_items.order_id").
		Joins("JOIN shops ON shops.id = order_items.shop_id").
		Where("shops.user_id = ?", shopUserID)

	return repo.listWithTotal(ctx, repo.db.WithContext(ctx).
		Where("status <> ?", entity.OrderStatusBasket.String()).
		Where("id IN (?)", itemOrders))
}

// listWithTotal loads the orders matched by the query, then computes their
// totals in one grouped query joining each line to the fulfilling shop's
// current listing price. Lines without a matching listing contribute zero.
func (repo *orderRepository) listWithTotal(ctx context.Context, query *gorm.DB) ([]*entity.OrderWithTotal, error) {
	var orderMs []model.OrderModel
	if err := query.Preload("Items").Order("id").Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	if len(orderMs) == 0 {
		return []*entity.OrderWithTotal{}, nil
	}

	orderIDs := make([]uint, 0, len(orderMs))
	for i := range orderMs {
		orderIDs = append(orderIDs, orderMs[i].ID)
	}

	type orderTotal struct {
		OrderID  uint
		TotalSum int64
	}

	var totals []orderTotal
	err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Select("order_items.order_id AS order_id, COALESCE(SUM(order_items.quantity * product_infos.price), 0) AS total_sum").
		Joins("JOIN product_infos ON product_infos.product_id = order_items.product_id AND product_infos.shop_id = order_items.shop_id").
		Where("order_items.order_id IN ?", orderIDs).
		Group("order_items.order_id").
		Scan(&totals).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute order totals")
	}

	totalByOrder := make(map[uint]int64, len(totals))
	for _, t := range totals {
		totalByOrder[t.OrderID] = t.TotalSum
	}

	orders := make([]*entity.OrderWithTotal, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, &entity.OrderWithTotal{
			Order:    *toOrderDomain(&orderMs[i]),
			TotalSum: totalByOrder[orderMs[i].ID],
		})
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			ShopID:    itemM.ShopID,
			Quantity:  itemM.Quantity,
		})
	}

	return &entity.Order{
		ID:        data.ID,
		UserID:    data.UserID,
		Status:    entity.OrderStatus(data.Status),
		ContactID: data.ContactID,
		CreatedAt: data.CreatedAt,
		Items:     items,
	}
}
