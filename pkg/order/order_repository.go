package order

import (
	"context"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrders(ctx context.Context, f Filter) ([]entities.Order, int64, error)
		UpdateStatus(ctx context.Context, order *entities.Order, status string) (bool, error)
		CreateHistory(ctx context.Context, history *entities.OrderHistory) error
		GetHistory(ctx context.Context, orderID string) ([]entities.OrderHistory, error)
	}

	// Filter selects orders by customer (user_id) or chef (to_id).
	Filter struct {
		Column string
		UserID string
		Status string
		Sort   string
		Page   domain.PaginationRequest
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{
		db: db,
	}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Chef").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrders(ctx context.Context, f Filter) ([]entities.Order, int64, error) {
	var (
		orders []entities.Order
		count  int64
	)

	column := "user_id"
	if f.Column == "to_id" {
		column = "to_id"
	}

	q := r.db.WithContext(ctx).Model(&entities.Order{}).Where(column+" = ?", f.UserID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if f.Sort == "oldest" {
		order = "created_at ASC"
	}

	if err := q.Preload("Customer").
		Preload("Chef").
		Order(order).
		Offset(f.Page.Offset()).
		Limit(f.Page.PerPage).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

// UpdateStatus moves the order from its loaded status to status. The update
// only applies while the stored status still matches, and reports false when
// another request got there first. Completing an order credits the chef's
// balance with the amount and delivery fee in the same transaction.
func (r *orderRepository) UpdateStatus(ctx context.Context, order *entities.Order, status string) (bool, error) {
	updated := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Order{}).
			Where("id = ? AND status = ?", order.ID, order.Status).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		if status == domain.OrderStatusCompleted {
			if err := tx.Model(&entities.User{}).
				Where("id = ?", order.ToID).
				Update("balance", gorm.Expr("balance + ?", order.Amount+order.DeliveryFee)).Error; err != nil {
				return err
			}
		}

		updated = true
		return nil
	})
	return updated, err
}

func (r *orderRepository) CreateHistory(ctx context.Context, history *entities.OrderHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

func (r *orderRepository) GetHistory(ctx context.Context, orderID string) ([]entities.OrderHistory, error) {
	var history []entities.OrderHistory
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}
