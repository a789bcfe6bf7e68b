package midtrans

import (
	"context"

	"HomeChef-Backend/entities"

	"gorm.io/gorm"
)

type (
	MidtransRepository interface {
		CreatePaymentIntent(ctx context.Context, intent *entities.PaymentIntent) error
		UpdatePaymentIntent(ctx context.Context, intent *entities.PaymentIntent) error
		GetPaymentIntentByID(ctx context.Context, id string) (*entities.PaymentIntent, error)
		SetOrderTxnID(ctx context.Context, orderID, txnID string) error
	}

	midtransRepository struct {
		db *gorm.DB
	}
)

func NewMidtransRepository(db *gorm.DB) MidtransRepository {
	return &midtransRepository{
		db: db,
	}
}

func (r *midtransRepository) CreatePaymentIntent(ctx context.Context, intent *entities.PaymentIntent) error {
	return r.db.WithContext(ctx).Create(intent).Error
}

func (r *midtransRepository) UpdatePaymentIntent(ctx context.Context, intent *entities.PaymentIntent) error {
	return r.db.WithContext(ctx).Save(intent).Error
}

func (r *midtransRepository) GetPaymentIntentByID(ctx context.Context, id string) (*entities.PaymentIntent, error) {
	var intent entities.PaymentIntent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&intent).Error; err != nil {
		return nil, err
	}
	return &intent, nil
}

func (r *midtransRepository) SetOrderTxnID(ctx context.Context, orderID, txnID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ?", orderID).
		Update("txn_id", txnID).Error
}
