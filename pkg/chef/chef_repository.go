package chef

import (
	"context"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	ChefRepository interface {
		UpdateRestStatus(ctx context.Context, userID, status string) error
		UpdateBankDetails(ctx context.Context, userID string, details entities.BankDetails) error
		Withdraw(ctx context.Context, withdraw *entities.Withdraw) (float64, error)
		GetWithdrawals(ctx context.Context, userID string, page domain.PaginationRequest) ([]entities.Withdraw, int64, error)
	}

	chefRepository struct {
		db *gorm.DB
	}
)

func NewChefRepository(db *gorm.DB) ChefRepository {
	return &chefRepository{
		db: db,
	}
}

func (r *chefRepository) UpdateRestStatus(ctx context.Context, userID, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Update("rest_status", status).Error
}

func (r *chefRepository) UpdateBankDetails(ctx context.Context, userID string, details entities.BankDetails) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Update("bank_details", datatypes.NewJSONType(details)).Error
}

// Withdraw debits the chef's balance with a conditional update and records
// the request in the same transaction. It returns the balance left after the
// debit, or an InsufficientBalanceError with the current balance when the
// amount is not covered.
func (r *chefRepository) Withdraw(ctx context.Context, withdraw *entities.Withdraw) (float64, error) {
	var remaining float64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.User{}).
			Where("id = ? AND balance >= ?", withdraw.UserID, withdraw.Amount).
			Update("balance", gorm.Expr("balance - ?", withdraw.Amount))
		if res.Error != nil {
			return res.Error
		}

		var balance float64
		if err := tx.Model(&entities.User{}).
			Select("balance").
			Where("id = ?", withdraw.UserID).
			Scan(&balance).Error; err != nil {
			return err
		}

		if res.RowsAffected == 0 {
			return &domain.InsufficientBalanceError{Available: balance}
		}
		remaining = balance

		return tx.Create(withdraw).Error
	})
	return remaining, err
}

func (r *chefRepository) GetWithdrawals(ctx context.Context, userID string, page domain.PaginationRequest) ([]entities.Withdraw, int64, error) {
	var (
		withdrawals []entities.Withdraw
		count       int64
	)

	q := r.db.WithContext(ctx).Model(&entities.Withdraw{}).Where("user_id = ?", userID)
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&withdrawals).Error; err != nil {
		return nil, 0, err
	}
	return withdrawals, count, nil
}
