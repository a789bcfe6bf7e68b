package chat

import (
	"context"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"

	"gorm.io/gorm"
)

type (
	ChatRepository interface {
		CreateMessage(ctx context.Context, msg *entities.Chat) error
		ReadThread(ctx context.Context, orderID, readerID string, page domain.PaginationRequest) ([]entities.Chat, int64, error)
		CountUnseen(ctx context.Context, orderID, readerID string) (int64, error)
		GetLatestUnseen(ctx context.Context, orderID, readerID string) (*entities.Chat, error)
		MarkAsSeen(ctx context.Context, orderID, readerID string) (int64, error)
	}

	chatRepository struct {
		db *gorm.DB
	}
)

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{
		db: db,
	}
}

func (r *chatRepository) CreateMessage(ctx context.Context, msg *entities.Chat) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func unseenFor(db *gorm.DB, orderID, readerID string) *gorm.DB {
	return db.Model(&entities.Chat{}).
		Where("order_id = ? AND to_id = ? AND seen = ?", orderID, readerID, false)
}

// ReadThread marks every message addressed to the reader as seen and returns
// one page of the thread, oldest first, inside a single transaction.
func (r *chatRepository) ReadThread(ctx context.Context, orderID, readerID string, page domain.PaginationRequest) ([]entities.Chat, int64, error) {
	var (
		messages []entities.Chat
		count    int64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := unseenFor(tx, orderID, readerID).Update("seen", true).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Chat{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
			return err
		}

		return tx.Where("order_id = ?", orderID).
			Order("created_at ASC").
			Offset(page.Offset()).
			Limit(page.PerPage).
			Find(&messages).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return messages, count, nil
}

func (r *chatRepository) CountUnseen(ctx context.Context, orderID, readerID string) (int64, error) {
	var count int64
	err := unseenFor(r.db.WithContext(ctx), orderID, readerID).Count(&count).Error
	return count, err
}

func (r *chatRepository) GetLatestUnseen(ctx context.Context, orderID, readerID string) (*entities.Chat, error) {
	var msg entities.Chat
	if err := unseenFor(r.db.WithContext(ctx), orderID, readerID).
		Order("created_at DESC").
		First(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *chatRepository) MarkAsSeen(ctx context.Context, orderID, readerID string) (int64, error) {
	res := unseenFor(r.db.WithContext(ctx), orderID, readerID).Update("seen", true)
	return res.RowsAffected, res.Error
}
