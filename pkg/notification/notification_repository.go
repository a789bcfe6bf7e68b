package notification

import (
	"context"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		GetNotifications(ctx context.Context, filter Filter) ([]entities.Notification, int64, error)
		CountUnseen(ctx context.Context, filter Filter) (int64, error)
		MarkAsSeen(ctx context.Context, filter Filter, ids []string) (int64, error)
	}

	// Filter scopes notifications to one recipient, under either audience.
	Filter struct {
		RecipientID string
		Type        string
		Seen        *bool
		Page        domain.PaginationRequest
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) scoped(ctx context.Context, f Filter) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("(user_id = ? OR rest_id = ?)", f.RecipientID, f.RecipientID)
}

func (r *notificationRepository) GetNotifications(ctx context.Context, f Filter) ([]entities.Notification, int64, error) {
	var (
		notifications []entities.Notification
		count         int64
	)

	q := r.scoped(ctx, f)
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Seen != nil {
		q = q.Where("seen = ?", *f.Seen)
	}

	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Order("created_at DESC").
		Offset(f.Page.Offset()).
		Limit(f.Page.PerPage).
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}
	return notifications, count, nil
}

func (r *notificationRepository) CountUnseen(ctx context.Context, f Filter) (int64, error) {
	var count int64
	err := r.scoped(ctx, f).Where("seen = ?", false).Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkAsSeen(ctx context.Context, f Filter, ids []string) (int64, error) {
	q := r.scoped(ctx, f).Where("seen = ?", false)
	if len(ids) > 0 {
		q = q.Where("id IN ?", ids)
	}
	res := q.Update("seen", true)
	return res.RowsAffected, res.Error
}
