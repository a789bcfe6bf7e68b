package notification

import (
	"context"
	"errors"
	"strconv"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/internal/utils"
	"HomeChef-Backend/pkg/push"
	"HomeChef-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationService interface {
		// Notify persists the in-app row (when requested) and pushes to every
		// device of the recipient. Failures are logged and never returned.
		Notify(ctx context.Context, req domain.NotifyRequest)
		SendToUser(ctx context.Context, userID string, msg push.Message) (push.BatchResult, error)
		SendToTopic(ctx context.Context, topic string, msg push.Message) error
		GetNotifications(ctx context.Context, req domain.GetNotificationsRequest, userID string) (domain.NotificationListResponse, error)
		MarkAsSeen(ctx context.Context, req domain.MarkNotificationsRequest, userID string) (domain.MarkAsSeenResponse, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
		userRepository         user.UserRepository
		gateway                push.Gateway
	}
)

func NewNotificationService(
	notificationRepository NotificationRepository,
	userRepository user.UserRepository,
	gateway push.Gateway,
) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		userRepository:         userRepository,
		gateway:                gateway,
	}
}

func (s *notificationService) Notify(ctx context.Context, req domain.NotifyRequest) {
	log := utils.Log.WithFields(map[string]any{
		"recipient": req.RecipientID,
		"type":      req.Type,
		"order_id":  req.OrderID,
	})

	if req.Persist {
		if err := s.persist(ctx, req); err != nil {
			log.WithError(err).Error("failed to store notification")
		}
	}

	data := map[string]string{"type": req.Type}
	if req.OrderID != "" {
		data["order_id"] = req.OrderID
	}
	for k, v := range req.Data {
		data[k] = v
	}

	res, err := s.SendToUser(ctx, req.RecipientID, push.Message{Title: req.Title, Body: req.Body, Data: data})
	if err != nil {
		if errors.Is(err, domain.ErrNoDeviceTokens) {
			log.Info("no device tokens, push skipped")
			return
		}
		log.WithError(err).Error("failed to send push notification")
		return
	}
	if res.FailureCount > 0 {
		log.WithField("failed", res.FailureCount).Warn("push notification partially delivered")
	}
}

func (s *notificationService) persist(ctx context.Context, req domain.NotifyRequest) error {
	recipient, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return domain.ErrParseUUID
	}

	n := &entities.Notification{
		Title: req.Title,
		Body:  req.Body,
		Type:  req.Type,
	}
	if req.Audience == domain.AudienceChef {
		n.RestID = &recipient
	} else {
		n.UserID = &recipient
	}
	if req.OrderID != "" {
		if orderID, err := uuid.Parse(req.OrderID); err == nil {
			n.OrderID = &orderID
		}
	}
	return s.notificationRepository.CreateNotification(ctx, n)
}

func (s *notificationService) SendToUser(ctx context.Context, userID string, msg push.Message) (push.BatchResult, error) {
	tokens, err := s.userRepository.GetDeviceTokens(ctx, userID)
	if err != nil {
		return push.BatchResult{}, err
	}
	if len(tokens) == 0 {
		return push.BatchResult{}, domain.ErrNoDeviceTokens
	}
	return s.gateway.SendBatch(ctx, tokens, msg)
}

func (s *notificationService) SendToTopic(ctx context.Context, topic string, msg push.Message) error {
	return s.gateway.SendToTopic(ctx, topic, msg)
}

func (s *notificationService) filterFor(ctx context.Context, userID string) (Filter, error) {
	// a chef keeps the notifications received while still a customer
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Filter{}, domain.ErrUserNotFound
		}
		return Filter{}, err
	}
	return Filter{RecipientID: userID}, nil
}

func (s *notificationService) GetNotifications(ctx context.Context, req domain.GetNotificationsRequest, userID string) (domain.NotificationListResponse, error) {
	f, err := s.filterFor(ctx, userID)
	if err != nil {
		return domain.NotificationListResponse{}, err
	}
	f.Type = req.Type
	if req.Seen != "" {
		seen, _ := strconv.ParseBool(req.Seen)
		f.Seen = &seen
	}
	f.Page = req.PaginationRequest.Normalize(20, 100)

	rows, total, err := s.notificationRepository.GetNotifications(ctx, f)
	if err != nil {
		return domain.NotificationListResponse{}, err
	}
	unseen, err := s.notificationRepository.CountUnseen(ctx, f)
	if err != nil {
		return domain.NotificationListResponse{}, err
	}

	res := domain.NotificationListResponse{
		Notifications: make([]domain.NotificationResponse, 0, len(rows)),
		UnseenCount:   unseen,
		Pagination:    domain.NewPaginationResponse(f.Page, total),
	}
	for _, n := range rows {
		item := domain.NotificationResponse{
			ID:        n.ID.String(),
			Title:     n.Title,
			Body:      n.Body,
			Type:      n.Type,
			Seen:      n.Seen,
			CreatedAt: n.CreatedAt,
		}
		if n.OrderID != nil {
			id := n.OrderID.String()
			item.OrderID = &id
		}
		res.Notifications = append(res.Notifications, item)
	}
	return res, nil
}

func (s *notificationService) MarkAsSeen(ctx context.Context, req domain.MarkNotificationsRequest, userID string) (domain.MarkAsSeenResponse, error) {
	f, err := s.filterFor(ctx, userID)
	if err != nil {
		return domain.MarkAsSeenResponse{}, err
	}
	updated, err := s.notificationRepository.MarkAsSeen(ctx, f, req.IDs)
	if err != nil {
		return domain.MarkAsSeenResponse{}, err
	}
	return domain.MarkAsSeenResponse{UpdatedCount: updated}, nil
}
