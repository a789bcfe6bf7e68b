package chat

import (
	"context"
	"errors"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/pkg/notification"
	"HomeChef-Backend/pkg/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ChatService interface {
		SendMessage(ctx context.Context, req domain.SendMessageRequest, userID string) (domain.ChatMessageResponse, error)
		GetChat(ctx context.Context, req domain.GetChatRequest, userID string) (domain.ChatResponse, error)
		CheckNewMessages(ctx context.Context, req domain.OrderChatRequest, userID string) (domain.CheckNewMessagesResponse, error)
		MarkAsSeen(ctx context.Context, req domain.OrderChatRequest, userID string) (domain.MarkAsSeenResponse, error)
	}

	chatService struct {
		chatRepository      ChatRepository
		orderRepository     order.OrderRepository
		notificationService notification.NotificationService
	}
)

func NewChatService(
	chatRepository ChatRepository,
	orderRepository order.OrderRepository,
	notificationService notification.NotificationService,
) ChatService {
	return &chatService{
		chatRepository:      chatRepository,
		orderRepository:     orderRepository,
		notificationService: notificationService,
	}
}

// authorize loads the order and checks that userID is its customer or chef.
func (s *chatService) authorize(ctx context.Context, orderID, userID string) (*entities.Order, uuid.UUID, error) {
	principal, err := uuid.Parse(userID)
	if err != nil {
		return nil, uuid.Nil, domain.ErrParseUUID
	}
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, uuid.Nil, domain.ErrParseUUID
	}

	o, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, domain.ErrOrderNotFound
		}
		return nil, uuid.Nil, err
	}
	if !o.IsParticipant(principal) {
		return nil, uuid.Nil, domain.ErrNotOrderParticipant
	}
	return o, principal, nil
}

func newMessageResponse(m entities.Chat, viewer uuid.UUID) domain.ChatMessageResponse {
	return domain.ChatMessageResponse{
		ID:        m.ID.String(),
		OrderID:   m.OrderID.String(),
		UserID:    m.UserID.String(),
		ToID:      m.ToID.String(),
		Msg:       m.Msg,
		MsgType:   m.MsgType,
		Seen:      m.Seen,
		IsMine:    m.UserID == viewer,
		CreatedAt: m.CreatedAt,
	}
}

func (s *chatService) SendMessage(ctx context.Context, req domain.SendMessageRequest, userID string) (domain.ChatMessageResponse, error) {
	o, sender, err := s.authorize(ctx, req.OrderID, userID)
	if err != nil {
		return domain.ChatMessageResponse{}, err
	}

	recipient, audience, senderName := o.ToID, domain.AudienceChef, ""
	if sender == o.ToID {
		recipient, audience = o.UserID, domain.AudienceCustomer
		if o.Chef != nil {
			senderName = o.Chef.FullName()
		}
	} else if o.Customer != nil {
		senderName = o.Customer.FullName()
	}

	msgType := domain.MsgTypeText
	if req.MsgType != nil {
		msgType = *req.MsgType
	}

	msg := entities.Chat{
		OrderID: o.ID,
		UserID:  sender,
		ToID:    recipient,
		Msg:     req.Msg,
		MsgType: msgType,
	}
	if err := s.chatRepository.CreateMessage(ctx, &msg); err != nil {
		return domain.ChatMessageResponse{}, err
	}

	body := req.Msg
	if msgType == domain.MsgTypeImage {
		body = "Sent you an image"
	}
	s.notificationService.Notify(ctx, domain.NotifyRequest{
		RecipientID: recipient.String(),
		Audience:    audience,
		OrderID:     o.ID.String(),
		Title:       senderName,
		Body:        body,
		Type:        domain.NotificationTypeChat,
		Data:        map[string]string{"message_id": msg.ID.String()},
	})

	return newMessageResponse(msg, sender), nil
}

func (s *chatService) GetChat(ctx context.Context, req domain.GetChatRequest, userID string) (domain.ChatResponse, error) {
	_, reader, err := s.authorize(ctx, req.OrderID, userID)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	page := domain.PaginationRequest{Page: req.Page, PerPage: req.PerPage}.Normalize(20, 100)
	messages, total, err := s.chatRepository.ReadThread(ctx, req.OrderID, userID, page)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	res := domain.ChatResponse{
		Messages:   make([]domain.ChatMessageResponse, 0, len(messages)),
		Pagination: domain.NewPaginationResponse(page, total),
	}
	for _, m := range messages {
		res.Messages = append(res.Messages, newMessageResponse(m, reader))
	}
	return res, nil
}

func (s *chatService) CheckNewMessages(ctx context.Context, req domain.OrderChatRequest, userID string) (domain.CheckNewMessagesResponse, error) {
	_, reader, err := s.authorize(ctx, req.OrderID, userID)
	if err != nil {
		return domain.CheckNewMessagesResponse{}, err
	}

	count, err := s.chatRepository.CountUnseen(ctx, req.OrderID, userID)
	if err != nil {
		return domain.CheckNewMessagesResponse{}, err
	}

	res := domain.CheckNewMessagesResponse{UnreadCount: count}
	if count == 0 {
		return res, nil
	}

	latest, err := s.chatRepository.GetLatestUnseen(ctx, req.OrderID, userID)
	if err != nil {
		return domain.CheckNewMessagesResponse{}, err
	}
	preview := newMessageResponse(*latest, reader)
	res.LatestMessage = &preview
	return res, nil
}

func (s *chatService) MarkAsSeen(ctx context.Context, req domain.OrderChatRequest, userID string) (domain.MarkAsSeenResponse, error) {
	if _, _, err := s.authorize(ctx, req.OrderID, userID); err != nil {
		return domain.MarkAsSeenResponse{}, err
	}

	updated, err := s.chatRepository.MarkAsSeen(ctx, req.OrderID, userID)
	if err != nil {
		return domain.MarkAsSeenResponse{}, err
	}
	return domain.MarkAsSeenResponse{UpdatedCount: updated}, nil
}
