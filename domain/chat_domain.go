package domain

import "time"

const (
	MsgTypeText  = 0
	MsgTypeImage = 1
)

var (
	MessageSuccessSendMessage      = "message sent successfully"
	MessageSuccessGetChat          = "chat retrieved successfully"
	MessageSuccessCheckNewMessages = "new messages checked successfully"
	MessageSuccessMarkAsSeen       = "messages marked as seen"

	MessageFailedSendMessage      = "failed to send message"
	MessageFailedGetChat          = "failed to retrieve chat"
	MessageFailedCheckNewMessages = "failed to check new messages"
	MessageFailedMarkAsSeen       = "failed to mark messages as seen"

	ErrNotOrderParticipant = NewError(ErrForbidden, "you are not a participant of this order")
)

type (
	SendMessageRequest struct {
		OrderID string `json:"order_id" validate:"required,uuid"`
		Msg     string `json:"msg" validate:"required,max=255"`
		MsgType *int   `json:"msg_type" validate:"required,oneof=0 1"`
	}

	GetChatRequest struct {
		OrderID string `query:"order_id" validate:"required,uuid"`
		PerPage int    `query:"per_page" validate:"omitempty,min=1,max=100"`
		Page    int    `query:"page" validate:"omitempty,min=1"`
	}

	OrderChatRequest struct {
		OrderID string `json:"order_id" query:"order_id" validate:"required,uuid"`
	}

	ChatMessageResponse struct {
		ID        string    `json:"id"`
		OrderID   string    `json:"order_id"`
		UserID    string    `json:"user_id"`
		ToID      string    `json:"to_id"`
		Msg       string    `json:"msg"`
		MsgType   int       `json:"msg_type"`
		Seen      bool      `json:"seen"`
		IsMine    bool      `json:"is_mine"`
		CreatedAt time.Time `json:"created_at"`
	}

	ChatResponse struct {
		Messages   []ChatMessageResponse `json:"messages"`
		Pagination PaginationResponse    `json:"pagination"`
	}

	CheckNewMessagesResponse struct {
		UnreadCount   int64                `json:"unread_count"`
		LatestMessage *ChatMessageResponse `json:"latest_message"`
	}

	MarkAsSeenResponse struct {
		UpdatedCount int64 `json:"updated_count"`
	}
)
