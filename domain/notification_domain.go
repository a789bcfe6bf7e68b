package domain

import "time"

const (
	NotificationTypeOrder = "order"
	NotificationTypeNews  = "news"
	NotificationTypeChat  = "chat"

	AudienceCustomer = "customer"
	AudienceChef     = "chef"
)

var (
	MessageSuccessGetNotifications  = "notifications retrieved successfully"
	MessageSuccessMarkNotifications = "notifications marked as seen"

	MessageFailedGetNotifications  = "failed to retrieve notifications"
	MessageFailedMarkNotifications = "failed to mark notifications as seen"

	ErrNoDeviceTokens = NewError(ErrNotFound, "no device tokens found for user")
)

type (
	// NotifyRequest describes one side effect fan-out: an optional in-app row
	// plus a push message to every device of the recipient.
	NotifyRequest struct {
		RecipientID string
		Audience    string
		OrderID     string
		Title       string
		Body        string
		Type        string
		Data        map[string]string
		Persist     bool
	}

	GetNotificationsRequest struct {
		Type string `query:"type" validate:"omitempty,oneof=order news"`
		Seen string `query:"seen" validate:"omitempty,oneof=0 1 true false"`
		PaginationRequest
	}

	MarkNotificationsRequest struct {
		IDs []string `json:"ids" validate:"omitempty,dive,uuid"`
	}

	NotificationResponse struct {
		ID        string    `json:"id"`
		OrderID   *string   `json:"order_id"`
		Title     string    `json:"title"`
		Body      string    `json:"body"`
		Type      string    `json:"type"`
		Seen      bool      `json:"seen"`
		CreatedAt time.Time `json:"created_at"`
	}

	NotificationListResponse struct {
		Notifications []NotificationResponse `json:"notifications"`
		UnseenCount   int64                  `json:"unseen_count"`
		Pagination    PaginationResponse     `json:"pagination"`
	}
)
