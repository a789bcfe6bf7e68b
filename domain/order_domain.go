package domain

import (
	"time"

	"HomeChef-Backend/entities"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusAccepted   = "accepted"
	OrderStatusRejected   = "rejected"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"

	OrderTypeDinein   = "dinein"
	OrderTypeDelivery = "delivery"
	OrderTypeTakeaway = "takeaway"
)

var (
	MessageSuccessCreateOrder       = "order created successfully"
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessGetOrderDetails   = "order details retrieved successfully"
	MessageSuccessUpdateOrderStatus = "order status updated successfully"
	MessageSuccessAddReview         = "review added successfully"

	MessageFailedCreateOrder       = "failed to create order"
	MessageFailedGetOrders         = "failed to retrieve orders"
	MessageFailedGetOrderDetails   = "failed to retrieve order details"
	MessageFailedUpdateOrderStatus = "failed to update order status"
	MessageFailedAddReview         = "failed to add review"

	ErrOrderNotFound        = NewError(ErrNotFound, "order not found")
	ErrNotOrderChef         = NewError(ErrForbidden, "only the chef of this order can change its status")
	ErrInvalidOrderStatus   = NewError(ErrValidation, "invalid order status")
	ErrOrderClosed          = NewError(ErrInvalidState, "order is already completed or cancelled")
	ErrOrderStatusConflict  = NewError(ErrInvalidState, "order status was changed by another request, reload and try again")
	ErrOrderNotCompleted    = NewError(ErrInvalidState, "order must be completed before it can be reviewed")
	ErrReviewAlreadyExists  = NewError(ErrConflict, "you have already reviewed this order")
	ErrReviewDishNotInOrder = NewError(ErrValidation, "dish is not part of this order")
	ErrEmptyCart            = NewError(ErrValidation, "cart must contain at least one item")
)

type (
	CartItemRequest struct {
		DishID   string  `json:"id" validate:"required"`
		Name     string  `json:"name" validate:"required"`
		Quantity int     `json:"quantity" validate:"required,min=1"`
		Price    float64 `json:"price" validate:"min=0"`
		Image    string  `json:"image"`
	}

	CreateOrderRequest struct {
		ToID          string            `json:"to_id" validate:"required,uuid"`
		OrderType     string            `json:"order_type" validate:"required,oneof=dinein delivery takeaway"`
		Amount        *float64          `json:"amount" validate:"required,min=0"`
		DeliveryFee   *float64          `json:"delivery_fee" validate:"required,min=0"`
		ServiceFee    *float64          `json:"service_fee" validate:"required,min=0"`
		CartItems     []CartItemRequest `json:"cartItems" validate:"required,min=1,dive"`
		Address       string            `json:"address" validate:"required"`
		PaymentMethod string            `json:"payment_method" validate:"required,max=30"`
		TxnID         string            `json:"txn_id" validate:"omitempty,max=255"`
		Lat           *float64          `json:"lat" validate:"required,latitude"`
		Lng           *float64          `json:"lng" validate:"required,longitude"`
	}

	GetOrdersRequest struct {
		Status string `query:"status" validate:"omitempty,oneof=pending accepted rejected processing completed cancelled"`
		Sort   string `query:"sort" validate:"omitempty,oneof=latest oldest"`
		PaginationRequest
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=accepted rejected processing completed cancelled"`
	}

	AddReviewRequest struct {
		Rating  int      `json:"rating" validate:"required,min=1,max=5"`
		Detail  string   `json:"detail" validate:"omitempty,max=255"`
		DishID  string   `json:"dish_id" validate:"omitempty,uuid"`
		Gallery []string `json:"gallery" validate:"omitempty,dive,url"`
	}

	OrderPartyResponse struct {
		ID           string   `json:"id"`
		FirstName    string   `json:"first_name"`
		LastName     string   `json:"last_name"`
		Image        string   `json:"image"`
		Phone        string   `json:"phone,omitempty"`
		Address      string   `json:"address,omitempty"`
		Rating       *float64 `json:"rating,omitempty"`
		ReviewsCount *int64   `json:"reviews_count,omitempty"`
	}

	OrderResponse struct {
		ID            string              `json:"id"`
		OrderNo       string              `json:"order_no"`
		OrderType     string              `json:"order_type"`
		UserID        string              `json:"user_id"`
		ToID          string              `json:"to_id"`
		Amount        float64             `json:"amount"`
		DeliveryFee   float64             `json:"delivery_fee"`
		ServiceFee    float64             `json:"service_fee"`
		TotalAmount   float64             `json:"total_amount"`
		CartItems     []entities.CartItem `json:"cart_items"`
		Address       string              `json:"address"`
		PaymentMethod string              `json:"payment_method"`
		TxnID         string              `json:"txn_id,omitempty"`
		Lat           float64             `json:"lat"`
		Lng           float64             `json:"lng"`
		ChefLat       *float64            `json:"chef_lat"`
		ChefLng       *float64            `json:"chef_lng"`
		Status        string              `json:"status"`
		Customer      *OrderPartyResponse `json:"customer,omitempty"`
		Chef          *OrderPartyResponse `json:"chef,omitempty"`
		CreatedAt     time.Time           `json:"created_at"`
	}

	OrderDetailsResponse struct {
		OrderResponse
		Distance  *float64        `json:"distance"`
		Review    *ReviewResponse `json:"review"`
		HasReview bool            `json:"has_review"`
		History   []OrderHistory  `json:"history"`
	}

	OrderHistory struct {
		FromStatus string    `json:"from_status"`
		Status     string    `json:"status"`
		ChangedBy  string    `json:"changed_by"`
		CreatedAt  time.Time `json:"created_at"`
	}

	OrderListResponse struct {
		Orders     []OrderResponse    `json:"orders"`
		Pagination PaginationResponse `json:"pagination"`
	}

	OrderStatusResponse struct {
		ID             string   `json:"id"`
		PreviousStatus string   `json:"previous_status"`
		Status         string   `json:"status"`
		NextStatuses   []string `json:"next_statuses"`
	}
)

func NewOrderResponse(o entities.Order) OrderResponse {
	res := OrderResponse{
		ID:            o.ID.String(),
		OrderNo:       o.OrderNo,
		OrderType:     o.OrderType,
		UserID:        o.UserID.String(),
		ToID:          o.ToID.String(),
		Amount:        o.Amount,
		DeliveryFee:   o.DeliveryFee,
		ServiceFee:    o.ServiceFee,
		TotalAmount:   o.Total(),
		CartItems:     o.CartItems,
		Address:       o.Address,
		PaymentMethod: o.PaymentMethod,
		TxnID:         o.TxnID,
		Lat:           o.Lat,
		Lng:           o.Lng,
		ChefLat:       o.ChefLat,
		ChefLng:       o.ChefLng,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
	if o.Customer != nil {
		res.Customer = newOrderParty(o.Customer)
	}
	if o.Chef != nil {
		res.Chef = newOrderParty(o.Chef)
	}
	return res
}

func newOrderParty(u *entities.User) *OrderPartyResponse {
	return &OrderPartyResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Image:     u.Image,
		Phone:     u.Phone,
		Address:   u.Address,
	}
}
