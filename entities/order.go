package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	Order struct {
		ID            uuid.UUID                     `gorm:"type:uuid;primaryKey" json:"id"`
		OrderNo       string                        `gorm:"size:8;index" json:"order_no"`
		OrderType     string                        `gorm:"size:10" json:"order_type"`
		UserID        uuid.UUID                     `gorm:"type:uuid;index" json:"user_id"`
		ToID          uuid.UUID                     `gorm:"type:uuid;index" json:"to_id"`
		Amount        float64                       `json:"amount"`
		DeliveryFee   float64                       `json:"delivery_fee"`
		ServiceFee    float64                       `json:"service_fee"`
		CartItems     datatypes.JSONSlice[CartItem] `json:"cart_items"`
		Address       string                        `json:"address"`
		PaymentMethod string                        `gorm:"size:30" json:"payment_method"`
		Lat           float64                       `json:"lat"`
		Lng           float64                       `json:"lng"`
		ChefLat       *float64                      `json:"chef_lat"`
		ChefLng       *float64                      `json:"chef_lng"`
		Status        string                        `gorm:"size:20;index;default:pending" json:"status"`
		TxnID         string                        `json:"txn_id"`

		Customer *User `gorm:"foreignKey:UserID" json:"customer,omitempty"`
		Chef     *User `gorm:"foreignKey:ToID" json:"chef,omitempty"`
		Timestamp
	}

	// CartItem is a snapshot of the dish at the time the order was placed.
	CartItem struct {
		DishID   string  `json:"id"`
		Name     string  `json:"name"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
		Total    float64 `json:"total"`
		Image    string  `json:"image"`
	}

	OrderHistory struct {
		ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
		OrderID    uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
		FromStatus string    `gorm:"size:20" json:"from_status"`
		Status     string    `gorm:"size:20" json:"status"`
		ChangedBy  uuid.UUID `gorm:"type:uuid" json:"changed_by"`
		CreatedAt  time.Time `json:"created_at"`
	}
)

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	ensureID(&o.ID)
	return nil
}

func (o *Order) Total() float64 {
	return o.Amount + o.DeliveryFee + o.ServiceFee
}

// IsParticipant reports whether userID is the customer or the chef of the order.
func (o *Order) IsParticipant(userID uuid.UUID) bool {
	return o.UserID == userID || o.ToID == userID
}

func (h *OrderHistory) BeforeCreate(tx *gorm.DB) error {
	ensureID(&h.ID)
	return nil
}
