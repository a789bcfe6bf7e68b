package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is addressed either to a customer (UserID) or to a chef (RestID).
type Notification struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	RestID  *uuid.UUID `gorm:"type:uuid;index" json:"rest_id"`
	OrderID *uuid.UUID `gorm:"type:uuid" json:"order_id"`
	Title   string     `json:"title"`
	Body    string     `json:"body"`
	Type    string     `gorm:"size:10;index" json:"type"`
	Seen    bool       `gorm:"not null;default:false" json:"seen"`
	Timestamp
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	ensureID(&n.ID)
	return nil
}
