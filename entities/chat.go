package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Chat struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	UserID  uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	ToID    uuid.UUID `gorm:"type:uuid;index" json:"to_id"`
	Msg     string    `gorm:"size:255" json:"msg"`
	MsgType int       `json:"msg_type"`
	Seen    bool      `gorm:"not null;default:false" json:"seen"`

	Sender *User `gorm:"foreignKey:UserID" json:"sender,omitempty"`
	Timestamp
}

func (c *Chat) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
