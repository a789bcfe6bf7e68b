package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	Review struct {
		ID      uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
		OrderID uuid.UUID                   `gorm:"type:uuid;uniqueIndex:idx_review_order_user" json:"order_id"`
		UserID  uuid.UUID                   `gorm:"type:uuid;uniqueIndex:idx_review_order_user" json:"user_id"`
		RestID  uuid.UUID                   `gorm:"type:uuid;index" json:"rest_id"`
		DishID  *uuid.UUID                  `gorm:"type:uuid;index" json:"dish_id"`
		Rating  int                         `json:"rating"`
		Detail  string                      `gorm:"size:255" json:"detail"`
		Gallery datatypes.JSONSlice[string] `json:"gallery"`

		User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
		Timestamp
	}

	Favourite struct {
		ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
		UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favourite_target" json:"user_id"`
		TargetID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favourite_target" json:"target_id"`
		LikeType string    `gorm:"size:10;uniqueIndex:idx_favourite_target" json:"like_type"`
		Timestamp
	}
)

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	return nil
}

func (f *Favourite) BeforeCreate(tx *gorm.DB) error {
	ensureID(&f.ID)
	return nil
}
