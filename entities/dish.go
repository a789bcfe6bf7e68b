package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	Cuisine struct {
		ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
		Name  string    `gorm:"size:100;uniqueIndex" json:"name"`
		Image string    `json:"image"`
		Timestamp
	}

	Dish struct {
		ID            uuid.UUID                     `gorm:"type:uuid;primaryKey" json:"id"`
		UserID        uuid.UUID                     `gorm:"type:uuid;index" json:"user_id"`
		CuisineID     uuid.UUID                     `gorm:"type:uuid;index" json:"cuisine_id"`
		Category      string                        `gorm:"size:100" json:"category"`
		DishType      string                        `gorm:"size:10;default:dish;index" json:"dish_type"`
		Name          string                        `gorm:"size:100" json:"name"`
		About         string                        `gorm:"size:255" json:"about"`
		Keywords      datatypes.JSONSlice[string]   `json:"keywords"`
		Images        datatypes.JSONSlice[string]   `json:"images"`
		Sizes         datatypes.JSONSlice[DishSize] `json:"sizes"`
		Price         float64                       `gorm:"not null;default:0;index" json:"price"`
		DeliveryPrice *float64                      `json:"delivery_price"`
		DineinPrice   *float64                      `json:"dinein_price"`
		DineinLimit   *int                          `json:"dinein_limit"`
		OfferTitle    string                        `json:"offer_title,omitempty"`
		ValidUntil    *time.Time                    `json:"valid_until,omitempty"`

		Cuisine *Cuisine `gorm:"foreignKey:CuisineID" json:"cuisine,omitempty"`
		Timestamp
	}

	DishSize struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
)

func (c *Cuisine) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	ensureID(&d.ID)
	return nil
}
