package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	Withdraw struct {
		ID          uuid.UUID                       `gorm:"type:uuid;primaryKey" json:"id"`
		UserID      uuid.UUID                       `gorm:"type:uuid;index" json:"user_id"`
		Amount      float64                         `json:"amount"`
		Status      string                          `gorm:"size:20;default:pending" json:"status"`
		BankDetails datatypes.JSONType[BankDetails] `json:"bank_details"`
		Timestamp
	}

	PaymentIntent struct {
		ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
		UserID       uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
		OrderID      *uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
		Amount       float64    `json:"amount"`
		AmountMinor  int64      `json:"amount_minor"`
		Currency     string     `gorm:"size:3" json:"currency"`
		ClientSecret string     `json:"-"`
		RedirectURL  string     `json:"redirect_url"`
		Status       string     `gorm:"size:20;default:pending" json:"status"`
		Timestamp
	}
)

func (w *Withdraw) BeforeCreate(tx *gorm.DB) error {
	ensureID(&w.ID)
	return nil
}

func (p *PaymentIntent) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
