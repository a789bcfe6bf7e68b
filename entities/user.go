package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	User struct {
		ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
		FirstName string     `gorm:"size:100" json:"first_name"`
		LastName  string     `gorm:"size:100" json:"last_name"`
		Email     string     `gorm:"size:191;uniqueIndex" json:"email"`
		Password  *string    `json:"-"`
		UserType  string     `gorm:"size:20;index;default:customer" json:"user_type"`
		Phone     string     `gorm:"size:30" json:"phone"`
		Image     string     `json:"image"`
		Gender    string     `gorm:"size:20" json:"gender"`
		Dob       *time.Time `json:"dob"`
		Language  string     `gorm:"size:10" json:"language"`

		// location
		AddressName   string   `json:"address_name"`
		Address       string   `json:"address"`
		AddressDetail string   `json:"address_detail"`
		Note          string   `json:"note"`
		City          string   `json:"city"`
		State         string   `json:"state"`
		Country       string   `json:"country"`
		PostalCode    string   `gorm:"size:20" json:"postal_code"`
		CurrentLat    *float64 `json:"current_lat"`
		CurrentLng    *float64 `json:"current_lng"`

		// chef profile
		About                string                                `json:"about"`
		AvailabilityPickup   datatypes.JSONSlice[AvailabilitySlot] `json:"availability_pickup"`
		AvailabilityDelivery datatypes.JSONSlice[AvailabilitySlot] `json:"availability_delivery"`
		AvailabilityDinein   datatypes.JSONSlice[AvailabilitySlot] `json:"availability_dinein"`
		RestStatus           string                                `gorm:"size:20;index" json:"rest_status"`
		BankDetails          datatypes.JSONType[BankDetails]       `json:"-"`
		Balance              float64                               `gorm:"not null;default:0" json:"balance"`

		Devices []Device `gorm:"foreignKey:UserID" json:"-"`
		Timestamp
	}

	AvailabilitySlot struct {
		Day   string `json:"day"`
		Start string `json:"start"`
		End   string `json:"end"`
	}

	BankDetails struct {
		PaymentMethod string `json:"payment_method"`
		AccountName   string `json:"account_name"`
		AccountNumber string `json:"account_number"`
		BankName      string `json:"bank_name"`
	}

	Otp struct {
		ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
		UserID     uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
		Code       string     `gorm:"size:10" json:"-"`
		Purpose    string     `gorm:"size:20" json:"purpose"`
		ExpiresAt  time.Time  `json:"expires_at"`
		VerifiedAt *time.Time `json:"verified_at"`
		ConsumedAt *time.Time `json:"consumed_at"`
		Timestamp
	}

	Device struct {
		ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
		UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_device_user_registration" json:"user_id"`
		RegistrationID string    `gorm:"size:255;uniqueIndex:idx_device_user_registration" json:"registration_id"`
		Platform       string    `gorm:"size:20" json:"platform"`
		Model          string    `gorm:"size:100" json:"model"`
		Timestamp
	}

	UserAddress struct {
		ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
		UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
		Address     string    `json:"address"`
		City        string    `json:"city"`
		AddressType string    `gorm:"size:30" json:"address_type"`
		Note        string    `json:"note"`
		Lat         float64   `json:"lat"`
		Lng         float64   `json:"lng"`
		Timestamp
	}
)

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

func (u *User) IsChef() bool {
	return u.UserType == "chef"
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (o *Otp) BeforeCreate(tx *gorm.DB) error {
	ensureID(&o.ID)
	return nil
}

func (d *Device) BeforeCreate(tx *gorm.DB) error {
	ensureID(&d.ID)
	return nil
}

func (a *UserAddress) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
