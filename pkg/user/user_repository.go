package user

import (
	"context"
	"time"

	"HomeChef-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error

		// OTP
		CreateOtp(ctx context.Context, otp *entities.Otp) error
		GetLatestOtp(ctx context.Context, userID, code string) (*entities.Otp, error)
		MarkOtpVerified(ctx context.Context, id string, at time.Time) error
		SetPasswordWithOtp(ctx context.Context, user *entities.User, otpQuery OtpQuery) error

		// Devices
		UpsertDevice(ctx context.Context, device *entities.Device) error
		GetDeviceByRegistration(ctx context.Context, userID, registrationID string) (*entities.Device, error)
		GetDeviceTokens(ctx context.Context, userID string) ([]string, error)

		// Addresses
		CreateAddress(ctx context.Context, address *entities.UserAddress) error
		GetAddresses(ctx context.Context, userID string) ([]entities.UserAddress, error)
		GetAddressByID(ctx context.Context, id, userID string) (*entities.UserAddress, error)
		UpdateAddress(ctx context.Context, address *entities.UserAddress) error
		DeleteAddress(ctx context.Context, id, userID string) (int64, error)
	}

	// OtpQuery selects the OTP row that a password change consumes.
	OtpQuery struct {
		UserID       string
		Code         string
		Purpose      string
		RequireCheck bool
		Now          time.Time
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser saves profile columns. Balance and bank details have their own
// targeted updates and are never written from a loaded copy.
func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Omit("Balance", "BankDetails", "Devices").Save(user).Error
}

func (r *userRepository) CreateOtp(ctx context.Context, otp *entities.Otp) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

func (r *userRepository) GetLatestOtp(ctx context.Context, userID, code string) (*entities.Otp, error) {
	var otp entities.Otp
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND code = ?", userID, code).
		Order("created_at DESC").
		First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *userRepository) MarkOtpVerified(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entities.Otp{}).
		Where("id = ? AND verified_at IS NULL", id).
		Update("verified_at", at).Error
}

// SetPasswordWithOtp consumes one matching OTP and writes only the password
// and dob of user in a single transaction. The consume step is a conditional
// update so a code can only be spent once even under concurrent requests.
func (r *userRepository) SetPasswordWithOtp(ctx context.Context, user *entities.User, q OtpQuery) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var otp entities.Otp
		query := tx.Where("user_id = ? AND consumed_at IS NULL AND expires_at > ?", q.UserID, q.Now)
		if q.Code != "" {
			query = query.Where("code = ?", q.Code)
		}
		if q.Purpose != "" {
			query = query.Where("purpose = ?", q.Purpose)
		}
		if q.RequireCheck {
			query = query.Where("verified_at IS NOT NULL")
		}
		if err := query.Order("created_at DESC").First(&otp).Error; err != nil {
			return err
		}

		res := tx.Model(&entities.Otp{}).
			Where("id = ? AND consumed_at IS NULL", otp.ID).
			Update("consumed_at", q.Now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&entities.User{}).
			Where("id = ?", user.ID).
			Updates(map[string]any{"password": user.Password, "dob": user.Dob}).Error
	})
}

func (r *userRepository) UpsertDevice(ctx context.Context, device *entities.Device) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "registration_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"platform", "model", "updated_at"}),
	}).Create(device).Error
}

func (r *userRepository) GetDeviceByRegistration(ctx context.Context, userID, registrationID string) (*entities.Device, error) {
	var device entities.Device
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND registration_id = ?", userID, registrationID).
		First(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *userRepository) GetDeviceTokens(ctx context.Context, userID string) ([]string, error) {
	var tokens []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Device{}).
		Where("user_id = ?", userID).
		Pluck("registration_id", &tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *userRepository) CreateAddress(ctx context.Context, address *entities.UserAddress) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *userRepository) GetAddresses(ctx context.Context, userID string) ([]entities.UserAddress, error) {
	var addresses []entities.UserAddress
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *userRepository) GetAddressByID(ctx context.Context, id, userID string) (*entities.UserAddress, error) {
	var address entities.UserAddress
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *userRepository) UpdateAddress(ctx context.Context, address *entities.UserAddress) error {
	return r.db.WithContext(ctx).Save(address).Error
}

func (r *userRepository) DeleteAddress(ctx context.Context, id, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.UserAddress{})
	return res.RowsAffected, res.Error
}
