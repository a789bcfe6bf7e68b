package domain

import (
	"time"

	"HomeChef-Backend/entities"
)

const (
	OtpPurposeRegister = "register"
	OtpPurposeReset    = "reset"

	PlatformIOS     = "ios"
	PlatformAndroid = "android"

	DefaultDob = "1989-12-02"
)

var (
	MessageSuccessRegister       = "user registered successfully, verification code sent"
	MessageSuccessVerifyOtp      = "OTP verified successfully"
	MessageSuccessSetPassword    = "password set successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessSendResetCode  = "reset code sent successfully"
	MessageSuccessResetPassword  = "password reset successfully"
	MessageSuccessSocialLogin    = "social login successful"
	MessageSuccessGetMe          = "user retrieved successfully"
	MessageSuccessUpdateUser     = "profile updated successfully"
	MessageSuccessLogout         = "successfully logged out"
	MessageSuccessRefresh        = "token refreshed successfully"
	MessageSuccessRegisterDevice = "device registered successfully"
	MessageSuccessGetAddresses   = "addresses retrieved successfully"
	MessageSuccessAddAddress     = "address added successfully"
	MessageSuccessUpdateAddress  = "address updated successfully"
	MessageSuccessDeleteAddress  = "address deleted successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedVerifyOtp      = "failed to verify OTP"
	MessageFailedSetPassword    = "failed to set password"
	MessageFailedLogin          = "failed to login"
	MessageFailedSendResetCode  = "failed to send reset code"
	MessageFailedResetPassword  = "failed to reset password"
	MessageFailedSocialLogin    = "failed to login with social account"
	MessageFailedGetMe          = "failed to retrieve user"
	MessageFailedUpdateUser     = "failed to update profile"
	MessageFailedLogout         = "failed to logout"
	MessageFailedRefresh        = "failed to refresh token"
	MessageFailedRegisterDevice = "failed to register device"
	MessageFailedGetAddresses   = "failed to retrieve addresses"
	MessageFailedAddAddress     = "failed to add address"
	MessageFailedUpdateAddress  = "failed to update address"
	MessageFailedDeleteAddress  = "failed to delete address"

	ErrUserNotFound         = NewError(ErrNotFound, "user not found")
	ErrEmailAlreadyExists   = NewError(ErrConflict, "email already registered")
	ErrInvalidOtp           = NewError(ErrValidation, "invalid OTP code")
	ErrOtpExpired           = NewError(ErrValidation, "OTP code has expired")
	ErrOtpNotVerified       = NewError(ErrForbidden, "no verified OTP found, verify your code first")
	ErrInvalidCredentials   = NewError(ErrUnauthenticated, "invalid login credentials")
	ErrPasswordNotSet       = NewError(ErrUnauthenticated, "password has not been set for this account")
	ErrSocialTokenInvalid   = NewError(ErrUnauthenticated, "social token could not be verified")
	ErrSocialEmailMismatch  = NewError(ErrUnauthenticated, "social token does not belong to this email")
	ErrSocialLoginDisabled  = NewError(ErrUpstream, "social login is not configured")
	ErrUserTypeNotEditable  = NewError(ErrForbidden, "user type cannot be changed")
	ErrFailedHashPassword   = NewError(ErrValidation, "failed to hash password")
	ErrAddressNotFound      = NewError(ErrNotFound, "address not found")
	ErrFailedDeliverOtpMail = NewError(ErrUpstream, "failed to deliver verification code")
)

type (
	RegisterRequest struct {
		FirstName string `json:"first_name" validate:"required,max=100"`
		LastName  string `json:"last_name" validate:"required,max=100"`
		Email     string `json:"email" validate:"required,email,max=191"`
		UserType  string `json:"user_type" validate:"required,oneof=chef customer"`
	}

	RegisterResponse struct {
		UserID string `json:"user_id"`
	}

	VerifyOtpRequest struct {
		UserID string `json:"user_id" validate:"required,uuid"`
		Code   string `json:"code" validate:"required,numeric,len=6"`
	}

	SetPasswordRequest struct {
		UserID   string `json:"user_id" validate:"required,uuid"`
		Password string `json:"password" validate:"required,min=6"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	SendResetCodeRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	SendResetCodeResponse struct {
		UserID string `json:"user_id"`
	}

	ResetPasswordRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Code     string `json:"code" validate:"required,numeric,len=6"`
		Password string `json:"password" validate:"required,min=6"`
	}

	SocialLoginRequest struct {
		Email       string `json:"email" validate:"required,email"`
		FirstName   string `json:"first_name" validate:"required,max=100"`
		LastName    string `json:"last_name" validate:"omitempty,max=100"`
		SocialToken string `json:"social_token" validate:"required"`
		UserType    string `json:"user_type" validate:"required,oneof=chef customer"`
	}

	AuthResponse struct {
		Token     string       `json:"token"`
		TokenType string       `json:"token_type"`
		ExpiresAt time.Time    `json:"expires_at"`
		User      UserResponse `json:"user"`
	}

	UserResponse struct {
		ID            string     `json:"id"`
		FirstName     string     `json:"first_name"`
		LastName      string     `json:"last_name"`
		Email         string     `json:"email"`
		UserType      string     `json:"user_type"`
		Phone         string     `json:"phone"`
		Image         string     `json:"image"`
		Gender        string     `json:"gender"`
		Dob           *time.Time `json:"dob"`
		Language      string     `json:"language"`
		Address       string     `json:"address"`
		AddressName   string     `json:"address_name"`
		AddressDetail string     `json:"address_detail"`
		City          string     `json:"city"`
		State         string     `json:"state"`
		Country       string     `json:"country"`
		PostalCode    string     `json:"postal_code"`
		CurrentLat    *float64   `json:"current_lat"`
		CurrentLng    *float64   `json:"current_lng"`
		About         string     `json:"about,omitempty"`
		RestStatus    string     `json:"rest_status,omitempty"`
		Balance       float64    `json:"balance"`
		CreatedAt     time.Time  `json:"created_at"`
	}

	UpdateUserRequest struct {
		FirstName  Optional[string]  `json:"first_name" validate:"omitempty,max=100"`
		LastName   Optional[string]  `json:"last_name" validate:"omitempty,max=100"`
		Phone      Optional[string]  `json:"phone" validate:"omitempty,max=30"`
		Image      Optional[string]  `json:"image" validate:"omitempty,url"`
		Gender     Optional[string]  `json:"gender" validate:"omitempty,oneof=male female other"`
		Dob        Optional[string]  `json:"dob" validate:"omitempty,datetime=2006-01-02"`
		Language   Optional[string]  `json:"language" validate:"omitempty,max=10"`
		Address    Optional[string]  `json:"address"`
		City       Optional[string]  `json:"city"`
		State      Optional[string]  `json:"state"`
		Country    Optional[string]  `json:"country"`
		PostalCode Optional[string]  `json:"postal_code" validate:"omitempty,max=20"`
		CurrentLat Optional[float64] `json:"current_lat" validate:"omitempty,latitude"`
		CurrentLng Optional[float64] `json:"current_lng" validate:"omitempty,longitude"`
	}

	RegisterDeviceRequest struct {
		RegistrationID string `json:"device_rid" validate:"required,max=255"`
		Platform       string `json:"platform" validate:"required,oneof=ios android"`
		Model          string `json:"model" validate:"required,max=100"`
	}

	DeviceResponse struct {
		ID             string `json:"id"`
		RegistrationID string `json:"device_rid"`
		Platform       string `json:"platform"`
		Model          string `json:"model"`
	}

	AddressRequest struct {
		Address     string   `json:"address" validate:"required,max=255"`
		City        string   `json:"city" validate:"required,max=100"`
		AddressType string   `json:"address_type" validate:"required,max=30"`
		Note        string   `json:"note" validate:"omitempty,max=255"`
		Lat         *float64 `json:"lat" validate:"required,latitude"`
		Lng         *float64 `json:"lng" validate:"required,longitude"`
	}

	UpdateAddressRequest struct {
		Address     Optional[string]  `json:"address" validate:"omitempty,max=255"`
		City        Optional[string]  `json:"city" validate:"omitempty,max=100"`
		AddressType Optional[string]  `json:"address_type" validate:"omitempty,max=30"`
		Note        Optional[string]  `json:"note" validate:"omitempty,max=255"`
		Lat         Optional[float64] `json:"lat" validate:"omitempty,latitude"`
		Lng         Optional[float64] `json:"lng" validate:"omitempty,longitude"`
	}

	AddressResponse struct {
		ID          string    `json:"id"`
		Address     string    `json:"address"`
		City        string    `json:"city"`
		AddressType string    `json:"address_type"`
		Note        string    `json:"note"`
		Lat         float64   `json:"lat"`
		Lng         float64   `json:"lng"`
		CreatedAt   time.Time `json:"created_at"`
	}
)

func NewUserResponse(u entities.User) UserResponse {
	return UserResponse{
		ID:            u.ID.String(),
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		UserType:      u.UserType,
		Phone:         u.Phone,
		Image:         u.Image,
		Gender:        u.Gender,
		Dob:           u.Dob,
		Language:      u.Language,
		Address:       u.Address,
		AddressName:   u.AddressName,
		AddressDetail: u.AddressDetail,
		City:          u.City,
		State:         u.State,
		Country:       u.Country,
		PostalCode:    u.PostalCode,
		CurrentLat:    u.CurrentLat,
		CurrentLng:    u.CurrentLng,
		About:         u.About,
		RestStatus:    u.RestStatus,
		Balance:       u.Balance,
		CreatedAt:     u.CreatedAt,
	}
}

func NewAddressResponse(a entities.UserAddress) AddressResponse {
	return AddressResponse{
		ID:          a.ID.String(),
		Address:     a.Address,
		City:        a.City,
		AddressType: a.AddressType,
		Note:        a.Note,
		Lat:         a.Lat,
		Lng:         a.Lng,
		CreatedAt:   a.CreatedAt,
	}
}
