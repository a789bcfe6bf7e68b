package user

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/internal/utils"
	"HomeChef-Backend/internal/utils/mailing"
	"HomeChef-Backend/pkg/jwt"
	"HomeChef-Backend/pkg/session"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		VerifyOtp(ctx context.Context, req domain.VerifyOtpRequest) error
		SetPassword(ctx context.Context, req domain.SetPasswordRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		SendResetCode(ctx context.Context, req domain.SendResetCodeRequest) (domain.SendResetCodeResponse, error)
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) (domain.AuthResponse, error)
		SocialLogin(ctx context.Context, req domain.SocialLoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error)
		Logout(ctx context.Context, tokenID string) error
		Refresh(ctx context.Context, userID string, tokenID string) (domain.AuthResponse, error)
		RegisterDevice(ctx context.Context, req domain.RegisterDeviceRequest, userID string) (domain.DeviceResponse, error)

		GetAddresses(ctx context.Context, userID string) ([]domain.AddressResponse, error)
		AddAddress(ctx context.Context, req domain.AddressRequest, userID string) (domain.AddressResponse, error)
		UpdateAddress(ctx context.Context, id string, req domain.UpdateAddressRequest, userID string) (domain.AddressResponse, error)
		DeleteAddress(ctx context.Context, id string, userID string) error
	}

	OtpConfig struct {
		TTL       time.Duration
		FixedCode string
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		sessions       session.Store
		mailer         mailing.Mailer
		social         SocialVerifier
		otp            OtpConfig
	}
)

func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	sessions session.Store,
	mailer mailing.Mailer,
	social SocialVerifier,
	otp OtpConfig,
) UserService {
	if otp.TTL <= 0 {
		otp.TTL = 10 * time.Minute
	}
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		sessions:       sessions,
		mailer:         mailer,
		social:         social,
		otp:            otp,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		UserType:  req.UserType,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.RegisterResponse{}, err
	}

	if err := s.issueOtp(ctx, user, domain.OtpPurposeRegister); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{UserID: user.ID.String()}, nil
}

func (s *userService) generateCode() (string, error) {
	if s.otp.FixedCode != "" {
		return s.otp.FixedCode, nil
	}
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *userService) issueOtp(ctx context.Context, user *entities.User, purpose string) error {
	code, err := s.generateCode()
	if err != nil {
		return err
	}

	otp := &entities.Otp{
		UserID:    user.ID,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(s.otp.TTL),
	}
	if err := s.userRepository.CreateOtp(ctx, otp); err != nil {
		return err
	}

	body := mailing.OtpMailBody(user.FirstName, code, int(s.otp.TTL.Minutes()))
	if err := s.mailer.SendMail(user.Email, "Your verification code", body); err != nil {
		utils.Log.WithError(err).WithField("user_id", user.ID).Error("failed to send OTP mail")
	}
	return nil
}

func (s *userService) VerifyOtp(ctx context.Context, req domain.VerifyOtpRequest) error {
	otp, err := s.userRepository.GetLatestOtp(ctx, req.UserID, req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidOtp
		}
		return err
	}
	if otp.ConsumedAt != nil {
		return domain.ErrInvalidOtp
	}
	if time.Now().After(otp.ExpiresAt) {
		return domain.ErrOtpExpired
	}

	return s.userRepository.MarkOtpVerified(ctx, otp.ID.String(), time.Now())
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", domain.ErrFailedHashPassword
	}
	return string(hashed), nil
}

func backfillDob(user *entities.User) {
	if user.Dob == nil {
		dob, _ := time.Parse("2006-01-02", domain.DefaultDob)
		user.Dob = &dob
	}
}

func (s *userService) SetPassword(ctx context.Context, req domain.SetPasswordRequest) (domain.AuthResponse, error) {
	user, err := s.getUser(ctx, req.UserID)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	user.Password = &hashed
	backfillDob(user)

	err = s.userRepository.SetPasswordWithOtp(ctx, user, OtpQuery{
		UserID:       user.ID.String(),
		RequireCheck: true,
		Now:          time.Now(),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrOtpNotVerified
		}
		return domain.AuthResponse{}, err
	}

	return s.issueToken(ctx, user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}
	if user.Password == nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	return s.issueToken(ctx, user)
}

func (s *userService) SendResetCode(ctx context.Context, req domain.SendResetCodeRequest) (domain.SendResetCodeResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SendResetCodeResponse{}, domain.ErrUserNotFound
		}
		return domain.SendResetCodeResponse{}, err
	}

	if err := s.issueOtp(ctx, user, domain.OtpPurposeReset); err != nil {
		return domain.SendResetCodeResponse{}, err
	}
	return domain.SendResetCodeResponse{UserID: user.ID.String()}, nil
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidOtp
		}
		return domain.AuthResponse{}, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	user.Password = &hashed

	err = s.userRepository.SetPasswordWithOtp(ctx, user, OtpQuery{
		UserID:  user.ID.String(),
		Code:    req.Code,
		Purpose: domain.OtpPurposeReset,
		Now:     time.Now(),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidOtp
		}
		return domain.AuthResponse{}, err
	}

	return s.issueToken(ctx, user)
}

func (s *userService) SocialLogin(ctx context.Context, req domain.SocialLoginRequest) (domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	verifiedEmail, err := s.social.Verify(ctx, req.SocialToken)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if verifiedEmail != email {
		return domain.AuthResponse{}, domain.ErrSocialEmailMismatch
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, err
		}
		user = &entities.User{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     email,
			UserType:  req.UserType,
		}
		backfillDob(user)
		if err := s.userRepository.CreateUser(ctx, user); err != nil {
			return domain.AuthResponse{}, err
		}
	}

	return s.issueToken(ctx, user)
}

func (s *userService) getUser(ctx context.Context, userID string) (*entities.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrUserNotFound
	}
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return domain.NewUserResponse(*user), nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	req.FirstName.Apply(&user.FirstName)
	req.LastName.Apply(&user.LastName)
	req.Phone.Apply(&user.Phone)
	req.Image.Apply(&user.Image)
	req.Gender.Apply(&user.Gender)
	req.Language.Apply(&user.Language)
	req.Address.Apply(&user.Address)
	req.City.Apply(&user.City)
	req.State.Apply(&user.State)
	req.Country.Apply(&user.Country)
	req.PostalCode.Apply(&user.PostalCode)
	req.CurrentLat.ApplyPtr(&user.CurrentLat)
	req.CurrentLng.ApplyPtr(&user.CurrentLng)
	if req.Dob.Set {
		dob, err := time.Parse("2006-01-02", req.Dob.Value)
		if err != nil {
			return domain.UserResponse{}, domain.NewError(domain.ErrValidation, "dob must use the format YYYY-MM-DD")
		}
		user.Dob = &dob
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return domain.NewUserResponse(*user), nil
}

func (s *userService) issueToken(ctx context.Context, user *entities.User) (domain.AuthResponse, error) {
	token, err := s.jwtService.GenerateTokenUser(user.ID.String(), user.UserType)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if err := s.sessions.Save(ctx, token.ID, user.ID.String(), s.jwtService.TTL()); err != nil {
		return domain.AuthResponse{}, err
	}

	return domain.AuthResponse{
		Token:     token.Value,
		TokenType: "bearer",
		ExpiresAt: token.ExpiresAt,
		User:      domain.NewUserResponse(*user),
	}, nil
}

func (s *userService) Logout(ctx context.Context, tokenID string) error {
	return s.sessions.Revoke(ctx, tokenID)
}

func (s *userService) Refresh(ctx context.Context, userID string, tokenID string) (domain.AuthResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if err := s.sessions.Revoke(ctx, tokenID); err != nil {
		return domain.AuthResponse{}, err
	}
	return s.issueToken(ctx, user)
}

func (s *userService) RegisterDevice(ctx context.Context, req domain.RegisterDeviceRequest, userID string) (domain.DeviceResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.DeviceResponse{}, err
	}

	device := &entities.Device{
		UserID:         user.ID,
		RegistrationID: req.RegistrationID,
		Platform:       req.Platform,
		Model:          req.Model,
	}
	if err := s.userRepository.UpsertDevice(ctx, device); err != nil {
		return domain.DeviceResponse{}, err
	}

	stored, err := s.userRepository.GetDeviceByRegistration(ctx, userID, req.RegistrationID)
	if err != nil {
		return domain.DeviceResponse{}, err
	}
	return domain.DeviceResponse{
		ID:             stored.ID.String(),
		RegistrationID: stored.RegistrationID,
		Platform:       stored.Platform,
		Model:          stored.Model,
	}, nil
}

func (s *userService) GetAddresses(ctx context.Context, userID string) ([]domain.AddressResponse, error) {
	addresses, err := s.userRepository.GetAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		res = append(res, domain.NewAddressResponse(a))
	}
	return res, nil
}

func (s *userService) AddAddress(ctx context.Context, req domain.AddressRequest, userID string) (domain.AddressResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddressResponse{}, domain.ErrParseUUID
	}

	address := &entities.UserAddress{
		UserID:      userUUID,
		Address:     req.Address,
		City:        req.City,
		AddressType: req.AddressType,
		Note:        req.Note,
		Lat:         *req.Lat,
		Lng:         *req.Lng,
	}
	if err := s.userRepository.CreateAddress(ctx, address); err != nil {
		return domain.AddressResponse{}, err
	}
	return domain.NewAddressResponse(*address), nil
}

func (s *userService) UpdateAddress(ctx context.Context, id string, req domain.UpdateAddressRequest, userID string) (domain.AddressResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.AddressResponse{}, domain.ErrAddressNotFound
	}
	address, err := s.userRepository.GetAddressByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AddressResponse{}, domain.ErrAddressNotFound
		}
		return domain.AddressResponse{}, err
	}

	req.Address.Apply(&address.Address)
	req.City.Apply(&address.City)
	req.AddressType.Apply(&address.AddressType)
	req.Note.Apply(&address.Note)
	req.Lat.Apply(&address.Lat)
	req.Lng.Apply(&address.Lng)

	if err := s.userRepository.UpdateAddress(ctx, address); err != nil {
		return domain.AddressResponse{}, err
	}
	return domain.NewAddressResponse(*address), nil
}

func (s *userService) DeleteAddress(ctx context.Context, id string, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrAddressNotFound
	}
	affected, err := s.userRepository.DeleteAddress(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}
