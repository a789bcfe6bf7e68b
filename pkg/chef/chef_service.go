package chef

import (
	"context"
	"errors"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ChefService interface {
		Onboard(ctx context.Context, req domain.OnboardRequest, userID string) (domain.UserResponse, error)
		UpdateStatus(ctx context.Context, req domain.UpdateChefStatusRequest, userID string) (domain.ChefStatusResponse, error)
		UpdateBankDetails(ctx context.Context, req domain.BankDetailsRequest, userID string) (entities.BankDetails, error)
		RequestWithdrawal(ctx context.Context, req domain.WithdrawRequest, userID string) (domain.WithdrawResult, error)
		GetWithdrawals(ctx context.Context, req domain.PaginationRequest, userID string) (domain.WithdrawListResponse, error)
	}

	chefService struct {
		chefRepository ChefRepository
		userRepository user.UserRepository
	}
)

func NewChefService(chefRepository ChefRepository, userRepository user.UserRepository) ChefService {
	return &chefService{
		chefRepository: chefRepository,
		userRepository: userRepository,
	}
}

func (s *chefService) getUser(ctx context.Context, userID string) (*entities.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *chefService) getChef(ctx context.Context, userID string) (*entities.User, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.IsChef() {
		return nil, domain.ErrOnlyChef
	}
	return u, nil
}

// Onboard fills in the kitchen profile and turns a customer into a chef.
// Chefs may call it again to replace their profile.
func (s *chefService) Onboard(ctx context.Context, req domain.OnboardRequest, userID string) (domain.UserResponse, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	u.UserType = domain.RoleChef
	u.About = req.About
	u.AddressName = req.AddressName
	u.Address = req.Address
	u.AddressDetail = req.AddressDetail
	u.Note = req.Note
	u.CurrentLat = req.CurrentLat
	u.CurrentLng = req.CurrentLng
	u.AvailabilityPickup = req.AvailabilityPickup
	u.AvailabilityDelivery = req.AvailabilityDelivery
	u.AvailabilityDinein = req.AvailabilityDinein
	if u.RestStatus == "" {
		u.RestStatus = domain.RestStatusAvailable
	}

	if err := s.userRepository.UpdateUser(ctx, u); err != nil {
		return domain.UserResponse{}, err
	}
	return domain.NewUserResponse(*u), nil
}

func (s *chefService) UpdateStatus(ctx context.Context, req domain.UpdateChefStatusRequest, userID string) (domain.ChefStatusResponse, error) {
	if _, err := s.getChef(ctx, userID); err != nil {
		return domain.ChefStatusResponse{}, err
	}
	if err := s.chefRepository.UpdateRestStatus(ctx, userID, req.Status); err != nil {
		return domain.ChefStatusResponse{}, err
	}
	return domain.ChefStatusResponse{Status: req.Status}, nil
}

func (s *chefService) UpdateBankDetails(ctx context.Context, req domain.BankDetailsRequest, userID string) (entities.BankDetails, error) {
	if _, err := s.getChef(ctx, userID); err != nil {
		return entities.BankDetails{}, err
	}

	details := entities.BankDetails{
		PaymentMethod: req.PaymentMethod,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
	}
	if err := s.chefRepository.UpdateBankDetails(ctx, userID, details); err != nil {
		return entities.BankDetails{}, err
	}
	return details, nil
}

func (s *chefService) RequestWithdrawal(ctx context.Context, req domain.WithdrawRequest, userID string) (domain.WithdrawResult, error) {
	if req.Amount <= 0 {
		return domain.WithdrawResult{}, domain.ErrInvalidAmount
	}

	chef, err := s.getChef(ctx, userID)
	if err != nil {
		return domain.WithdrawResult{}, err
	}
	details := chef.BankDetails.Data()
	if details.AccountNumber == "" {
		return domain.WithdrawResult{}, domain.ErrBankDetailsMissing
	}

	w := &entities.Withdraw{
		UserID:      chef.ID,
		Amount:      req.Amount,
		Status:      domain.WithdrawStatusPending,
		BankDetails: chef.BankDetails,
	}
	remaining, err := s.chefRepository.Withdraw(ctx, w)
	if err != nil {
		return domain.WithdrawResult{}, err
	}

	return domain.WithdrawResult{
		Withdraw:         domain.NewWithdrawResponse(*w),
		AvailableBalance: remaining,
	}, nil
}

func (s *chefService) GetWithdrawals(ctx context.Context, req domain.PaginationRequest, userID string) (domain.WithdrawListResponse, error) {
	if _, err := s.getChef(ctx, userID); err != nil {
		return domain.WithdrawListResponse{}, err
	}

	page := req.Normalize(20, 100)
	rows, total, err := s.chefRepository.GetWithdrawals(ctx, userID, page)
	if err != nil {
		return domain.WithdrawListResponse{}, err
	}

	res := domain.WithdrawListResponse{
		Withdrawals: make([]domain.WithdrawResponse, 0, len(rows)),
		Pagination:  domain.NewPaginationResponse(page, total),
	}
	for _, w := range rows {
		res.Withdrawals = append(res.Withdrawals, domain.NewWithdrawResponse(w))
	}
	return res, nil
}
