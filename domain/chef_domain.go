package domain

import (
	"time"

	"HomeChef-Backend/entities"
)

const (
	RestStatusAvailable   = "available"
	RestStatusBusy        = "busy"
	RestStatusUnavailable = "unavailable"

	WithdrawStatusPending = "pending"
)

var (
	MessageSuccessOnboard           = "chef profile created successfully"
	MessageSuccessUpdateChefStatus  = "chef status updated successfully"
	MessageSuccessUpdateBankDetails = "bank details updated successfully"
	MessageSuccessRequestWithdraw   = "withdrawal request submitted successfully"
	MessageSuccessGetWithdrawals    = "withdrawals retrieved successfully"

	MessageFailedOnboard           = "failed to create chef profile"
	MessageFailedUpdateChefStatus  = "failed to update chef status"
	MessageFailedUpdateBankDetails = "failed to update bank details"
	MessageFailedRequestWithdraw   = "failed to request withdrawal"
	MessageFailedGetWithdrawals    = "failed to retrieve withdrawals"

	ErrChefNotFound       = NewError(ErrNotFound, "chef not found")
	ErrOnlyChef           = NewError(ErrForbidden, "only chefs can perform this action")
	ErrBankDetailsMissing = NewError(ErrInvalidState, "add bank details before requesting a withdrawal")
	ErrInvalidAmount      = NewError(ErrValidation, "amount must be greater than zero")
)

type (
	OnboardRequest struct {
		About                string                      `json:"about" validate:"required,max=255"`
		AddressName          string                      `json:"address_name" validate:"omitempty,max=255"`
		Address              string                      `json:"address" validate:"required"`
		AddressDetail        string                      `json:"address_detail" validate:"omitempty,max=255"`
		Note                 string                      `json:"note" validate:"omitempty,max=255"`
		CurrentLat           *float64                    `json:"current_lat" validate:"required,latitude"`
		CurrentLng           *float64                    `json:"current_lng" validate:"required,longitude"`
		AvailabilityPickup   []entities.AvailabilitySlot `json:"availability_pickup" validate:"required,dive"`
		AvailabilityDelivery []entities.AvailabilitySlot `json:"availability_delivery" validate:"omitempty,dive"`
		AvailabilityDinein   []entities.AvailabilitySlot `json:"availability_dinein" validate:"omitempty,dive"`
	}

	UpdateChefStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=available busy unavailable"`
	}

	ChefStatusResponse struct {
		Status string `json:"status"`
	}

	BankDetailsRequest struct {
		PaymentMethod string `json:"payment_method" validate:"required,max=50"`
		AccountName   string `json:"account_name" validate:"required,max=100"`
		AccountNumber string `json:"account_number" validate:"required,max=50"`
		BankName      string `json:"bank_name" validate:"omitempty,max=100"`
	}

	WithdrawRequest struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
	}

	WithdrawResponse struct {
		ID          string               `json:"id"`
		Amount      float64              `json:"amount"`
		Status      string               `json:"status"`
		BankDetails entities.BankDetails `json:"bank_details"`
		CreatedAt   time.Time            `json:"created_at"`
	}

	WithdrawResult struct {
		Withdraw         WithdrawResponse `json:"withdraw"`
		AvailableBalance float64          `json:"available_balance"`
	}

	WithdrawListResponse struct {
		Withdrawals []WithdrawResponse `json:"withdrawals"`
		Pagination  PaginationResponse `json:"pagination"`
	}
)

func NewWithdrawResponse(w entities.Withdraw) WithdrawResponse {
	return WithdrawResponse{
		ID:          w.ID.String(),
		Amount:      w.Amount,
		Status:      w.Status,
		BankDetails: w.BankDetails.Data(),
		CreatedAt:   w.CreatedAt,
	}
}
