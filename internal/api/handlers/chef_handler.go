package handlers

import (
	"errors"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/internal/api/presenters"
	"HomeChef-Backend/pkg/chef"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ChefHandler interface {
		Onboard(c *fiber.Ctx) error
		UpdateStatus(c *fiber.Ctx) error
		UpdateBankDetails(c *fiber.Ctx) error
		RequestWithdrawal(c *fiber.Ctx) error
		GetWithdrawals(c *fiber.Ctx) error
	}

	chefHandler struct {
		chefService chef.ChefService
		validator   *validator.Validate
	}
)

func NewChefHandler(chefService chef.ChefService, validator *validator.Validate) ChefHandler {
	return &chefHandler{
		chefService: chefService,
		validator:   validator,
	}
}

func (h *chefHandler) Onboard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.OnboardRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.chefService.Onboard(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedOnboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessOnboard)
}

func (h *chefHandler) UpdateStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateChefStatusRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.chefService.UpdateStatus(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedUpdateChefStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateChefStatus)
}

func (h *chefHandler) UpdateBankDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BankDetailsRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.chefService.UpdateBankDetails(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedUpdateBankDetails, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateBankDetails)
}

func (h *chefHandler) RequestWithdrawal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.WithdrawRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.chefService.RequestWithdrawal(c.Context(), *req, userID)
	if err != nil {
		var insufficient *domain.InsufficientBalanceError
		if errors.As(err, &insufficient) {
			return presenters.ErrorResponseWithData(c, fiber.StatusBadRequest, domain.MessageFailedRequestWithdraw, err, fiber.Map{
				"available_balance": insufficient.Available,
			})
		}
		return presenters.ServiceErrorResponse(c, domain.MessageFailedRequestWithdraw, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRequestWithdraw)
}

func (h *chefHandler) GetWithdrawals(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.PaginationRequest)
	if ok, err := parseQuery(c, h.validator, req); !ok {
		return err
	}

	res, err := h.chefService.GetWithdrawals(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetWithdrawals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWithdrawals)
}
