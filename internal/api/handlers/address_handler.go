package handlers

import (
	"HomeChef-Backend/domain"
	"HomeChef-Backend/internal/api/presenters"
	"HomeChef-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AddressHandler interface {
		GetAddresses(c *fiber.Ctx) error
		AddAddress(c *fiber.Ctx) error
		UpdateAddress(c *fiber.Ctx) error
		DeleteAddress(c *fiber.Ctx) error
	}

	addressHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewAddressHandler(userService user.UserService, validator *validator.Validate) AddressHandler {
	return &addressHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *addressHandler) GetAddresses(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.GetAddresses(c.Context(), userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetAddresses, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAddresses)
}

func (h *addressHandler) AddAddress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddressRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.userService.AddAddress(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedAddAddress, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddAddress)
}

func (h *addressHandler) UpdateAddress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	addressID := c.Params("id")
	req := new(domain.UpdateAddressRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.userService.UpdateAddress(c.Context(), addressID, *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedUpdateAddress, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateAddress)
}

func (h *addressHandler) DeleteAddress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	addressID := c.Params("id")

	if err := h.userService.DeleteAddress(c.Context(), addressID, userID); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedDeleteAddress, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteAddress)
}
