package handlers

import (
	"HomeChef-Backend/domain"
	"HomeChef-Backend/internal/api/presenters"
	"HomeChef-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		VerifyOtp(c *fiber.Ctx) error
		SetPassword(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		SendResetCode(c *fiber.Ctx) error
		ResetPassword(c *fiber.Ctx) error
		SocialLogin(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		UpdateUser(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Refresh(c *fiber.Ctx) error
		RegisterDevice(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

// parseBody decodes the JSON body into req and validates it. It writes the
// error response itself and reports whether the handler may continue.
func parseBody(c *fiber.Ctx, v *validator.Validate, req any) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := v.Struct(req); err != nil {
		return false, presenters.ValidationErrorResponse(c, err)
	}
	return true, nil
}

func parseQuery(c *fiber.Ctx, v *validator.Validate, req any) (bool, error) {
	if err := c.QueryParser(req); err != nil {
		return false, presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedValidation, err)
	}
	if err := v.Struct(req); err != nil {
		return false, presenters.ValidationErrorResponse(c, err)
	}
	return true, nil
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) VerifyOtp(c *fiber.Ctx) error {
	req := new(domain.VerifyOtpRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	if err := h.userService.VerifyOtp(c.Context(), *req); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedVerifyOtp, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVerifyOtp)
}

func (h *userHandler) SetPassword(c *fiber.Ctx) error {
	req := new(domain.SetPasswordRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.userService.SetPassword(c.Context(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedSetPassword, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSetPassword)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *userHandler) SendResetCode(c *fiber.Ctx) error {
	req := new(domain.SendResetCodeRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.userService.SendResetCode(c.Context(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedSendResetCode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendResetCode)
}

func (h *userHandler) ResetPassword(c *fiber.Ctx) error {
	req := new(domain.ResetPasswordRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.userService.ResetPassword(c.Context(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedResetPassword, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResetPassword)
}

func (h *userHandler) SocialLogin(c *fiber.Ctx) error {
	req := new(domain.SocialLoginRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.userService.SocialLogin(c.Context(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedSocialLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSocialLogin)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetMe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMe)
}

func (h *userHandler) UpdateUser(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateUserRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.userService.UpdateUser(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedUpdateUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateUser)
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	tokenID := c.Locals("token_id").(string)

	if err := h.userService.Logout(c.Context(), tokenID); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedLogout, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

func (h *userHandler) Refresh(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	tokenID := c.Locals("token_id").(string)

	res, err := h.userService.Refresh(c.Context(), userID, tokenID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedRefresh, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRefresh)
}

func (h *userHandler) RegisterDevice(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RegisterDeviceRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.userService.RegisterDevice(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedRegisterDevice, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRegisterDevice)
}
