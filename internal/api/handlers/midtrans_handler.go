package handlers

import (
	"HomeChef-Backend/domain"
	"HomeChef-Backend/internal/api/presenters"
	"HomeChef-Backend/internal/utils"
	"HomeChef-Backend/pkg/midtrans"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MidtransHandler interface {
		CreatePaymentIntent(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	midtransHandler struct {
		midtransService midtrans.MidtransService
		validator       *validator.Validate
	}
)

func NewMidtransHandler(midtransService midtrans.MidtransService, validator *validator.Validate) MidtransHandler {
	return &midtransHandler{
		midtransService: midtransService,
		validator:       validator,
	}
}

func (h *midtransHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreatePaymentIntentRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.midtransService.CreatePaymentIntent(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedCreatePaymentIntent, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCreatePaymentIntent)
}

func (h *midtransHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	req := new(domain.MidtransNotificationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.midtransService.HandleNotification(c.Context(), *req); err != nil {
		utils.Log.WithError(err).WithField("order_id", req.OrderID).Warn("midtrans notification rejected")
		return presenters.ServiceErrorResponse(c, domain.MessageFailedPaymentNotification, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessPaymentNotification)
}
