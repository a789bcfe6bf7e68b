package handlers

import (
	"HomeChef-Backend/domain"
	"HomeChef-Backend/internal/api/presenters"
	"HomeChef-Backend/pkg/chat"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ChatHandler interface {
		SendMessage(c *fiber.Ctx) error
		GetChat(c *fiber.Ctx) error
		CheckNewMessages(c *fiber.Ctx) error
		MarkAsSeen(c *fiber.Ctx) error
	}

	chatHandler struct {
		chatService chat.ChatService
		validator   *validator.Validate
	}
)

func NewChatHandler(chatService chat.ChatService, validator *validator.Validate) ChatHandler {
	return &chatHandler{
		chatService: chatService,
		validator:   validator,
	}
}

func (h *chatHandler) SendMessage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SendMessageRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.chatService.SendMessage(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedSendMessage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSendMessage)
}

func (h *chatHandler) GetChat(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GetChatRequest)
	if ok, err := parseQuery(c, h.validator, req); !ok {
		return err
	}

	res, err := h.chatService.GetChat(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetChat, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChat)
}

func (h *chatHandler) CheckNewMessages(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.OrderChatRequest)
	if ok, err := parseQuery(c, h.validator, req); !ok {
		return err
	}

	res, err := h.chatService.CheckNewMessages(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedCheckNewMessages, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckNewMessages)
}

func (h *chatHandler) MarkAsSeen(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.OrderChatRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.chatService.MarkAsSeen(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedMarkAsSeen, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMarkAsSeen)
}
