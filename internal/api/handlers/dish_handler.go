package handlers

import (
	"HomeChef-Backend/domain"
	"HomeChef-Backend/internal/api/presenters"
	"HomeChef-Backend/pkg/dish"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DishHandler interface {
		AddDish(c *fiber.Ctx) error
		UpdateDish(c *fiber.Ctx) error
		DeleteDish(c *fiber.Ctx) error
		GetDishes(c *fiber.Ctx) error
	}

	dishHandler struct {
		dishService dish.DishService
		validator   *validator.Validate
	}
)

func NewDishHandler(dishService dish.DishService, validator *validator.Validate) DishHandler {
	return &dishHandler{
		dishService: dishService,
		validator:   validator,
	}
}

func (h *dishHandler) AddDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddDishRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.dishService.AddDish(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedAddDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddDish)
}

func (h *dishHandler) UpdateDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dishID := c.Params("id")
	req := new(domain.UpdateDishRequest)
	if ok, err := parseBody(c, h.validator, req); !ok {
		return err
	}

	res, err := h.dishService.UpdateDish(c.Context(), dishID, *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedUpdateDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDish)
}

func (h *dishHandler) DeleteDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dishID := c.Params("id")

	if err := h.dishService.DeleteDish(c.Context(), dishID, userID); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedDeleteDish, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDish)
}

func (h *dishHandler) GetDishes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GetDishesRequest)
	if ok, err := parseQuery(c, h.validator, req); !ok {
		return err
	}

	res, err := h.dishService.GetDishes(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetDishes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDishes)
}
