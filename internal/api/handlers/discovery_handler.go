package handlers

import (
	"HomeChef-Backend/domain"
	"HomeChef-Backend/internal/api/presenters"
	"HomeChef-Backend/pkg/discovery"
	"HomeChef-Backend/pkg/favourite"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DiscoveryHandler interface {
		Home(c *fiber.Ctx) error
		GetChefs(c *fiber.Ctx) error
		GetChefDishes(c *fiber.Ctx) error
		GetChefReviews(c *fiber.Ctx) error
		GetCuisines(c *fiber.Ctx) error
		ToggleDishLike(c *fiber.Ctx) error
		ToggleChefLike(c *fiber.Ctx) error
	}

	discoveryHandler struct {
		discoveryService discovery.DiscoveryService
		favouriteService favourite.FavouriteService
		validator        *validator.Validate
	}
)

func NewDiscoveryHandler(
	discoveryService discovery.DiscoveryService,
	favouriteService favourite.FavouriteService,
	validator *validator.Validate,
) DiscoveryHandler {
	return &discoveryHandler{
		discoveryService: discoveryService,
		favouriteService: favouriteService,
		validator:        validator,
	}
}

func (h *discoveryHandler) Home(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.discoveryService.Home(c.Context(), userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetHome, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHome)
}

func (h *discoveryHandler) GetChefs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GetChefsRequest)
	if ok, err := parseQuery(c, h.validator, req); !ok {
		return err
	}

	res, err := h.discoveryService.GetChefs(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetChefs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChefs)
}

func (h *discoveryHandler) GetChefDishes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	chefID := c.Params("id")
	req := new(domain.GetDishesRequest)
	if ok, err := parseQuery(c, h.validator, req); !ok {
		return err
	}

	res, err := h.discoveryService.GetChefDishes(c.Context(), chefID, *req, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetChefDishes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChefDishes)
}

func (h *discoveryHandler) GetChefReviews(c *fiber.Ctx) error {
	chefID := c.Params("id")
	req := new(domain.GetChefReviewsRequest)
	if ok, err := parseQuery(c, h.validator, req); !ok {
		return err
	}

	res, err := h.discoveryService.GetChefReviews(c.Context(), chefID, *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *discoveryHandler) GetCuisines(c *fiber.Ctx) error {
	res, err := h.discoveryService.GetCuisines(c.Context())
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetCuisines, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCuisines)
}

func (h *discoveryHandler) ToggleDishLike(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.favouriteService.ToggleDish(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedToggleLike, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleLike)
}

func (h *discoveryHandler) ToggleChefLike(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.favouriteService.ToggleChef(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedToggleLike, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleLike)
}
