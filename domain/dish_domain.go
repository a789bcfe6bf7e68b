package domain

import (
	"time"

	"HomeChef-Backend/entities"
)

const (
	DishTypeDish  = "dish"
	DishTypeOffer = "offer"
)

var (
	MessageSuccessAddDish    = "dish added successfully"
	MessageSuccessUpdateDish = "dish updated successfully"
	MessageSuccessDeleteDish = "dish deleted successfully"
	MessageSuccessGetDishes  = "dishes retrieved successfully"

	MessageFailedAddDish    = "failed to add dish"
	MessageFailedUpdateDish = "failed to update dish"
	MessageFailedDeleteDish = "failed to delete dish"
	MessageFailedGetDishes  = "failed to retrieve dishes"

	ErrDishNotFound    = NewError(ErrNotFound, "dish not found or you don't have permission")
	ErrCuisineNotFound = NewError(ErrValidation, "selected cuisine does not exist")
)

type (
	AddDishRequest struct {
		Name          string              `json:"name" validate:"required,max=100"`
		About         string              `json:"about" validate:"required,max=255"`
		Keywords      []string            `json:"keywords" validate:"required"`
		Category      string              `json:"category" validate:"required,max=100"`
		CuisineID     string              `json:"cuisine_id" validate:"required,uuid"`
		DishType      string              `json:"dish_type" validate:"omitempty,oneof=dish offer"`
		Price         *float64            `json:"price" validate:"required,min=0"`
		Images        []string            `json:"images" validate:"required"`
		DeliveryPrice *float64            `json:"delivery_price" validate:"omitempty,min=0"`
		DineinPrice   *float64            `json:"dinein_price" validate:"omitempty,min=0"`
		DineinLimit   *int                `json:"dinein_limit" validate:"omitempty,min=0"`
		Sizes         []entities.DishSize `json:"sizes"`
		OfferTitle    string              `json:"offer_title" validate:"omitempty,max=100"`
		ValidUntil    *time.Time          `json:"valid_until"`
	}

	UpdateDishRequest struct {
		Name          Optional[string]              `json:"name" validate:"omitempty,max=100"`
		About         Optional[string]              `json:"about" validate:"omitempty,max=255"`
		Keywords      Optional[[]string]            `json:"keywords"`
		Category      Optional[string]              `json:"category" validate:"omitempty,max=100"`
		CuisineID     Optional[string]              `json:"cuisine_id" validate:"omitempty,uuid"`
		DishType      Optional[string]              `json:"dish_type" validate:"omitempty,oneof=dish offer"`
		Price         Optional[float64]             `json:"price" validate:"omitempty,min=0"`
		Images        Optional[[]string]            `json:"images"`
		DeliveryPrice Optional[float64]             `json:"delivery_price" validate:"omitempty,min=0"`
		DineinPrice   Optional[float64]             `json:"dinein_price" validate:"omitempty,min=0"`
		DineinLimit   Optional[int]                 `json:"dinein_limit" validate:"omitempty,min=0"`
		Sizes         Optional[[]entities.DishSize] `json:"sizes"`
		OfferTitle    Optional[string]              `json:"offer_title" validate:"omitempty,max=100"`
		ValidUntil    Optional[time.Time]           `json:"valid_until"`
	}

	DishResponse struct {
		ID            string              `json:"id"`
		UserID        string              `json:"user_id"`
		CuisineID     string              `json:"cuisine_id"`
		Cuisine       string              `json:"cuisine,omitempty"`
		Category      string              `json:"category"`
		DishType      string              `json:"dish_type"`
		Name          string              `json:"name"`
		About         string              `json:"about"`
		Keywords      []string            `json:"keywords"`
		Images        []string            `json:"images"`
		Sizes         []entities.DishSize `json:"sizes"`
		Price         float64             `json:"price"`
		DeliveryPrice *float64            `json:"delivery_price"`
		DineinPrice   *float64            `json:"dinein_price"`
		DineinLimit   *int                `json:"dinein_limit"`
		OfferTitle    string              `json:"offer_title,omitempty"`
		ValidUntil    *time.Time          `json:"valid_until,omitempty"`
		Rating        float64             `json:"rating"`
		ReviewsCount  int64               `json:"reviews_count"`
		IsLiked       *bool               `json:"is_liked,omitempty"`
		Ratings       *RatingSummary      `json:"ratings,omitempty"`
		CreatedAt     time.Time           `json:"created_at"`
	}

	GetDishesRequest struct {
		DishType string `query:"dish_type" validate:"omitempty,oneof=dish offer"`
		PaginationRequest
	}

	DishListResponse struct {
		Dishes     []DishResponse     `json:"dishes"`
		Pagination PaginationResponse `json:"pagination"`
	}
)

func NewDishResponse(d entities.Dish) DishResponse {
	res := DishResponse{
		ID:            d.ID.String(),
		UserID:        d.UserID.String(),
		CuisineID:     d.CuisineID.String(),
		Category:      d.Category,
		DishType:      d.DishType,
		Name:          d.Name,
		About:         d.About,
		Keywords:      d.Keywords,
		Images:        d.Images,
		Sizes:         d.Sizes,
		Price:         d.Price,
		DeliveryPrice: d.DeliveryPrice,
		DineinPrice:   d.DineinPrice,
		DineinLimit:   d.DineinLimit,
		OfferTitle:    d.OfferTitle,
		ValidUntil:    d.ValidUntil,
		CreatedAt:     d.CreatedAt,
	}
	if d.Cuisine != nil {
		res.Cuisine = d.Cuisine.Name
	}
	return res
}
