package domain

import (
	"time"

	"HomeChef-Backend/entities"
)

var (
	MessageSuccessGetReviews = "reviews retrieved successfully"
	MessageFailedGetReviews  = "failed to retrieve reviews"
)

type (
	// RatingSummary always carries all five star buckets.
	RatingSummary struct {
		Average    float64          `json:"average"`
		Total      int64            `json:"total_reviews"`
		StarCounts map[string]int64 `json:"star_counts"`
	}

	ReviewResponse struct {
		ID        string    `json:"id"`
		OrderID   string    `json:"order_id"`
		UserID    string    `json:"user_id"`
		RestID    string    `json:"rest_id"`
		DishID    *string   `json:"dish_id"`
		Rating    int       `json:"rating"`
		Detail    string    `json:"detail"`
		Gallery   []string  `json:"gallery"`
		UserName  string    `json:"user_name,omitempty"`
		UserImage string    `json:"user_image,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	GetChefReviewsRequest struct {
		Rating int `query:"rating" validate:"omitempty,min=1,max=5"`
		PaginationRequest
	}

	ChefReviewsResponse struct {
		Reviews    []ReviewResponse   `json:"reviews"`
		Summary    RatingSummary      `json:"chef_ratings"`
		Pagination PaginationResponse `json:"pagination"`
	}
)

func NewReviewResponse(r entities.Review) ReviewResponse {
	res := ReviewResponse{
		ID:        r.ID.String(),
		OrderID:   r.OrderID.String(),
		UserID:    r.UserID.String(),
		RestID:    r.RestID.String(),
		Rating:    r.Rating,
		Detail:    r.Detail,
		Gallery:   r.Gallery,
		CreatedAt: r.CreatedAt,
	}
	if r.DishID != nil {
		id := r.DishID.String()
		res.DishID = &id
	}
	if r.User != nil {
		res.UserName = r.User.FullName()
		res.UserImage = r.User.Image
	}
	if res.Gallery == nil {
		res.Gallery = []string{}
	}
	return res
}
