package domain

import "time"

const (
	ChefFilterPopular  = "popular"
	ChefFilterTopRated = "top_rated"
	ChefFilterOpenNow  = "open_now"

	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortRating    = "rating"
	SortDistance  = "distance"

	LikeTypeUsers  = "users"
	LikeTypeDishes = "dishes"

	DefaultSearchRadiusKm = 10.0
)

var (
	MessageSuccessGetHome        = "home data retrieved successfully"
	MessageSuccessGetChefs       = "chefs retrieved successfully"
	MessageSuccessGetChefDishes  = "chef dishes retrieved successfully"
	MessageSuccessToggleLike     = "like status updated successfully"
	MessageSuccessGetCuisines    = "cuisines retrieved successfully"
	MessageFailedGetHome         = "failed to retrieve home data"
	MessageFailedGetChefs        = "failed to retrieve chefs"
	MessageFailedGetChefDishes   = "failed to retrieve chef dishes"
	MessageFailedToggleLike      = "failed to update like status"
	MessageFailedGetCuisines     = "failed to retrieve cuisines"
	ErrInvalidFilter             = NewError(ErrValidation, "unknown chef filter")
	ErrDistanceSortNeedsLocation = NewError(ErrValidation, "lat and lng are required to sort by distance")
)

type (
	GetChefsRequest struct {
		Filter    string   `query:"filter"`
		CuisineID string   `query:"cuisine_id" validate:"omitempty,uuid"`
		SortBy    string   `query:"sort_by" validate:"omitempty,oneof=price_low price_high rating distance"`
		Lat       *float64 `query:"lat" validate:"omitempty,latitude"`
		Lng       *float64 `query:"lng" validate:"omitempty,longitude"`
		Radius    float64  `query:"radius" validate:"omitempty,gt=0"`
		Search    string   `query:"search" validate:"omitempty,max=100"`
		PaginationRequest
	}

	// ChefSearch is the normalized form of GetChefsRequest consumed by the repository.
	ChefSearch struct {
		Popular   bool
		TopRated  bool
		OpenNow   bool
		CuisineID string
		SortBy    string
		Lat       *float64
		Lng       *float64
		RadiusKm  float64
		Search    string
		ViewerID  string
		Page      PaginationRequest
	}

	ChefListItem struct {
		ID           string   `json:"id"`
		FirstName    string   `json:"first_name"`
		LastName     string   `json:"last_name"`
		Image        string   `json:"image"`
		About        string   `json:"about"`
		Address      string   `json:"address"`
		City         string   `json:"city"`
		RestStatus   string   `json:"rest_status"`
		CurrentLat   *float64 `json:"current_lat"`
		CurrentLng   *float64 `json:"current_lng"`
		Distance     *float64 `json:"distance,omitempty"`
		AvgRating    *float64 `json:"avg_rating,omitempty"`
		OrderCount   *int64   `json:"order_count,omitempty"`
		MinPrice     *float64 `json:"min_price,omitempty"`
		MaxPrice     *float64 `json:"max_price,omitempty"`
		IsLiked      bool     `json:"is_liked"`
		Rating       float64  `json:"rating"`
		ReviewsCount int64    `json:"reviews_count"`
	}

	ChefListResponse struct {
		Chefs      []ChefListItem     `json:"chefs"`
		Pagination PaginationResponse `json:"pagination"`
	}

	CuisineResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Image string `json:"image"`
	}

	HomeResponse struct {
		Cuisines      []CuisineResponse `json:"cuisines"`
		RecentOrders  []OrderResponse   `json:"recent_orders"`
		TopChefs      []ChefListItem    `json:"top_chefs"`
		PopularDishes []DishResponse    `json:"popular_dishes"`
	}

	ChefProfileResponse struct {
		ID          string    `json:"id"`
		FirstName   string    `json:"first_name"`
		LastName    string    `json:"last_name"`
		Image       string    `json:"image"`
		About       string    `json:"about"`
		Address     string    `json:"address"`
		City        string    `json:"city"`
		RestStatus  string    `json:"rest_status"`
		CurrentLat  *float64  `json:"current_lat"`
		CurrentLng  *float64  `json:"current_lng"`
		IsLiked     bool      `json:"is_liked"`
		MemberSince time.Time `json:"member_since"`
	}

	ChefDishesResponse struct {
		Chef        ChefProfileResponse `json:"chef"`
		ChefRatings RatingSummary       `json:"chef_ratings"`
		Dishes      []DishResponse      `json:"dishes"`
		Pagination  PaginationResponse  `json:"pagination"`
	}

	ToggleLikeResponse struct {
		IsLiked bool `json:"is_liked"`
	}
)

func (s ChefSearch) HasLocation() bool {
	return s.Lat != nil && s.Lng != nil
}
