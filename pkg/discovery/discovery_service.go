package discovery

import (
	"context"
	"errors"
	"strings"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/pkg/dish"
	"HomeChef-Backend/pkg/favourite"
	"HomeChef-Backend/pkg/order"
	"HomeChef-Backend/pkg/review"
	"HomeChef-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DiscoveryService interface {
		Home(ctx context.Context, userID string) (domain.HomeResponse, error)
		GetChefs(ctx context.Context, req domain.GetChefsRequest, userID string) (domain.ChefListResponse, error)
		GetChefDishes(ctx context.Context, chefID string, req domain.GetDishesRequest, userID string) (domain.ChefDishesResponse, error)
		GetChefReviews(ctx context.Context, chefID string, req domain.GetChefReviewsRequest) (domain.ChefReviewsResponse, error)
		GetCuisines(ctx context.Context) ([]domain.CuisineResponse, error)
	}

	Repositories struct {
		Discovery DiscoveryRepository
		Dish      dish.DishRepository
		User      user.UserRepository
		Review    review.ReviewRepository
		Favourite favourite.FavouriteRepository
		Order     order.OrderRepository
	}

	discoveryService struct {
		repos    Repositories
		radiusKm float64
	}
)

// NewDiscoveryService builds the discovery service. radiusKm is the search
// radius used when a location is given without one.
func NewDiscoveryService(repos Repositories, radiusKm float64) DiscoveryService {
	if radiusKm <= 0 {
		radiusKm = domain.DefaultSearchRadiusKm
	}
	return &discoveryService{
		repos:    repos,
		radiusKm: radiusKm,
	}
}

// normalize turns the raw query into a ChefSearch, parsing the comma
// separated filter list.
func (s *discoveryService) normalize(req domain.GetChefsRequest, userID string) (domain.ChefSearch, error) {
	search := domain.ChefSearch{
		CuisineID: req.CuisineID,
		SortBy:    req.SortBy,
		Search:    strings.TrimSpace(req.Search),
		ViewerID:  userID,
		RadiusKm:  req.Radius,
		Page:      req.PaginationRequest.Normalize(10, 50),
	}

	for _, f := range strings.Split(req.Filter, ",") {
		switch strings.TrimSpace(f) {
		case "":
		case domain.ChefFilterPopular:
			search.Popular = true
		case domain.ChefFilterTopRated:
			search.TopRated = true
		case domain.ChefFilterOpenNow:
			search.OpenNow = true
		default:
			return domain.ChefSearch{}, domain.ErrInvalidFilter
		}
	}

	if req.Lat != nil && req.Lng != nil {
		search.Lat, search.Lng = req.Lat, req.Lng
		if search.RadiusKm <= 0 {
			search.RadiusKm = s.radiusKm
		}
	}
	if search.SortBy == domain.SortDistance && !search.HasLocation() {
		return domain.ChefSearch{}, domain.ErrDistanceSortNeedsLocation
	}
	return search, nil
}

func (s *discoveryService) GetChefs(ctx context.Context, req domain.GetChefsRequest, userID string) (domain.ChefListResponse, error) {
	search, err := s.normalize(req, userID)
	if err != nil {
		return domain.ChefListResponse{}, err
	}

	chefs, total, err := s.searchChefs(ctx, search)
	if err != nil {
		return domain.ChefListResponse{}, err
	}
	return domain.ChefListResponse{
		Chefs:      chefs,
		Pagination: domain.NewPaginationResponse(search.Page, total),
	}, nil
}

func (s *discoveryService) searchChefs(ctx context.Context, search domain.ChefSearch) ([]domain.ChefListItem, int64, error) {
	rows, total, err := s.repos.Discovery.SearchChefs(ctx, search)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	ratings, err := s.repos.Review.GetChefAverages(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	liked, err := s.repos.Favourite.LikedTargets(ctx, search.ViewerID, domain.LikeTypeUsers, ids)
	if err != nil {
		return nil, 0, err
	}

	items := make([]domain.ChefListItem, 0, len(rows))
	for _, r := range rows {
		item := domain.ChefListItem{
			ID:           r.ID,
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			Image:        r.Image,
			About:        r.About,
			Address:      r.Address,
			City:         r.City,
			RestStatus:   r.RestStatus,
			CurrentLat:   r.CurrentLat,
			CurrentLng:   r.CurrentLng,
			OrderCount:   r.OrderCount,
			MinPrice:     r.MinPrice,
			MaxPrice:     r.MaxPrice,
			IsLiked:      liked[r.ID],
			Rating:       ratings[r.ID].Rating,
			ReviewsCount: ratings[r.ID].Count,
		}
		if r.Distance != nil {
			d := review.Round(*r.Distance, 2)
			item.Distance = &d
		}
		if r.AvgRating != nil {
			avg := review.Round(*r.AvgRating, 1)
			item.AvgRating = &avg
		}
		items = append(items, item)
	}
	return items, total, nil
}

func (s *discoveryService) GetCuisines(ctx context.Context) ([]domain.CuisineResponse, error) {
	cuisines, err := s.repos.Dish.GetCuisines(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.CuisineResponse, 0, len(cuisines))
	for _, c := range cuisines {
		res = append(res, domain.CuisineResponse{ID: c.ID.String(), Name: c.Name, Image: c.Image})
	}
	return res, nil
}

func (s *discoveryService) Home(ctx context.Context, userID string) (domain.HomeResponse, error) {
	cuisines, err := s.GetCuisines(ctx)
	if err != nil {
		return domain.HomeResponse{}, err
	}

	recent, _, err := s.repos.Order.GetOrders(ctx, order.Filter{
		Column: "user_id",
		UserID: userID,
		Page:   domain.PaginationRequest{Page: 1, PerPage: 5},
	})
	if err != nil {
		return domain.HomeResponse{}, err
	}

	topChefs, _, err := s.searchChefs(ctx, domain.ChefSearch{
		Popular:  true,
		ViewerID: userID,
		Page:     domain.PaginationRequest{Page: 1, PerPage: 10},
	})
	if err != nil {
		return domain.HomeResponse{}, err
	}

	dishes, err := s.repos.Discovery.PopularDishes(ctx, 10)
	if err != nil {
		return domain.HomeResponse{}, err
	}
	popular, err := s.dishResponses(ctx, dishes, userID, false)
	if err != nil {
		return domain.HomeResponse{}, err
	}

	res := domain.HomeResponse{
		Cuisines:      cuisines,
		RecentOrders:  make([]domain.OrderResponse, 0, len(recent)),
		TopChefs:      topChefs,
		PopularDishes: popular,
	}
	for _, o := range recent {
		res.RecentOrders = append(res.RecentOrders, domain.NewOrderResponse(o))
	}
	return res, nil
}

// dishResponses decorates dishes with their rating, the viewer's like and,
// when full is set, the star histogram.
func (s *discoveryService) dishResponses(ctx context.Context, dishes []entities.Dish, viewerID string, full bool) ([]domain.DishResponse, error) {
	ids := make([]string, 0, len(dishes))
	for _, d := range dishes {
		ids = append(ids, d.ID.String())
	}

	ratings, err := s.repos.Review.GetDishRatings(ctx, ids)
	if err != nil {
		return nil, err
	}
	liked, err := s.repos.Favourite.LikedTargets(ctx, viewerID, domain.LikeTypeDishes, ids)
	if err != nil {
		return nil, err
	}

	res := make([]domain.DishResponse, 0, len(dishes))
	for _, d := range dishes {
		id := d.ID.String()
		summary := review.Summarize(ratings[id])
		isLiked := liked[id]

		item := domain.NewDishResponse(d)
		item.Rating = summary.Average
		item.ReviewsCount = summary.Total
		item.IsLiked = &isLiked
		if full {
			item.Ratings = &summary
		}
		res = append(res, item)
	}
	return res, nil
}

func (s *discoveryService) getChef(ctx context.Context, chefID string) (*entities.User, error) {
	if _, err := uuid.Parse(chefID); err != nil {
		return nil, domain.ErrParseUUID
	}
	chef, err := s.repos.User.GetUserByID(ctx, chefID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrChefNotFound
		}
		return nil, err
	}
	if !chef.IsChef() {
		return nil, domain.ErrChefNotFound
	}
	return chef, nil
}

func (s *discoveryService) GetChefDishes(ctx context.Context, chefID string, req domain.GetDishesRequest, userID string) (domain.ChefDishesResponse, error) {
	chef, err := s.getChef(ctx, chefID)
	if err != nil {
		return domain.ChefDishesResponse{}, err
	}

	isLiked, err := s.repos.Favourite.IsLiked(ctx, userID, domain.LikeTypeUsers, chefID)
	if err != nil {
		return domain.ChefDishesResponse{}, err
	}

	ratings, err := s.repos.Review.GetChefRatings(ctx, chefID)
	if err != nil {
		return domain.ChefDishesResponse{}, err
	}

	page := req.PaginationRequest.Normalize(50, 100)
	dishes, total, err := s.repos.Dish.GetDishes(ctx, chefID, req.DishType, page)
	if err != nil {
		return domain.ChefDishesResponse{}, err
	}
	items, err := s.dishResponses(ctx, dishes, userID, true)
	if err != nil {
		return domain.ChefDishesResponse{}, err
	}

	return domain.ChefDishesResponse{
		Chef: domain.ChefProfileResponse{
			ID:          chef.ID.String(),
			FirstName:   chef.FirstName,
			LastName:    chef.LastName,
			Image:       chef.Image,
			About:       chef.About,
			Address:     chef.Address,
			City:        chef.City,
			RestStatus:  chef.RestStatus,
			CurrentLat:  chef.CurrentLat,
			CurrentLng:  chef.CurrentLng,
			IsLiked:     isLiked,
			MemberSince: chef.CreatedAt,
		},
		ChefRatings: review.Summarize(ratings),
		Dishes:      items,
		Pagination:  domain.NewPaginationResponse(page, total),
	}, nil
}

func (s *discoveryService) GetChefReviews(ctx context.Context, chefID string, req domain.GetChefReviewsRequest) (domain.ChefReviewsResponse, error) {
	if _, err := s.getChef(ctx, chefID); err != nil {
		return domain.ChefReviewsResponse{}, err
	}

	ratings, err := s.repos.Review.GetChefRatings(ctx, chefID)
	if err != nil {
		return domain.ChefReviewsResponse{}, err
	}

	page := req.PaginationRequest.Normalize(10, 50)
	reviews, total, err := s.repos.Review.GetChefReviews(ctx, chefID, req.Rating, page)
	if err != nil {
		return domain.ChefReviewsResponse{}, err
	}

	res := domain.ChefReviewsResponse{
		Reviews:    make([]domain.ReviewResponse, 0, len(reviews)),
		Summary:    review.Summarize(ratings),
		Pagination: domain.NewPaginationResponse(page, total),
	}
	for _, r := range reviews {
		res.Reviews = append(res.Reviews, domain.NewReviewResponse(r))
	}
	return res, nil
}
