package dish

import (
	"context"
	"errors"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/internal/utils"
	"HomeChef-Backend/internal/utils/storage"
	"HomeChef-Backend/pkg/review"
	"HomeChef-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DishService interface {
		AddDish(ctx context.Context, req domain.AddDishRequest, userID string) (domain.DishResponse, error)
		UpdateDish(ctx context.Context, id string, req domain.UpdateDishRequest, userID string) (domain.DishResponse, error)
		DeleteDish(ctx context.Context, id string, userID string) error
		GetDishes(ctx context.Context, req domain.GetDishesRequest, userID string) (domain.DishListResponse, error)
	}

	dishService struct {
		dishRepository   DishRepository
		userRepository   user.UserRepository
		reviewRepository review.ReviewRepository
		s3               storage.AwsS3
	}
)

// NewDishService builds the catalog service. s3 may be nil when object
// storage is not configured, in which case image cleanup is skipped.
func NewDishService(
	dishRepository DishRepository,
	userRepository user.UserRepository,
	reviewRepository review.ReviewRepository,
	s3 storage.AwsS3,
) DishService {
	return &dishService{
		dishRepository:   dishRepository,
		userRepository:   userRepository,
		reviewRepository: reviewRepository,
		s3:               s3,
	}
}

func (s *dishService) requireChef(ctx context.Context, userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, domain.ErrUserNotFound
		}
		return uuid.Nil, err
	}
	if !u.IsChef() {
		return uuid.Nil, domain.ErrOnlyChef
	}
	return id, nil
}

func (s *dishService) checkCuisine(ctx context.Context, cuisineID string) (uuid.UUID, error) {
	id, err := uuid.Parse(cuisineID)
	if err != nil {
		return uuid.Nil, domain.ErrCuisineNotFound
	}
	exists, err := s.dishRepository.CuisineExists(ctx, cuisineID)
	if err != nil {
		return uuid.Nil, err
	}
	if !exists {
		return uuid.Nil, domain.ErrCuisineNotFound
	}
	return id, nil
}

func (s *dishService) AddDish(ctx context.Context, req domain.AddDishRequest, userID string) (domain.DishResponse, error) {
	chefID, err := s.requireChef(ctx, userID)
	if err != nil {
		return domain.DishResponse{}, err
	}
	cuisineID, err := s.checkCuisine(ctx, req.CuisineID)
	if err != nil {
		return domain.DishResponse{}, err
	}

	dishType := req.DishType
	if dishType == "" {
		dishType = domain.DishTypeDish
	}

	dish := &entities.Dish{
		UserID:        chefID,
		CuisineID:     cuisineID,
		Category:      req.Category,
		DishType:      dishType,
		Name:          req.Name,
		About:         req.About,
		Keywords:      req.Keywords,
		Images:        req.Images,
		Sizes:         req.Sizes,
		Price:         *req.Price,
		DeliveryPrice: req.DeliveryPrice,
		DineinPrice:   req.DineinPrice,
		DineinLimit:   req.DineinLimit,
	}
	if dishType == domain.DishTypeOffer {
		dish.OfferTitle = req.OfferTitle
		dish.ValidUntil = req.ValidUntil
	}

	if err := s.dishRepository.CreateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}

	created, err := s.dishRepository.GetDishByID(ctx, dish.ID.String())
	if err != nil {
		return domain.DishResponse{}, err
	}
	return domain.NewDishResponse(*created), nil
}

func (s *dishService) UpdateDish(ctx context.Context, id string, req domain.UpdateDishRequest, userID string) (domain.DishResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.DishResponse{}, domain.ErrParseUUID
	}

	dish, err := s.dishRepository.GetOwnedDish(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotFound
		}
		return domain.DishResponse{}, err
	}

	if req.CuisineID.Set {
		cuisineID, err := s.checkCuisine(ctx, req.CuisineID.Value)
		if err != nil {
			return domain.DishResponse{}, err
		}
		dish.CuisineID = cuisineID
		dish.Cuisine = nil
	}

	req.Name.Apply(&dish.Name)
	req.About.Apply(&dish.About)
	req.Category.Apply(&dish.Category)
	req.DishType.Apply(&dish.DishType)
	req.Price.Apply(&dish.Price)
	req.DeliveryPrice.ApplyPtr(&dish.DeliveryPrice)
	req.DineinPrice.ApplyPtr(&dish.DineinPrice)
	req.DineinLimit.ApplyPtr(&dish.DineinLimit)
	req.OfferTitle.Apply(&dish.OfferTitle)
	req.ValidUntil.ApplyPtr(&dish.ValidUntil)

	if req.Keywords.Set {
		dish.Keywords = req.Keywords.Value
	}
	if req.Images.Set {
		dish.Images = req.Images.Value
	}
	if req.Sizes.Set {
		dish.Sizes = req.Sizes.Value
	}

	if err := s.dishRepository.UpdateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}

	updated, err := s.dishRepository.GetDishByID(ctx, id)
	if err != nil {
		return domain.DishResponse{}, err
	}
	return domain.NewDishResponse(*updated), nil
}

func (s *dishService) DeleteDish(ctx context.Context, id string, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}

	dish, err := s.dishRepository.GetOwnedDish(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDishNotFound
		}
		return err
	}

	deleted, err := s.dishRepository.DeleteDish(ctx, id, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrDishNotFound
	}

	s.removeImages(dish.Images)
	return nil
}

func (s *dishService) removeImages(images []string) {
	if s.s3 == nil {
		return
	}
	for _, link := range images {
		objectKey := s.s3.GetObjectKeyFromLink(link)
		if objectKey == "" {
			continue
		}
		if err := s.s3.DeleteFile(objectKey); err != nil {
			utils.Log.WithError(err).WithField("key", objectKey).Warn("failed to delete dish image")
		}
	}
}

func (s *dishService) GetDishes(ctx context.Context, req domain.GetDishesRequest, userID string) (domain.DishListResponse, error) {
	page := req.PaginationRequest.Normalize(20, 100)

	dishes, total, err := s.dishRepository.GetDishes(ctx, userID, req.DishType, page)
	if err != nil {
		return domain.DishListResponse{}, err
	}

	ids := make([]string, 0, len(dishes))
	for _, d := range dishes {
		ids = append(ids, d.ID.String())
	}
	ratings, err := s.reviewRepository.GetDishRatings(ctx, ids)
	if err != nil {
		return domain.DishListResponse{}, err
	}

	res := domain.DishListResponse{
		Dishes:     make([]domain.DishResponse, 0, len(dishes)),
		Pagination: domain.NewPaginationResponse(page, total),
	}
	for _, d := range dishes {
		item := domain.NewDishResponse(d)
		summary := review.Summarize(ratings[d.ID.String()])
		item.Rating = summary.Average
		item.ReviewsCount = summary.Total
		res.Dishes = append(res.Dishes, item)
	}
	return res, nil
}
