package favourite

import (
	"context"
	"errors"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/pkg/dish"
	"HomeChef-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FavouriteService interface {
		ToggleDish(ctx context.Context, dishID string, userID string) (domain.ToggleLikeResponse, error)
		ToggleChef(ctx context.Context, chefID string, userID string) (domain.ToggleLikeResponse, error)
	}

	favouriteService struct {
		favouriteRepository FavouriteRepository
		dishRepository      dish.DishRepository
		userRepository      user.UserRepository
	}
)

func NewFavouriteService(
	favouriteRepository FavouriteRepository,
	dishRepository dish.DishRepository,
	userRepository user.UserRepository,
) FavouriteService {
	return &favouriteService{
		favouriteRepository: favouriteRepository,
		dishRepository:      dishRepository,
		userRepository:      userRepository,
	}
}

func (s *favouriteService) ToggleDish(ctx context.Context, dishID string, userID string) (domain.ToggleLikeResponse, error) {
	if _, err := uuid.Parse(dishID); err != nil {
		return domain.ToggleLikeResponse{}, domain.ErrParseUUID
	}
	if _, err := s.dishRepository.GetDishByID(ctx, dishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ToggleLikeResponse{}, domain.ErrDishNotFound
		}
		return domain.ToggleLikeResponse{}, err
	}
	return s.toggle(ctx, userID, dishID, domain.LikeTypeDishes)
}

func (s *favouriteService) ToggleChef(ctx context.Context, chefID string, userID string) (domain.ToggleLikeResponse, error) {
	if _, err := uuid.Parse(chefID); err != nil {
		return domain.ToggleLikeResponse{}, domain.ErrParseUUID
	}
	chef, err := s.userRepository.GetUserByID(ctx, chefID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ToggleLikeResponse{}, domain.ErrChefNotFound
		}
		return domain.ToggleLikeResponse{}, err
	}
	if !chef.IsChef() {
		return domain.ToggleLikeResponse{}, domain.ErrChefNotFound
	}
	return s.toggle(ctx, userID, chefID, domain.LikeTypeUsers)
}

func (s *favouriteService) toggle(ctx context.Context, userID, targetID, likeType string) (domain.ToggleLikeResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ToggleLikeResponse{}, domain.ErrParseUUID
	}

	liked, err := s.favouriteRepository.Toggle(ctx, &entities.Favourite{
		UserID:   uid,
		TargetID: uuid.MustParse(targetID),
		LikeType: likeType,
	})
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}
	return domain.ToggleLikeResponse{IsLiked: liked}, nil
}
