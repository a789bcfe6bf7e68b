package dish

import (
	"context"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"

	"gorm.io/gorm"
)

type (
	DishRepository interface {
		CreateDish(ctx context.Context, dish *entities.Dish) error
		GetDishByID(ctx context.Context, id string) (*entities.Dish, error)
		GetOwnedDish(ctx context.Context, id, userID string) (*entities.Dish, error)
		UpdateDish(ctx context.Context, dish *entities.Dish) error
		DeleteDish(ctx context.Context, id, userID string) (int64, error)
		GetDishes(ctx context.Context, userID, dishType string, page domain.PaginationRequest) ([]entities.Dish, int64, error)
		CuisineExists(ctx context.Context, id string) (bool, error)
		GetCuisines(ctx context.Context) ([]entities.Cuisine, error)
	}

	dishRepository struct {
		db *gorm.DB
	}
)

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{
		db: db,
	}
}

func (r *dishRepository) CreateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *dishRepository) GetDishByID(ctx context.Context, id string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).Preload("Cuisine").Where("id = ?", id).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) GetOwnedDish(ctx context.Context, id, userID string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).
		Preload("Cuisine").
		Where("id = ? AND user_id = ?", id, userID).
		First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) UpdateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Omit("Cuisine").Save(dish).Error
}

func (r *dishRepository) DeleteDish(ctx context.Context, id, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Dish{})
	return res.RowsAffected, res.Error
}

func (r *dishRepository) GetDishes(ctx context.Context, userID, dishType string, page domain.PaginationRequest) ([]entities.Dish, int64, error) {
	var (
		dishes []entities.Dish
		count  int64
	)

	q := r.db.WithContext(ctx).Model(&entities.Dish{}).Where("user_id = ?", userID)
	if dishType != "" {
		q = q.Where("dish_type = ?", dishType)
	}

	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Preload("Cuisine").
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&dishes).Error; err != nil {
		return nil, 0, err
	}
	return dishes, count, nil
}

func (r *dishRepository) CuisineExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Cuisine{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *dishRepository) GetCuisines(ctx context.Context) ([]entities.Cuisine, error) {
	var cuisines []entities.Cuisine
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&cuisines).Error; err != nil {
		return nil, err
	}
	return cuisines, nil
}
