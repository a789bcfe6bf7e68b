package review

import (
	"context"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"

	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		CreateReview(ctx context.Context, review *entities.Review) error
		GetReviewByOrder(ctx context.Context, orderID, userID string) (*entities.Review, error)
		ExistsForOrder(ctx context.Context, orderID, userID string) (bool, error)
		GetChefRatings(ctx context.Context, chefID string) ([]int, error)
		GetDishRatings(ctx context.Context, dishIDs []string) (map[string][]int, error)
		GetChefAverages(ctx context.Context, chefIDs []string) (map[string]Average, error)
		GetChefReviews(ctx context.Context, chefID string, rating int, page domain.PaginationRequest) ([]entities.Review, int64, error)
	}

	Average struct {
		RestID string
		Rating float64
		Count  int64
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetReviewByOrder(ctx context.Context, orderID, userID string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND user_id = ?", orderID, userID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ExistsForOrder(ctx context.Context, orderID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("order_id = ? AND user_id = ?", orderID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) GetChefRatings(ctx context.Context, chefID string) ([]int, error) {
	var ratings []int
	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("rest_id = ?", chefID).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetDishRatings loads every rating for the given dishes in one scan and
// buckets them per dish.
func (r *reviewRepository) GetDishRatings(ctx context.Context, dishIDs []string) (map[string][]int, error) {
	out := make(map[string][]int, len(dishIDs))
	if len(dishIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		DishID string
		Rating int
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Select("dish_id, rating").
		Where("dish_id IN ?", dishIDs).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.DishID] = append(out[row.DishID], row.Rating)
	}
	return out, nil
}

func (r *reviewRepository) GetChefAverages(ctx context.Context, chefIDs []string) (map[string]Average, error) {
	out := make(map[string]Average, len(chefIDs))
	if len(chefIDs) == 0 {
		return out, nil
	}

	var rows []Average
	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Select("rest_id, AVG(rating) AS rating, COUNT(*) AS count").
		Where("rest_id IN ?", chefIDs).
		Group("rest_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		row.Rating = Round(row.Rating, 1)
		out[row.RestID] = row
	}
	return out, nil
}

func (r *reviewRepository) GetChefReviews(ctx context.Context, chefID string, rating int, page domain.PaginationRequest) ([]entities.Review, int64, error) {
	var (
		reviews []entities.Review
		count   int64
	)

	q := r.db.WithContext(ctx).Model(&entities.Review{}).Where("rest_id = ?", chefID)
	if rating > 0 {
		q = q.Where("rating = ?", rating)
	}

	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Preload("User").
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, count, nil
}
