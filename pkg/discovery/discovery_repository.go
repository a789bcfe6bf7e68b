package discovery

import (
	"context"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"

	"gorm.io/gorm"
)

type (
	DiscoveryRepository interface {
		SearchChefs(ctx context.Context, s domain.ChefSearch) ([]ChefRow, int64, error)
		PopularDishes(ctx context.Context, limit int) ([]entities.Dish, error)
	}

	discoveryRepository struct {
		db *gorm.DB
	}
)

func NewDiscoveryRepository(db *gorm.DB) DiscoveryRepository {
	return &discoveryRepository{
		db: db,
	}
}

func (r *discoveryRepository) SearchChefs(ctx context.Context, s domain.ChefSearch) ([]ChefRow, int64, error) {
	var (
		rows  []ChefRow
		count int64
	)

	db := r.db.WithContext(ctx)
	if err := applyChefFilters(db.Model(&entities.User{}), s).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return []ChefRow{}, 0, nil
	}

	if err := newChefQuery(db, s).build().Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

// PopularDishes returns dishes ordered by their average review rating.
func (r *discoveryRepository) PopularDishes(ctx context.Context, limit int) ([]entities.Dish, error) {
	var ranked []struct {
		ID        string
		AvgRating float64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Dish{}).
		Select("dishes.id, COALESCE(AVG(reviews.rating), 0) AS avg_rating").
		Joins("LEFT JOIN reviews ON reviews.dish_id = dishes.id").
		Group("dishes.id").
		Order("avg_rating DESC").
		Order("dishes.created_at DESC").
		Limit(limit).
		Scan(&ranked).Error; err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return []entities.Dish{}, nil
	}

	ids := make([]string, 0, len(ranked))
	for _, row := range ranked {
		ids = append(ids, row.ID)
	}

	var dishes []entities.Dish
	if err := r.db.WithContext(ctx).Preload("Cuisine").Where("id IN ?", ids).Find(&dishes).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]entities.Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID.String()] = d
	}
	out := make([]entities.Dish, 0, len(dishes))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}
