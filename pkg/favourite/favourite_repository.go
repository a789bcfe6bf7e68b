package favourite

import (
	"context"

	"HomeChef-Backend/entities"

	"gorm.io/gorm"
)

type (
	FavouriteRepository interface {
		Toggle(ctx context.Context, fav *entities.Favourite) (bool, error)
		IsLiked(ctx context.Context, userID, likeType, targetID string) (bool, error)
		LikedTargets(ctx context.Context, userID, likeType string, targetIDs []string) (map[string]bool, error)
	}

	favouriteRepository struct {
		db *gorm.DB
	}
)

func NewFavouriteRepository(db *gorm.DB) FavouriteRepository {
	return &favouriteRepository{
		db: db,
	}
}

// Toggle removes the like when it exists and creates it otherwise. It
// returns whether the target is liked afterwards.
func (r *favouriteRepository) Toggle(ctx context.Context, fav *entities.Favourite) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND target_id = ? AND like_type = ?", fav.UserID, fav.TargetID, fav.LikeType).
			Delete(&entities.Favourite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		liked = true
		return tx.Create(fav).Error
	})
	return liked, err
}

func (r *favouriteRepository) IsLiked(ctx context.Context, userID, likeType, targetID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Favourite{}).
		Where("user_id = ? AND target_id = ? AND like_type = ?", userID, targetID, likeType).
		Count(&count).Error
	return count > 0, err
}

func (r *favouriteRepository) LikedTargets(ctx context.Context, userID, likeType string, targetIDs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(targetIDs))
	if len(targetIDs) == 0 || userID == "" {
		return out, nil
	}

	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Favourite{}).
		Where("user_id = ? AND like_type = ? AND target_id IN ?", userID, likeType, targetIDs).
		Pluck("target_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
