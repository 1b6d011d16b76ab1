package repository

import (
	"context"
	"errors"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository defines the interface for saved-product operations
type FavoriteRepository interface {
	Exists(ctx context.Context, followerID string, productID uint) (bool, error)
	Create(ctx context.Context, fav *models.Favorite) error
	Delete(ctx context.Context, followerID string, productID uint) error
	ListByFollower(ctx context.Context, followerID string) ([]models.Favorite, error)
	// BulkAdd inserts the given product ids for the follower, silently
	// skipping pairs that already exist. Used by the device-local sync.
	BulkAdd(ctx context.Context, followerID string, productIDs []uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Exists(ctx context.Context, followerID string, productID uint) (bool, error) {
	var fav models.Favorite
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND product_id = ?", followerID, productID).
		First(&fav).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, models.NewStorageError(err)
	}
	return true, nil
}

func (r *favoriteRepository) Create(ctx context.Context, fav *models.Favorite) error {
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, followerID string, productID uint) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND product_id = ?", followerID, productID).
		Delete(&models.Favorite{}).Error
	if err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *favoriteRepository) ListByFollower(ctx context.Context, followerID string) ([]models.Favorite, error) {
	var favs []models.Favorite
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("follower_id = ?", followerID).
		Order("created_at DESC").
		Find(&favs).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return favs, nil
}

func (r *favoriteRepository) BulkAdd(ctx context.Context, followerID string, productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}
	favs := make([]models.Favorite, 0, len(productIDs))
	for _, id := range productIDs {
		favs = append(favs, models.Favorite{FollowerID: followerID, ProductID: id})
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&favs).Error
	if err != nil {
		return models.NewStorageError(err)
	}
	return nil
}
