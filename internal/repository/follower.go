package repository

import (
	"context"
	"errors"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"

	"gorm.io/gorm"
)

// FollowerRepository defines the interface for follower edge operations
type FollowerRepository interface {
	Exists(ctx context.Context, followerID, sellerID string) (bool, error)
	Create(ctx context.Context, edge *models.Follower) error
	Delete(ctx context.Context, followerID, sellerID string) error
	CountForSeller(ctx context.Context, sellerID string) (int64, error)
}

type followerRepository struct {
	db *gorm.DB
}

// NewFollowerRepository creates a new follower repository
func NewFollowerRepository(db *gorm.DB) FollowerRepository {
	return &followerRepository{db: db}
}

func (r *followerRepository) Exists(ctx context.Context, followerID, sellerID string) (bool, error) {
	var edge models.Follower
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND seller_id = ?", followerID, sellerID).
		First(&edge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, models.NewStorageError(err)
	}
	return true, nil
}

func (r *followerRepository) Create(ctx context.Context, edge *models.Follower) error {
	if err := r.db.WithContext(ctx).Create(edge).Error; err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *followerRepository) Delete(ctx context.Context, followerID, sellerID string) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND seller_id = ?", followerID, sellerID).
		Delete(&models.Follower{}).Error
	if err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *followerRepository) CountForSeller(ctx context.Context, sellerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follower{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewStorageError(err)
	}
	return count, nil
}
