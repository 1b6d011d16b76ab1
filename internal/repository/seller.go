package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"

	"gorm.io/gorm"
)

// SellerRepository defines the interface for seller data operations
type SellerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Seller, error)
	// GetByEmail returns (nil, nil) when no seller exists for the email.
	GetByEmail(ctx context.Context, email string) (*models.Seller, error)
	Create(ctx context.Context, seller *models.Seller) error
	Update(ctx context.Context, seller *models.Seller) error
	SetAdmin(ctx context.Context, email string, isAdmin bool) error
	ListAdmins(ctx context.Context) ([]models.Seller, error)
}

type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a new seller repository
func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) GetByID(ctx context.Context, id string) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.WithContext(ctx).First(&seller, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Seller", id)
		}
		return nil, models.NewStorageError(err)
	}
	return &seller, nil
}

func (r *sellerRepository) GetByEmail(ctx context.Context, email string) (*models.Seller, error) {
	var seller models.Seller
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&seller).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewStorageError(err)
	}
	return &seller, nil
}

func (r *sellerRepository) Create(ctx context.Context, seller *models.Seller) error {
	seller.Email = strings.ToLower(seller.Email)
	if err := r.db.WithContext(ctx).Create(seller).Error; err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *sellerRepository) Update(ctx context.Context, seller *models.Seller) error {
	if err := r.db.WithContext(ctx).Save(seller).Error; err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *sellerRepository) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Seller{}).
		Where("email = ?", strings.ToLower(email)).
		Update("is_admin", isAdmin)
	if result.Error != nil {
		return models.NewStorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Seller", email)
	}
	return nil
}

func (r *sellerRepository) ListAdmins(ctx context.Context) ([]models.Seller, error) {
	var sellers []models.Seller
	if err := r.db.WithContext(ctx).Where("is_admin = ?", true).Find(&sellers).Error; err != nil {
		return nil, models.NewStorageError(err)
	}
	return sellers, nil
}
