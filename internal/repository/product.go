// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"

	"gorm.io/gorm"
)

// CatalogFilter describes a catalog page request. Category "" or "all"
// means the default feed, which excludes the wholesale tier.
type CatalogFilter struct {
	Query    string
	Category string
	Limit    int
	Offset   int
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, filter CatalogFilter) ([]*models.Product, int64, error)
	ListPromoted(ctx context.Context) ([]*models.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	ReplaceImages(ctx context.Context, productID uint, urls []string) error
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
}

// productRepository implements ProductRepository
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Seller").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Product", id)
		}
		return nil, models.NewStorageError(err)
	}
	return &product, nil
}

// applyCatalogFilter builds the WHERE clause shared by Count and Find.
// Sold items never appear; the wholesale tier is excluded unless it is
// selected explicitly.
func (r *productRepository) applyCatalogFilter(db *gorm.DB, filter CatalogFilter) *gorm.DB {
	q := db.Model(&models.Product{}).Where("sold = ?", false)

	category := strings.ToLower(strings.TrimSpace(filter.Category))
	if category == "" || category == models.CategoryAll {
		q = q.Where("category <> ?", models.CategoryWholesale)
	} else {
		q = q.Where("LOWER(category) = ?", category)
	}

	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", like, like, like)
	}

	return q
}

func (r *productRepository) List(ctx context.Context, filter CatalogFilter) ([]*models.Product, int64, error) {
	var total int64
	if err := r.applyCatalogFilter(r.db.WithContext(ctx), filter).Count(&total).Error; err != nil {
		return nil, 0, models.NewStorageError(err)
	}

	var products []*models.Product
	err := r.applyCatalogFilter(r.db.WithContext(ctx), filter).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Seller").
		Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, models.NewStorageError(err)
	}
	return products, total, nil
}

func (r *productRepository) ListPromoted(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Seller").
		Where("promoted = ? AND sold = ?", true, false).
		Order("created_at DESC, id DESC").
		Find(&products).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return products, nil
}

func (r *productRepository) ListBySeller(ctx context.Context, sellerID string) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC, id DESC").
		Find(&products).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Omit("Images", "Seller").Save(product).Error; err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *productRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return models.NewStorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Product", id)
	}
	return nil
}

// ReplaceImages swaps the product's entire image set for the given URLs
// in one transaction, so a reader never observes a product with zero
// images mid-update. Order is preserved; the first URL becomes the cover.
func (r *productRepository) ReplaceImages(ctx context.Context, productID uint, urls []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		images := make([]models.ProductImage, 0, len(urls))
		for i, url := range urls {
			images = append(images, models.ProductImage{
				ProductID: productID,
				URL:       url,
				Position:  i,
			})
		}
		if len(images) == 0 {
			return nil
		}
		return tx.Create(&images).Error
	})
	if err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

// Delete removes a product and its images. Image rows go first so the
// strong-ownership cascade holds even without a DB-level constraint.
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return models.NewStorageError(err)
		}
		result := tx.Delete(&models.Product{}, id)
		if result.Error != nil {
			return models.NewStorageError(result.Error)
		}
		if result.RowsAffected == 0 {
			return models.NewNotFoundError("Product", id)
		}
		return nil
	})
}

func (r *productRepository) IncrementViews(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return models.NewStorageError(err)
	}
	return nil
}
