// Package seed provides helpers to create demo data for development
// and testing.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BuildSeller constructs a seller without persisting it.
func (f *Factory) BuildSeller(overrides ...func(*models.Seller)) *models.Seller {
	name := gofakeit.Username()
	seller := &models.Seller{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(fmt.Sprintf("%s@example.com", name)),
		StoreName: gofakeit.Company(),
		Phone:     "+53" + gofakeit.Numerify("########"),
		Avatar:    fmt.Sprintf("https://picsum.photos/seed/%s/200/200", name),
		Verified:  f.rand.Intn(4) == 0,
	}
	for _, override := range overrides {
		override(seller)
	}
	return seller
}

// CreateSeller builds and persists a seller.
func (f *Factory) CreateSeller(overrides ...func(*models.Seller)) (*models.Seller, error) {
	seller := f.BuildSeller(overrides...)
	if err := f.db.Create(seller).Error; err != nil {
		return nil, err
	}
	return seller, nil
}

// BuildProduct constructs a product for the given seller with one to
// four images, without persisting it.
func (f *Factory) BuildProduct(seller *models.Seller, overrides ...func(*models.Product)) *models.Product {
	category := models.Categories[f.rand.Intn(len(models.Categories))]
	currencies := []string{"CUP", "MLC", "USD", "EUR"}

	product := &models.Product{
		Title:       gofakeit.ProductName(),
		Description: gofakeit.Paragraph(1, 2, 8, "\n"),
		PriceCents:  int64(f.rand.Intn(500000) + 100),
		Currency:    currencies[f.rand.Intn(len(currencies))],
		Category:    category,
		SellerID:    seller.ID,
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.rand.Intn(90)
	hoursBack := f.rand.Intn(24)
	product.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	imageCount := f.rand.Intn(4) + 1
	for i := 0; i < imageCount; i++ {
		product.Images = append(product.Images, models.ProductImage{
			URL:      fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
			Position: i,
		})
	}

	for _, override := range overrides {
		override(product)
	}
	return product
}

// CreateProduct builds and persists a product.
func (f *Factory) CreateProduct(seller *models.Seller, overrides ...func(*models.Product)) (*models.Product, error) {
	product := f.BuildProduct(seller, overrides...)
	if err := f.db.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// CreateFollow persists a follower edge, ignoring duplicates.
func (f *Factory) CreateFollow(followerID, sellerID string) error {
	if followerID == sellerID {
		return nil
	}
	follower := &models.Follower{FollowerID: followerID, SellerID: sellerID}
	err := f.db.Create(follower).Error
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "unique") {
		return nil
	}
	return err
}
