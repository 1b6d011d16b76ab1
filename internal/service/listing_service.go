package service

import (
	"context"
	"strings"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/cache"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/observability"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/repository"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/validation"
)

// ListingService enforces ownership and state invariants across the
// listing lifecycle. Every mutation takes the Seller resolved from the
// caller's identity; client-supplied seller ids are never trusted.
type ListingService struct {
	productRepo repository.ProductRepository
}

// CreateListingInput carries the payload for a new listing.
type CreateListingInput struct {
	Seller      *models.Seller
	Title       string
	Description string
	PriceCents  int64
	Currency    string
	Category    string
	Images      []string
}

// UpdateListingInput carries a partial listing update. Nil fields are
// left untouched; a non-nil Images slice replaces the whole image set.
type UpdateListingInput struct {
	Seller      *models.Seller
	ProductID   uint
	Title       string
	Description string
	PriceCents  *int64
	Currency    string
	Category    string
	Images      []string
}

// NewListingService creates a new listing service.
func NewListingService(productRepo repository.ProductRepository) *ListingService {
	return &ListingService{productRepo: productRepo}
}

func (s *ListingService) Create(ctx context.Context, in CreateListingInput) (*models.Product, error) {
	if in.Seller == nil {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if !in.Seller.CanPublish() {
		return nil, models.NewValidationError("A contact phone number is required before publishing a listing")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.PriceCents <= 0 {
		return nil, models.NewValidationError("Price must be a positive amount in minor units")
	}
	if !models.ValidCurrency(in.Currency) {
		return nil, models.NewValidationError("Unknown currency code")
	}
	if !models.ValidCategory(in.Category) {
		return nil, models.NewValidationError("Unknown category")
	}
	if len(in.Images) == 0 {
		return nil, models.NewValidationError("At least one image is required")
	}
	for _, url := range in.Images {
		if err := validation.ValidateImageURL(url); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
	}

	images := make([]models.ProductImage, 0, len(in.Images))
	for i, url := range in.Images {
		images = append(images, models.ProductImage{URL: url, Position: i})
	}

	product := &models.Product{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Currency:    strings.ToUpper(in.Currency),
		Category:    strings.ToLower(in.Category),
		SellerID:    in.Seller.ID,
		Images:      images,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		observability.ListingMutations.WithLabelValues("create", "error").Inc()
		return nil, err
	}
	observability.ListingMutations.WithLabelValues("create", "ok").Inc()

	cache.InvalidateHomeFeed(ctx)
	cache.InvalidateSellerListings(ctx, in.Seller.ID)

	return s.productRepo.GetByID(ctx, product.ID)
}

// ownedProduct loads the product and verifies the caller owns it. The
// ownership check compares the resolved seller's email to the owning
// seller's email, never a client-supplied id.
func (s *ListingService) ownedProduct(ctx context.Context, seller *models.Seller, productID uint) (*models.Product, error) {
	if seller == nil {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(product.Seller.Email, seller.Email) {
		return nil, models.NewForbiddenError("You can only modify your own listings")
	}
	return product, nil
}

func (s *ListingService) Update(ctx context.Context, in UpdateListingInput) (*models.Product, error) {
	product, err := s.ownedProduct(ctx, in.Seller, in.ProductID)
	if err != nil {
		observability.ListingMutations.WithLabelValues("update", "denied").Inc()
		return nil, err
	}

	if in.Title != "" {
		product.Title = strings.TrimSpace(in.Title)
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.PriceCents != nil {
		if *in.PriceCents <= 0 {
			return nil, models.NewValidationError("Price must be a positive amount in minor units")
		}
		product.PriceCents = *in.PriceCents
	}
	if in.Currency != "" {
		if !models.ValidCurrency(in.Currency) {
			return nil, models.NewValidationError("Unknown currency code")
		}
		product.Currency = strings.ToUpper(in.Currency)
	}
	if in.Category != "" {
		if !models.ValidCategory(in.Category) {
			return nil, models.NewValidationError("Unknown category")
		}
		product.Category = strings.ToLower(in.Category)
	}

	if in.Images != nil {
		if len(in.Images) == 0 {
			return nil, models.NewValidationError("At least one image is required")
		}
		for _, url := range in.Images {
			if err := validation.ValidateImageURL(url); err != nil {
				return nil, models.NewValidationError(err.Error())
			}
		}
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		observability.ListingMutations.WithLabelValues("update", "error").Inc()
		return nil, err
	}
	if in.Images != nil {
		if err := s.productRepo.ReplaceImages(ctx, product.ID, in.Images); err != nil {
			observability.ListingMutations.WithLabelValues("update", "error").Inc()
			return nil, err
		}
	}
	observability.ListingMutations.WithLabelValues("update", "ok").Inc()

	cache.InvalidateProduct(ctx, product.ID)
	cache.InvalidateHomeFeed(ctx)
	cache.InvalidateSellerListings(ctx, product.SellerID)

	return s.productRepo.GetByID(ctx, product.ID)
}

func (s *ListingService) Delete(ctx context.Context, seller *models.Seller, productID uint) error {
	if seller == nil {
		return models.NewUnauthorizedError("Authentication required")
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.SellerID != seller.ID {
		observability.ListingMutations.WithLabelValues("delete", "denied").Inc()
		return models.NewForbiddenError("You can only delete your own listings")
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		observability.ListingMutations.WithLabelValues("delete", "error").Inc()
		return err
	}
	observability.ListingMutations.WithLabelValues("delete", "ok").Inc()

	cache.InvalidateProduct(ctx, productID)
	cache.InvalidateHomeFeed(ctx)
	cache.InvalidateSellerListings(ctx, seller.ID)
	return nil
}

// ToggleSold flips the sold flag. Toggling twice restores the original state.
func (s *ListingService) ToggleSold(ctx context.Context, seller *models.Seller, productID uint) (*models.Product, error) {
	product, err := s.ownedProduct(ctx, seller, productID)
	if err != nil {
		observability.ListingMutations.WithLabelValues("toggle_sold", "denied").Inc()
		return nil, err
	}

	if err := s.productRepo.UpdateFields(ctx, productID, map[string]interface{}{"sold": !product.Sold}); err != nil {
		observability.ListingMutations.WithLabelValues("toggle_sold", "error").Inc()
		return nil, err
	}
	observability.ListingMutations.WithLabelValues("toggle_sold", "ok").Inc()

	cache.InvalidateProduct(ctx, productID)
	cache.InvalidateHomeFeed(ctx)
	cache.InvalidateSellerListings(ctx, product.SellerID)

	return s.productRepo.GetByID(ctx, productID)
}

// TogglePromoted flips the promoted flag. This is a privileged action:
// it requires an administrator and is forbidden for everyone else,
// including the listing's own seller.
func (s *ListingService) TogglePromoted(ctx context.Context, seller *models.Seller, productID uint) (*models.Product, error) {
	if seller == nil {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if !seller.IsAdmin {
		observability.ListingMutations.WithLabelValues("toggle_promoted", "denied").Inc()
		return nil, models.NewForbiddenError("Only administrators can promote listings")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.UpdateFields(ctx, productID, map[string]interface{}{"promoted": !product.Promoted}); err != nil {
		observability.ListingMutations.WithLabelValues("toggle_promoted", "error").Inc()
		return nil, err
	}
	observability.ListingMutations.WithLabelValues("toggle_promoted", "ok").Inc()

	cache.InvalidateHomeFeed(ctx)
	cache.InvalidatePromoted(ctx)
	cache.InvalidateProduct(ctx, productID)

	return s.productRepo.GetByID(ctx, productID)
}
