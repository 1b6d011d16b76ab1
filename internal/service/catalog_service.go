// Package service contains the business operations layered between HTTP
// handlers and repositories.
package service

import (
	"context"
	"log/slog"
	"math"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/cache"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/middleware"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/observability"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/repository"
)

// PageSize is the fixed catalog page size.
const PageSize = 12

// CatalogQuery is a catalog page request as received from the caller.
type CatalogQuery struct {
	Query    string
	Category string
	Page     int
}

// CatalogPage is one page of the catalog with pagination totals.
type CatalogPage struct {
	Products   []*models.Product `json:"products"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"total_pages"`
	Page       int               `json:"page"`
}

// CatalogService builds filtered, paginated, deterministically ordered
// views over the product collection.
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

func emptyPage(page int) *CatalogPage {
	return &CatalogPage{Products: []*models.Product{}, Total: 0, TotalPages: 0, Page: page}
}

// List returns one catalog page. Storage failures degrade to an empty
// page rather than failing the view; the degradation is logged and
// counted so operators can tell it apart from an empty catalog.
func (s *CatalogService) List(ctx context.Context, q CatalogQuery) *CatalogPage {
	page := q.Page
	if page < 1 {
		page = 1
	}

	filter := repository.CatalogFilter{
		Query:    q.Query,
		Category: q.Category,
		Limit:    PageSize,
		Offset:   (page - 1) * PageSize,
	}

	// Only the unfiltered first page is cached; everything else is
	// too variable to be worth the invalidation traffic.
	cacheable := q.Query == "" && (q.Category == "" || q.Category == models.CategoryAll) && page == 1

	var result *CatalogPage
	fetch := func() error {
		products, total, err := s.productRepo.List(ctx, filter)
		if err != nil {
			return err
		}
		result = &CatalogPage{
			Products:   products,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(PageSize))),
			Page:       page,
		}
		return nil
	}

	var err error
	if cacheable {
		err = cache.Aside(ctx, cache.HomeFeedKey, &result, cache.HomeFeedTTL, fetch)
	} else {
		err = fetch()
	}

	if err != nil {
		middleware.Logger.Error("catalog list degraded to empty page",
			slog.String("error", err.Error()),
			slog.String("category", q.Category),
			slog.Int("page", page),
		)
		observability.CatalogDegraded.WithLabelValues("home").Inc()
		return emptyPage(page)
	}
	if result.Products == nil {
		result.Products = []*models.Product{}
	}
	return result
}

// Promoted returns every promoted, unsold product, newest first. Same
// degradation policy as List.
func (s *CatalogService) Promoted(ctx context.Context) []*models.Product {
	var products []*models.Product
	err := cache.Aside(ctx, cache.PromotedKey, &products, cache.PromotedTTL, func() error {
		var fetchErr error
		products, fetchErr = s.productRepo.ListPromoted(ctx)
		return fetchErr
	})
	if err != nil {
		middleware.Logger.Error("promoted list degraded to empty result",
			slog.String("error", err.Error()),
		)
		observability.CatalogDegraded.WithLabelValues("promoted").Inc()
		return []*models.Product{}
	}
	if products == nil {
		products = []*models.Product{}
	}
	return products
}

// Get returns a product detail view and bumps its view counter. Unlike
// the list views, detail reads surface their errors.
func (s *CatalogService) Get(ctx context.Context, id uint) (*models.Product, error) {
	if err := s.productRepo.IncrementViews(ctx, id); err != nil {
		// A lost view count never blocks the page.
		middleware.Logger.Warn("failed to increment product views",
			slog.Uint64("product_id", uint64(id)),
			slog.String("error", err.Error()),
		)
	}

	var product *models.Product
	err := cache.Aside(ctx, cache.ProductKey(id), &product, cache.ProductTTL, func() error {
		var fetchErr error
		product, fetchErr = s.productRepo.GetByID(ctx, id)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// SellerListings returns every listing owned by a seller, sold included,
// for the storefront and owner views.
func (s *CatalogService) SellerListings(ctx context.Context, sellerID string) ([]*models.Product, error) {
	var products []*models.Product
	err := cache.Aside(ctx, cache.SellerListingsKey(sellerID), &products, cache.SellerTTL, func() error {
		var fetchErr error
		products, fetchErr = s.productRepo.ListBySeller(ctx, sellerID)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*models.Product{}
	}
	return products, nil
}
