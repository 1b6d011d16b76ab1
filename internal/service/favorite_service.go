package service

import (
	"context"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/repository"
)

// FavoriteService keeps each buyer's favorites server-side, so they
// survive device changes and can be merged from a client-side stash.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo, productRepo: productRepo}
}

// Toggle adds the product to the caller's favorites if absent, removes
// it otherwise, and returns the resulting state.
func (s *FavoriteService) Toggle(ctx context.Context, followerID string, productID uint) (bool, error) {
	if followerID == "" {
		return false, models.NewUnauthorizedError("Authentication required")
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return false, err
	}

	exists, err := s.favoriteRepo.Exists(ctx, followerID, productID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.favoriteRepo.Delete(ctx, followerID, productID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.favoriteRepo.Create(ctx, &models.Favorite{FollowerID: followerID, ProductID: productID}); err != nil {
		return false, err
	}
	return true, nil
}

// List returns the caller's favorited products, most recent first.
func (s *FavoriteService) List(ctx context.Context, followerID string) ([]*models.Product, error) {
	if followerID == "" {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	favorites, err := s.favoriteRepo.ListByFollower(ctx, followerID)
	if err != nil {
		return nil, err
	}
	products := make([]*models.Product, 0, len(favorites))
	for _, fav := range favorites {
		products = append(products, &fav.Product)
	}
	return products, nil
}

// Sync merges a batch of product ids into the caller's favorites,
// ignoring ids already present. Used to migrate favorites a client
// accumulated locally before signing in.
func (s *FavoriteService) Sync(ctx context.Context, followerID string, productIDs []uint) error {
	if followerID == "" {
		return models.NewUnauthorizedError("Authentication required")
	}
	if len(productIDs) == 0 {
		return nil
	}
	return s.favoriteRepo.BulkAdd(ctx, followerID, productIDs)
}
