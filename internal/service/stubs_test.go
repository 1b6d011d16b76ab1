package service

import (
	"context"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/repository"
)

// productRepoStub is a stub for repository.ProductRepository.
type productRepoStub struct {
	createFn        func(context.Context, *models.Product) error
	getByIDFn       func(context.Context, uint) (*models.Product, error)
	listFn          func(context.Context, repository.CatalogFilter) ([]*models.Product, int64, error)
	listPromotedFn  func(context.Context) ([]*models.Product, error)
	listBySellerFn  func(context.Context, string) ([]*models.Product, error)
	updateFn        func(context.Context, *models.Product) error
	updateFieldsFn  func(context.Context, uint, map[string]interface{}) error
	replaceImagesFn func(context.Context, uint, []string) error
	deleteFn        func(context.Context, uint) error
	incViewsFn      func(context.Context, uint) error
}

func (s *productRepoStub) Create(ctx context.Context, p *models.Product) error {
	return s.createFn(ctx, p)
}
func (s *productRepoStub) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.getByIDFn(ctx, id)
}
func (s *productRepoStub) List(ctx context.Context, f repository.CatalogFilter) ([]*models.Product, int64, error) {
	return s.listFn(ctx, f)
}
func (s *productRepoStub) ListPromoted(ctx context.Context) ([]*models.Product, error) {
	return s.listPromotedFn(ctx)
}
func (s *productRepoStub) ListBySeller(ctx context.Context, sellerID string) ([]*models.Product, error) {
	return s.listBySellerFn(ctx, sellerID)
}
func (s *productRepoStub) Update(ctx context.Context, p *models.Product) error {
	return s.updateFn(ctx, p)
}
func (s *productRepoStub) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return s.updateFieldsFn(ctx, id, fields)
}
func (s *productRepoStub) ReplaceImages(ctx context.Context, productID uint, urls []string) error {
	return s.replaceImagesFn(ctx, productID, urls)
}
func (s *productRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *productRepoStub) IncrementViews(ctx context.Context, id uint) error {
	return s.incViewsFn(ctx, id)
}

func noopProductRepo() *productRepoStub {
	return &productRepoStub{
		createFn:  func(_ context.Context, _ *models.Product) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Product, error) { return &models.Product{}, nil },
		listFn: func(_ context.Context, _ repository.CatalogFilter) ([]*models.Product, int64, error) {
			return nil, 0, nil
		},
		listPromotedFn:  func(_ context.Context) ([]*models.Product, error) { return nil, nil },
		listBySellerFn:  func(_ context.Context, _ string) ([]*models.Product, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.Product) error { return nil },
		updateFieldsFn:  func(_ context.Context, _ uint, _ map[string]interface{}) error { return nil },
		replaceImagesFn: func(_ context.Context, _ uint, _ []string) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		incViewsFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

// sellerRepoStub is a stub for repository.SellerRepository.
type sellerRepoStub struct {
	getByIDFn    func(context.Context, string) (*models.Seller, error)
	getByEmailFn func(context.Context, string) (*models.Seller, error)
	createFn     func(context.Context, *models.Seller) error
	updateFn     func(context.Context, *models.Seller) error
	setAdminFn   func(context.Context, string, bool) error
	listAdminsFn func(context.Context) ([]models.Seller, error)
}

func (s *sellerRepoStub) GetByID(ctx context.Context, id string) (*models.Seller, error) {
	return s.getByIDFn(ctx, id)
}
func (s *sellerRepoStub) GetByEmail(ctx context.Context, email string) (*models.Seller, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *sellerRepoStub) Create(ctx context.Context, seller *models.Seller) error {
	return s.createFn(ctx, seller)
}
func (s *sellerRepoStub) Update(ctx context.Context, seller *models.Seller) error {
	return s.updateFn(ctx, seller)
}
func (s *sellerRepoStub) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	return s.setAdminFn(ctx, email, isAdmin)
}
func (s *sellerRepoStub) ListAdmins(ctx context.Context) ([]models.Seller, error) {
	return s.listAdminsFn(ctx)
}

func noopSellerRepo() *sellerRepoStub {
	return &sellerRepoStub{
		getByIDFn:    func(_ context.Context, id string) (*models.Seller, error) { return &models.Seller{ID: id}, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.Seller, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.Seller) error { return nil },
		updateFn:     func(_ context.Context, _ *models.Seller) error { return nil },
		setAdminFn:   func(_ context.Context, _ string, _ bool) error { return nil },
		listAdminsFn: func(_ context.Context) ([]models.Seller, error) { return nil, nil },
	}
}

// followerRepoStub is a stub for repository.FollowerRepository.
type followerRepoStub struct {
	existsFn func(context.Context, string, string) (bool, error)
	createFn func(context.Context, *models.Follower) error
	deleteFn func(context.Context, string, string) error
	countFn  func(context.Context, string) (int64, error)
}

func (s *followerRepoStub) Exists(ctx context.Context, followerID, sellerID string) (bool, error) {
	return s.existsFn(ctx, followerID, sellerID)
}
func (s *followerRepoStub) Create(ctx context.Context, edge *models.Follower) error {
	return s.createFn(ctx, edge)
}
func (s *followerRepoStub) Delete(ctx context.Context, followerID, sellerID string) error {
	return s.deleteFn(ctx, followerID, sellerID)
}
func (s *followerRepoStub) CountForSeller(ctx context.Context, sellerID string) (int64, error) {
	return s.countFn(ctx, sellerID)
}

func noopFollowerRepo() *followerRepoStub {
	return &followerRepoStub{
		existsFn: func(_ context.Context, _, _ string) (bool, error) { return false, nil },
		createFn: func(_ context.Context, _ *models.Follower) error { return nil },
		deleteFn: func(_ context.Context, _, _ string) error { return nil },
		countFn:  func(_ context.Context, _ string) (int64, error) { return 0, nil },
	}
}

// favoriteRepoStub is a stub for repository.FavoriteRepository.
type favoriteRepoStub struct {
	existsFn  func(context.Context, string, uint) (bool, error)
	createFn  func(context.Context, *models.Favorite) error
	deleteFn  func(context.Context, string, uint) error
	listFn    func(context.Context, string) ([]models.Favorite, error)
	bulkAddFn func(context.Context, string, []uint) error
}

func (s *favoriteRepoStub) Exists(ctx context.Context, followerID string, productID uint) (bool, error) {
	return s.existsFn(ctx, followerID, productID)
}
func (s *favoriteRepoStub) Create(ctx context.Context, fav *models.Favorite) error {
	return s.createFn(ctx, fav)
}
func (s *favoriteRepoStub) Delete(ctx context.Context, followerID string, productID uint) error {
	return s.deleteFn(ctx, followerID, productID)
}
func (s *favoriteRepoStub) ListByFollower(ctx context.Context, followerID string) ([]models.Favorite, error) {
	return s.listFn(ctx, followerID)
}
func (s *favoriteRepoStub) BulkAdd(ctx context.Context, followerID string, productIDs []uint) error {
	return s.bulkAddFn(ctx, followerID, productIDs)
}

func noopFavoriteRepo() *favoriteRepoStub {
	return &favoriteRepoStub{
		existsFn:  func(_ context.Context, _ string, _ uint) (bool, error) { return false, nil },
		createFn:  func(_ context.Context, _ *models.Favorite) error { return nil },
		deleteFn:  func(_ context.Context, _ string, _ uint) error { return nil },
		listFn:    func(_ context.Context, _ string) ([]models.Favorite, error) { return nil, nil },
		bulkAddFn: func(_ context.Context, _ string, _ []uint) error { return nil },
	}
}
