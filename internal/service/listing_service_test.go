package service

import (
	"context"
	"testing"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publisher() *models.Seller {
	return &models.Seller{
		ID:    "seller-a",
		Email: "ana@example.com",
		Phone: "+5355512345",
	}
}

func validCreateInput(seller *models.Seller) CreateListingInput {
	return CreateListingInput{
		Seller:     seller,
		Title:      "Bicicleta 26",
		PriceCents: 150000,
		Currency:   "CUP",
		Category:   "vehicles",
		Images:     []string{"https://img.example.com/bici.jpg"},
	}
}

func TestCreateRequiresPhone(t *testing.T) {
	svc := NewListingService(noopProductRepo())
	seller := publisher()
	seller.Phone = ""

	_, err := svc.Create(context.Background(), validCreateInput(seller))

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestCreateValidation(t *testing.T) {
	svc := NewListingService(noopProductRepo())

	cases := []struct {
		name   string
		mutate func(*CreateListingInput)
	}{
		{"missing title", func(in *CreateListingInput) { in.Title = "  " }},
		{"zero price", func(in *CreateListingInput) { in.PriceCents = 0 }},
		{"negative price", func(in *CreateListingInput) { in.PriceCents = -500 }},
		{"unknown currency", func(in *CreateListingInput) { in.Currency = "GBP" }},
		{"unknown category", func(in *CreateListingInput) { in.Category = "weapons" }},
		{"category all not selectable", func(in *CreateListingInput) { in.Category = "all" }},
		{"no images", func(in *CreateListingInput) { in.Images = nil }},
		{"relative image url", func(in *CreateListingInput) { in.Images = []string{"/uploads/bici.jpg"} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreateInput(publisher())
			tc.mutate(&in)

			_, err := svc.Create(context.Background(), in)

			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestCreatePersistsNormalizedListing(t *testing.T) {
	repo := noopProductRepo()
	var created *models.Product
	repo.createFn = func(_ context.Context, p *models.Product) error {
		p.ID = 11
		created = p
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Product, error) {
		return created, nil
	}
	svc := NewListingService(repo)

	in := validCreateInput(publisher())
	in.Currency = "cup"
	in.Category = "Vehicles"
	in.Images = []string{"https://img.example.com/a.jpg", "https://img.example.com/b.jpg"}

	product, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "CUP", product.Currency)
	assert.Equal(t, "vehicles", product.Category)
	assert.Equal(t, "seller-a", product.SellerID)
	require.Len(t, product.Images, 2)
	assert.Equal(t, 0, product.Images[0].Position)
	assert.Equal(t, 1, product.Images[1].Position)
}

func TestUpdateForbiddenForOtherSeller(t *testing.T) {
	repo := noopProductRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Product, error) {
		return &models.Product{
			ID:       id,
			SellerID: "seller-b",
			Seller:   models.Seller{ID: "seller-b", Email: "otro@example.com"},
		}, nil
	}
	svc := NewListingService(repo)

	_, err := svc.Update(context.Background(), UpdateListingInput{
		Seller:    publisher(),
		ProductID: 5,
		Title:     "Nuevo titulo",
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	repo := noopProductRepo()
	stored := &models.Product{
		ID:          5,
		Title:       "Original",
		Description: "desc",
		PriceCents:  1000,
		Currency:    "CUP",
		Category:    "home",
		SellerID:    "seller-a",
		Seller:      models.Seller{ID: "seller-a", Email: "ana@example.com"},
	}
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.Product, error) { return stored, nil }
	repo.updateFn = func(_ context.Context, p *models.Product) error {
		stored = p
		return nil
	}
	svc := NewListingService(repo)

	newPrice := int64(2500)
	product, err := svc.Update(context.Background(), UpdateListingInput{
		Seller:     publisher(),
		ProductID:  5,
		PriceCents: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2500), product.PriceCents)
	assert.Equal(t, "Original", product.Title)
	assert.Equal(t, "home", product.Category)
}

func TestUpdateReplacesImageSet(t *testing.T) {
	repo := noopProductRepo()
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.Product, error) {
		return &models.Product{
			ID:       5,
			SellerID: "seller-a",
			Seller:   models.Seller{ID: "seller-a", Email: "ana@example.com"},
		}, nil
	}
	var replaced []string
	repo.replaceImagesFn = func(_ context.Context, _ uint, urls []string) error {
		replaced = urls
		return nil
	}
	svc := NewListingService(repo)

	urls := []string{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"}
	_, err := svc.Update(context.Background(), UpdateListingInput{
		Seller:    publisher(),
		ProductID: 5,
		Images:    urls,
	})

	require.NoError(t, err)
	assert.Equal(t, urls, replaced)
}

func TestUpdateRejectsEmptyImageSet(t *testing.T) {
	repo := noopProductRepo()
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.Product, error) {
		return &models.Product{
			ID:       5,
			SellerID: "seller-a",
			Seller:   models.Seller{ID: "seller-a", Email: "ana@example.com"},
		}, nil
	}
	svc := NewListingService(repo)

	_, err := svc.Update(context.Background(), UpdateListingInput{
		Seller:    publisher(),
		ProductID: 5,
		Images:    []string{},
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestDeleteForbiddenForOtherSeller(t *testing.T) {
	repo := noopProductRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Product, error) {
		return &models.Product{ID: id, SellerID: "seller-b"}, nil
	}
	deleted := false
	repo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}
	svc := NewListingService(repo)

	err := svc.Delete(context.Background(), publisher(), 5)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
	assert.False(t, deleted)
}

func TestToggleSoldFlipsState(t *testing.T) {
	repo := noopProductRepo()
	sold := false
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Product, error) {
		return &models.Product{
			ID:       id,
			Sold:     sold,
			SellerID: "seller-a",
			Seller:   models.Seller{ID: "seller-a", Email: "ana@example.com"},
		}, nil
	}
	repo.updateFieldsFn = func(_ context.Context, _ uint, fields map[string]interface{}) error {
		sold = fields["sold"].(bool)
		return nil
	}
	svc := NewListingService(repo)

	product, err := svc.ToggleSold(context.Background(), publisher(), 5)
	require.NoError(t, err)
	assert.True(t, product.Sold)

	product, err = svc.ToggleSold(context.Background(), publisher(), 5)
	require.NoError(t, err)
	assert.False(t, product.Sold)
}

func TestTogglePromotedRequiresAdmin(t *testing.T) {
	repo := noopProductRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Product, error) {
		return &models.Product{
			ID:       id,
			SellerID: "seller-a",
			Seller:   models.Seller{ID: "seller-a", Email: "ana@example.com"},
		}, nil
	}
	svc := NewListingService(repo)

	// owning the listing is not enough
	_, err := svc.TogglePromoted(context.Background(), publisher(), 5)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

func TestTogglePromotedAsAdmin(t *testing.T) {
	repo := noopProductRepo()
	promoted := false
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Product, error) {
		return &models.Product{ID: id, Promoted: promoted, SellerID: "seller-b"}, nil
	}
	repo.updateFieldsFn = func(_ context.Context, _ uint, fields map[string]interface{}) error {
		promoted = fields["promoted"].(bool)
		return nil
	}
	svc := NewListingService(repo)

	admin := &models.Seller{ID: "admin-1", Email: "admin@example.com", IsAdmin: true}
	product, err := svc.TogglePromoted(context.Background(), admin, 5)

	require.NoError(t, err)
	assert.True(t, product.Promoted)
}
