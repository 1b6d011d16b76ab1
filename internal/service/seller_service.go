package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/cache"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/middleware"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/repository"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/validation"
)

// SellerService bridges the external identity provider and the local
// seller table. Identity is established upstream; this service only
// materializes and maintains the seller row keyed by email.
type SellerService struct {
	sellerRepo   repository.SellerRepository
	followerRepo repository.FollowerRepository
	adminEmails  map[string]bool
}

// UpdateProfileInput carries a partial profile update. Empty string
// fields are left untouched; AcceptsTransfer is always applied.
type UpdateProfileInput struct {
	StoreName       string
	Phone           string
	Avatar          string
	AcceptsTransfer *bool
	TransferAlias   string
}

// SellerProfile is a seller together with the derived social counts.
type SellerProfile struct {
	Seller    *models.Seller    `json:"seller"`
	Products  []*models.Product `json:"products"`
	Followers int64             `json:"followers"`
}

// NewSellerService creates a seller service. adminEmails grants the
// admin flag to matching identities on first sight.
func NewSellerService(sellerRepo repository.SellerRepository, followerRepo repository.FollowerRepository, adminEmails []string) *SellerService {
	admins := make(map[string]bool, len(adminEmails))
	for _, email := range adminEmails {
		admins[strings.ToLower(strings.TrimSpace(email))] = true
	}
	return &SellerService{
		sellerRepo:   sellerRepo,
		followerRepo: followerRepo,
		adminEmails:  admins,
	}
}

// Ensure resolves the seller row for an authenticated identity,
// creating a minimal one on first contact. It is idempotent: repeated
// calls for the same identity return the same row.
func (s *SellerService) Ensure(ctx context.Context, ident middleware.Identity) (*models.Seller, error) {
	email := strings.ToLower(ident.Email)
	if ident.UserID == "" || email == "" {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	seller, err := s.sellerRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if seller != nil {
		return seller, nil
	}

	storeName := ident.Name
	if storeName == "" {
		storeName = storeNameFromEmail(email)
	}
	avatar := ""
	if ident.Picture != "" && validation.ValidateImageURL(ident.Picture) == nil {
		avatar = ident.Picture
	}

	seller = &models.Seller{
		ID:        ident.UserID,
		Email:     email,
		StoreName: storeName,
		Avatar:    avatar,
		IsAdmin:   s.adminEmails[email],
	}
	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		// Lost a creation race with a concurrent request for the
		// same identity: the row exists now, re-read it.
		if existing, lookupErr := s.sellerRepo.GetByEmail(ctx, email); lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}

	slog.Info("seller registered", "seller_id", seller.ID, "admin", seller.IsAdmin)
	return seller, nil
}

func (s *SellerService) GetByID(ctx context.Context, id string) (*models.Seller, error) {
	return s.sellerRepo.GetByID(ctx, id)
}

func (s *SellerService) UpdateProfile(ctx context.Context, seller *models.Seller, in UpdateProfileInput) (*models.Seller, error) {
	if seller == nil {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	if in.StoreName != "" {
		seller.StoreName = strings.TrimSpace(in.StoreName)
	}
	if in.Phone != "" {
		if err := validation.ValidatePhone(in.Phone); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		seller.Phone = validation.CleanPhone(in.Phone)
	}
	if in.Avatar != "" {
		if err := validation.ValidateImageURL(in.Avatar); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		seller.Avatar = in.Avatar
	}
	if in.AcceptsTransfer != nil {
		seller.AcceptsTransfer = *in.AcceptsTransfer
	}
	if in.TransferAlias != "" {
		seller.TransferAlias = strings.TrimSpace(in.TransferAlias)
	}
	if seller.AcceptsTransfer && seller.TransferAlias == "" {
		return nil, models.NewValidationError("A transfer alias is required when bank transfers are accepted")
	}

	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	cache.InvalidateSellerListings(ctx, seller.ID)
	return seller, nil
}

// Profile assembles the public seller page: the seller row, their
// listings, and the follower count.
func (s *SellerService) Profile(ctx context.Context, sellerID string, products []*models.Product) (*SellerProfile, error) {
	seller, err := s.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followerRepo.CountForSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return &SellerProfile{Seller: seller, Products: products, Followers: followers}, nil
}

// BootstrapAdmins grants the admin flag to already-registered sellers
// whose email appears in the configured admin list. Sellers not yet
// registered pick the flag up in Ensure.
func (s *SellerService) BootstrapAdmins(ctx context.Context) {
	for email := range s.adminEmails {
		if err := s.sellerRepo.SetAdmin(ctx, email, true); err != nil {
			slog.Warn("admin bootstrap skipped", "email", email, "error", err)
		}
	}
}

func storeNameFromEmail(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
