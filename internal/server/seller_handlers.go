package server

import (
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

type updateProfileRequest struct {
	StoreName       string `json:"store_name"`
	Phone           string `json:"phone"`
	Avatar          string `json:"avatar"`
	AcceptsTransfer *bool  `json:"accepts_transfer"`
	TransferAlias   string `json:"transfer_alias"`
}

// GetSellerProfile handles GET /api/sellers/:id
func (s *Server) GetSellerProfile(c *fiber.Ctx) error {
	sellerID := c.Params("id")
	if sellerID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid seller id"))
	}

	products, err := s.catalogService.SellerListings(c.Context(), sellerID)
	if err != nil {
		return respondErr(c, err)
	}
	profile, err := s.sellerService.Profile(c.Context(), sellerID, products)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(profile)
}

// GetSellerProducts handles GET /api/sellers/:id/products
func (s *Server) GetSellerProducts(c *fiber.Ctx) error {
	sellerID := c.Params("id")
	if sellerID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid seller id"))
	}

	products, err := s.catalogService.SellerListings(c.Context(), sellerID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"products": products})
}

// GetMyProfile handles GET /api/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	return c.JSON(currentSeller(c))
}

// UpdateMyProfile handles PUT /api/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	seller, err := s.sellerService.UpdateProfile(c.Context(), currentSeller(c), service.UpdateProfileInput{
		StoreName:       req.StoreName,
		Phone:           req.Phone,
		Avatar:          req.Avatar,
		AcceptsTransfer: req.AcceptsTransfer,
		TransferAlias:   req.TransferAlias,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(seller)
}

// GetMyProducts handles GET /api/me/products
func (s *Server) GetMyProducts(c *fiber.Ctx) error {
	seller := currentSeller(c)
	products, err := s.catalogService.SellerListings(c.Context(), seller.ID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"products": products})
}
