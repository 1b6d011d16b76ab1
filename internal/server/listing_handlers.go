package server

import (
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createProductRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	Currency    string   `json:"currency"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
}

type updateProductRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PriceCents  *int64   `json:"price_cents"`
	Currency    string   `json:"currency"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
}

// CreateProduct handles POST /api/products
func (s *Server) CreateProduct(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	product, err := s.listingService.Create(c.Context(), service.CreateListingInput{
		Seller:      currentSeller(c),
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Currency:    req.Currency,
		Category:    req.Category,
		Images:      req.Images,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct handles PUT /api/products/:id
func (s *Server) UpdateProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req updateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	product, err := s.listingService.Update(c.Context(), service.UpdateListingInput{
		Seller:      currentSeller(c),
		ProductID:   id,
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Currency:    req.Currency,
		Category:    req.Category,
		Images:      req.Images,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(product)
}

// DeleteProduct handles DELETE /api/products/:id
func (s *Server) DeleteProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.listingService.Delete(c.Context(), currentSeller(c), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"message": "Listing deleted"})
}

// ToggleSold handles POST /api/products/:id/sold
func (s *Server) ToggleSold(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	product, err := s.listingService.ToggleSold(c.Context(), currentSeller(c), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(product)
}

// TogglePromoted handles POST /api/products/:id/promote
func (s *Server) TogglePromoted(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	product, err := s.listingService.TogglePromoted(c.Context(), currentSeller(c), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(product)
}
