package server

import (
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListProducts handles GET /api/products
//
// Query parameters: q (search term), category, page (1-based). Pages
// are a fixed 12 items; the wholesale category only appears when asked
// for explicitly.
func (s *Server) ListProducts(c *fiber.Ctx) error {
	page := s.catalogService.List(c.Context(), service.CatalogQuery{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Page:     c.QueryInt("page", 1),
	})
	return c.JSON(page)
}

// ListPromoted handles GET /api/products/promoted
func (s *Server) ListPromoted(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"products": s.catalogService.Promoted(c.Context()),
	})
}

// GetProduct handles GET /api/products/:id
func (s *Server) GetProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	product, err := s.catalogService.Get(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(product)
}
