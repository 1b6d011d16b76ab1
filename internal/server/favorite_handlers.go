package server

import (
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type syncFavoritesRequest struct {
	ProductIDs []uint `json:"product_ids"`
}

// ListFavorites handles GET /api/favorites
func (s *Server) ListFavorites(c *fiber.Ctx) error {
	products, err := s.favoriteService.List(c.Context(), currentSeller(c).ID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"products": products})
}

// ToggleFavorite handles POST /api/favorites/:productId
func (s *Server) ToggleFavorite(c *fiber.Ctx) error {
	productID, err := s.parseID(c, "productId")
	if err != nil {
		return nil
	}

	favorited, err := s.favoriteService.Toggle(c.Context(), currentSeller(c).ID, productID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"favorited": favorited})
}

// SyncFavorites handles POST /api/favorites/sync
//
// Merges product ids a client collected while signed out into the
// caller's server-side favorites. Already-favorited ids are ignored.
func (s *Server) SyncFavorites(c *fiber.Ctx) error {
	var req syncFavoritesRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.favoriteService.Sync(c.Context(), currentSeller(c).ID, req.ProductIDs); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"synced": len(req.ProductIDs)})
}
