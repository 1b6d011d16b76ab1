package server

import (
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/middleware"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleFollow handles POST /api/follows/:sellerId
//
// Follows the target seller if not currently followed, unfollows
// otherwise. Self-follow attempts are reported in the body, not as an
// error status.
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	sellerID := c.Params("sellerId")
	if sellerID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid seller id"))
	}

	result, err := s.followService.Toggle(c.Context(), currentSeller(c).ID, sellerID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(result)
}

// IsFollowing handles GET /api/follows/:sellerId. The route is public:
// anonymous callers are reported as not following instead of rejected.
func (s *Server) IsFollowing(c *fiber.Ctx) error {
	sellerID := c.Params("sellerId")
	if sellerID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid seller id"))
	}

	followerID := ""
	if ident := middleware.IdentityFrom(c); ident != nil {
		followerID = ident.UserID
	}

	following, err := s.followService.IsFollowing(c.Context(), followerID, sellerID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"following": following})
}
