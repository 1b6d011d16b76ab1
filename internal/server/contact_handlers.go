package server

import (
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SubmitContact handles POST /api/contact
func (s *Server) SubmitContact(c *fiber.Ctx) error {
	var req service.ContactInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.contactService.Submit(c.Context(), req); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"message": "Message sent"})
}
