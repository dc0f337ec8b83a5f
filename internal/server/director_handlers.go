package server

import (
	"reelgraph/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetDirectors handles GET /api/directors
func (s *Server) GetDirectors(c *fiber.Ctx) error {
	directors, err := s.directorSvc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(directors)
}

// GetDirector handles GET /api/directors/:id
func (s *Server) GetDirector(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	director, err := s.directorSvc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(director)
}

// CreateDirector handles POST /api/directors
func (s *Server) CreateDirector(c *fiber.Ctx) error {
	var director models.Director
	if err := c.BodyParser(&director); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	created, err := s.directorSvc.Create(c.Context(), &director)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateDirector handles PUT /api/directors
func (s *Server) UpdateDirector(c *fiber.Ctx) error {
	var director models.Director
	if err := c.BodyParser(&director); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}
	if director.ID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Director id is required"))
	}

	updated, err := s.directorSvc.Update(c.Context(), &director)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// DeleteDirector handles DELETE /api/directors/:id
func (s *Server) DeleteDirector(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.directorSvc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
