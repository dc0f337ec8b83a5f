package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetGenres handles GET /api/genres
func (s *Server) GetGenres(c *fiber.Ctx) error {
	genres, err := s.catalogService.Genres(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(genres)
}

// GetGenre handles GET /api/genres/:id
func (s *Server) GetGenre(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	genre, err := s.catalogService.GenreByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(genre)
}

// GetMpaRatings handles GET /api/mpa
func (s *Server) GetMpaRatings(c *fiber.Ctx) error {
	ratings, err := s.catalogService.MpaRatings(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ratings)
}

// GetMpa handles GET /api/mpa/:id
func (s *Server) GetMpa(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	rating, err := s.catalogService.MpaByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rating)
}
