package server

import (
	"reelgraph/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFilms handles GET /api/films
func (s *Server) GetFilms(c *fiber.Ctx) error {
	films, err := s.filmService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(films)
}

// GetFilm handles GET /api/films/:id
func (s *Server) GetFilm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	film, err := s.filmService.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(film)
}

// CreateFilm handles POST /api/films
// @Summary Create film
// @Description Add a new film to the catalog
// @Tags films
// @Accept json
// @Produce json
// @Param request body models.Film true "Film"
// @Success 201 {object} models.Film
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /films [post]
func (s *Server) CreateFilm(c *fiber.Ctx) error {
	var film models.Film
	if err := c.BodyParser(&film); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	created, err := s.filmService.Create(c.Context(), &film)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateFilm handles PUT /api/films
func (s *Server) UpdateFilm(c *fiber.Ctx) error {
	var film models.Film
	if err := c.BodyParser(&film); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}
	if film.ID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Film id is required"))
	}

	updated, err := s.filmService.Update(c.Context(), &film)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// DeleteFilm handles DELETE /api/films/:id
func (s *Server) DeleteFilm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.filmService.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPopularFilms handles GET /api/films/popular?count=&genreId=&year=
// @Summary Popular films
// @Description Most-liked films, optionally filtered by genre and release year
// @Tags films
// @Produce json
// @Param count query int false "Result bound" default(10)
// @Param genreId query int false "Genre filter"
// @Param year query int false "Release year filter"
// @Success 200 {array} models.Film
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /films/popular [get]
func (s *Server) GetPopularFilms(c *fiber.Ctx) error {
	count := c.QueryInt("count", 10)

	var genreID, year *uint
	if raw := c.QueryInt("genreId", 0); c.Query("genreId") != "" {
		g := uint(raw)
		genreID = &g
	}
	if raw := c.QueryInt("year", 0); c.Query("year") != "" {
		y := uint(raw)
		year = &y
	}

	films, err := s.filmService.TopFilms(c.Context(), count, genreID, year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(films)
}

// GetCommonFilms handles GET /api/films/common?userId=&friendId=
func (s *Server) GetCommonFilms(c *fiber.Ctx) error {
	userID := c.QueryInt("userId", 0)
	friendID := c.QueryInt("friendId", 0)
	if userID <= 0 || friendID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("userId and friendId are required"))
	}

	films, err := s.filmService.CommonFilms(c.Context(), uint(userID), uint(friendID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(films)
}

// SearchFilms handles GET /api/films/search?query=&by=
// @Summary Search films
// @Description Substring search over film titles and director names, most liked first
// @Tags films
// @Produce json
// @Param query query string true "Search text"
// @Param by query string false "Comma-separated fields to match: title, director"
// @Success 200 {array} models.Film
// @Failure 400 {object} models.ErrorResponse
// @Router /films/search [get]
func (s *Server) SearchFilms(c *fiber.Ctx) error {
	films, err := s.filmService.SearchFilms(c.Context(), c.Query("query"), c.Query("by"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(films)
}

// GetDirectorFilms handles GET /api/films/director/:directorId?sortBy=
// An omitted sortBy defaults to likes.
func (s *Server) GetDirectorFilms(c *fiber.Ctx) error {
	directorID, err := s.parseID(c, "directorId")
	if err != nil {
		return nil
	}

	films, err := s.filmService.DirectorFilms(c.Context(), directorID, c.Query("sortBy", "likes"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(films)
}

// AddLike handles PUT /api/films/:id/like/:userId
func (s *Server) AddLike(c *fiber.Ctx) error {
	filmID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.filmService.AddLike(c.Context(), filmID, userID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// RemoveLike handles DELETE /api/films/:id/like/:userId
func (s *Server) RemoveLike(c *fiber.Ctx) error {
	filmID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.filmService.RemoveLike(c.Context(), filmID, userID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
