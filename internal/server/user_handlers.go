package server

import (
	"reelgraph/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// CreateUser handles POST /api/users
// @Summary Create user
// @Description Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.User true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /users [post]
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	created, err := s.userService.Create(c.Context(), &user)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateUser handles PUT /api/users
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}
	if user.ID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("User id is required"))
	}

	updated, err := s.userService.Update(c.Context(), &user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// DeleteUser handles DELETE /api/users/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddFriend handles PUT /api/users/:id/friends/:friendId
func (s *Server) AddFriend(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	friendID, err := s.parseID(c, "friendId")
	if err != nil {
		return nil
	}

	if err := s.userService.AddFriend(c.Context(), userID, friendID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// RemoveFriend handles DELETE /api/users/:id/friends/:friendId
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	friendID, err := s.parseID(c, "friendId")
	if err != nil {
		return nil
	}

	if err := s.userService.RemoveFriend(c.Context(), userID, friendID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// GetFriends handles GET /api/users/:id/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	friends, err := s.userService.Friends(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(friends)
}

// GetCommonFriends handles GET /api/users/:id/friends/common/:otherId
func (s *Server) GetCommonFriends(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	otherID, err := s.parseID(c, "otherId")
	if err != nil {
		return nil
	}

	friends, err := s.userService.CommonFriends(c.Context(), userID, otherID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(friends)
}

// GetFeed handles GET /api/users/:id/feed
// @Summary User activity feed
// @Description The user's append-only activity log, newest first
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.FeedEvent
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/feed [get]
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	events, err := s.userService.Feed(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(events)
}

// GetRecommendations handles GET /api/users/:id/recommendations
// @Summary Film recommendations
// @Description Films the user's closest like-graph neighbor liked that the user has not
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Film
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/recommendations [get]
func (s *Server) GetRecommendations(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	films, err := s.recService.Recommendations(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(films)
}
