package server

import (
	"reelgraph/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetReviews handles GET /api/reviews?filmId=&count=
func (s *Server) GetReviews(c *fiber.Ctx) error {
	count := c.QueryInt("count", 0)

	var filmID *uint
	if c.Query("filmId") != "" {
		f := uint(c.QueryInt("filmId", 0))
		filmID = &f
	}

	reviews, err := s.reviewService.List(c.Context(), filmID, count)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

// GetReview handles GET /api/reviews/:id
func (s *Server) GetReview(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	review, err := s.reviewService.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review)
}

// CreateReview handles POST /api/reviews
func (s *Server) CreateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	created, err := s.reviewService.Create(c.Context(), &review)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateReview handles PUT /api/reviews
func (s *Server) UpdateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}
	if review.ID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Review id is required"))
	}

	updated, err := s.reviewService.Update(c.Context(), &review)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// DeleteReview handles DELETE /api/reviews/:id
func (s *Server) DeleteReview(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.reviewService.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LikeReview handles PUT /api/reviews/:id/like/:userId
func (s *Server) LikeReview(c *fiber.Ctx) error {
	return s.voteReview(c, true)
}

// DislikeReview handles PUT /api/reviews/:id/dislike/:userId
func (s *Server) DislikeReview(c *fiber.Ctx) error {
	return s.voteReview(c, false)
}

func (s *Server) voteReview(c *fiber.Ctx, isPositive bool) error {
	reviewID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.reviewService.Vote(c.Context(), reviewID, userID, isPositive); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// UnvoteReview handles DELETE /api/reviews/:id/like/:userId and
// DELETE /api/reviews/:id/dislike/:userId. A user holds one standing vote per
// review, so removing a like and removing a dislike are the same operation.
func (s *Server) UnvoteReview(c *fiber.Ctx) error {
	reviewID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.reviewService.Unvote(c.Context(), reviewID, userID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
