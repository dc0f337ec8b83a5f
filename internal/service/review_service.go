package service

import (
	"context"
	"strings"

	"reelgraph/internal/models"
	"reelgraph/internal/repository"
)

// DefaultReviewCount bounds review listings when the caller does not.
const DefaultReviewCount = 10

// ReviewService provides film review business logic. Every review mutation
// writes a REVIEW feed event for the review's author in the same transaction.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	filmRepo   repository.FilmRepository
	uow        repository.UnitOfWork
}

// NewReviewService returns a new ReviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	filmRepo repository.FilmRepository,
	uow repository.UnitOfWork,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		filmRepo:   filmRepo,
		uow:        uow,
	}
}

func (s *ReviewService) validate(ctx context.Context, review *models.Review) error {
	if strings.TrimSpace(review.Content) == "" {
		return models.NewBadRequestError("Review content must not be blank")
	}
	if review.IsPositive == nil {
		return models.NewBadRequestError("Review polarity must be set")
	}
	if ok, err := s.userRepo.Exists(ctx, review.UserID); err != nil {
		return err
	} else if !ok {
		return models.NewNotFoundError("User", review.UserID)
	}
	if ok, err := s.filmRepo.Exists(ctx, review.FilmID); err != nil {
		return err
	} else if !ok {
		return models.NewNotFoundError("Film", review.FilmID)
	}
	return nil
}

// Create validates and stores a review, recording a REVIEW/ADD feed event.
func (s *ReviewService) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := s.validate(ctx, review); err != nil {
		return nil, err
	}
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		if err := r.Reviews.Create(ctx, review); err != nil {
			return err
		}
		return r.Feed.Record(ctx, review.UserID, models.FeedEventReview, models.FeedOpAdd, review.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(ctx, review.ID)
}

// Update changes a review's content and polarity. Author and film are fixed
// at creation; the feed event is attributed to the original author.
func (s *ReviewService) Update(ctx context.Context, review *models.Review) (*models.Review, error) {
	existing, err := s.reviewRepo.GetByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(review.Content) == "" {
		return nil, models.NewBadRequestError("Review content must not be blank")
	}
	if review.IsPositive == nil {
		return nil, models.NewBadRequestError("Review polarity must be set")
	}
	err = s.uow.Do(ctx, func(r repository.Repositories) error {
		if err := r.Reviews.Update(ctx, review); err != nil {
			return err
		}
		return r.Feed.Record(ctx, existing.UserID, models.FeedEventReview, models.FeedOpUpdate, existing.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(ctx, review.ID)
}

// Delete removes a review and its votes, recording a REVIEW/REMOVE feed
// event for the author.
func (s *ReviewService) Delete(ctx context.Context, id uint) error {
	existing, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.uow.Do(ctx, func(r repository.Repositories) error {
		if err := r.Reviews.Delete(ctx, id); err != nil {
			return err
		}
		return r.Feed.Record(ctx, existing.UserID, models.FeedEventReview, models.FeedOpRemove, existing.ID)
	})
}

// GetByID returns one review with its derived usefulness score.
func (s *ReviewService) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

// List returns reviews ordered by usefulness, for one film when filmID is
// set, across all films otherwise.
func (s *ReviewService) List(ctx context.Context, filmID *uint, count int) ([]models.Review, error) {
	if count <= 0 {
		count = DefaultReviewCount
	}
	if filmID == nil {
		return s.reviewRepo.ListAll(ctx, count)
	}
	if ok, err := s.filmRepo.Exists(ctx, *filmID); err != nil {
		return nil, err
	} else if !ok {
		return nil, models.NewNotFoundError("Film", *filmID)
	}
	return s.reviewRepo.ListForFilm(ctx, *filmID, count)
}

// Vote records a user's vote on a review. A re-vote replaces the standing
// vote for the pair.
func (s *ReviewService) Vote(ctx context.Context, reviewID, userID uint, isPositive bool) error {
	if err := s.checkVoteTargets(ctx, reviewID, userID); err != nil {
		return err
	}
	return s.reviewRepo.Vote(ctx, reviewID, userID, isPositive)
}

// Unvote removes a user's standing vote on a review.
func (s *ReviewService) Unvote(ctx context.Context, reviewID, userID uint) error {
	if err := s.checkVoteTargets(ctx, reviewID, userID); err != nil {
		return err
	}
	return s.reviewRepo.Unvote(ctx, reviewID, userID)
}

func (s *ReviewService) checkVoteTargets(ctx context.Context, reviewID, userID uint) error {
	if ok, err := s.reviewRepo.Exists(ctx, reviewID); err != nil {
		return err
	} else if !ok {
		return models.NewNotFoundError("Review", reviewID)
	}
	if ok, err := s.userRepo.Exists(ctx, userID); err != nil {
		return err
	} else if !ok {
		return models.NewNotFoundError("User", userID)
	}
	return nil
}
