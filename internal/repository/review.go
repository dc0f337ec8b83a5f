package repository

import (
	"context"
	"errors"

	"reelgraph/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// usefulSelect derives the usefulness score on read: positive votes count +1,
// negative votes -1, reviews without votes score 0.
const usefulSelect = "reviews.*, COALESCE(SUM(CASE WHEN review_likes.is_positive THEN 1 " +
	"WHEN NOT review_likes.is_positive THEN -1 ELSE 0 END), 0) AS useful"

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
	ListForFilm(ctx context.Context, filmID uint, count int) ([]models.Review, error)
	ListAll(ctx context.Context, count int) ([]models.Review, error)
	Vote(ctx context.Context, reviewID, userID uint, isPositive bool) error
	Unvote(ctx context.Context, reviewID, userID uint) error
}

// reviewRepository implements ReviewRepository
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) withUseful(tx *gorm.DB) *gorm.DB {
	return tx.Model(&models.Review{}).
		Select(usefulSelect).
		Joins("LEFT JOIN review_likes ON review_likes.review_id = reviews.id").
		Group("reviews.id")
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.withUseful(r.db.WithContext(ctx)).
		Where("reviews.id = ?", id).
		First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Review", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &review, nil
}

func (r *reviewRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	// Only content and polarity are mutable; ownership and target never change.
	res := r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"content":     review.Content,
			"is_positive": review.IsPositive,
		})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Review", review.ID)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&models.ReviewLike{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		res := tx.Delete(&models.Review{}, id)
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Review", id)
		}
		return nil
	})
}

func (r *reviewRepository) ListForFilm(ctx context.Context, filmID uint, count int) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.withUseful(r.db.WithContext(ctx)).
		Where("reviews.film_id = ?", filmID).
		Order("useful DESC, reviews.id ASC").
		Limit(count).
		Find(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) ListAll(ctx context.Context, count int) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.withUseful(r.db.WithContext(ctx)).
		Order("useful DESC, reviews.id ASC").
		Limit(count).
		Find(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) Vote(ctx context.Context, reviewID, userID uint, isPositive bool) error {
	vote := models.ReviewLike{ReviewID: reviewID, UserID: userID, IsPositive: isPositive}
	// Re-voting replaces the standing vote for the (review, user) pair.
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_positive"}),
		}).
		Create(&vote).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) Unvote(ctx context.Context, reviewID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Delete(&models.ReviewLike{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Review vote", reviewID)
	}
	return nil
}
