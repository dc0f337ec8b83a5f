package repository

import (
	"context"

	"reelgraph/internal/models"
	"reelgraph/internal/observability"

	"gorm.io/gorm"
)

// GraphRepository is a thin read API over the raw like relation. It hands out
// read-only snapshots computed per query; nothing it returns aliases live
// storage state.
type GraphRepository interface {
	// AllLikes returns every (user, film) like pair in the store. The
	// recommendation heuristic needs the full like graph, so this is a
	// global scan.
	AllLikes(ctx context.Context) ([]models.Like, error)
	// LikedFilmIDs returns the ids of films the user has liked, ascending.
	LikedFilmIDs(ctx context.Context, userID uint) ([]uint, error)
}

// graphRepository implements GraphRepository
type graphRepository struct {
	db *gorm.DB
}

// NewGraphRepository creates a new graph repository
func NewGraphRepository(db *gorm.DB) GraphRepository {
	return &graphRepository{db: db}
}

func (r *graphRepository) AllLikes(ctx context.Context) ([]models.Like, error) {
	ctx, span := observability.GetTraceLayer().TraceRepositoryMethod(ctx, "AllLikes", "likes")
	defer span.End()

	var likes []models.Like
	if err := r.db.WithContext(ctx).
		Order("user_id ASC, film_id ASC").
		Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

func (r *graphRepository) LikedFilmIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ?", userID).
		Order("film_id ASC").
		Pluck("film_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
