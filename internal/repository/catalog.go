package repository

import (
	"context"
	"errors"

	"reelgraph/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository serves the fixed genre and MPA reference catalogs.
type CatalogRepository interface {
	Genres(ctx context.Context) ([]models.Genre, error)
	GenreByID(ctx context.Context, id uint) (*models.Genre, error)
	GenreExists(ctx context.Context, id uint) (bool, error)
	MpaRatings(ctx context.Context) ([]models.Mpa, error)
	MpaByID(ctx context.Context, id uint) (*models.Mpa, error)
	MpaExists(ctx context.Context, id uint) (bool, error)
}

// catalogRepository implements CatalogRepository
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Genres(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&genres).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return genres, nil
}

func (r *catalogRepository) GenreByID(ctx context.Context, id uint) (*models.Genre, error) {
	var genre models.Genre
	if err := r.db.WithContext(ctx).First(&genre, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Genre", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &genre, nil
}

func (r *catalogRepository) GenreExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Genre{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *catalogRepository) MpaRatings(ctx context.Context) ([]models.Mpa, error) {
	var ratings []models.Mpa
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ratings).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ratings, nil
}

func (r *catalogRepository) MpaByID(ctx context.Context, id uint) (*models.Mpa, error) {
	var mpa models.Mpa
	if err := r.db.WithContext(ctx).First(&mpa, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("MPA rating", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &mpa, nil
}

func (r *catalogRepository) MpaExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Mpa{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
