package repository

import (
	"context"
	"errors"

	"reelgraph/internal/models"

	"gorm.io/gorm"
)

// DirectorRepository defines the interface for director data operations
type DirectorRepository interface {
	Create(ctx context.Context, director *models.Director) error
	GetByID(ctx context.Context, id uint) (*models.Director, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, director *models.Director) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Director, error)
}

// directorRepository implements DirectorRepository
type directorRepository struct {
	db *gorm.DB
}

// NewDirectorRepository creates a new director repository
func NewDirectorRepository(db *gorm.DB) DirectorRepository {
	return &directorRepository{db: db}
}

func (r *directorRepository) Create(ctx context.Context, director *models.Director) error {
	if err := r.db.WithContext(ctx).Create(director).Error; err != nil {
		if isDuplicate(err) {
			return models.NewBadRequestError("A director with this name already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *directorRepository) GetByID(ctx context.Context, id uint) (*models.Director, error) {
	var director models.Director
	if err := r.db.WithContext(ctx).First(&director, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Director", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &director, nil
}

func (r *directorRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Director{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *directorRepository) Update(ctx context.Context, director *models.Director) error {
	res := r.db.WithContext(ctx).Model(&models.Director{}).Where("id = ?", director.ID).
		Update("name", director.Name)
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return models.NewBadRequestError("A director with this name already exists")
		}
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Director", director.ID)
	}
	return nil
}

func (r *directorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM film_directors WHERE director_id = ?", id).Error; err != nil {
			return models.NewInternalError(err)
		}
		res := tx.Delete(&models.Director{}, id)
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Director", id)
		}
		return nil
	})
}

func (r *directorRepository) List(ctx context.Context) ([]models.Director, error) {
	var directors []models.Director
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&directors).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return directors, nil
}
