package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"reelgraph/internal/models"

	"gorm.io/gorm"
)

// FilmSort is a sort key for a director's filmography.
type FilmSort string

const (
	// FilmSortYear orders by release year ascending.
	FilmSortYear FilmSort = "year"
	// FilmSortLikes orders by like count descending.
	FilmSortLikes FilmSort = "likes"
)

// likeCountOrder is the canonical popularity ordering: distinct liking users
// descending, film id ascending as the deterministic tie-break.
const likeCountOrder = "COUNT(likes.id) DESC, films.id ASC"

// distinctLikeCountOrder is the same ordering for queries whose joins can
// repeat a like row, such as a join through film_directors.
const distinctLikeCountOrder = "COUNT(DISTINCT likes.id) DESC, films.id ASC"

// FilmRepository defines the interface for film data operations
type FilmRepository interface {
	Create(ctx context.Context, film *models.Film) error
	GetByID(ctx context.Context, id uint) (*models.Film, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Film, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, film *models.Film) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Film, error)
	SearchFilms(ctx context.Context, query string, byTitle, byDirector bool) ([]models.Film, error)
	TopFilms(ctx context.Context, count int, genreID, year *uint) ([]models.Film, error)
	DirectorFilms(ctx context.Context, directorID uint, sortBy FilmSort) ([]models.Film, error)
	CommonFilms(ctx context.Context, userID, friendID uint) ([]models.Film, error)
	AddLike(ctx context.Context, userID, filmID uint) error
	RemoveLike(ctx context.Context, userID, filmID uint) error
}

// filmRepository implements FilmRepository
type filmRepository struct {
	db *gorm.DB
}

// NewFilmRepository creates a new film repository
func NewFilmRepository(db *gorm.DB) FilmRepository {
	return &filmRepository{db: db}
}

func (r *filmRepository) preload(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Mpa").Preload("Genres").Preload("Directors")
}

func (r *filmRepository) Create(ctx context.Context, film *models.Film) error {
	// Genre/director/MPA rows are reference data; only the join rows are written.
	if err := r.db.WithContext(ctx).
		Omit("Mpa", "Genres.*", "Directors.*").
		Create(film).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *filmRepository) GetByID(ctx context.Context, id uint) (*models.Film, error) {
	var film models.Film
	if err := r.preload(r.db.WithContext(ctx)).First(&film, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Film", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &film, nil
}

func (r *filmRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Film, error) {
	if len(ids) == 0 {
		return []models.Film{}, nil
	}
	var films []models.Film
	if err := r.preload(r.db.WithContext(ctx)).
		Where("films.id IN ?", ids).
		Order("films.id ASC").
		Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return films, nil
}

func (r *filmRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Film{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *filmRepository) Update(ctx context.Context, film *models.Film) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Film{}).Where("id = ?", film.ID).
			Updates(map[string]interface{}{
				"name":         film.Name,
				"description":  film.Description,
				"release_date": film.ReleaseDate,
				"duration":     film.Duration,
				"mpa_id":       film.MpaID,
			})
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Film", film.ID)
		}
		// Genre and director sets are replaced wholesale on update.
		if err := tx.Model(film).Omit("Genres.*").Association("Genres").Replace(film.Genres); err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Model(film).Omit("Directors.*").Association("Directors").Replace(film.Directors); err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
}

func (r *filmRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("film_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Exec("DELETE FROM film_genres WHERE film_id = ?", id).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Exec("DELETE FROM film_directors WHERE film_id = ?", id).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Exec(
			"DELETE FROM review_likes WHERE review_id IN (SELECT id FROM reviews WHERE film_id = ?)", id,
		).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Where("film_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		res := tx.Delete(&models.Film{}, id)
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Film", id)
		}
		return nil
	})
}

func (r *filmRepository) List(ctx context.Context) ([]models.Film, error) {
	var films []models.Film
	if err := r.preload(r.db.WithContext(ctx)).Order("films.id ASC").Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return films, nil
}

// SearchFilms matches the query as a case-insensitive substring of the film
// title, the director name, or both, most liked first.
func (r *filmRepository) SearchFilms(ctx context.Context, query string, byTitle, byDirector bool) ([]models.Film, error) {
	// LOWER + LIKE keeps the predicate portable between postgres and sqlite.
	pattern := "%" + strings.ToLower(query) + "%"

	q := r.preload(r.db.WithContext(ctx)).
		Model(&models.Film{}).
		Select("films.*").
		Joins("LEFT JOIN likes ON likes.film_id = films.id")

	switch {
	case byTitle && byDirector:
		q = q.Joins("LEFT JOIN film_directors ON film_directors.film_id = films.id").
			Joins("LEFT JOIN directors ON directors.id = film_directors.director_id").
			Where("LOWER(films.name) LIKE ? OR LOWER(directors.name) LIKE ?", pattern, pattern)
	case byDirector:
		q = q.Joins("JOIN film_directors ON film_directors.film_id = films.id").
			Joins("JOIN directors ON directors.id = film_directors.director_id").
			Where("LOWER(directors.name) LIKE ?", pattern)
	default:
		q = q.Where("LOWER(films.name) LIKE ?", pattern)
	}

	var films []models.Film
	if err := q.Group("films.id").
		Order(distinctLikeCountOrder).
		Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return films, nil
}

func (r *filmRepository) TopFilms(ctx context.Context, count int, genreID, year *uint) ([]models.Film, error) {
	q := r.preload(r.db.WithContext(ctx)).
		Model(&models.Film{}).
		Select("films.*").
		Joins("LEFT JOIN likes ON likes.film_id = films.id")

	if genreID != nil {
		q = q.Joins("JOIN film_genres ON film_genres.film_id = films.id").
			Where("film_genres.genre_id = ?", *genreID)
	}
	if year != nil {
		// Exact release year, expressed as a date range so the predicate runs
		// on both postgres and sqlite.
		start := time.Date(int(*year), time.January, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("films.release_date >= ? AND films.release_date < ?", start, start.AddDate(1, 0, 0))
	}

	var films []models.Film
	if err := q.Group("films.id").
		Order(likeCountOrder).
		Limit(count).
		Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return films, nil
}

func (r *filmRepository) DirectorFilms(ctx context.Context, directorID uint, sortBy FilmSort) ([]models.Film, error) {
	q := r.preload(r.db.WithContext(ctx)).
		Model(&models.Film{}).
		Select("films.*").
		Joins("JOIN film_directors ON film_directors.film_id = films.id").
		Where("film_directors.director_id = ?", directorID)

	switch sortBy {
	case FilmSortYear:
		q = q.Order("films.release_date ASC, films.id ASC")
	case FilmSortLikes:
		q = q.Joins("LEFT JOIN likes ON likes.film_id = films.id").
			Group("films.id").
			Order(likeCountOrder)
	default:
		return nil, models.NewBadRequestError(fmt.Sprintf("Unsupported sort key %q: must be year or likes", sortBy))
	}

	var films []models.Film
	if err := q.Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return films, nil
}

func (r *filmRepository) CommonFilms(ctx context.Context, userID, friendID uint) ([]models.Film, error) {
	var films []models.Film
	if err := r.preload(r.db.WithContext(ctx)).
		Model(&models.Film{}).
		Select("films.*").
		Joins("JOIN likes lu ON lu.film_id = films.id AND lu.user_id = ?", userID).
		Joins("JOIN likes lf ON lf.film_id = films.id AND lf.user_id = ?", friendID).
		Joins("LEFT JOIN likes ON likes.film_id = films.id").
		Group("films.id").
		Order(likeCountOrder).
		Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return films, nil
}

func (r *filmRepository) AddLike(ctx context.Context, userID, filmID uint) error {
	like := models.Like{UserID: userID, FilmID: filmID}
	if err := r.db.WithContext(ctx).Create(&like).Error; err != nil {
		if isDuplicate(err) {
			return models.NewBadRequestError("User has already liked this film")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *filmRepository) RemoveLike(ctx context.Context, userID, filmID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND film_id = ?", userID, filmID).
		Delete(&models.Like{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.AppError{
			Code:    models.CodeNotFound,
			Message: fmt.Sprintf("User %d has no like on film %d", userID, filmID),
		}
	}
	return nil
}
