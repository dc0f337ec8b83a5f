// Package service contains the business logic for the catalog and its
// derived-data engines.
package service

import (
	"context"
	"strings"

	"reelgraph/internal/cache"
	"reelgraph/internal/featureflags"
	"reelgraph/internal/models"
	"reelgraph/internal/observability"
	"reelgraph/internal/repository"
)

// DefaultTopFilmsCount is used when the caller does not bound the ranking.
const DefaultTopFilmsCount = 10

// FilmService provides film catalog and popularity ranking business logic.
type FilmService struct {
	filmRepo     repository.FilmRepository
	catalogRepo  repository.CatalogRepository
	directorRepo repository.DirectorRepository
	userRepo     repository.UserRepository
	uow          repository.UnitOfWork
	flags        *featureflags.Manager
}

// NewFilmService returns a new FilmService.
func NewFilmService(
	filmRepo repository.FilmRepository,
	catalogRepo repository.CatalogRepository,
	directorRepo repository.DirectorRepository,
	userRepo repository.UserRepository,
	uow repository.UnitOfWork,
	flags *featureflags.Manager,
) *FilmService {
	return &FilmService{
		filmRepo:     filmRepo,
		catalogRepo:  catalogRepo,
		directorRepo: directorRepo,
		userRepo:     userRepo,
		uow:          uow,
		flags:        flags,
	}
}

func (s *FilmService) validate(ctx context.Context, film *models.Film) error {
	if strings.TrimSpace(film.Name) == "" {
		return models.NewBadRequestError("Film name must not be blank")
	}
	if len(film.Description) > models.MaxDescriptionLength {
		return models.NewBadRequestError("Film description must not exceed 200 characters")
	}
	if film.ReleaseDate.Before(models.EarliestReleaseDate) {
		return models.NewBadRequestError("Release date must not be before 1895-12-28")
	}
	if film.Duration <= 0 {
		return models.NewBadRequestError("Film duration must be positive")
	}

	if ok, err := s.catalogRepo.MpaExists(ctx, film.MpaID); err != nil {
		return err
	} else if !ok {
		return models.NewNotFoundError("MPA rating", film.MpaID)
	}
	for _, g := range film.Genres {
		if ok, err := s.catalogRepo.GenreExists(ctx, g.ID); err != nil {
			return err
		} else if !ok {
			return models.NewNotFoundError("Genre", g.ID)
		}
	}
	for _, d := range film.Directors {
		if ok, err := s.directorRepo.Exists(ctx, d.ID); err != nil {
			return err
		} else if !ok {
			return models.NewNotFoundError("Director", d.ID)
		}
	}
	return nil
}

// Create validates and stores a new film.
func (s *FilmService) Create(ctx context.Context, film *models.Film) (*models.Film, error) {
	if err := s.validate(ctx, film); err != nil {
		return nil, err
	}
	if err := s.filmRepo.Create(ctx, film); err != nil {
		return nil, err
	}
	return s.filmRepo.GetByID(ctx, film.ID)
}

// Update validates and replaces a stored film. The genre and director sets
// are replaced wholesale.
func (s *FilmService) Update(ctx context.Context, film *models.Film) (*models.Film, error) {
	if _, err := s.filmRepo.GetByID(ctx, film.ID); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, film); err != nil {
		return nil, err
	}
	if err := s.filmRepo.Update(ctx, film); err != nil {
		return nil, err
	}
	return s.filmRepo.GetByID(ctx, film.ID)
}

// GetByID returns one film with its MPA, genres, and directors.
func (s *FilmService) GetByID(ctx context.Context, id uint) (*models.Film, error) {
	return s.filmRepo.GetByID(ctx, id)
}

// List returns all films.
func (s *FilmService) List(ctx context.Context) ([]models.Film, error) {
	return s.filmRepo.List(ctx)
}

// SearchFilms finds films whose title or director name contains the query,
// case-insensitively, most liked first. by is a comma-separated list of the
// fields to match ("title", "director"); an empty by searches both.
func (s *FilmService) SearchFilms(ctx context.Context, query, by string) ([]models.Film, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.NewBadRequestError("Search query must not be blank")
	}

	var byTitle, byDirector bool
	if strings.TrimSpace(by) == "" {
		byTitle, byDirector = true, true
	} else {
		for _, field := range strings.Split(by, ",") {
			switch strings.TrimSpace(field) {
			case "title":
				byTitle = true
			case "director":
				byDirector = true
			default:
				return nil, models.NewBadRequestError("Search fields must be 'title' or 'director'")
			}
		}
	}

	return s.filmRepo.SearchFilms(ctx, query, byTitle, byDirector)
}

// Delete removes a film and its dependent rows.
func (s *FilmService) Delete(ctx context.Context, id uint) error {
	if _, err := s.filmRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.filmRepo.Delete(ctx, id)
}

// TopFilms returns the most-liked films, optionally filtered by genre and
// release year. Parameter validation happens before any store access.
func (s *FilmService) TopFilms(ctx context.Context, count int, genreID, year *uint) ([]models.Film, error) {
	ctx, span := observability.GetTraceLayer().TraceServiceMethod(ctx, "FilmService", "TopFilms")
	defer span.End()

	if count <= 0 {
		return nil, models.NewBadRequestError("Count must be positive")
	}
	if year != nil && *year < uint(models.EarliestReleaseDate.Year()) {
		return nil, models.NewBadRequestError("Year must not be before 1895")
	}
	if genreID != nil {
		if ok, err := s.catalogRepo.GenreExists(ctx, *genreID); err != nil {
			return nil, err
		} else if !ok {
			return nil, models.NewNotFoundError("Genre", *genreID)
		}
	}

	useCache := s.flags.Enabled(featureflags.PopularCache, 0)
	if useCache {
		if ids, ok := cache.GetPopularFilmIDs(ctx, count, genreID, year); ok {
			return s.filmsInOrder(ctx, ids)
		}
	}

	films, err := s.filmRepo.TopFilms(ctx, count, genreID, year)
	if err != nil {
		return nil, err
	}

	if useCache {
		ids := make([]uint, len(films))
		for i, f := range films {
			ids[i] = f.ID
		}
		cache.SetPopularFilmIDs(ctx, count, genreID, year, ids)
	}
	return films, nil
}

// filmsInOrder loads films by id and returns them in the given order.
func (s *FilmService) filmsInOrder(ctx context.Context, ids []uint) ([]models.Film, error) {
	if len(ids) == 0 {
		return []models.Film{}, nil
	}
	films, err := s.filmRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Film, len(films))
	for _, f := range films {
		byID[f.ID] = f
	}
	ordered := make([]models.Film, 0, len(ids))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			ordered = append(ordered, f)
		}
	}
	return ordered, nil
}

// DirectorFilms returns a director's films sorted by year or like count.
func (s *FilmService) DirectorFilms(ctx context.Context, directorID uint, sortBy string) ([]models.Film, error) {
	sort := repository.FilmSort(sortBy)
	if sort != repository.FilmSortYear && sort != repository.FilmSortLikes {
		return nil, models.NewBadRequestError("Sort must be 'year' or 'likes'")
	}
	if ok, err := s.directorRepo.Exists(ctx, directorID); err != nil {
		return nil, err
	} else if !ok {
		return nil, models.NewNotFoundError("Director", directorID)
	}
	return s.filmRepo.DirectorFilms(ctx, directorID, sort)
}

// CommonFilms returns films liked by both users, most popular first.
func (s *FilmService) CommonFilms(ctx context.Context, userID, friendID uint) ([]models.Film, error) {
	for _, id := range []uint{userID, friendID} {
		if ok, err := s.userRepo.Exists(ctx, id); err != nil {
			return nil, err
		} else if !ok {
			return nil, models.NewNotFoundError("User", id)
		}
	}
	return s.filmRepo.CommonFilms(ctx, userID, friendID)
}

// AddLike records a user's like on a film and a LIKE/ADD feed event in one
// transaction. A second like from the same user is rejected.
func (s *FilmService) AddLike(ctx context.Context, filmID, userID uint) error {
	if err := s.checkLikeTargets(ctx, filmID, userID); err != nil {
		return err
	}
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		if err := r.Films.AddLike(ctx, userID, filmID); err != nil {
			return err
		}
		return r.Feed.Record(ctx, userID, models.FeedEventLike, models.FeedOpAdd, filmID)
	})
	if err != nil {
		return err
	}
	cache.InvalidateRecommendations(ctx, userID)
	cache.InvalidatePopularFilms(ctx)
	return nil
}

// RemoveLike removes a user's like and records a LIKE/REMOVE feed event in
// one transaction.
func (s *FilmService) RemoveLike(ctx context.Context, filmID, userID uint) error {
	if err := s.checkLikeTargets(ctx, filmID, userID); err != nil {
		return err
	}
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		if err := r.Films.RemoveLike(ctx, userID, filmID); err != nil {
			return err
		}
		return r.Feed.Record(ctx, userID, models.FeedEventLike, models.FeedOpRemove, filmID)
	})
	if err != nil {
		return err
	}
	cache.InvalidateRecommendations(ctx, userID)
	cache.InvalidatePopularFilms(ctx)
	return nil
}

func (s *FilmService) checkLikeTargets(ctx context.Context, filmID, userID uint) error {
	if ok, err := s.filmRepo.Exists(ctx, filmID); err != nil {
		return err
	} else if !ok {
		return models.NewNotFoundError("Film", filmID)
	}
	if ok, err := s.userRepo.Exists(ctx, userID); err != nil {
		return err
	} else if !ok {
		return models.NewNotFoundError("User", userID)
	}
	return nil
}
