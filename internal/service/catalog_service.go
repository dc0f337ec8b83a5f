package service

import (
	"context"

	"reelgraph/internal/models"
	"reelgraph/internal/repository"
)

// CatalogService serves the fixed genre and MPA reference catalogs.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService returns a new CatalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// Genres returns all genres ordered by id.
func (s *CatalogService) Genres(ctx context.Context) ([]models.Genre, error) {
	return s.catalogRepo.Genres(ctx)
}

// GenreByID returns one genre.
func (s *CatalogService) GenreByID(ctx context.Context, id uint) (*models.Genre, error) {
	return s.catalogRepo.GenreByID(ctx, id)
}

// MpaRatings returns all MPA ratings ordered by id.
func (s *CatalogService) MpaRatings(ctx context.Context) ([]models.Mpa, error) {
	return s.catalogRepo.MpaRatings(ctx)
}

// MpaByID returns one MPA rating.
func (s *CatalogService) MpaByID(ctx context.Context, id uint) (*models.Mpa, error) {
	return s.catalogRepo.MpaByID(ctx, id)
}
