package service

import (
	"context"
	"strings"

	"reelgraph/internal/models"
	"reelgraph/internal/repository"
)

// DirectorService provides director catalog business logic.
type DirectorService struct {
	directorRepo repository.DirectorRepository
}

// NewDirectorService returns a new DirectorService.
func NewDirectorService(directorRepo repository.DirectorRepository) *DirectorService {
	return &DirectorService{directorRepo: directorRepo}
}

// Create validates and stores a new director.
func (s *DirectorService) Create(ctx context.Context, director *models.Director) (*models.Director, error) {
	if strings.TrimSpace(director.Name) == "" {
		return nil, models.NewBadRequestError("Director name must not be blank")
	}
	if err := s.directorRepo.Create(ctx, director); err != nil {
		return nil, err
	}
	return s.directorRepo.GetByID(ctx, director.ID)
}

// Update validates and replaces a stored director.
func (s *DirectorService) Update(ctx context.Context, director *models.Director) (*models.Director, error) {
	if _, err := s.directorRepo.GetByID(ctx, director.ID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(director.Name) == "" {
		return nil, models.NewBadRequestError("Director name must not be blank")
	}
	if err := s.directorRepo.Update(ctx, director); err != nil {
		return nil, err
	}
	return s.directorRepo.GetByID(ctx, director.ID)
}

// GetByID returns one director.
func (s *DirectorService) GetByID(ctx context.Context, id uint) (*models.Director, error) {
	return s.directorRepo.GetByID(ctx, id)
}

// List returns all directors.
func (s *DirectorService) List(ctx context.Context) ([]models.Director, error) {
	return s.directorRepo.List(ctx)
}

// Delete removes a director and their filmography links. Films themselves
// are untouched.
func (s *DirectorService) Delete(ctx context.Context, id uint) error {
	if _, err := s.directorRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.directorRepo.Delete(ctx, id)
}
