package service

import (
	"context"
	"sort"

	"reelgraph/internal/cache"
	"reelgraph/internal/featureflags"
	"reelgraph/internal/models"
	"reelgraph/internal/observability"
	"reelgraph/internal/repository"
)

// RecommendationService computes collaborative-filtering film suggestions
// from the like graph.
type RecommendationService struct {
	graphRepo repository.GraphRepository
	filmRepo  repository.FilmRepository
	userRepo  repository.UserRepository
	flags     *featureflags.Manager
}

// NewRecommendationService returns a new RecommendationService.
func NewRecommendationService(
	graphRepo repository.GraphRepository,
	filmRepo repository.FilmRepository,
	userRepo repository.UserRepository,
	flags *featureflags.Manager,
) *RecommendationService {
	return &RecommendationService{
		graphRepo: graphRepo,
		filmRepo:  filmRepo,
		userRepo:  userRepo,
		flags:     flags,
	}
}

// Recommendations returns films the user's closest neighbor liked that the
// user has not. The neighbor is the user with the largest like-set overlap;
// ties go to the lowest user id. A user with no likes, or with no overlapping
// neighbor, gets an empty result.
func (s *RecommendationService) Recommendations(ctx context.Context, userID uint) ([]models.Film, error) {
	span, ctx := observability.NewSpan(ctx, "recommendations.compute")
	defer span.End()

	if ok, err := s.userRepo.Exists(ctx, userID); err != nil {
		return nil, err
	} else if !ok {
		return nil, models.NewNotFoundError("User", userID)
	}

	useCache := s.flags.Enabled(featureflags.RecCache, userID)
	if useCache {
		if ids, ok := cache.GetRecommendedFilmIDs(ctx, userID); ok {
			return s.loadFilms(ctx, ids)
		}
	}

	ids, err := s.computeFilmIDs(ctx, userID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	if useCache {
		cache.SetRecommendedFilmIDs(ctx, userID, ids)
	}
	return s.loadFilms(ctx, ids)
}

// computeFilmIDs runs the neighbor heuristic over the full like graph and
// returns recommended film ids in ascending order.
func (s *RecommendationService) computeFilmIDs(ctx context.Context, userID uint) ([]uint, error) {
	likes, err := s.graphRepo.AllLikes(ctx)
	if err != nil {
		return nil, err
	}

	likesByUser := make(map[uint]map[uint]bool)
	for _, like := range likes {
		set, ok := likesByUser[like.UserID]
		if !ok {
			set = make(map[uint]bool)
			likesByUser[like.UserID] = set
		}
		set[like.FilmID] = true
	}

	target := likesByUser[userID]
	if len(target) == 0 {
		return []uint{}, nil
	}

	var bestNeighbor uint
	bestOverlap := 0
	for otherID, otherLikes := range likesByUser {
		if otherID == userID {
			continue
		}
		overlap := 0
		for filmID := range otherLikes {
			if target[filmID] {
				overlap++
			}
		}
		if overlap > bestOverlap || (overlap == bestOverlap && overlap > 0 && otherID < bestNeighbor) {
			bestOverlap = overlap
			bestNeighbor = otherID
		}
	}
	if bestOverlap == 0 {
		return []uint{}, nil
	}

	ids := make([]uint, 0, len(likesByUser[bestNeighbor]))
	for filmID := range likesByUser[bestNeighbor] {
		if !target[filmID] {
			ids = append(ids, filmID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *RecommendationService) loadFilms(ctx context.Context, ids []uint) ([]models.Film, error) {
	if len(ids) == 0 {
		return []models.Film{}, nil
	}
	return s.filmRepo.GetByIDs(ctx, ids)
}
