package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"reelgraph/internal/middleware"
	"reelgraph/internal/observability"
)

const (
	RecommendationKeyPrefix = "rec:user:%d"
	PopularFilmsKeyPrefix   = "films:popular:v%d:%d:%d:%d"

	// popularVersionKey is a counter folded into every popular-films key.
	// Bumping it on a like mutation orphans all cached rankings at once,
	// whatever parameter combinations were cached; the stale keys expire
	// on their own TTL.
	popularVersionKey = "films:popular:ver"
)

const (
	RecommendationTTL = 5 * time.Minute
	PopularFilmsTTL   = 1 * time.Minute
)

func RecommendationKey(userID uint) string {
	return fmt.Sprintf(RecommendationKeyPrefix, userID)
}

// GetRecommendedFilmIDs returns the cached recommendation film IDs for a user,
// or false when the cache is cold or unavailable.
func GetRecommendedFilmIDs(ctx context.Context, userID uint) ([]uint, bool) {
	if client == nil {
		return nil, false
	}
	ctx, span := observability.GetTraceLayer().TraceRedisOperation(ctx, "GET")
	defer span.End()
	raw, err := client.Get(ctx, RecommendationKey(userID)).Bytes()
	if err != nil {
		middleware.CacheMisses.WithLabelValues("recommendations").Inc()
		return nil, false
	}
	var ids []uint
	if err := json.Unmarshal(raw, &ids); err != nil {
		middleware.CacheMisses.WithLabelValues("recommendations").Inc()
		return nil, false
	}
	middleware.CacheHits.WithLabelValues("recommendations").Inc()
	return ids, true
}

// SetRecommendedFilmIDs stores recommendation film IDs for a user.
func SetRecommendedFilmIDs(ctx context.Context, userID uint, ids []uint) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	client.Set(ctx, RecommendationKey(userID), raw, RecommendationTTL)
}

// popularVersion reads the current like-mutation counter. A missing counter
// reads as 0.
func popularVersion(ctx context.Context) int64 {
	if client == nil {
		return 0
	}
	v, err := client.Get(ctx, popularVersionKey).Int64()
	if err != nil {
		return 0
	}
	return v
}

// PopularFilmsKey encodes the current version and the ranking parameters.
// Nil filters encode as 0, which no real genre id or year uses.
func PopularFilmsKey(ctx context.Context, count int, genreID, year *uint) string {
	var g, y uint
	if genreID != nil {
		g = *genreID
	}
	if year != nil {
		y = *year
	}
	return fmt.Sprintf(PopularFilmsKeyPrefix, popularVersion(ctx), count, g, y)
}

// GetPopularFilmIDs returns the cached popularity ranking for one parameter
// combination, in rank order.
func GetPopularFilmIDs(ctx context.Context, count int, genreID, year *uint) ([]uint, bool) {
	if client == nil {
		return nil, false
	}
	raw, err := client.Get(ctx, PopularFilmsKey(ctx, count, genreID, year)).Bytes()
	if err != nil {
		middleware.CacheMisses.WithLabelValues("popular_films").Inc()
		return nil, false
	}
	var ids []uint
	if err := json.Unmarshal(raw, &ids); err != nil {
		middleware.CacheMisses.WithLabelValues("popular_films").Inc()
		return nil, false
	}
	middleware.CacheHits.WithLabelValues("popular_films").Inc()
	return ids, true
}

// SetPopularFilmIDs stores a popularity ranking in rank order.
func SetPopularFilmIDs(ctx context.Context, count int, genreID, year *uint, ids []uint) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	client.Set(ctx, PopularFilmsKey(ctx, count, genreID, year), raw, PopularFilmsTTL)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateRecommendations drops the cached recommendations for a user.
// Called after like mutations so the next read recomputes.
func InvalidateRecommendations(ctx context.Context, userID uint) {
	Invalidate(ctx, RecommendationKey(userID))
}

// InvalidatePopularFilms bumps the popular-films version counter so every
// cached ranking, whatever its parameters, misses on the next read.
func InvalidatePopularFilms(ctx context.Context) {
	if client != nil {
		client.Incr(ctx, popularVersionKey)
	}
}
