package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sgolovanov/workout-tracker/internal/logger"
	"github.com/sgolovanov/workout-tracker/internal/metrics"
	"github.com/sgolovanov/workout-tracker/internal/models"
	"github.com/sgolovanov/workout-tracker/internal/repositories"
)

// LeaderboardReader defines the aggregation queries.
type LeaderboardReader interface {
	Overall(ctx context.Context) ([]models.OverallRank, error)
	ByExercise(ctx context.Context, name string) ([]models.ExerciseRank, error)
	ExerciseNames(ctx context.Context) ([]models.ExerciseCount, error)
}

// LeaderboardCache caches serialized leaderboard pages.
type LeaderboardCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
}

// LeaderboardService serves leaderboard reads through a cache-aside layer.
type LeaderboardService struct {
	reader LeaderboardReader
	cache  LeaderboardCache
}

// NewLeaderboardService creates a new LeaderboardService. cache may be nil,
// in which case every read goes straight to the store.
func NewLeaderboardService(reader LeaderboardReader, cache LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{
		reader: reader,
		cache:  cache,
	}
}

// Overall returns the overall leaderboard (top 100 by total volume).
func (s *LeaderboardService) Overall(ctx context.Context) ([]models.OverallRank, error) {
	const key = "leaderboard:overall"

	var cached []models.OverallRank
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	ranks, err := s.reader.Overall(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read overall leaderboard", "error", err)
		return nil, err
	}

	s.cacheSet(ctx, key, ranks)
	return ranks, nil
}

// ByExercise returns the leaderboard for a single exercise, matched
// case-insensitively. The cache key is normalized so that "Bench Press" and
// "bench press" share one entry.
func (s *LeaderboardService) ByExercise(ctx context.Context, name string) ([]models.ExerciseRank, error) {
	key := "leaderboard:exercise:" + strings.ToLower(name)

	var cached []models.ExerciseRank
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	ranks, err := s.reader.ByExercise(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to read exercise leaderboard", "exercise", name, "error", err)
		return nil, err
	}

	s.cacheSet(ctx, key, ranks)
	return ranks, nil
}

// ExerciseNames returns all distinct exercise names with entry counts.
func (s *LeaderboardService) ExerciseNames(ctx context.Context) ([]models.ExerciseCount, error) {
	const key = "leaderboard:exercises"

	var cached []models.ExerciseCount
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	counts, err := s.reader.ExerciseNames(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read exercise names", "error", err)
		return nil, err
	}

	s.cacheSet(ctx, key, counts)
	return counts, nil
}

// cacheGet reports whether dest was populated from the cache. Cache failures
// other than a miss are logged and treated as misses.
func (s *LeaderboardService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}

	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		metrics.LeaderboardCacheTotal.WithLabelValues("hit").Inc()
		return true
	}

	metrics.LeaderboardCacheTotal.WithLabelValues("miss").Inc()
	if !errors.Is(err, repositories.ErrCacheMiss) {
		logger.Log.Warnw("leaderboard cache read failed", "key", key, "error", err)
	}
	return false
}

// cacheSet stores a freshly computed page. Write failures are logged and
// otherwise ignored.
func (s *LeaderboardService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		logger.Log.Warnw("leaderboard cache write failed", "key", key, "error", err)
	}
}
