package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sgolovanov/workout-tracker/internal/logger"
)

// ErrCacheMiss is returned when a leaderboard page is not in the cache.
var ErrCacheMiss = errors.New("leaderboard page not found in cache")

// LeaderboardCacheRepository caches serialized leaderboard pages in Redis
// with a short expiration. Leaderboard reads are idempotent, so a stale page
// is bounded by the TTL.
type LeaderboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewLeaderboardCacheRepository creates a cache repository with the given TTL.
func NewLeaderboardCacheRepository(client *redis.Client, expiration time.Duration) *LeaderboardCacheRepository {
	return &LeaderboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get loads a cached page into dest. Returns ErrCacheMiss when absent.
func (r *LeaderboardCacheRepository) Get(ctx context.Context, key string, dest any) error {
	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("leaderboard cache get",
		"key", key,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Set stores a page under key with the configured expiration.
func (r *LeaderboardCacheRepository) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("leaderboard cache set",
		"key", key,
		"error", err,
	)

	return err
}
