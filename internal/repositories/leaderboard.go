package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sgolovanov/workout-tracker/internal/logger"
	"github.com/sgolovanov/workout-tracker/internal/models"
)

// leaderboardLimit caps every leaderboard page.
const leaderboardLimit = 100

// LeaderboardReadRepository computes ranking aggregates over the workout store.
// All queries are read-only.
type LeaderboardReadRepository struct {
	db *sqlx.DB
}

func NewLeaderboardReadRepository(db *sqlx.DB) *LeaderboardReadRepository {
	return &LeaderboardReadRepository{db: db}
}

// Overall returns, for every user with at least one workout, their workout
// count, exercise entry count, and total volume (sum of weight*reps*sets),
// ordered by total volume descending. Users who never logged a workout are
// omitted.
func (r *LeaderboardReadRepository) Overall(ctx context.Context) ([]models.OverallRank, error) {
	const query = `
		SELECT
			u.username,
			u.user_id,
			COUNT(DISTINCT w.workout_id) AS total_workouts,
			COUNT(e.exercise_id) AS total_exercises,
			COALESCE(SUM(e.weight * e.reps * e.sets), 0) AS total_volume
		FROM users u
		JOIN workouts w ON u.user_id = w.user_id
		JOIN exercises e ON w.workout_id = e.workout_id
		GROUP BY u.user_id, u.username
		ORDER BY total_volume DESC
		LIMIT $1
	`

	ranks := []models.OverallRank{}
	err := r.db.SelectContext(ctx, &ranks, query, leaderboardLimit)

	logger.Log.Infow("leaderboard query",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(ranks),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return ranks, nil
}

// ByExercise returns per-user maxima for a single exercise, matched
// case-insensitively by exact name. Max weight and max reps are independent
// maxima; max volume is the maximum of weight*reps over matching entries.
// Ordered by max weight descending, ties broken by max volume descending.
func (r *LeaderboardReadRepository) ByExercise(ctx context.Context, name string) ([]models.ExerciseRank, error) {
	const query = `
		SELECT
			u.username,
			u.user_id,
			MAX(e.weight) AS max_weight,
			MAX(e.reps) AS max_reps,
			MAX(e.weight * e.reps) AS max_volume
		FROM exercises e
		JOIN workouts w ON e.workout_id = w.workout_id
		JOIN users u ON w.user_id = u.user_id
		WHERE LOWER(e.exercise_name) = LOWER($1)
		GROUP BY u.user_id, u.username
		ORDER BY max_weight DESC, max_volume DESC
		LIMIT $2
	`

	ranks := []models.ExerciseRank{}
	err := r.db.SelectContext(ctx, &ranks, query, name, leaderboardLimit)

	logger.Log.Infow("leaderboard query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"result", len(ranks),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return ranks, nil
}

// ExerciseNames returns every distinct exercise name with its total entry
// count across all users, ordered by count descending.
func (r *LeaderboardReadRepository) ExerciseNames(ctx context.Context) ([]models.ExerciseCount, error) {
	const query = `
		SELECT exercise_name, COUNT(*) AS count
		FROM exercises
		GROUP BY exercise_name
		ORDER BY count DESC
	`

	counts := []models.ExerciseCount{}
	err := r.db.SelectContext(ctx, &counts, query)

	logger.Log.Infow("leaderboard query",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(counts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return counts, nil
}
