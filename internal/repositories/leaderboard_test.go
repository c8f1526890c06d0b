package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sgolovanov/workout-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedLeaderboardData logs, for three registered users:
//   - alice: Bench Press 135x10x3 (4050), Squat 100x5x3 (1500),
//     Bench Press 95x12x2 (2280) across two workouts, total volume 7830
//   - bob: one workout with "bench press" 185x5x1 (925), lowercase on purpose
//   - carol: no workouts at all
func seedLeaderboardData(t *testing.T, db *sqlx.DB) (alice, bob, carol uuid.UUID) {
	t.Helper()

	userRepo := NewUserWriteRepository(db)
	workoutRepo := NewWorkoutWriteRepository(db)
	ctx := context.Background()

	var err error
	alice, err = userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	require.NoError(t, err)
	bob, err = userRepo.Save(ctx, "bob", "bob@example.com", "hash")
	require.NoError(t, err)
	carol, err = userRepo.Save(ctx, "carol", "carol@example.com", "hash")
	require.NoError(t, err)

	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	_, err = workoutRepo.Save(ctx, alice, day1, nil, []models.NewExercise{
		{ExerciseName: "Bench Press", Weight: 135, Reps: 10, Sets: 3},
	})
	require.NoError(t, err)

	_, err = workoutRepo.Save(ctx, alice, day2, nil, []models.NewExercise{
		{ExerciseName: "Squat", Weight: 100, Reps: 5, Sets: 3},
		{ExerciseName: "Bench Press", Weight: 95, Reps: 12, Sets: 2},
	})
	require.NoError(t, err)

	_, err = workoutRepo.Save(ctx, bob, day1, nil, []models.NewExercise{
		{ExerciseName: "bench press", Weight: 185, Reps: 5, Sets: 1},
	})
	require.NoError(t, err)

	return alice, bob, carol
}

func TestLeaderboardReadRepository_Overall(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	aliceID, bobID, carolID := seedLeaderboardData(t, db)

	repo := NewLeaderboardReadRepository(db)
	ranks, err := repo.Overall(context.Background())
	require.NoError(t, err)

	require.Len(t, ranks, 2)

	assert.Equal(t, "alice", ranks[0].Username)
	assert.Equal(t, aliceID, ranks[0].UserID)
	assert.Equal(t, 2, ranks[0].TotalWorkouts)
	assert.Equal(t, 3, ranks[0].TotalExercises)
	assert.Equal(t, 7830.0, ranks[0].TotalVolume)

	assert.Equal(t, "bob", ranks[1].Username)
	assert.Equal(t, bobID, ranks[1].UserID)
	assert.Equal(t, 1, ranks[1].TotalWorkouts)
	assert.Equal(t, 1, ranks[1].TotalExercises)
	assert.Equal(t, 925.0, ranks[1].TotalVolume)

	for _, rank := range ranks {
		assert.NotEqual(t, carolID, rank.UserID)
	}
}

func TestLeaderboardReadRepository_ByExercise(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	aliceID, bobID, _ := seedLeaderboardData(t, db)

	repo := NewLeaderboardReadRepository(db)
	ctx := context.Background()

	t.Run("RanksByMaxWeight", func(t *testing.T) {
		// bob's single 185 entry outranks alice despite her larger volume.
		ranks, err := repo.ByExercise(ctx, "Bench Press")
		require.NoError(t, err)
		require.Len(t, ranks, 2)

		assert.Equal(t, bobID, ranks[0].UserID)
		assert.Equal(t, 185.0, ranks[0].MaxWeight)
		assert.Equal(t, 5, ranks[0].MaxReps)
		assert.Equal(t, 925.0, ranks[0].MaxVolume)

		assert.Equal(t, aliceID, ranks[1].UserID)
		assert.Equal(t, 135.0, ranks[1].MaxWeight)
		assert.Equal(t, 12, ranks[1].MaxReps)
		assert.Equal(t, 1350.0, ranks[1].MaxVolume)
	})

	t.Run("CaseInsensitiveMatch", func(t *testing.T) {
		ranks, err := repo.ByExercise(ctx, "BENCH PRESS")
		require.NoError(t, err)
		assert.Len(t, ranks, 2)
	})

	t.Run("UnknownExercise", func(t *testing.T) {
		ranks, err := repo.ByExercise(ctx, "Curls")
		require.NoError(t, err)
		assert.NotNil(t, ranks)
		assert.Empty(t, ranks)
	})
}

func TestLeaderboardReadRepository_ExerciseNames(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	seedLeaderboardData(t, db)

	repo := NewLeaderboardReadRepository(db)
	counts, err := repo.ExerciseNames(context.Background())
	require.NoError(t, err)

	// Names are grouped as stored, so the lowercase variant counts separately.
	require.Len(t, counts, 3)
	assert.Equal(t, "Bench Press", counts[0].ExerciseName)
	assert.Equal(t, 2, counts[0].Count)

	rest := map[string]int{
		counts[1].ExerciseName: counts[1].Count,
		counts[2].ExerciseName: counts[2].Count,
	}
	assert.Equal(t, map[string]int{"Squat": 1, "bench press": 1}, rest)
}

func TestLeaderboardReadRepository_OverallEmptyStore(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewLeaderboardReadRepository(db)
	ranks, err := repo.Overall(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ranks)
	assert.Empty(t, ranks)
}
