package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sgolovanov/workout-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutWriteRepository_SaveAndList(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewWorkoutWriteRepository(db)
	readRepo := NewWorkoutReadRepository(db)
	ctx := context.Background()

	userID, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	require.NoError(t, err)

	notes := "Push day"
	older := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	olderID, err := writeRepo.Save(ctx, userID, older, nil, []models.NewExercise{
		{ExerciseName: "Squat", Weight: 100, Reps: 5, Sets: 3},
	})
	require.NoError(t, err)

	newerID, err := writeRepo.Save(ctx, userID, newer, &notes, []models.NewExercise{
		{ExerciseName: "Bench Press", Weight: 135, Reps: 10, Sets: 3},
		{ExerciseName: "Overhead Press", Weight: 65, Reps: 8, Sets: 3},
	})
	require.NoError(t, err)

	workouts, err := readRepo.ListByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, workouts, 2)

	assert.Equal(t, newerID, workouts[0].WorkoutID)
	assert.Equal(t, &notes, workouts[0].Notes)
	assert.Len(t, workouts[0].Exercises, 2)

	assert.Equal(t, olderID, workouts[1].WorkoutID)
	assert.Nil(t, workouts[1].Notes)
	require.Len(t, workouts[1].Exercises, 1)
	assert.Equal(t, "Squat", workouts[1].Exercises[0].ExerciseName)
	assert.Equal(t, 100.0, workouts[1].Exercises[0].Weight)
	assert.Equal(t, 5, workouts[1].Exercises[0].Reps)
	assert.Equal(t, 3, workouts[1].Exercises[0].Sets)
}

func TestWorkoutReadRepository_ListEmpty(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	readRepo := NewWorkoutReadRepository(db)
	ctx := context.Background()

	userID, err := userRepo.Save(ctx, "bob", "bob@example.com", "hash")
	require.NoError(t, err)

	workouts, err := readRepo.ListByUserID(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, workouts)
	assert.Empty(t, workouts)
}

func TestWorkoutWriteRepository_SaveRollsBackOnBadEntry(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewWorkoutWriteRepository(db)
	ctx := context.Background()

	userID, err := userRepo.Save(ctx, "carol", "carol@example.com", "hash")
	require.NoError(t, err)

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	// The second entry violates the non-negative weight constraint, so the
	// workout insert must be rolled back with it.
	_, err = writeRepo.Save(ctx, userID, day, nil, []models.NewExercise{
		{ExerciseName: "Squat", Weight: 100, Reps: 5, Sets: 3},
		{ExerciseName: "Bench Press", Weight: -10, Reps: 10, Sets: 3},
	})
	require.Error(t, err)

	var workouts, exercises int
	require.NoError(t, db.Get(&workouts, "SELECT COUNT(*) FROM workouts"))
	require.NoError(t, db.Get(&exercises, "SELECT COUNT(*) FROM exercises"))
	assert.Zero(t, workouts)
	assert.Zero(t, exercises)
}

func TestWorkoutWriteRepository_Delete(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewWorkoutWriteRepository(db)
	readRepo := NewWorkoutReadRepository(db)
	ctx := context.Background()

	ownerID, err := userRepo.Save(ctx, "owner", "owner@example.com", "hash")
	require.NoError(t, err)
	otherID, err := userRepo.Save(ctx, "other", "other@example.com", "hash")
	require.NoError(t, err)

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	workoutID, err := writeRepo.Save(ctx, ownerID, day, nil, []models.NewExercise{
		{ExerciseName: "Deadlift", Weight: 140, Reps: 3, Sets: 2},
	})
	require.NoError(t, err)

	t.Run("NotOwnedLeavesWorkoutIntact", func(t *testing.T) {
		err := writeRepo.Delete(ctx, otherID, workoutID)
		assert.ErrorIs(t, err, sql.ErrNoRows)

		workouts, err := readRepo.ListByUserID(ctx, ownerID)
		require.NoError(t, err)
		assert.Len(t, workouts, 1)
	})

	t.Run("OwnedDeleteRemovesEntries", func(t *testing.T) {
		require.NoError(t, writeRepo.Delete(ctx, ownerID, workoutID))

		workouts, err := readRepo.ListByUserID(ctx, ownerID)
		require.NoError(t, err)
		assert.Empty(t, workouts)

		var exercises int
		require.NoError(t, db.Get(&exercises, "SELECT COUNT(*) FROM exercises"))
		assert.Zero(t, exercises)
	})

	t.Run("MissingWorkout", func(t *testing.T) {
		err := writeRepo.Delete(ctx, ownerID, uuid.New())
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
