package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sgolovanov/workout-tracker/internal/logger"
	"github.com/sgolovanov/workout-tracker/internal/models"
)

// WorkoutReadRepository handles workout read operations.
type WorkoutReadRepository struct {
	db *sqlx.DB
}

func NewWorkoutReadRepository(db *sqlx.DB) *WorkoutReadRepository {
	return &WorkoutReadRepository{db: db}
}

// ListByUserID returns all workouts owned by userID with their exercise
// entries embedded, ordered by date descending. Entries are fetched in a
// second query and grouped in memory.
func (r *WorkoutReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Workout, error) {
	const workoutQuery = `
		SELECT workout_id, user_id, date, notes, created_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`

	var rows []models.WorkoutDB
	err := r.db.SelectContext(ctx, &rows, workoutQuery, userID)

	logger.Log.Infow("workout query",
		"query", strings.Join(strings.Fields(workoutQuery), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []models.Workout{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, w := range rows {
		ids = append(ids, w.WorkoutID)
	}

	query, args, err := sqlx.In(`
		SELECT exercise_id, workout_id, exercise_name, weight, reps, sets
		FROM exercises
		WHERE workout_id IN (?)
	`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var entries []models.ExerciseDB
	err = r.db.SelectContext(ctx, &entries, query, args...)

	logger.Log.Infow("exercise query",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	byWorkout := make(map[uuid.UUID][]models.ExerciseDB, len(rows))
	for _, e := range entries {
		// Tolerate dangling rows: an entry without a name carries no
		// information and is skipped, mirroring the null filtering of
		// outer-join style reads.
		if e.ExerciseName == "" {
			continue
		}
		byWorkout[e.WorkoutID] = append(byWorkout[e.WorkoutID], e)
	}

	workouts := make([]models.Workout, 0, len(rows))
	for _, w := range rows {
		exercises := byWorkout[w.WorkoutID]
		if exercises == nil {
			exercises = []models.ExerciseDB{}
		}
		workouts = append(workouts, models.Workout{
			WorkoutID: w.WorkoutID,
			Date:      w.Date,
			Notes:     w.Notes,
			CreatedAt: w.CreatedAt,
			Exercises: exercises,
		})
	}

	return workouts, nil
}

// WorkoutWriteRepository handles workout write operations.
type WorkoutWriteRepository struct {
	db *sqlx.DB
}

func NewWorkoutWriteRepository(db *sqlx.DB) *WorkoutWriteRepository {
	return &WorkoutWriteRepository{db: db}
}

// Save inserts a workout and all of its exercise entries in one transaction.
// If any exercise insert fails the workout insert is rolled back, so no
// orphaned workout is ever left behind.
func (r *WorkoutWriteRepository) Save(ctx context.Context, userID uuid.UUID, date time.Time, notes *string, exercises []models.NewExercise) (uuid.UUID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return uuid.Nil, err
	}
	defer tx.Rollback()

	const workoutQuery = `
		INSERT INTO workouts (user_id, date, notes, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING workout_id
	`

	var workoutID uuid.UUID
	err = tx.GetContext(ctx, &workoutID, workoutQuery, userID, date, notes)

	logger.Log.Infow("workout query",
		"query", strings.Join(strings.Fields(workoutQuery), " "),
		"args", []any{userID, date},
		"result", workoutID,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}

	const exerciseQuery = `
		INSERT INTO exercises (workout_id, exercise_name, weight, reps, sets)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, e := range exercises {
		if _, err := tx.ExecContext(ctx, exerciseQuery, workoutID, e.ExerciseName, e.Weight, e.Reps, e.Sets); err != nil {
			logger.Log.Errorw("failed to insert exercise, rolling back workout",
				"workout_id", workoutID,
				"exercise_name", e.ExerciseName,
				"error", err,
			)
			return uuid.Nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit workout", "workout_id", workoutID, "error", err)
		return uuid.Nil, err
	}

	return workoutID, nil
}

// Delete removes a workout only if it is owned by userID; exercise entries
// are removed by cascade. Returns sql.ErrNoRows when no row was deleted,
// whether the workout is missing or owned by someone else.
func (r *WorkoutWriteRepository) Delete(ctx context.Context, userID, workoutID uuid.UUID) error {
	const query = `DELETE FROM workouts WHERE workout_id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, workoutID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("workout query",
		"query", query,
		"args", []any{workoutID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
