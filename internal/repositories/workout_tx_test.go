package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sgolovanov/workout-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Transaction choreography of Save, checked against sqlmock so the rollback
// paths are covered without a live database.

func newWorkoutSqlmock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestWorkoutWriteRepository_SaveCommits(t *testing.T) {
	sqlxDB, mock := newWorkoutSqlmock(t)

	userID := uuid.New()
	workoutID := uuid.New()
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO workouts").
		WithArgs(userID, day, nil).
		WillReturnRows(sqlmock.NewRows([]string{"workout_id"}).AddRow(workoutID))
	mock.ExpectExec("INSERT INTO exercises").
		WithArgs(workoutID, "Squat", 100.0, 5, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewWorkoutWriteRepository(sqlxDB)
	got, err := repo.Save(context.Background(), userID, day, nil, []models.NewExercise{
		{ExerciseName: "Squat", Weight: 100, Reps: 5, Sets: 3},
	})

	assert.NoError(t, err)
	assert.Equal(t, workoutID, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutWriteRepository_SaveRollsBackOnExerciseError(t *testing.T) {
	sqlxDB, mock := newWorkoutSqlmock(t)

	userID := uuid.New()
	workoutID := uuid.New()
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO workouts").
		WithArgs(userID, day, nil).
		WillReturnRows(sqlmock.NewRows([]string{"workout_id"}).AddRow(workoutID))
	mock.ExpectExec("INSERT INTO exercises").
		WithArgs(workoutID, "Squat", 100.0, 5, 3).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	repo := NewWorkoutWriteRepository(sqlxDB)
	got, err := repo.Save(context.Background(), userID, day, nil, []models.NewExercise{
		{ExerciseName: "Squat", Weight: 100, Reps: 5, Sets: 3},
	})

	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutWriteRepository_SaveRollsBackOnWorkoutError(t *testing.T) {
	sqlxDB, mock := newWorkoutSqlmock(t)

	userID := uuid.New()
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO workouts").
		WithArgs(userID, day, nil).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	repo := NewWorkoutWriteRepository(sqlxDB)
	got, err := repo.Save(context.Background(), userID, day, nil, []models.NewExercise{
		{ExerciseName: "Squat", Weight: 100, Reps: 5, Sets: 3},
	})

	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
