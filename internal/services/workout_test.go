package services_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sgolovanov/workout-tracker/internal/models"
	"github.com/sgolovanov/workout-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockWorkoutReader(ctrl)
	mockWriter := services.NewMockWorkoutWriter(ctrl)

	svc := services.NewWorkoutService(mockReader, mockWriter, nil)

	userID := uuid.New()
	workouts := []models.Workout{
		{WorkoutID: uuid.New(), Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		{WorkoutID: uuid.New(), Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	tests := []struct {
		name      string
		workouts  []models.Workout
		readerErr error
		wantErr   bool
	}{
		{
			name:     "returns workouts",
			workouts: workouts,
		},
		{
			name:     "empty list",
			workouts: []models.Workout{},
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				ListByUserID(gomock.Any(), userID).
				Return(tt.workouts, tt.readerErr)

			got, err := svc.List(context.Background(), userID)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.workouts, got)
			}
		})
	}
}

func TestWorkoutService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockWorkoutReader(ctrl)
	mockWriter := services.NewMockWorkoutWriter(ctrl)

	svc := services.NewWorkoutService(mockReader, mockWriter, nil)

	userID := uuid.New()
	workoutID := uuid.New()
	exercises := []models.NewExercise{
		{ExerciseName: "Bench Press", Weight: 135, Reps: 10, Sets: 3},
	}

	tests := []struct {
		name       string
		date       string
		exercises  []models.NewExercise
		expectSave bool
		writerErr  error
		wantErr    error
	}{
		{
			name:       "successful create",
			date:       "2025-03-01",
			exercises:  exercises,
			expectSave: true,
		},
		{
			name:      "missing date",
			date:      "",
			exercises: exercises,
			wantErr:   services.ErrInvalidWorkout,
		},
		{
			name:      "malformed date",
			date:      "March 1st",
			exercises: exercises,
			wantErr:   services.ErrInvalidWorkout,
		},
		{
			name:    "no exercises",
			date:    "2025-03-01",
			wantErr: services.ErrInvalidWorkout,
		},
		{
			name:       "writer error",
			date:       "2025-03-01",
			exercises:  exercises,
			expectSave: true,
			writerErr:  errors.New("db error"),
			wantErr:    errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expectSave {
				day, _ := time.Parse("2006-01-02", tt.date)
				mockWriter.EXPECT().
					Save(gomock.Any(), userID, day, nil, tt.exercises).
					Return(workoutID, tt.writerErr)
			}

			got, err := svc.Create(context.Background(), userID, tt.date, nil, tt.exercises)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, uuid.Nil, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, workoutID, got)
			}
		})
	}
}

func TestWorkoutService_CreatePublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockWorkoutReader(ctrl)
	mockWriter := services.NewMockWorkoutWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewWorkoutService(mockReader, mockWriter, mockKafka)

	userID := uuid.New()
	workoutID := uuid.New()
	exercises := []models.NewExercise{
		{ExerciseName: "Squat", Weight: 100, Reps: 5, Sets: 3},
		{ExerciseName: "Deadlift", Weight: 140, Reps: 3, Sets: 2},
	}

	day, _ := time.Parse("2006-01-02", "2025-03-01")
	mockWriter.EXPECT().
		Save(gomock.Any(), userID, day, nil, exercises).
		Return(workoutID, nil)

	var published kafka.Message
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			published = msgs[0]
			return nil
		})

	_, err := svc.Create(context.Background(), userID, "2025-03-01", nil, exercises)
	require.NoError(t, err)

	assert.Equal(t, workoutID.String(), string(published.Key))

	var event models.WorkoutEvent
	require.NoError(t, json.Unmarshal(published.Value, &event))
	assert.Equal(t, userID.String(), event.UserID)
	assert.Equal(t, workoutID.String(), event.WorkoutID)
	assert.Equal(t, "2025-03-01", event.Date)
	assert.Equal(t, 2, event.ExerciseCount)
	assert.Equal(t, 100*5*3+140*3*2.0, event.TotalVolume)
}

func TestWorkoutService_CreateSurvivesPublishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockWorkoutReader(ctrl)
	mockWriter := services.NewMockWorkoutWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewWorkoutService(mockReader, mockWriter, mockKafka)

	userID := uuid.New()
	workoutID := uuid.New()
	exercises := []models.NewExercise{
		{ExerciseName: "Squat", Weight: 100, Reps: 5, Sets: 3},
	}

	day, _ := time.Parse("2006-01-02", "2025-03-01")
	mockWriter.EXPECT().
		Save(gomock.Any(), userID, day, nil, exercises).
		Return(workoutID, nil)

	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))

	got, err := svc.Create(context.Background(), userID, "2025-03-01", nil, exercises)
	assert.NoError(t, err)
	assert.Equal(t, workoutID, got)
}

func TestWorkoutService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockWorkoutReader(ctrl)
	mockWriter := services.NewMockWorkoutWriter(ctrl)

	svc := services.NewWorkoutService(mockReader, mockWriter, nil)

	userID := uuid.New()
	workoutID := uuid.New()

	tests := []struct {
		name      string
		writerErr error
		wantErr   error
	}{
		{
			name: "successful delete",
		},
		{
			name:      "not found or not owned",
			writerErr: sql.ErrNoRows,
			wantErr:   services.ErrWorkoutNotFound,
		},
		{
			name:      "writer error",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().
				Delete(gomock.Any(), userID, workoutID).
				Return(tt.writerErr)

			err := svc.Delete(context.Background(), userID, workoutID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
