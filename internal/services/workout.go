package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sgolovanov/workout-tracker/internal/logger"
	"github.com/sgolovanov/workout-tracker/internal/metrics"
	"github.com/sgolovanov/workout-tracker/internal/models"
)

var (
	// ErrInvalidWorkout is returned when the date is missing/malformed or
	// no exercise entries were supplied.
	ErrInvalidWorkout = errors.New("date and at least one exercise are required")
	// ErrWorkoutNotFound is returned when a workout does not exist or is
	// not owned by the caller. The two cases are deliberately
	// indistinguishable.
	ErrWorkoutNotFound = errors.New("workout not found")
)

// workoutDateLayout is the wire format of workout dates.
const workoutDateLayout = "2006-01-02"

// WorkoutReader defines read operations for workouts.
type WorkoutReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Workout, error)
}

// WorkoutWriter defines write operations for workouts.
type WorkoutWriter interface {
	Save(ctx context.Context, userID uuid.UUID, date time.Time, notes *string, exercises []models.NewExercise) (uuid.UUID, error)
	Delete(ctx context.Context, userID, workoutID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// WorkoutService handles workout listing, creation, and deletion, and
// publishes workout-created events.
type WorkoutService struct {
	reader      WorkoutReader
	writer      WorkoutWriter
	kafkaWriter KafkaWriter
}

// NewWorkoutService creates a new WorkoutService. kafkaWriter may be nil, in
// which case event publishing is skipped.
func NewWorkoutService(reader WorkoutReader, writer WorkoutWriter, kafkaWriter KafkaWriter) *WorkoutService {
	return &WorkoutService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the caller's workouts with exercise entries embedded,
// newest first.
func (s *WorkoutService) List(ctx context.Context, userID uuid.UUID) ([]models.Workout, error) {
	workouts, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list workouts", "user_id", userID, "error", err)
		return nil, err
	}
	return workouts, nil
}

// Create validates the request and persists the workout with all of its
// exercise entries atomically. Returns the new workout identifier.
func (s *WorkoutService) Create(ctx context.Context, userID uuid.UUID, date string, notes *string, exercises []models.NewExercise) (uuid.UUID, error) {
	if date == "" || len(exercises) == 0 {
		return uuid.Nil, ErrInvalidWorkout
	}

	day, err := time.Parse(workoutDateLayout, date)
	if err != nil {
		logger.Log.Warnw("invalid workout date", "date", date, "error", err)
		return uuid.Nil, ErrInvalidWorkout
	}

	workoutID, err := s.writer.Save(ctx, userID, day, notes, exercises)
	if err != nil {
		logger.Log.Errorw("failed to save workout", "user_id", userID, "error", err)
		return uuid.Nil, err
	}

	metrics.WorkoutsCreatedTotal.Inc()
	s.publishWorkoutCreated(ctx, userID, workoutID, date, exercises)

	return workoutID, nil
}

// Delete removes a workout owned by the caller. Missing and not-owned both
// surface as ErrWorkoutNotFound.
func (s *WorkoutService) Delete(ctx context.Context, userID, workoutID uuid.UUID) error {
	err := s.writer.Delete(ctx, userID, workoutID)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Log.Warnw("workout not found or not owned", "user_id", userID, "workout_id", workoutID)
		return ErrWorkoutNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete workout", "user_id", userID, "workout_id", workoutID, "error", err)
		return err
	}
	return nil
}

// publishWorkoutCreated publishes a workout-created event to Kafka.
func (s *WorkoutService) publishWorkoutCreated(ctx context.Context, userID, workoutID uuid.UUID, date string, exercises []models.NewExercise) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "workout_id", workoutID)
		return
	}

	var volume float64
	for _, e := range exercises {
		volume += e.Weight * float64(e.Reps) * float64(e.Sets)
	}

	event := models.WorkoutEvent{
		EventID:       uuid.NewString(),
		UserID:        userID.String(),
		WorkoutID:     workoutID.String(),
		Date:          date,
		ExerciseCount: len(exercises),
		TotalVolume:   volume,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal workout event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.WorkoutID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish workout event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("workout event published", "event_id", event.EventID, "workout_id", event.WorkoutID)
	}
}
