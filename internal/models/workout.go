package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutDB represents a workout row in the database
type WorkoutDB struct {
	WorkoutID uuid.UUID `json:"workout_id" db:"workout_id"` // Unique workout identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Identifier of the owning user
	Date      time.Time `json:"date" db:"date"`             // Calendar date of the workout
	Notes     *string   `json:"notes" db:"notes"`           // Optional free-text notes
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the workout was logged
}

// ExerciseDB represents an exercise entry row in the database
type ExerciseDB struct {
	ExerciseID   uuid.UUID `json:"exercise_id" db:"exercise_id"`     // Unique exercise entry identifier
	WorkoutID    uuid.UUID `json:"workout_id" db:"workout_id"`       // Identifier of the parent workout
	ExerciseName string    `json:"exercise_name" db:"exercise_name"` // Movement name, free text
	Weight       float64   `json:"weight" db:"weight"`               // Weight lifted, non-negative
	Reps         int       `json:"reps" db:"reps"`                   // Repetitions per set, non-negative
	Sets         int       `json:"sets" db:"sets"`                   // Number of sets, non-negative
}

// Workout is a workout with its exercise entries embedded, as returned by list reads.
type Workout struct {
	WorkoutID uuid.UUID    `json:"id"`
	Date      time.Time    `json:"date"`
	Notes     *string      `json:"notes"`
	CreatedAt time.Time    `json:"created_at"`
	Exercises []ExerciseDB `json:"exercises"`
}

// NewExercise describes one exercise entry of a workout being created.
type NewExercise struct {
	ExerciseName string  `json:"exercise_name"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Sets         int     `json:"sets"`
}
