package models

import "github.com/google/uuid"

// OverallRank is one row of the overall leaderboard: totals across all of a
// user's exercise entries, ranked by total volume.
type OverallRank struct {
	Username       string    `json:"username" db:"username"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	TotalWorkouts  int       `json:"total_workouts" db:"total_workouts"`
	TotalExercises int       `json:"total_exercises" db:"total_exercises"`
	TotalVolume    float64   `json:"total_volume" db:"total_volume"`
}

// ExerciseRank is one row of a per-exercise leaderboard. Max weight and max
// reps are independent maxima and need not come from the same entry.
type ExerciseRank struct {
	Username  string    `json:"username" db:"username"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	MaxWeight float64   `json:"max_weight" db:"max_weight"`
	MaxReps   int       `json:"max_reps" db:"max_reps"`
	MaxVolume float64   `json:"max_volume" db:"max_volume"`
}

// ExerciseCount is a distinct exercise name with its total entry count,
// used to populate exercise pickers.
type ExerciseCount struct {
	ExerciseName string `json:"exercise_name" db:"exercise_name"`
	Count        int    `json:"count" db:"count"`
}
