package models

// WorkoutEvent is published to Kafka after a workout is created.
type WorkoutEvent struct {
	EventID       string  `json:"event_id"`       // Unique event identifier
	UserID        string  `json:"user_id"`        // Owner of the workout
	WorkoutID     string  `json:"workout_id"`     // Created workout
	Date          string  `json:"date"`           // Workout date (YYYY-MM-DD)
	ExerciseCount int     `json:"exercise_count"` // Number of exercise entries
	TotalVolume   float64 `json:"total_volume"`   // Sum of weight*reps*sets over the entries
	Timestamp     int64   `json:"timestamp"`      // Unix time the event was emitted
}
