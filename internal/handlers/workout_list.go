package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sgolovanov/workout-tracker/internal/jwt"
	"github.com/sgolovanov/workout-tracker/internal/logger"
	"github.com/sgolovanov/workout-tracker/internal/models"
)

// WorkoutListTokener defines only the methods needed by this handler.
type WorkoutListTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WorkoutLister defines the interface that the service must implement.
type WorkoutLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Workout, error)
}

// ExerciseEntry is one exercise entry of a listed workout
// swagger:model ExerciseEntry
type ExerciseEntry struct {
	ID           uuid.UUID `json:"id"`
	ExerciseName string    `json:"exercise_name"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Sets         int       `json:"sets"`
}

// WorkoutItem is one workout of a listing response
// swagger:model WorkoutItem
type WorkoutItem struct {
	ID        uuid.UUID       `json:"id"`
	Date      string          `json:"date"`
	Notes     *string         `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	Exercises []ExerciseEntry `json:"exercises"`
}

// WorkoutListErrorResponse represents an error response for workout listing
// swagger:model WorkoutListErrorResponse
type WorkoutListErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewWorkoutListHandler returns an HTTP handler listing the caller's
// workouts, newest first, with exercise entries embedded.
// @Summary List workouts
// @Description Returns all workouts of the authenticated user, ordered by date descending.
// @Tags workouts
// @Produce json
// @Success 200 {array} handlers.WorkoutItem "Workouts with embedded exercises"
// @Failure 401 {object} handlers.WorkoutListErrorResponse "Unauthorized"
// @Router /api/workouts [get]
// @Security BearerAuth
func NewWorkoutListHandler(svc WorkoutLister, tokenGetter WorkoutListTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Warnw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WorkoutListErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Warnw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WorkoutListErrorResponse{Error: "Unauthorized"})
			return
		}

		workouts, err := svc.List(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list workouts", "user_id", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WorkoutListErrorResponse{Error: "Internal server error"})
			return
		}

		items := make([]WorkoutItem, 0, len(workouts))
		for _, workout := range workouts {
			entries := make([]ExerciseEntry, 0, len(workout.Exercises))
			for _, e := range workout.Exercises {
				entries = append(entries, ExerciseEntry{
					ID:           e.ExerciseID,
					ExerciseName: e.ExerciseName,
					Weight:       e.Weight,
					Reps:         e.Reps,
					Sets:         e.Sets,
				})
			}
			items = append(items, WorkoutItem{
				ID:        workout.WorkoutID,
				Date:      workout.Date.Format("2006-01-02"),
				Notes:     workout.Notes,
				CreatedAt: workout.CreatedAt,
				Exercises: entries,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}
