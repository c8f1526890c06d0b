package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sgolovanov/workout-tracker/internal/jwt"
	"github.com/sgolovanov/workout-tracker/internal/logger"
	"github.com/sgolovanov/workout-tracker/internal/models"
	"github.com/sgolovanov/workout-tracker/internal/services"
)

// WorkoutCreateTokener defines only the methods needed by this handler.
type WorkoutCreateTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WorkoutCreator defines the interface that the service must implement.
type WorkoutCreator interface {
	Create(ctx context.Context, userID uuid.UUID, date string, notes *string, exercises []models.NewExercise) (uuid.UUID, error)
}

// NewExerciseRequest describes one exercise entry of a workout being created
// swagger:model NewExerciseRequest
type NewExerciseRequest struct {
	// Movement name
	// required: true
	// example: Bench Press
	ExerciseName string `json:"exercise_name" validate:"required"`

	// Weight lifted
	// required: true
	// example: 135
	Weight float64 `json:"weight" validate:"gte=0"`

	// Repetitions per set
	// required: true
	// example: 10
	Reps int `json:"reps" validate:"gte=0"`

	// Number of sets
	// required: true
	// example: 3
	Sets int `json:"sets" validate:"gte=0"`
}

// WorkoutCreateRequest represents the JSON body for creating a workout
// swagger:model WorkoutCreateRequest
type WorkoutCreateRequest struct {
	// Workout date (YYYY-MM-DD)
	// required: true
	// example: 2024-01-01
	Date string `json:"date" validate:"required"`

	// Free-text notes
	// example: Push day
	Notes *string `json:"notes"`

	// Exercise entries, at least one
	// required: true
	Exercises []NewExerciseRequest `json:"exercises" validate:"required,min=1,dive"`
}

// WorkoutCreateResponse represents a successful workout creation response
// swagger:model WorkoutCreateResponse
type WorkoutCreateResponse struct {
	// Success message
	// example: Workout created successfully
	Message string `json:"message"`

	// Identifier of the created workout
	WorkoutID uuid.UUID `json:"workout_id"`
}

// WorkoutCreateErrorResponse represents an error response for workout creation
// swagger:model WorkoutCreateErrorResponse
type WorkoutCreateErrorResponse struct {
	// Error message
	// example: Date and at least one exercise are required
	Error string `json:"error"`
}

// NewWorkoutCreateHandler returns an HTTP handler creating a workout with
// all of its exercise entries in one transaction.
// @Summary Create a workout
// @Description Logs a dated workout with one or more exercise entries. The workout and its entries are stored atomically.
// @Tags workouts
// @Accept json
// @Produce json
// @Param request body handlers.WorkoutCreateRequest true "Workout to create"
// @Success 201 {object} handlers.WorkoutCreateResponse "Workout created"
// @Failure 400 {object} handlers.WorkoutCreateErrorResponse "Missing date or exercises"
// @Failure 401 {object} handlers.WorkoutCreateErrorResponse "Unauthorized"
// @Router /api/workouts [post]
// @Security BearerAuth
func NewWorkoutCreateHandler(svc WorkoutCreator, tokenGetter WorkoutCreateTokener) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Warnw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WorkoutCreateErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Warnw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WorkoutCreateErrorResponse{Error: "Unauthorized"})
			return
		}

		var req WorkoutCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkoutCreateErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.Log.Warnw("invalid workout create request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkoutCreateErrorResponse{Error: "Date and at least one exercise are required"})
			return
		}

		exercises := make([]models.NewExercise, 0, len(req.Exercises))
		for _, e := range req.Exercises {
			exercises = append(exercises, models.NewExercise{
				ExerciseName: e.ExerciseName,
				Weight:       e.Weight,
				Reps:         e.Reps,
				Sets:         e.Sets,
			})
		}

		workoutID, err := svc.Create(ctx, claims.UserID, req.Date, req.Notes, exercises)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidWorkout):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WorkoutCreateErrorResponse{Error: "Date and at least one exercise are required"})
			default:
				logger.Log.Errorw("failed to create workout", "user_id", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WorkoutCreateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(WorkoutCreateResponse{
			Message:   "Workout created successfully",
			WorkoutID: workoutID,
		})
	}
}
