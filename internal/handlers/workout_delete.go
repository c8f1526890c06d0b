package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sgolovanov/workout-tracker/internal/jwt"
	"github.com/sgolovanov/workout-tracker/internal/logger"
	"github.com/sgolovanov/workout-tracker/internal/services"
)

// WorkoutDeleteTokener defines only the methods needed by this handler.
type WorkoutDeleteTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WorkoutDeleter defines the interface that the service must implement.
type WorkoutDeleter interface {
	Delete(ctx context.Context, userID, workoutID uuid.UUID) error
}

// WorkoutDeleteResponse represents a successful workout deletion response
// swagger:model WorkoutDeleteResponse
type WorkoutDeleteResponse struct {
	// Success message
	// example: Workout deleted successfully
	Message string `json:"message"`
}

// WorkoutDeleteErrorResponse represents an error response for workout deletion
// swagger:model WorkoutDeleteErrorResponse
type WorkoutDeleteErrorResponse struct {
	// Error message
	// example: Workout not found
	Error string `json:"error"`
}

// NewWorkoutDeleteHandler returns an HTTP handler deleting one of the
// caller's workouts. A workout that does not exist and a workout owned by
// someone else are reported identically as 404.
// @Summary Delete a workout
// @Description Deletes a workout owned by the authenticated user; its exercise entries are removed by cascade.
// @Tags workouts
// @Produce json
// @Param id path string true "Workout identifier"
// @Success 200 {object} handlers.WorkoutDeleteResponse "Workout deleted"
// @Failure 401 {object} handlers.WorkoutDeleteErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.WorkoutDeleteErrorResponse "Workout not found"
// @Router /api/workouts/{id} [delete]
// @Security BearerAuth
func NewWorkoutDeleteHandler(svc WorkoutDeleter, tokenGetter WorkoutDeleteTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Warnw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WorkoutDeleteErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Warnw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WorkoutDeleteErrorResponse{Error: "Unauthorized"})
			return
		}

		// A malformed id cannot name an existing workout; report it the
		// same way as a missing one.
		workoutID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(WorkoutDeleteErrorResponse{Error: "Workout not found"})
			return
		}

		if err := svc.Delete(ctx, claims.UserID, workoutID); err != nil {
			switch {
			case errors.Is(err, services.ErrWorkoutNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WorkoutDeleteErrorResponse{Error: "Workout not found"})
			default:
				logger.Log.Errorw("failed to delete workout", "workout_id", workoutID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WorkoutDeleteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkoutDeleteResponse{Message: "Workout deleted successfully"})
	}
}
