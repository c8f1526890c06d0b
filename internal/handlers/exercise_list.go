package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sgolovanov/workout-tracker/internal/logger"
	"github.com/sgolovanov/workout-tracker/internal/models"
)

// ExerciseLister defines the interface that the service must implement.
type ExerciseLister interface {
	ExerciseNames(ctx context.Context) ([]models.ExerciseCount, error)
}

// NewExerciseListHandler returns an HTTP handler serving all distinct
// exercise names with their entry counts, used to populate pickers.
// @Summary List exercise names
// @Description Returns every distinct exercise name with its total entry count, ordered by count descending.
// @Tags leaderboard
// @Produce json
// @Success 200 {array} models.ExerciseCount "Exercise names with counts"
// @Failure 500 {object} handlers.LeaderboardErrorResponse "Internal server error"
// @Router /api/leaderboard/exercises/list [get]
func NewExerciseListHandler(svc ExerciseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		counts, err := svc.ExerciseNames(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list exercise names", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LeaderboardErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(counts)
	}
}
