package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sgolovanov/workout-tracker/internal/logger"
	"github.com/sgolovanov/workout-tracker/internal/models"
)

// ExerciseRanker defines the interface that the service must implement.
type ExerciseRanker interface {
	ByExercise(ctx context.Context, name string) ([]models.ExerciseRank, error)
}

// NewExerciseLeaderboardHandler returns an HTTP handler serving the
// leaderboard for one exercise, matched case-insensitively by name.
// @Summary Per-exercise leaderboard
// @Description Ranks users by max weight for the named exercise (ties broken by max volume), top 100.
// @Tags leaderboard
// @Produce json
// @Param exerciseName path string true "Exercise name, case-insensitive"
// @Success 200 {array} models.ExerciseRank "Ranked users"
// @Failure 500 {object} handlers.LeaderboardErrorResponse "Internal server error"
// @Router /api/leaderboard/{exerciseName} [get]
func NewExerciseLeaderboardHandler(svc ExerciseRanker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		name := chi.URLParam(r, "exerciseName")

		ranks, err := svc.ByExercise(r.Context(), name)
		if err != nil {
			logger.Log.Errorw("failed to read exercise leaderboard", "exercise", name, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LeaderboardErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ranks)
	}
}
