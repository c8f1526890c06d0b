package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sgolovanov/workout-tracker/internal/logger"
	"github.com/sgolovanov/workout-tracker/internal/models"
)

// OverallRanker defines the interface that the service must implement.
type OverallRanker interface {
	Overall(ctx context.Context) ([]models.OverallRank, error)
}

// LeaderboardErrorResponse represents an error response for leaderboard reads
// swagger:model LeaderboardErrorResponse
type LeaderboardErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewOverallLeaderboardHandler returns an HTTP handler serving the overall
// leaderboard: top 100 users by total lifted volume.
// @Summary Overall leaderboard
// @Description Ranks users by total volume (weight x reps x sets summed over all entries), top 100.
// @Tags leaderboard
// @Produce json
// @Success 200 {array} models.OverallRank "Ranked users"
// @Failure 500 {object} handlers.LeaderboardErrorResponse "Internal server error"
// @Router /api/leaderboard [get]
func NewOverallLeaderboardHandler(svc OverallRanker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		ranks, err := svc.Overall(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to read overall leaderboard", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LeaderboardErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ranks)
	}
}
