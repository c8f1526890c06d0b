package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sgolovanov/workout-tracker/internal/jwt"
	"github.com/sgolovanov/workout-tracker/internal/logger"
	"github.com/sgolovanov/workout-tracker/internal/services"
)

// AccountDeleteTokener defines only the methods needed by this handler.
type AccountDeleteTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AccountDeleter defines the interface that the service must implement.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// AccountDeleteResponse represents a successful account deletion response
// swagger:model AccountDeleteResponse
type AccountDeleteResponse struct {
	// Success message
	// example: Account deleted successfully
	Message string `json:"message"`
}

// AccountDeleteErrorResponse represents an error response for account deletion
// swagger:model AccountDeleteErrorResponse
type AccountDeleteErrorResponse struct {
	// Error message
	// example: Account not found
	Error string `json:"error"`
}

// NewAccountDeleteHandler returns an HTTP handler deleting the caller's
// account. Workouts and exercise entries are removed by cascade.
// @Summary Delete own account
// @Description Removes the authenticated user together with all their workouts and exercise entries.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.AccountDeleteResponse "Account deleted"
// @Failure 401 {object} handlers.AccountDeleteErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.AccountDeleteErrorResponse "Account not found"
// @Router /api/auth/account [delete]
// @Security BearerAuth
func NewAccountDeleteHandler(svc AccountDeleter, tokenGetter AccountDeleteTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Warnw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AccountDeleteErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Warnw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AccountDeleteErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := svc.DeleteAccount(ctx, claims.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AccountDeleteErrorResponse{Error: "Account not found"})
			default:
				logger.Log.Errorw("failed to delete account", "user_id", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AccountDeleteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AccountDeleteResponse{Message: "Account deleted successfully"})
	}
}
