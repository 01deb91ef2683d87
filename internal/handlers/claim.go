package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

//go:generate mockgen -source=claim.go -destination=claim_mock.go -package=handlers

// Claimer grants the periodic reward.
type Claimer interface {
	Claim(ctx context.Context, userID string) (*models.Receipt, error)
}

// ClaimErrorResponse is returned while the cooldown runs
// swagger:model ClaimErrorResponse
type ClaimErrorResponse struct {
	Error               string `json:"error"`
	CooldownRemainingMs int64  `json:"cooldownRemainingMs"`
}

// NewClaimHandler returns an HTTP handler that claims the caller's reward.
// @Summary Claim reward
// @Tags ledger
// @Produce json
// @Success 200 {object} handlers.SuccessResponse
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Failure 429 {object} handlers.ClaimErrorResponse "Cooldown active"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /claim [post]
// @Security BearerAuth
func NewClaimHandler(svc Claimer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		receipt, err := svc.Claim(r.Context(), userID)
		if err != nil {
			var cooldown *models.CooldownError
			if errors.As(err, &cooldown) {
				writeJSON(w, http.StatusTooManyRequests, ClaimErrorResponse{
					Error:               "cooldown active",
					CooldownRemainingMs: cooldown.Remaining.Milliseconds(),
				})
				return
			}
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true, TxID: receipt.TxID})
	}
}
