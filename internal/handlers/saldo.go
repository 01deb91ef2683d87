package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/units"
)

//go:generate mockgen -source=saldo.go -destination=saldo_mock.go -package=handlers

// BalanceReader reads a balance. Unknown users have zero.
type BalanceReader interface {
	Balance(ctx context.Context, userID string) (int64, error)
}

// SaldoResponse carries a user's balance
// swagger:model SaldoResponse
type SaldoResponse struct {
	UserID string `json:"userId"`

	// Balance in coins
	// default: 0.00000000
	Saldo string `json:"saldo"`
}

// NewSaldoHandler returns an HTTP handler reading any user's balance.
// @Summary Get balance
// @Tags ledger
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} handlers.SaldoResponse
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Router /user/{userId}/saldo [get]
// @Security BearerAuth
func NewSaldoHandler(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}

		userID := chi.URLParam(r, "userId")
		if userID == "" {
			writeError(w, r, models.ErrInvalidArgument)
			return
		}

		balance, err := svc.Balance(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SaldoResponse{UserID: userID, Saldo: units.FromMinorUnits(balance)})
	}
}
