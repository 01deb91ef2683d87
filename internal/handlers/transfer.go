package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/units"
)

//go:generate mockgen -source=transfer.go -destination=transfer_mock.go -package=handlers

// Transferer moves coins for an API user. The sender is provisioned if needed.
type Transferer interface {
	TransferEnsuringSender(ctx context.Context, fromID, toID string, amount int64, txID string) (*models.Receipt, error)
}

// TransferRequest represents the JSON body for a transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Payee id
	// required: true
	ToID string `json:"toId"`

	// Amount in coins, up to 8 decimal places
	// required: true
	// default: 1.5
	Amount json.Number `json:"amount"`
}

// NewTransferHandler returns an HTTP handler that sends coins from the caller.
// @Summary Transfer coins
// @Tags ledger
// @Accept json
// @Produce json
// @Param transferRequest body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.SuccessResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid parameters or insufficient funds"
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /transfer [post]
// @Security BearerAuth
func NewTransferHandler(svc Transferer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}

		amount, err := units.ParseAmount(req.Amount.String())
		if err != nil || req.ToID == "" {
			writeError(w, r, models.ErrInvalidAmount)
			return
		}

		receipt, err := svc.TransferEnsuringSender(r.Context(), userID, req.ToID, amount, "")
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true, TxID: receipt.TxID})
	}
}
