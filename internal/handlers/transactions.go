package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/units"
)

//go:generate mockgen -source=transactions.go -destination=transactions_mock.go -package=handlers

const historyPageSize = 20

// HistoryReader pages through a user's transactions.
type HistoryReader interface {
	History(ctx context.Context, userID string, page, pageSize int) ([]models.Transaction, int, error)
}

// TransactionView is a transaction as returned by the API
// swagger:model TransactionView
type TransactionView struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	FromID string `json:"fromId"`
	ToID   string `json:"toId"`
	Amount string `json:"amount"`
}

// TransactionsResponse carries one page of transactions
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Page         int               `json:"page"`
	Pages        int               `json:"pages"`
	Transactions []TransactionView `json:"transactions"`
}

// NewTransactionsHandler returns an HTTP handler listing the caller's
// transactions, newest first.
// @Summary List transactions
// @Tags ledger
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} handlers.TransactionsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid page"
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Router /transactions [get]
// @Security BearerAuth
func NewTransactionsHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		page := 1
		if p := r.URL.Query().Get("page"); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil || n < 1 {
				writeError(w, r, models.ErrInvalidArgument)
				return
			}
			page = n
		}

		list, pages, err := svc.History(r.Context(), userID, page, historyPageSize)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := TransactionsResponse{Page: page, Pages: pages, Transactions: make([]TransactionView, 0, len(list))}
		for _, t := range list {
			resp.Transactions = append(resp.Transactions, TransactionView{
				ID:     t.ID,
				Date:   t.Date,
				FromID: t.FromID,
				ToID:   t.ToID,
				Amount: units.FromMinorUnits(t.Amount),
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
