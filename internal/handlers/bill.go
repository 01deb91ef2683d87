package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/services"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/units"
)

//go:generate mockgen -source=bill.go -destination=bill_mock.go -package=handlers

const billPageSize = 10

// BillManager lists, creates and settles bills.
type BillManager interface {
	ListBills(ctx context.Context, userID string, role models.BillRole, page, pageSize int) ([]models.Bill, error)
	CreateBill(ctx context.Context, fromID, toID string, amount int64, expiry time.Time) (*models.Bill, error)
	PayBill(ctx context.Context, executorID, billID string) (*models.Receipt, *models.Bill, error)
}

// BillView is a bill as returned by the API
// swagger:model BillView
type BillView struct {
	ID     string `json:"billId"`
	FromID string `json:"fromId,omitempty"`
	ToID   string `json:"toId"`
	Amount string `json:"amount"`

	// Epoch ms
	Expiry int64 `json:"expiry"`
}

func newBillView(b models.Bill) BillView {
	return BillView{
		ID:     b.ID,
		FromID: b.FromID,
		ToID:   b.ToID,
		Amount: units.FromMinorUnits(b.Amount),
		Expiry: b.Expiry,
	}
}

// BillListRequest represents the JSON body for a bill listing
// swagger:model BillListRequest
type BillListRequest struct {
	// Page number, starting at 1
	// default: 1
	Page int `json:"page"`
}

// BillListResponse carries one page of the caller's bills
// swagger:model BillListResponse
type BillListResponse struct {
	Page      int        `json:"page"`
	ToPay     []BillView `json:"toPay"`
	ToReceive []BillView `json:"toReceive"`
}

// BillCreateRequest represents the JSON body for a new bill
// swagger:model BillCreateRequest
type BillCreateRequest struct {
	// Expected payer, anyone may pay when empty
	FromID string `json:"fromId"`

	// Payee
	// required: true
	ToID string `json:"toId"`

	// Amount in coins
	// required: true
	Amount json.Number `json:"amount"`

	// Lifetime as <n>[dhms], 1d when empty
	// default: 1d
	Time string `json:"time"`
}

// BillCreateResponse carries a new bill
// swagger:model BillCreateResponse
type BillCreateResponse struct {
	Success bool     `json:"success"`
	Bill    BillView `json:"bill"`
}

// BillPayRequest represents the JSON body for a bill payment
// swagger:model BillPayRequest
type BillPayRequest struct {
	// required: true
	BillID string `json:"billId"`
}

// NewBillListHandler returns an HTTP handler listing bills the caller has to
// pay or will receive.
// @Summary List bills
// @Tags bill
// @Accept json
// @Produce json
// @Param billListRequest body handlers.BillListRequest false "List Request"
// @Success 200 {object} handlers.BillListResponse
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Router /bill/list [post]
// @Security BearerAuth
func NewBillListHandler(svc BillManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req BillListRequest
		if err := decodeBody(r, &req); err != nil {
			writeBadRequest(w)
			return
		}
		if req.Page < 1 {
			req.Page = 1
		}

		resp := BillListResponse{Page: req.Page, ToPay: []BillView{}, ToReceive: []BillView{}}
		for _, side := range []struct {
			role models.BillRole
			out  *[]BillView
		}{
			{models.BillRolePayer, &resp.ToPay},
			{models.BillRolePayee, &resp.ToReceive},
		} {
			list, err := svc.ListBills(r.Context(), userID, side.role, req.Page, billPageSize)
			if err != nil {
				writeError(w, r, err)
				return
			}
			for _, b := range list {
				*side.out = append(*side.out, newBillView(b))
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewBillCreateHandler returns an HTTP handler that opens a bill.
// @Summary Create bill
// @Tags bill
// @Accept json
// @Produce json
// @Param billCreateRequest body handlers.BillCreateRequest true "Create Request"
// @Success 200 {object} handlers.BillCreateResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid parameters"
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Router /bill/create [post]
// @Security BearerAuth
func NewBillCreateHandler(svc BillManager, now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}

		var req BillCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}

		amount, err := units.ParseAmount(req.Amount.String())
		if err != nil {
			writeError(w, r, models.ErrInvalidAmount)
			return
		}
		expiry, err := services.BillExpiry(now(), req.Time)
		if err != nil {
			writeError(w, r, err)
			return
		}

		bill, err := svc.CreateBill(r.Context(), req.FromID, req.ToID, amount, expiry)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, BillCreateResponse{Success: true, Bill: newBillView(*bill)})
	}
}

// NewBillPayHandler returns an HTTP handler that settles a bill from the caller.
// @Summary Pay bill
// @Tags bill
// @Accept json
// @Produce json
// @Param billPayRequest body handlers.BillPayRequest true "Pay Request"
// @Success 200 {object} handlers.SuccessResponse
// @Failure 400 {object} handlers.ErrorResponse "Insufficient funds"
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Failure 404 {object} handlers.ErrorResponse "Unknown bill"
// @Router /bill/pay [post]
// @Security BearerAuth
func NewBillPayHandler(svc BillManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req BillPayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BillID == "" {
			writeBadRequest(w)
			return
		}

		receipt, _, err := svc.PayBill(r.Context(), userID, req.BillID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true, TxID: receipt.TxID})
	}
}
