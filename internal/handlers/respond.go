package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/middlewares"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: operation failed
	Error string `json:"error"`
}

// SuccessResponse represents a successful balance-affecting call
// swagger:model SuccessResponse
type SuccessResponse struct {
	// Always true
	Success bool `json:"success"`

	// Id of the transaction written by the call
	TxID string `json:"txId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeBadRequest(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

// writeError maps a protocol error to a status and a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrInsufficientFunds):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "insufficient funds"})
	case errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid parameters"})
	case errors.Is(err, models.ErrCooldownActive):
		writeJSON(w, http.StatusTooManyRequests, ErrorResponse{Error: "cooldown active"})
	case errors.Is(err, models.ErrSelfRestoreNotAllowed),
		errors.Is(err, models.ErrEmptyWallet):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "backup not restorable"})
	case errors.Is(err, models.ErrUsernameTaken):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "username already taken"})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, models.ErrUnauthorized):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "operation failed"})
	default:
		logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// currentUser returns the session owner set by the auth middleware. Without
// one the request is answered with 403.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "operation failed"})
	}
	return userID, ok
}

// decodeBody decodes an optional JSON body into v. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
