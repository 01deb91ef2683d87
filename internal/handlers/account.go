package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

//go:generate mockgen -source=account.go -destination=account_mock.go -package=handlers

// AccountUpdater sets API credentials.
type AccountUpdater interface {
	UpdateAccount(ctx context.Context, userID, username, passwordHash string) error
}

// AccountUpdateRequest represents the JSON body for a credentials update
// swagger:model AccountUpdateRequest
type AccountUpdateRequest struct {
	// New username, 3 to 32 characters
	// required: true
	Username string `json:"username"`

	// Password hash computed by the client
	// required: true
	PasswordHash string `json:"passwordHash"`
}

// NewAccountUpdateHandler returns an HTTP handler that sets the caller's
// username and password.
// @Summary Update credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param accountUpdateRequest body handlers.AccountUpdateRequest true "Update Request"
// @Success 200 {object} handlers.SuccessResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid parameters"
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Failure 409 {object} handlers.ErrorResponse "Username already taken"
// @Router /account/update [post]
// @Security BearerAuth
func NewAccountUpdateHandler(svc AccountUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req AccountUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}

		if err := svc.UpdateAccount(r.Context(), userID, req.Username, req.PasswordHash); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}
