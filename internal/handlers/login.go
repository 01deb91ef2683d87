package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/units"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, passwordHash string) (*models.LoginResult, error)
	Logout(ctx context.Context, token string) error
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password hash computed by the client
	// required: true
	PasswordHash string `json:"passwordHash"`
}

// LoginResponse represents the outcome of a login attempt
// swagger:model LoginResponse
type LoginResponse struct {
	SessionCreated  bool `json:"sessionCreated"`
	PasswordCorrect bool `json:"passwordCorrect"`

	// Set only when a session was created
	UserID              string `json:"userId,omitempty"`
	SessionID           string `json:"sessionId,omitempty"`
	Saldo               string `json:"saldo,omitempty"`
	CooldownRemainingMs *int64 `json:"cooldownRemainingMs,omitempty"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Check credentials and open a session. A wrong pair answers 200 with passwordCorrect false.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 429 {object} handlers.ErrorResponse "Too many attempts"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}

		res, err := svc.Login(r.Context(), req.Username, req.PasswordHash)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := LoginResponse{
			SessionCreated:  res.SessionCreated,
			PasswordCorrect: res.PasswordCorrect,
		}
		if res.SessionCreated {
			cooldown := res.CooldownRemainingMs
			resp.UserID = res.UserID
			resp.SessionID = res.SessionID
			resp.Saldo = units.FromMinorUnits(res.Balance)
			resp.CooldownRemainingMs = &cooldown
			logger.Log.Infow("session opened", "user_id", res.UserID)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// TokenGetter extracts the bearer token of a request.
type TokenGetter interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// NewLogoutHandler returns an HTTP handler that ends the caller's session.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.SuccessResponse
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Loginer, tokens TokenGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokens.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			writeError(w, r, models.ErrUnauthorized)
			return
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}
