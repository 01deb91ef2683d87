package handlers

import (
	"context"
	"net/http"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

//go:generate mockgen -source=card.go -destination=card_mock.go -package=handlers

// CardIssuer hands out and rotates bearer cards.
type CardIssuer interface {
	GetOrCreate(ctx context.Context, ownerID string) (*models.Card, error)
	Reset(ctx context.Context, ownerID string) (*models.Card, error)
}

// CardResponse carries the caller's card
// swagger:model CardResponse
type CardResponse struct {
	// Secret card code
	Code string `json:"cardCode"`

	// Hex SHA-256 of the code, accepted by the card payment flow
	Hash string `json:"cardHash"`
}

// NewCardHandler returns an HTTP handler that returns the caller's card,
// issuing one on first use.
// @Summary Get card
// @Tags card
// @Produce json
// @Success 200 {object} handlers.CardResponse
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Router /card [post]
// @Security BearerAuth
func NewCardHandler(svc CardIssuer) http.HandlerFunc {
	return cardHandler(svc.GetOrCreate)
}

// NewCardResetHandler returns an HTTP handler that replaces the caller's card.
// @Summary Reset card
// @Tags card
// @Produce json
// @Success 200 {object} handlers.CardResponse
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Router /card/reset [post]
// @Security BearerAuth
func NewCardResetHandler(svc CardIssuer) http.HandlerFunc {
	return cardHandler(svc.Reset)
}

func cardHandler(get func(ctx context.Context, ownerID string) (*models.Card, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		card, err := get(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, CardResponse{Code: card.Code, Hash: card.Hash})
	}
}
