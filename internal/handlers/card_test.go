package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

func TestCardHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCardIssuer(ctrl)

	svc.EXPECT().GetOrCreate(gomock.Any(), "42").Return(&models.Card{Code: "c1", Hash: "h1", OwnerID: "42"}, nil)
	rr := httptest.NewRecorder()
	NewCardHandler(svc).ServeHTTP(rr, newRequest(t, http.MethodPost, "/api/card", nil, "42"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, CardResponse{Code: "c1", Hash: "h1"}, decodeResponse[CardResponse](t, rr))

	svc.EXPECT().Reset(gomock.Any(), "42").Return(&models.Card{Code: "c2", Hash: "h2", OwnerID: "42"}, nil)
	rr = httptest.NewRecorder()
	NewCardResetHandler(svc).ServeHTTP(rr, newRequest(t, http.MethodPost, "/api/card/reset", nil, "42"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, CardResponse{Code: "c2", Hash: "h2"}, decodeResponse[CardResponse](t, rr))

	rr = httptest.NewRecorder()
	NewCardHandler(svc).ServeHTTP(rr, newRequest(t, http.MethodPost, "/api/card", nil, ""))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
