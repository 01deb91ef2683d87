package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/middlewares"
)

func TestSaldoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockBalanceReader(ctrl)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middlewares.WithUserID(req.Context(), "42")))
		})
	})
	r.Get("/api/user/{userId}/saldo", NewSaldoHandler(svc))

	svc.EXPECT().Balance(gomock.Any(), "77").Return(int64(250_000_000), nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/user/77/saldo", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, SaldoResponse{UserID: "77", Saldo: "2.50000000"}, decodeResponse[SaldoResponse](t, rr))

	svc.EXPECT().Balance(gomock.Any(), "88").Return(int64(0), errors.New("db down"))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/user/88/saldo", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
