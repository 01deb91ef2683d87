package handlers

import (
	"context"
	"net/http"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

// Pinger checks that the store answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports liveness
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status"`
}

// NewHealthHandler returns an HTTP handler reporting whether the store is reachable.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
