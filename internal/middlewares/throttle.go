package middlewares

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
)

//go:generate mockgen -source=throttle.go -destination=throttle_mock.go -package=middlewares

// AttemptCounter counts requests per client address inside a sliding window.
type AttemptCounter interface {
	Hit(ctx context.Context, ip string, now, windowMs int64) (int64, error)
}

// ThrottleMiddleware answers 429 once a client address made more than
// maxAttempts requests inside window. A counter failure lets the request
// through.
func ThrottleMiddleware(counter AttemptCounter, maxAttempts int64, window time.Duration, now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			attempts, err := counter.Hit(r.Context(), ip, now().UnixMilli(), window.Milliseconds())
			if err != nil {
				logger.Log.Errorw("failed to count attempt", "ip", ip, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			if attempts > maxAttempts {
				logger.Log.Warnw("too many attempts", "ip", ip, "attempts", attempts)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "too many attempts"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
