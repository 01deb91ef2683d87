package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/middlewares"
)

// newRequest builds a request with a JSON body (a string body is sent raw)
// and, when userID is set, an authenticated caller.
func newRequest(t *testing.T, method, target string, body any, userID string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	if userID != "" {
		req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
	}
	return req
}

func decodeResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}
