package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		mockSetup      func(tok *MockTokener, auth *MockAuthenticator)
		expectedStatus int
		expectedUserID string
	}{
		{
			name: "NoToken",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "UnknownSession",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return("", models.ErrUnauthorized)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "LiveSession",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "validtoken").
					Return("42", nil)
			},
			expectedStatus: http.StatusOK,
			expectedUserID: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewMockTokener(ctrl)
			auth := NewMockAuthenticator(ctrl)
			tt.mockSetup(tok, auth)

			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/claim", nil)
			rr := httptest.NewRecorder()
			AuthMiddleware(tok, auth)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedUserID, gotUserID)

			if tt.expectedStatus == http.StatusForbidden {
				var body ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, "operation failed", body.Error)
			}
		})
	}
}

func TestUserIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)

	_, ok = UserIDFromContext(WithUserID(req.Context(), ""))
	assert.False(t, ok)
}
