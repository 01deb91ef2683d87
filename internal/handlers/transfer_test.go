package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

func TestTransferHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTransferer(ctrl)

	tests := []struct {
		name         string
		userID       string
		inputBody    any
		mockSetup    func()
		expectedCode int
		expectedErr  string
	}{
		{
			name:      "numeric amount",
			userID:    "42",
			inputBody: `{"toId":"77","amount":1.5}`,
			mockSetup: func() {
				mockSvc.EXPECT().TransferEnsuringSender(gomock.Any(), "42", "77", int64(150_000_000), "").
					Return(&models.Receipt{TxID: "tx-1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "string amount",
			userID:    "42",
			inputBody: `{"toId":"77","amount":"0.00000001"}`,
			mockSetup: func() {
				mockSvc.EXPECT().TransferEnsuringSender(gomock.Any(), "42", "77", int64(1), "").
					Return(&models.Receipt{TxID: "tx-2"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "too many decimals",
			userID:       "42",
			inputBody:    `{"toId":"77","amount":"0.000000001"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid parameters",
		},
		{
			name:         "missing payee",
			userID:       "42",
			inputBody:    `{"amount":1}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid parameters",
		},
		{
			name:      "insufficient funds",
			userID:    "42",
			inputBody: `{"toId":"77","amount":10}`,
			mockSetup: func() {
				mockSvc.EXPECT().TransferEnsuringSender(gomock.Any(), "42", "77", int64(1_000_000_000), "").
					Return(nil, models.ErrInsufficientFunds)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "insufficient funds",
		},
		{
			name:         "no session",
			inputBody:    `{"toId":"77","amount":1}`,
			mockSetup:    func() {},
			expectedCode: http.StatusForbidden,
			expectedErr:  "operation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			NewTransferHandler(mockSvc).ServeHTTP(rr, newRequest(t, http.MethodPost, "/api/transfer", tt.inputBody, tt.userID))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeResponse[ErrorResponse](t, rr).Error)
				return
			}
			assert.True(t, decodeResponse[SuccessResponse](t, rr).Success)
		})
	}
}
