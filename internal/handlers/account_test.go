package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

func TestAccountUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountUpdater(ctrl)

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"updated", nil, http.StatusOK},
		{"short username", fmt.Errorf("%w: username", models.ErrInvalidArgument), http.StatusBadRequest},
		{"taken", models.ErrUsernameTaken, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc.EXPECT().UpdateAccount(gomock.Any(), "42", "alice", "hash").Return(tt.err)

			body := AccountUpdateRequest{Username: "alice", PasswordHash: "hash"}
			rr := httptest.NewRecorder()
			NewAccountUpdateHandler(mockSvc).ServeHTTP(rr, newRequest(t, http.MethodPost, "/api/account/update", body, "42"))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
