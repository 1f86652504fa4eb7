package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-tech/wallet-service/internal/jwt"
	"github.com/custodia-tech/wallet-service/internal/models"
	"github.com/custodia-tech/wallet-service/internal/services"
)

func TestWithdrawHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockTokener(ctrl)
	mockWithdrawer := NewMockWithdrawer(ctrl)

	userID := uuid.New()
	token := "valid-token"
	const txHash = "5sig1111111111111111111111111111111111111111"

	authorized := func() {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: userID}, nil)
	}

	tests := []struct {
		name            string
		body            string
		setupMocks      func()
		expectedStatus  int
		expectedMessage string
		expectedTxHash  string
	}{
		{
			name: "on-chain withdrawal submitted",
			body: `{"symbol":"SOL","network":"solana","amount":"2"}`,
			setupMocks: func() {
				authorized()
				mockWithdrawer.EXPECT().
					Withdraw(gomock.Any(), userID, "SOL", "solana", gomock.Any(), "", "").
					Return(&models.WalletResponse{UserID: userID}, txHash, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Withdrawal submitted",
			expectedTxHash:  txHash,
		},
		{
			name: "off-chain withdrawal confirmed",
			body: `{"symbol":"USD","network":"internal","amount":"10"}`,
			setupMocks: func() {
				authorized()
				mockWithdrawer.EXPECT().
					Withdraw(gomock.Any(), userID, "USD", "internal", gomock.Any(), "", "").
					Return(&models.WalletResponse{UserID: userID}, "", nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Withdrawal confirmed",
		},
		{
			name: "insufficient balance",
			body: `{"symbol":"SOL","network":"solana","amount":"1000"}`,
			setupMocks: func() {
				authorized()
				mockWithdrawer.EXPECT().
					Withdraw(gomock.Any(), userID, "SOL", "solana", gomock.Any(), "", "").
					Return(nil, "", services.ErrInsufficientBalance)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "asset never touched",
			body: `{"symbol":"BTC","network":"bitcoin","amount":"1"}`,
			setupMocks: func() {
				authorized()
				mockWithdrawer.EXPECT().
					Withdraw(gomock.Any(), userID, "BTC", "bitcoin", gomock.Any(), "", "").
					Return(nil, "", services.ErrAssetNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "gateway rejected submission",
			body: `{"symbol":"SOL","network":"solana","amount":"2"}`,
			setupMocks: func() {
				authorized()
				mockWithdrawer.EXPECT().
					Withdraw(gomock.Any(), userID, "SOL", "solana", gomock.Any(), "", "").
					Return(nil, "", services.ErrGatewaySubmission)
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name: "destination not linked",
			body: `{"symbol":"SOL","network":"solana","amount":"2","to_address":"SomeUnlinkedAddress"}`,
			setupMocks: func() {
				authorized()
				mockWithdrawer.EXPECT().
					Withdraw(gomock.Any(), userID, "SOL", "solana", gomock.Any(), "SomeUnlinkedAddress", "").
					Return(nil, "", services.ErrUnlinkedAddress)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no linked wallet for network",
			body: `{"symbol":"SOL","network":"solana","amount":"2"}`,
			setupMocks: func() {
				authorized()
				mockWithdrawer.EXPECT().
					Withdraw(gomock.Any(), userID, "SOL", "solana", gomock.Any(), "", "").
					Return(nil, "", services.ErrNoLinkedWallet)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			handler := NewWithdrawHandler(mockWithdrawer, mockTokenGetter)

			req := httptest.NewRequest(http.MethodPost, "/wallet/withdraw", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp models.WithdrawResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
				assert.Equal(t, tt.expectedTxHash, resp.ExternalTransactionID)
			}
		})
	}
}
