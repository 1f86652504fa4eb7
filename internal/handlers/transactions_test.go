package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-tech/wallet-service/internal/jwt"
	"github.com/custodia-tech/wallet-service/internal/models"
)

func TestGetTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockTokener(ctrl)
	mockLister := NewMockTransactionLister(ctrl)

	userID := uuid.New()
	token := "valid-token"

	authorized := func() {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: userID}, nil)
	}

	t.Run("defaults applied and filters forwarded", func(t *testing.T) {
		authorized()

		symbol := "SOL"
		mockLister.EXPECT().
			GetTransactions(gomock.Any(), userID, 1, 20, &symbol, nil).
			Return([]models.WalletTransactionDB{
				{
					TransactionID: uuid.New(),
					Direction:     models.DirectionOutbound,
					Type:          models.TypeWithdrawal,
					Status:        models.StatusPending,
					Amount:        decimal.NewFromInt(2),
					Symbol:        "SOL",
					Network:       "solana",
				},
			}, nil)

		handler := NewGetTransactionsHandler(mockLister, mockTokenGetter)

		req := httptest.NewRequest(http.MethodGet, "/wallet/transactions?symbol=SOL", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.TransactionsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 20, resp.PageSize)
		assert.Len(t, resp.Transactions, 1)
	})

	t.Run("page size capped", func(t *testing.T) {
		authorized()

		mockLister.EXPECT().
			GetTransactions(gomock.Any(), userID, 3, 100, nil, nil).
			Return(nil, nil)

		handler := NewGetTransactionsHandler(mockLister, mockTokenGetter)

		req := httptest.NewRequest(http.MethodGet, "/wallet/transactions?page=3&page_size=5000", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.TransactionsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Page)
		assert.Equal(t, 100, resp.PageSize)
		assert.NotNil(t, resp.Transactions)
	})

	t.Run("unauthorized", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("", assert.AnError)

		handler := NewGetTransactionsHandler(mockLister, mockTokenGetter)

		req := httptest.NewRequest(http.MethodGet, "/wallet/transactions", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
