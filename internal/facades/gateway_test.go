package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-tech/wallet-service/internal/models"
)

func TestGatewayClientWithdraw(t *testing.T) {
	txID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/withdrawals", r.URL.Path)

		var req models.GatewayWithdrawRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "solana-devnet", req.NetworkCode)
		assert.Equal(t, "hot-wallet-addr", req.FromAddress)

		resp := models.GatewayWithdrawResponse{
			ID:            txID,
			NetworkCode:   req.NetworkCode,
			TxHash:        "sigA",
			FromAddress:   req.FromAddress,
			ToAddress:     req.ToAddress,
			Amount:        req.Amount,
			Fee:           decimal.RequireFromString("0.000005"),
			Status:        "pending",
			Direction:     "outbound",
			CorrelationID: &req.CorrelationID,
			FirstSeenAt:   time.Now().UTC(),
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewGatewayClient(srv.URL, time.Second)
	resp, err := client.Withdraw(context.Background(), models.GatewayWithdrawRequest{
		NetworkCode:   "solana-devnet",
		FromAddress:   "hot-wallet-addr",
		ToAddress:     "dest-addr",
		Amount:        decimal.NewFromInt(10),
		CorrelationID: "wallet-withdraw-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "sigA", resp.TxHash)
	assert.Equal(t, txID, resp.ID)
	assert.True(t, resp.Fee.Equal(decimal.RequireFromString("0.000005")))
}

func TestGatewayClientWithdrawRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient hot wallet funds", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewGatewayClient(srv.URL, time.Second)
	resp, err := client.Withdraw(context.Background(), models.GatewayWithdrawRequest{NetworkCode: "solana-devnet"})

	assert.Nil(t, resp)
	var gwErr *GatewayError
	assert.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusUnprocessableEntity, gwErr.StatusCode)
}

func TestGatewayClientWithdrawMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	client := NewGatewayClient(srv.URL, time.Second)
	resp, err := client.Withdraw(context.Background(), models.GatewayWithdrawRequest{})

	assert.Nil(t, resp)
	var gwErr *GatewayError
	assert.ErrorAs(t, err, &gwErr)
}

func TestGatewayClientWithdrawTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewGatewayClient(srv.URL, time.Second)
	resp, err := client.Withdraw(context.Background(), models.GatewayWithdrawRequest{})

	assert.Nil(t, resp)
	var gwErr *GatewayError
	assert.ErrorAs(t, err, &gwErr)
	assert.Equal(t, 0, gwErr.StatusCode)
}
