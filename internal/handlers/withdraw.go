package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
)

// Withdrawer defines the interface that the service must implement.
type Withdrawer interface {
	Withdraw(ctx context.Context, userID uuid.UUID, symbol, network string, amount decimal.Decimal, toAddress, note string) (*models.WalletResponse, string, error)
}

// NewWithdrawHandler handles withdrawing funds from the user's wallet
// @Summary Withdraw funds
// @Description Debits an asset balance. On-chain networks route through the blockchain gateway and return a pending transaction with its chain transaction id
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} models.WithdrawResponse
// @Failure 400 {object} models.WithdrawErrorResponse "Invalid amount, insufficient balance or no linked wallet"
// @Failure 401 {object} models.WithdrawErrorResponse "Unauthorized"
// @Failure 404 {object} models.WithdrawErrorResponse "Asset not found"
// @Failure 502 {object} models.WithdrawErrorResponse "Gateway submission failed"
// @Router /wallet/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(
	withdrawer Withdrawer,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(w, r, tokenGetter)
		if !ok {
			return
		}

		var req models.WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Symbol == "" || req.Network == "" {
			writeError(w, http.StatusBadRequest, "Symbol and network are required")
			return
		}

		wallet, txHash, err := withdrawer.Withdraw(ctx, claims.UserID, req.Symbol, req.Network, req.Amount, req.ToAddress, req.Note)
		if err != nil {
			logger.Log.Errorw("withdrawal failed",
				"userID", claims.UserID, "symbol", req.Symbol, "network", req.Network, "error", err)
			status, message := serviceErrorStatus(err)
			writeError(w, status, message)
			return
		}

		message := "Withdrawal confirmed"
		if txHash != "" {
			message = "Withdrawal submitted"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.WithdrawResponse{
			Message:               message,
			Wallet:                wallet,
			ExternalTransactionID: txHash,
		})
	}
}

// RegisterWithdrawHandler registers the withdrawal route
func RegisterWithdrawHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/withdraw", h)
}
