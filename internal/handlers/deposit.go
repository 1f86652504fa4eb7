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

// Depositor defines the interface that the service must implement.
type Depositor interface {
	Deposit(ctx context.Context, userID uuid.UUID, symbol, network string, amount decimal.Decimal, note string) (*models.WalletResponse, error)
}

// NewDepositHandler handles crediting funds to the user's wallet
// @Summary Deposit funds
// @Description Credits an asset balance and records a confirmed inbound transaction
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.DepositRequest true "Deposit Request"
// @Success 200 {object} models.DepositResponse
// @Failure 400 {object} models.DepositErrorResponse "Invalid amount or body"
// @Failure 401 {object} models.DepositErrorResponse "Unauthorized"
// @Failure 500 {object} models.DepositErrorResponse "Internal server error"
// @Router /wallet/deposit [post]
// @Security BearerAuth
func NewDepositHandler(
	depositor Depositor,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(w, r, tokenGetter)
		if !ok {
			return
		}

		var req models.DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Symbol == "" || req.Network == "" {
			writeError(w, http.StatusBadRequest, "Symbol and network are required")
			return
		}

		wallet, err := depositor.Deposit(ctx, claims.UserID, req.Symbol, req.Network, req.Amount, req.Note)
		if err != nil {
			logger.Log.Errorw("deposit failed",
				"userID", claims.UserID, "symbol", req.Symbol, "network", req.Network, "error", err)
			status, message := serviceErrorStatus(err)
			writeError(w, status, message)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.DepositResponse{
			Message: "Deposit confirmed",
			Wallet:  wallet,
		})
	}
}

// RegisterDepositHandler registers the deposit route
func RegisterDepositHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/deposit", h)
}
