package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	GetTransactions(ctx context.Context, userID uuid.UUID, page, pageSize int, symbol, network *string) ([]models.WalletTransactionDB, error)
}

// NewGetTransactionsHandler returns an HTTP handler listing wallet transactions.
// @Summary List transactions
// @Description Returns a page of the wallet's transactions, newest requested first, optionally filtered by symbol and network
// @Tags wallet
// @Produce json
// @Param page query int false "Page number, 1-based" default(1)
// @Param page_size query int false "Page size, capped at 100" default(20)
// @Param symbol query string false "Filter by asset symbol"
// @Param network query string false "Filter by network code"
// @Success 200 {object} models.TransactionsResponse
// @Failure 401 {object} models.TransactionsErrorResponse "Unauthorized"
// @Failure 500 {object} models.TransactionsErrorResponse "Internal server error"
// @Router /wallet/transactions [get]
// @Security BearerAuth
func NewGetTransactionsHandler(
	lister TransactionLister,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(w, r, tokenGetter)
		if !ok {
			return
		}

		query := r.URL.Query()

		page, _ := strconv.Atoi(query.Get("page"))
		if page < 1 {
			page = 1
		}
		pageSize, _ := strconv.Atoi(query.Get("page_size"))
		if pageSize < 1 {
			pageSize = 20
		}
		if pageSize > 100 {
			pageSize = 100
		}

		var symbol, network *string
		if s := query.Get("symbol"); s != "" {
			symbol = &s
		}
		if n := query.Get("network"); n != "" {
			network = &n
		}

		txs, err := lister.GetTransactions(ctx, claims.UserID, page, pageSize, symbol, network)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "userID", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if txs == nil {
			txs = []models.WalletTransactionDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.TransactionsResponse{
			Page:         page,
			PageSize:     pageSize,
			Transactions: txs,
		})
	}
}

// RegisterTransactionsHandler registers the transaction listing route
func RegisterTransactionsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/wallet/transactions", h)
}
