package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
)

// WithdrawalRequestWriteRepository appends withdrawal audit rows
type WithdrawalRequestWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWithdrawalRequestWriteRepository(db *sqlx.DB, txGetter TxGetter) *WithdrawalRequestWriteRepository {
	return &WithdrawalRequestWriteRepository{db: db, txGetter: txGetter}
}

// Save appends one withdrawal request audit row.
func (r *WithdrawalRequestWriteRepository) Save(ctx context.Context, req models.WithdrawalRequestDB) error {
	query := `
		INSERT INTO withdrawal_requests
			(request_id, wallet_id, asset_id, transaction_id, to_address, network, amount, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	args := []any{
		req.RequestID, req.WalletID, req.AssetID, req.TransactionID,
		req.ToAddress, req.Network, req.Amount, req.Status, req.RequestedAt,
	}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
