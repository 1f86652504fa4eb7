package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
)

// TransactionWriteRepository handles wallet transaction writes
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter TxGetter) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save appends one wallet transaction row.
func (r *TransactionWriteRepository) Save(ctx context.Context, tx models.WalletTransactionDB) error {
	query := `
		INSERT INTO wallet_transactions
			(transaction_id, wallet_id, asset_id, direction, type, status, amount,
			 fee_amount, fee_asset_symbol, external_transaction_id, requested_at, completed_at, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	args := []any{
		tx.TransactionID, tx.WalletID, tx.AssetID, tx.Direction, tx.Type, tx.Status,
		tx.Amount, tx.FeeAmount, tx.FeeAssetSymbol, tx.ExternalTransactionID,
		tx.RequestedAt, tx.CompletedAt, tx.Note,
	}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// SaveStatusUpdates applies a batch of reconciler decisions in one database
// transaction. Each update is guarded with status = 'pending': re-processing
// an already-terminal transaction is a no-op, never a double-apply.
func (r *TransactionWriteRepository) SaveStatusUpdates(ctx context.Context, updates []models.TransactionStatusUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	query := `
		UPDATE wallet_transactions
		SET status = $2,
		    completed_at = $3,
		    fee_amount = COALESCE($4, fee_amount),
		    fee_asset_symbol = COALESCE($5, fee_asset_symbol),
		    note = COALESCE($6, note)
		WHERE transaction_id = $1 AND status = 'pending'
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin status update transaction", "error", err)
		return err
	}
	defer tx.Rollback()

	for _, u := range updates {
		args := []any{u.TransactionID, u.Status, u.CompletedAt, u.FeeAmount, u.FeeAssetSymbol, u.Note}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			logger.Log.Errorw("status update failed",
				"transaction_id", u.TransactionID, "status", u.Status, "error", err)
			return err
		}
	}

	err = tx.Commit()

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"updates", len(updates),
		"error", err,
	)

	return err
}

// TransactionReadRepository handles wallet transaction reads
type TransactionReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionReadRepository(db *sqlx.DB, txGetter TxGetter) *TransactionReadRepository {
	return &TransactionReadRepository{db: db, txGetter: txGetter}
}

// ListByWalletID returns a page of the wallet's transactions, newest
// requested first, optionally filtered by symbol and network.
func (r *TransactionReadRepository) ListByWalletID(ctx context.Context, walletID uuid.UUID, page, pageSize int, symbol, network *string) ([]models.WalletTransactionDB, error) {
	const query = `
		SELECT t.transaction_id, t.wallet_id, t.asset_id, t.direction, t.type, t.status,
		       t.amount, t.fee_amount, t.fee_asset_symbol, t.external_transaction_id,
		       t.requested_at, t.completed_at, t.note,
		       a.symbol, a.network
		FROM wallet_transactions t
		JOIN wallet_assets a ON a.asset_id = t.asset_id
		WHERE t.wallet_id = $1
		  AND ($2::VARCHAR IS NULL OR a.symbol = $2)
		  AND ($3::VARCHAR IS NULL OR a.network = $3)
		ORDER BY t.requested_at DESC
		LIMIT $4 OFFSET $5
	`

	if page < 1 {
		page = 1
	}
	args := []any{walletID, symbol, network, pageSize, (page - 1) * pageSize}

	var txs []models.WalletTransactionDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &txs, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return txs, err
}

// ListPendingOnChain returns up to limit pending transactions that carry an
// external transaction id, oldest requested first so old submissions are
// never starved.
func (r *TransactionReadRepository) ListPendingOnChain(ctx context.Context, limit int) ([]models.WalletTransactionDB, error) {
	const query = `
		SELECT t.transaction_id, t.wallet_id, t.asset_id, t.direction, t.type, t.status,
		       t.amount, t.fee_amount, t.fee_asset_symbol, t.external_transaction_id,
		       t.requested_at, t.completed_at, t.note,
		       a.symbol, a.network
		FROM wallet_transactions t
		JOIN wallet_assets a ON a.asset_id = t.asset_id
		WHERE t.status = 'pending' AND t.external_transaction_id IS NOT NULL
		ORDER BY t.requested_at ASC
		LIMIT $1
	`

	var txs []models.WalletTransactionDB
	err := sqlx.SelectContext(ctx, r.db, &txs, query, limit)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"error", err,
	)

	return txs, err
}
