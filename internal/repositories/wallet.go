package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
)

// TxGetter resolves the per-request transaction from the context, if any.
type TxGetter func(ctx context.Context) *sqlx.Tx

func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// WalletWriteRepository handles wallet write operations
type WalletWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWalletWriteRepository(db *sqlx.DB, txGetter TxGetter) *WalletWriteRepository {
	return &WalletWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a wallet row. The partial unique index on
// (user_id) WHERE is_default makes concurrent first-access races safe: the
// losing insert is a no-op and the caller re-reads the winner's wallet.
func (r *WalletWriteRepository) Save(ctx context.Context, wallet models.WalletDB) error {
	query := `
		INSERT INTO wallets (wallet_id, user_id, wallet_name, is_default, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) WHERE is_default DO NOTHING
	`

	args := []any{wallet.WalletID, wallet.UserID, wallet.WalletName, wallet.IsDefault, wallet.Status}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// WalletReadRepository handles wallet read operations
type WalletReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWalletReadRepository(db *sqlx.DB, txGetter TxGetter) *WalletReadRepository {
	return &WalletReadRepository{db: db, txGetter: txGetter}
}

// GetDefaultByUserID returns the user's default wallet, or nil if the user
// has none yet.
func (r *WalletReadRepository) GetDefaultByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, wallet_name, is_default, status, created_at, updated_at
		FROM wallets
		WHERE user_id = $1 AND is_default
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &wallet, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &wallet, nil
}
