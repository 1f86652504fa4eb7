package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
)

// AssetWriteRepository handles balance mutations for wallet assets
type AssetWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAssetWriteRepository(db *sqlx.DB, txGetter TxGetter) *AssetWriteRepository {
	return &AssetWriteRepository{db: db, txGetter: txGetter}
}

// SaveDeposit performs an UPSERT: creates the asset row if absent, otherwise
// increments available_balance. Returns the asset id and the new balance.
func (r *AssetWriteRepository) SaveDeposit(ctx context.Context, walletID uuid.UUID, symbol, network string, amount decimal.Decimal) (*models.WalletAssetDB, error) {
	query := `
		INSERT INTO wallet_assets (asset_id, wallet_id, symbol, network, available_balance, pending_balance, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, NOW())
		ON CONFLICT (wallet_id, symbol, network)
		DO UPDATE SET available_balance = wallet_assets.available_balance + EXCLUDED.available_balance, updated_at = NOW()
		RETURNING asset_id, wallet_id, symbol, network, available_balance, pending_balance, created_at, updated_at
	`

	args := []any{uuid.New(), walletID, symbol, network, amount}

	var asset models.WalletAssetDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &asset, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// SaveWithdraw debits available_balance conditionally: the update only
// applies while the balance covers the amount, so concurrent withdrawals
// serialize in storage and the balance never goes negative. Returns
// sql.ErrNoRows when the balance is insufficient.
func (r *AssetWriteRepository) SaveWithdraw(ctx context.Context, assetID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE wallet_assets
		SET available_balance = available_balance - $2, updated_at = NOW()
		WHERE asset_id = $1 AND available_balance >= $2
		RETURNING available_balance
	`

	args := []any{assetID, amount}

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", balance,
		"error", err,
	)

	return balance, err
}

// AssetReadRepository handles asset read operations
type AssetReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAssetReadRepository(db *sqlx.DB, txGetter TxGetter) *AssetReadRepository {
	return &AssetReadRepository{db: db, txGetter: txGetter}
}

// GetBySymbolNetwork returns the (wallet, symbol, network) asset row, or nil
// if it was never touched.
func (r *AssetReadRepository) GetBySymbolNetwork(ctx context.Context, walletID uuid.UUID, symbol, network string) (*models.WalletAssetDB, error) {
	const query = `
		SELECT asset_id, wallet_id, symbol, network, available_balance, pending_balance, created_at, updated_at
		FROM wallet_assets
		WHERE wallet_id = $1 AND symbol = $2 AND network = $3
	`

	var asset models.WalletAssetDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &asset, query, walletID, symbol, network)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, symbol, network},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &asset, nil
}

// ListByWalletID returns all asset rows of a wallet.
func (r *AssetReadRepository) ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]models.WalletAssetDB, error) {
	const query = `
		SELECT asset_id, wallet_id, symbol, network, available_balance, pending_balance, created_at, updated_at
		FROM wallet_assets
		WHERE wallet_id = $1
		ORDER BY symbol, network
	`

	var assets []models.WalletAssetDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &assets, query, walletID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"error", err,
	)

	return assets, err
}
