package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
)

// ExternalWalletWriteRepository handles linked external wallet writes
type ExternalWalletWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewExternalWalletWriteRepository(db *sqlx.DB, txGetter TxGetter) *ExternalWalletWriteRepository {
	return &ExternalWalletWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a newly linked external wallet.
func (r *ExternalWalletWriteRepository) Save(ctx context.Context, w models.ExternalWalletDB) error {
	query := `
		INSERT INTO external_wallets
			(external_wallet_id, wallet_id, network, public_key, label, is_primary, linked_at, last_verified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	args := []any{w.ExternalWalletID, w.WalletID, w.Network, w.PublicKey, w.Label, w.IsPrimary, w.LinkedAt, w.LastVerifiedAt}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// UpdateLastVerified refreshes the verification timestamp of an existing link.
func (r *ExternalWalletWriteRepository) UpdateLastVerified(ctx context.Context, externalWalletID uuid.UUID, verifiedAt time.Time) error {
	query := `
		UPDATE external_wallets
		SET last_verified_at = $2
		WHERE external_wallet_id = $1
	`

	args := []any{externalWalletID, verifiedAt}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// SetPrimary flips the primary flag for a (wallet, network) in one statement
// so that exactly one primary row holds afterwards.
func (r *ExternalWalletWriteRepository) SetPrimary(ctx context.Context, walletID uuid.UUID, network string, externalWalletID uuid.UUID) error {
	query := `
		UPDATE external_wallets
		SET is_primary = (external_wallet_id = $3)
		WHERE wallet_id = $1 AND network = $2
	`

	args := []any{walletID, network, externalWalletID}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// ExternalWalletReadRepository handles linked external wallet reads
type ExternalWalletReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewExternalWalletReadRepository(db *sqlx.DB, txGetter TxGetter) *ExternalWalletReadRepository {
	return &ExternalWalletReadRepository{db: db, txGetter: txGetter}
}

const externalWalletColumns = `
	external_wallet_id, wallet_id, network, public_key, label, is_primary, linked_at, last_verified_at
`

// GetByID returns one linked wallet, or nil if it does not exist.
func (r *ExternalWalletReadRepository) GetByID(ctx context.Context, externalWalletID uuid.UUID) (*models.ExternalWalletDB, error) {
	query := `SELECT ` + externalWalletColumns + ` FROM external_wallets WHERE external_wallet_id = $1`

	var w models.ExternalWalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &w, query, externalWalletID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{externalWalletID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

// GetByKey returns the link for (wallet, network, public key), or nil.
func (r *ExternalWalletReadRepository) GetByKey(ctx context.Context, walletID uuid.UUID, network, publicKey string) (*models.ExternalWalletDB, error) {
	query := `SELECT ` + externalWalletColumns + ` FROM external_wallets WHERE wallet_id = $1 AND network = $2 AND public_key = $3`

	var w models.ExternalWalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &w, query, walletID, network, publicKey)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, network, publicKey},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

// GetPrimary resolves the withdrawal destination for a network: the primary
// flag wins, earliest linked breaks ties. Returns nil when nothing is linked.
func (r *ExternalWalletReadRepository) GetPrimary(ctx context.Context, walletID uuid.UUID, network string) (*models.ExternalWalletDB, error) {
	query := `
		SELECT ` + externalWalletColumns + `
		FROM external_wallets
		WHERE wallet_id = $1 AND network = $2
		ORDER BY is_primary DESC, linked_at ASC
		LIMIT 1
	`

	var w models.ExternalWalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &w, query, walletID, network)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, network},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

// ListByWalletID returns all linked wallets ordered by network, primary
// first, then earliest linked.
func (r *ExternalWalletReadRepository) ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]models.ExternalWalletDB, error) {
	query := `
		SELECT ` + externalWalletColumns + `
		FROM external_wallets
		WHERE wallet_id = $1
		ORDER BY network, is_primary DESC, linked_at ASC
	`

	var wallets []models.ExternalWalletDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &wallets, query, walletID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"error", err,
	)

	return wallets, err
}
