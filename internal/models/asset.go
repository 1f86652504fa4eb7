package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletAssetDB represents one (wallet, symbol, network) balance row.
// Balances are arbitrary-precision decimals; available_balance never goes
// below zero.
type WalletAssetDB struct {
	AssetID          uuid.UUID       `json:"asset_id" db:"asset_id"`
	WalletID         uuid.UUID       `json:"wallet_id" db:"wallet_id"`
	Symbol           string          `json:"symbol" db:"symbol"`   // e.g. "SOL"
	Network          string          `json:"network" db:"network"` // e.g. "solana-devnet"
	AvailableBalance decimal.Decimal `json:"available_balance" db:"available_balance"`
	PendingBalance   decimal.Decimal `json:"pending_balance" db:"pending_balance"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        *time.Time      `json:"updated_at" db:"updated_at"`
}

// WalletAssetResponse is the asset projection returned to API callers.
// swagger:model WalletAssetResponse
type WalletAssetResponse struct {
	AssetID          uuid.UUID       `json:"asset_id"`
	Symbol           string          `json:"symbol"`
	Network          string          `json:"network"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	PendingBalance   decimal.Decimal `json:"pending_balance"`
}
