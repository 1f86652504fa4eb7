package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Withdrawal request review statuses
const (
	WithdrawalRequested = "requested"
	WithdrawalCompleted = "completed"
	WithdrawalRejected  = "rejected"
)

// WithdrawalRequestDB is the audit record of a withdrawal intent. It is tied
// to the wallet transaction that carries the authoritative balance state.
type WithdrawalRequestDB struct {
	RequestID     uuid.UUID       `json:"request_id" db:"request_id"`
	WalletID      uuid.UUID       `json:"wallet_id" db:"wallet_id"`
	AssetID       uuid.UUID       `json:"asset_id" db:"asset_id"`
	TransactionID uuid.UUID       `json:"transaction_id" db:"transaction_id"`
	ToAddress     string          `json:"to_address" db:"to_address"`
	Network       string          `json:"network" db:"network"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Status        string          `json:"status" db:"status"`
	RequestedAt   time.Time       `json:"requested_at" db:"requested_at"`
	ReviewedAt    *time.Time      `json:"reviewed_at" db:"reviewed_at"`
	ReviewedBy    *string         `json:"reviewed_by" db:"reviewed_by"`
}
