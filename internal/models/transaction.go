package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction directions
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
	DirectionInternal = "internal"
)

// Transaction types
const (
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"
)

// Transaction statuses. Pending transitions to exactly one terminal status
// (confirmed, failed or cancelled); terminal statuses never change again.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// WalletTransactionDB represents one balance-affecting event.
// Symbol and Network are projected from the owning asset row on reads.
type WalletTransactionDB struct {
	TransactionID         uuid.UUID       `json:"transaction_id" db:"transaction_id"`
	WalletID              uuid.UUID       `json:"wallet_id" db:"wallet_id"`
	AssetID               uuid.UUID       `json:"asset_id" db:"asset_id"`
	Direction             string          `json:"direction" db:"direction"`
	Type                  string          `json:"type" db:"type"`
	Status                string          `json:"status" db:"status"`
	Amount                decimal.Decimal `json:"amount" db:"amount"`
	FeeAmount             decimal.Decimal `json:"fee_amount" db:"fee_amount"`
	FeeAssetSymbol        *string         `json:"fee_asset_symbol" db:"fee_asset_symbol"`
	ExternalTransactionID *string         `json:"external_transaction_id" db:"external_transaction_id"` // chain tx hash, set once broadcast
	RequestedAt           time.Time       `json:"requested_at" db:"requested_at"`
	CompletedAt           *time.Time      `json:"completed_at" db:"completed_at"`
	Note                  *string         `json:"note" db:"note"`
	Symbol                string          `json:"symbol" db:"symbol"`
	Network               string          `json:"network" db:"network"`
}

// TransactionStatusUpdate is one reconciler decision for a pending
// transaction. Applied only while the row is still pending.
type TransactionStatusUpdate struct {
	TransactionID  uuid.UUID
	Status         string
	CompletedAt    time.Time
	FeeAmount      *decimal.Decimal
	FeeAssetSymbol *string
	Note           *string
}

// TransactionsResponse represents a page of wallet transactions
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	Transactions []WalletTransactionDB `json:"transactions"`
}

// TransactionsErrorResponse represents an error response for the transactions listing
// swagger:model TransactionsErrorResponse
type TransactionsErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}
