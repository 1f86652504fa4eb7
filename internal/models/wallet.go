package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet lifecycle statuses
const (
	WalletStatusActive    = "active"
	WalletStatusSuspended = "suspended"
)

// DefaultWalletName is assigned to a wallet created lazily on first access.
const DefaultWalletName = "Main Wallet"

// WalletDB represents a wallet row in the database
type WalletDB struct {
	WalletID   uuid.UUID  `json:"wallet_id" db:"wallet_id"`     // Unique wallet identifier
	UserID     uuid.UUID  `json:"user_id" db:"user_id"`         // Identifier of the wallet's owner
	WalletName string     `json:"wallet_name" db:"wallet_name"` // Display name
	IsDefault  bool       `json:"is_default" db:"is_default"`   // Exactly one default wallet per user
	Status     string     `json:"status" db:"status"`           // Lifecycle status (active/suspended)
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`   // Timestamp when the wallet was created
	UpdatedAt  *time.Time `json:"updated_at" db:"updated_at"`   // Timestamp of the last wallet update
}

// WalletResponse is the wallet projection returned to API callers.
// swagger:model WalletResponse
type WalletResponse struct {
	WalletID        uuid.UUID                `json:"wallet_id"`
	UserID          uuid.UUID                `json:"user_id"`
	WalletName      string                   `json:"wallet_name"`
	IsDefault       bool                     `json:"is_default"`
	Assets          []WalletAssetResponse    `json:"assets"`
	ExternalWallets []ExternalWalletResponse `json:"external_wallets"`
}

// WalletErrorResponse represents an error response for wallet operations
// swagger:model WalletErrorResponse
type WalletErrorResponse struct {
	// Error message
	// example: Asset not found for this wallet
	Error string `json:"error"`
}
