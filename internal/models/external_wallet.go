package models

import (
	"time"

	"github.com/google/uuid"
)

// ExternalWalletDB represents one linked external address, verified by
// signature. Exactly one is_primary row is allowed per (wallet, network).
type ExternalWalletDB struct {
	ExternalWalletID uuid.UUID  `json:"external_wallet_id" db:"external_wallet_id"`
	WalletID         uuid.UUID  `json:"wallet_id" db:"wallet_id"`
	Network          string     `json:"network" db:"network"`       // e.g. "solana-devnet"
	PublicKey        string     `json:"public_key" db:"public_key"` // base58-encoded ed25519 public key
	Label            *string    `json:"label" db:"label"`
	IsPrimary        bool       `json:"is_primary" db:"is_primary"`
	LinkedAt         time.Time  `json:"linked_at" db:"linked_at"`
	LastVerifiedAt   *time.Time `json:"last_verified_at" db:"last_verified_at"`
}

// ExternalWalletResponse is the linked-wallet projection returned to API callers.
// swagger:model ExternalWalletResponse
type ExternalWalletResponse struct {
	ExternalWalletID uuid.UUID  `json:"external_wallet_id"`
	Network          string     `json:"network"`
	PublicKey        string     `json:"public_key"`
	Label            *string    `json:"label"`
	IsPrimary        bool       `json:"is_primary"`
	LinkedAt         time.Time  `json:"linked_at"`
	LastVerifiedAt   *time.Time `json:"last_verified_at"`
}
