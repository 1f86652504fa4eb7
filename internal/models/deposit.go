package models

import "github.com/shopspring/decimal"

// DepositRequest represents the JSON body for depositing funds
// swagger:model DepositRequest
type DepositRequest struct {
	// Asset symbol
	// required: true
	// example: SOL
	Symbol string `json:"symbol"`

	// Network code
	// required: true
	// example: solana-devnet
	Network string `json:"network"`

	// Amount to deposit
	// required: true
	// example: 100.5
	Amount decimal.Decimal `json:"amount"`

	// Optional free-text note
	Note string `json:"note,omitempty"`
}

// DepositResponse represents a successful deposit response
// swagger:model DepositResponse
type DepositResponse struct {
	// Success message
	// example: Deposit confirmed
	Message string `json:"message"`

	// Refreshed wallet projection
	Wallet *WalletResponse `json:"wallet"`
}

// DepositErrorResponse represents an error response for deposit
// swagger:model DepositErrorResponse
type DepositErrorResponse struct {
	// Error message
	// example: Amount must be greater than zero
	Error string `json:"error"`
}
