package models

import "github.com/shopspring/decimal"

// WithdrawRequest represents the JSON body for withdrawing funds
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Asset symbol
	// required: true
	// example: SOL
	Symbol string `json:"symbol"`

	// Network code
	// required: true
	// example: solana-devnet
	Network string `json:"network"`

	// Amount to withdraw
	// required: true
	// example: 50.0
	Amount decimal.Decimal `json:"amount"`

	// Optional destination address. Must be one of the caller's linked
	// external wallets; when empty, the primary linked wallet for the
	// network is used.
	ToAddress string `json:"to_address,omitempty"`

	// Optional free-text note
	Note string `json:"note,omitempty"`
}

// WithdrawResponse represents a successful withdrawal response
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Success message
	// example: Withdrawal submitted
	Message string `json:"message"`

	// Refreshed wallet projection
	Wallet *WalletResponse `json:"wallet"`

	// Chain transaction id for on-chain withdrawals, empty otherwise
	ExternalTransactionID string `json:"external_transaction_id,omitempty"`
}

// WithdrawErrorResponse represents an error response for withdrawal
// swagger:model WithdrawErrorResponse
type WithdrawErrorResponse struct {
	// Error message
	// example: Insufficient available balance
	Error string `json:"error"`
}
