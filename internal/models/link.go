package models

// LinkExternalWalletRequest represents the JSON body for linking an external wallet
// swagger:model LinkExternalWalletRequest
type LinkExternalWalletRequest struct {
	// Network code
	// required: true
	// example: solana-devnet
	Network string `json:"network"`

	// Base58-encoded ed25519 public key
	// required: true
	PublicKey string `json:"public_key"`

	// Base64-encoded detached signature over the message
	// required: true
	Signature string `json:"signature"`

	// The exact message that was signed on the client
	// required: true
	Message string `json:"message"`

	// Optional display label
	// example: Phantom wallet
	Label string `json:"label,omitempty"`
}

// LinkExternalWalletResponse represents a successful link response
// swagger:model LinkExternalWalletResponse
type LinkExternalWalletResponse struct {
	// Success message
	// example: External wallet linked
	Message string `json:"message"`

	// Refreshed wallet projection
	Wallet *WalletResponse `json:"wallet"`
}

// ExternalWalletsResponse represents the list of linked external wallets
// swagger:model ExternalWalletsResponse
type ExternalWalletsResponse struct {
	ExternalWallets []ExternalWalletResponse `json:"external_wallets"`
}

// ExternalWalletErrorResponse represents an error response for external wallet operations
// swagger:model ExternalWalletErrorResponse
type ExternalWalletErrorResponse struct {
	// Error message
	// example: Invalid signature or public key
	Error string `json:"error"`
}
