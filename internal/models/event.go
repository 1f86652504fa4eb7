package models

// TransactionEvent is published to Kafka for every balance-affecting event
// and every terminal status transition.
type TransactionEvent struct {
	TransactionID string `json:"transaction_id"` // Wallet transaction identifier
	UserID        string `json:"user_id,omitempty"`
	WalletID      string `json:"wallet_id"`
	Symbol        string `json:"symbol"`
	Network       string `json:"network"`
	Amount        string `json:"amount"`    // Decimal string, never binary floating point
	Operation     string `json:"operation"` // e.g. "deposit", "withdraw", "confirm", "fail"
	Status        string `json:"status"`
	Timestamp     int64  `json:"timestamp"` // Unix seconds
}
