package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GatewayWithdrawRequest is the payload sent to the withdrawal submission
// service. CorrelationID ties the submission back to this ledger.
type GatewayWithdrawRequest struct {
	NetworkCode   string          `json:"networkCode"`
	FromAddress   string          `json:"fromAddress"`
	ToAddress     string          `json:"toAddress"`
	Amount        decimal.Decimal `json:"amount"`
	CorrelationID string          `json:"correlationId"`
}

// GatewayWithdrawResponse is the submission service's success payload.
type GatewayWithdrawResponse struct {
	ID            uuid.UUID       `json:"id"`
	NetworkCode   string          `json:"networkCode"`
	TxHash        string          `json:"txHash"`
	FromAddress   string          `json:"fromAddress"`
	ToAddress     string          `json:"toAddress"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	Status        string          `json:"status"`
	Direction     string          `json:"direction"`
	CorrelationID *string         `json:"correlationId"`
	FirstSeenAt   time.Time       `json:"firstSeenAt"`
	ConfirmedAt   *time.Time      `json:"confirmedAt"`
}
