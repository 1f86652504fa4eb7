package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
)

// GatewayError is a structured failure from the withdrawal submission
// service. StatusCode is 0 for transport-level failures.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("blockchain gateway: %s", e.Message)
	}
	return fmt.Sprintf("blockchain gateway returned %d: %s", e.StatusCode, e.Message)
}

// GatewayClient submits signed-withdrawal requests to the external
// blockchain gateway. It performs no retries: withdrawal submission must not
// be silently duplicated.
type GatewayClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGatewayClient creates a new GatewayClient for the given base URL.
func NewGatewayClient(baseURL string, timeout time.Duration) *GatewayClient {
	return &GatewayClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Withdraw sends one withdrawal instruction and returns the gateway's
// success payload (chain tx id and fee). Any non-2xx response, transport
// error or malformed body is returned as a *GatewayError.
func (c *GatewayClient) Withdraw(ctx context.Context, req models.GatewayWithdrawRequest) (*models.GatewayWithdrawResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &GatewayError{Message: err.Error()}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/withdrawals", bytes.NewReader(body))
	if err != nil {
		return nil, &GatewayError{Message: err.Error()}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Log.Errorw("gateway withdraw request failed",
			"correlation_id", req.CorrelationID, "error", err)
		return nil, &GatewayError{Message: "request failed"}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Log.Warnw("gateway rejected withdrawal",
			"correlation_id", req.CorrelationID, "status", resp.StatusCode, "body", string(respBody))
		return nil, &GatewayError{StatusCode: resp.StatusCode, Message: "withdrawal rejected"}
	}

	var out models.GatewayWithdrawResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logger.Log.Errorw("gateway returned malformed response",
			"correlation_id", req.CorrelationID, "error", err)
		return nil, &GatewayError{StatusCode: resp.StatusCode, Message: "malformed response"}
	}

	logger.Log.Infow("gateway accepted withdrawal",
		"correlation_id", req.CorrelationID, "tx_hash", out.TxHash, "fee", out.Fee)

	return &out, nil
}
