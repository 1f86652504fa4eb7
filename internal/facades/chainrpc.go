package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
	"github.com/custodia-tech/wallet-service/internal/networks"
)

// RPC call limits
const (
	maxSignaturesPerCall = 100
	defaultMaxAttempts   = 3
	defaultRetryDelay    = time.Second
)

// ChainRPCClient reads transaction state from per-network chain RPC nodes.
// Both operations retry up to maxAttempts times with a fixed delay;
// cancellation aborts the retry loop immediately. Exhausted retries surface
// the last error, never an invented result.
type ChainRPCClient struct {
	registry    *networks.Registry
	httpClient  *http.Client
	maxAttempts int
	retryDelay  time.Duration
}

// NewChainRPCClient creates a ChainRPCClient resolving endpoints from the
// network registry.
func NewChainRPCClient(registry *networks.Registry, timeout time.Duration) *ChainRPCClient {
	return &ChainRPCClient{
		registry:    registry,
		httpClient:  &http.Client{Timeout: timeout},
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type signatureStatusValue struct {
	ConfirmationStatus *string         `json:"confirmationStatus"`
	Err                json.RawMessage `json:"err"`
}

type signatureStatusesResult struct {
	Value []*signatureStatusValue `json:"value"`
}

type transactionResult struct {
	Meta *struct {
		Fee uint64 `json:"fee"`
	} `json:"meta"`
}

// GetSignatureStatuses resolves the confirmation status of each signature on
// the given network, chunking requests to respect the per-call ceiling.
func (c *ChainRPCClient) GetSignatureStatuses(ctx context.Context, networkCode string, signatures []string) ([]models.SignatureStatus, error) {
	endpoint, err := c.registry.RPCEndpoint(networkCode)
	if err != nil {
		return nil, err
	}

	results := make([]models.SignatureStatus, 0, len(signatures))

	for start := 0; start < len(signatures); start += maxSignaturesPerCall {
		end := start + maxSignaturesPerCall
		if end > len(signatures) {
			end = len(signatures)
		}
		batch := signatures[start:end]

		var result signatureStatusesResult
		err := c.callWithRetries(ctx, fmt.Sprintf("getSignatureStatuses[%s]", networkCode), func(callCtx context.Context) error {
			return c.call(callCtx, endpoint, rpcRequest{
				JSONRPC: "2.0",
				ID:      1,
				Method:  "getSignatureStatuses",
				Params:  []any{batch, map[string]any{"searchTransactionHistory": true}},
			}, &result)
		})
		if err != nil {
			return nil, err
		}

		for idx, sig := range batch {
			var value *signatureStatusValue
			if idx < len(result.Value) {
				value = result.Value[idx]
			}

			if value == nil {
				results = append(results, models.SignatureStatus{Signature: sig})
				continue
			}

			status := models.SignatureStatus{
				Signature: sig,
				Found:     true,
			}
			if value.ConfirmationStatus != nil {
				status.ConfirmationStatus = *value.ConfirmationStatus
			}
			if len(value.Err) > 0 && string(value.Err) != "null" {
				status.HasError = true
				status.ErrorMessage = string(value.Err)
			}
			results = append(results, status)
		}
	}

	return results, nil
}

// GetTransactionFee returns the realized network fee, in the chain's base
// unit (lamports for Solana), of a confirmed transaction. nil means the node
// returned no fee metadata.
func (c *ChainRPCClient) GetTransactionFee(ctx context.Context, networkCode, signature string) (*uint64, error) {
	endpoint, err := c.registry.RPCEndpoint(networkCode)
	if err != nil {
		return nil, err
	}

	var result transactionResult
	err = c.callWithRetries(ctx, fmt.Sprintf("getTransaction[%s] sig=%s", networkCode, signature), func(callCtx context.Context) error {
		return c.call(callCtx, endpoint, rpcRequest{
			JSONRPC: "2.0",
			ID:      1,
			Method:  "getTransaction",
			Params: []any{signature, map[string]any{
				"commitment":                     "confirmed",
				"encoding":                       "json",
				"maxSupportedTransactionVersion": 0,
			}},
		}, &result)
	})
	if err != nil {
		return nil, err
	}

	if result.Meta == nil {
		return nil, nil
	}
	fee := result.Meta.Fee
	return &fee, nil
}

func (c *ChainRPCClient) call(ctx context.Context, endpoint string, req rpcRequest, result any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rpc node returned %d", resp.StatusCode)
	}

	var envelope struct {
		Error  *rpcError       `json:"error"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	if envelope.Error != nil {
		return fmt.Errorf("rpc error %d: %s", envelope.Error.Code, envelope.Error.Message)
	}

	return json.Unmarshal(envelope.Result, result)
}

func (c *ChainRPCClient) callWithRetries(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		logger.Log.Warnw("chain rpc call failed",
			"operation", operation, "attempt", attempt, "max_attempts", c.maxAttempts, "error", lastErr)

		if attempt == c.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}

	logger.Log.Errorw("chain rpc call permanently failed", "operation", operation, "error", lastErr)
	return lastErr
}
