package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
)

// Worker defaults
const (
	defaultPollInterval   = 10 * time.Second
	defaultPendingTimeout = 5 * time.Minute
	defaultBatchSize      = 200
)

// Native fee token decimals per network. Solana reports fees in lamports.
const solanaFeeDecimals = 9

var nativeFeeSymbols = map[string]string{
	"solana": "SOL",
}

// PendingTransactionReader lists pending on-chain transactions, oldest first.
type PendingTransactionReader interface {
	ListPendingOnChain(ctx context.Context, limit int) ([]models.WalletTransactionDB, error)
}

// TransactionStatusWriter applies reconciler decisions.
type TransactionStatusWriter interface {
	SaveStatusUpdates(ctx context.Context, updates []models.TransactionStatusUpdate) error
}

// ChainStatusReader reads signature state from chain RPC nodes.
type ChainStatusReader interface {
	GetSignatureStatuses(ctx context.Context, networkCode string, signatures []string) ([]models.SignatureStatus, error)
	GetTransactionFee(ctx context.Context, networkCode, signature string) (*uint64, error)
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// ConfirmationConfig tunes the reconciliation loop. Zero values fall back to
// the defaults.
type ConfirmationConfig struct {
	PollInterval   time.Duration
	PendingTimeout time.Duration
	BatchSize      int
}

// ConfirmationWorker drives pending on-chain withdrawals to a terminal
// status. Each cycle it reads a batch of pending transactions, asks the
// chain for their signature statuses and applies the outcome:
//
//   - confirmed or finalized on chain: transaction confirmed, realized fee
//     recorded best effort
//   - found with a chain execution error: transaction failed
//   - still unknown or not yet final past the pending timeout: failed
//   - otherwise: left pending for the next cycle
//
// A cycle failure is logged and retried on the next tick; one bad network
// never blocks the others.
type ConfirmationWorker struct {
	pending PendingTransactionReader
	writer  TransactionStatusWriter
	chain   ChainStatusReader
	events  EventWriter
	cfg     ConfirmationConfig

	now func() time.Time
}

// NewConfirmationWorker creates a ConfirmationWorker. events may be nil.
func NewConfirmationWorker(
	pending PendingTransactionReader,
	writer TransactionStatusWriter,
	chain ChainStatusReader,
	events EventWriter,
	cfg ConfirmationConfig,
) *ConfirmationWorker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.PendingTimeout <= 0 {
		cfg.PendingTimeout = defaultPendingTimeout
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	return &ConfirmationWorker{
		pending: pending,
		writer:  writer,
		chain:   chain,
		events:  events,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Run executes reconciliation cycles until the context is cancelled. The
// first cycle runs immediately.
func (w *ConfirmationWorker) Run(ctx context.Context) {
	logger.Log.Infow("confirmation worker started",
		"poll_interval", w.cfg.PollInterval,
		"pending_timeout", w.cfg.PendingTimeout,
		"batch_size", w.cfg.BatchSize,
	)

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if err := w.runCycle(ctx); err != nil {
			logger.Log.Errorw("confirmation cycle failed", "error", err)
		}

		select {
		case <-ctx.Done():
			logger.Log.Infow("confirmation worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func (w *ConfirmationWorker) runCycle(ctx context.Context) error {
	txs, err := w.pending.ListPendingOnChain(ctx, w.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("list pending transactions: %w", err)
	}
	if len(txs) == 0 {
		return nil
	}

	byNetwork := make(map[string][]models.WalletTransactionDB)
	networkOrder := make([]string, 0)
	for _, tx := range txs {
		if _, seen := byNetwork[tx.Network]; !seen {
			networkOrder = append(networkOrder, tx.Network)
		}
		byNetwork[tx.Network] = append(byNetwork[tx.Network], tx)
	}

	updates := make([]models.TransactionStatusUpdate, 0, len(txs))

	for _, network := range networkOrder {
		networkTxs := byNetwork[network]

		signatures := make([]string, 0, len(networkTxs))
		for _, tx := range networkTxs {
			signatures = append(signatures, *tx.ExternalTransactionID)
		}

		statuses, err := w.chain.GetSignatureStatuses(ctx, network, signatures)
		if err != nil {
			logger.Log.Errorw("signature status lookup failed, skipping network this cycle",
				"network", network, "transactions", len(networkTxs), "error", err)
			continue
		}

		bySignature := make(map[string]models.SignatureStatus, len(statuses))
		for _, s := range statuses {
			bySignature[s.Signature] = s
		}

		for _, tx := range networkTxs {
			if update := w.decide(ctx, tx, bySignature[*tx.ExternalTransactionID]); update != nil {
				updates = append(updates, *update)
			}
		}
	}

	if len(updates) == 0 {
		return nil
	}

	if err := w.writer.SaveStatusUpdates(ctx, updates); err != nil {
		return fmt.Errorf("save status updates: %w", err)
	}

	logger.Log.Infow("confirmation cycle applied", "pending", len(txs), "resolved", len(updates))

	w.publishTerminal(ctx, txs, updates)

	return nil
}

// decide maps one observed signature status to a reconciler decision, or nil
// to leave the transaction pending.
func (w *ConfirmationWorker) decide(ctx context.Context, tx models.WalletTransactionDB, status models.SignatureStatus) *models.TransactionStatusUpdate {
	now := w.now().UTC()

	if status.Found && status.HasError {
		note := "chain execution failed: " + status.ErrorMessage
		return &models.TransactionStatusUpdate{
			TransactionID: tx.TransactionID,
			Status:        models.StatusFailed,
			CompletedAt:   now,
			Note:          &note,
		}
	}

	if status.Terminal() {
		update := &models.TransactionStatusUpdate{
			TransactionID: tx.TransactionID,
			Status:        models.StatusConfirmed,
			CompletedAt:   now,
		}
		w.attachFee(ctx, tx, update)
		return update
	}

	if now.Sub(tx.RequestedAt) > w.cfg.PendingTimeout {
		note := fmt.Sprintf("confirmation timed out after %s", w.cfg.PendingTimeout)
		logger.Log.Warnw("pending withdrawal timed out",
			"transaction_id", tx.TransactionID, "network", tx.Network, "requested_at", tx.RequestedAt)
		return &models.TransactionStatusUpdate{
			TransactionID: tx.TransactionID,
			Status:        models.StatusFailed,
			CompletedAt:   now,
			Note:          &note,
		}
	}

	return nil
}

// attachFee records the realized network fee on a confirmed transaction,
// best effort. The confirmation never fails over a missing fee.
func (w *ConfirmationWorker) attachFee(ctx context.Context, tx models.WalletTransactionDB, update *models.TransactionStatusUpdate) {
	symbol, known := nativeFeeSymbols[tx.Network]
	if !known {
		return
	}

	rawFee, err := w.chain.GetTransactionFee(ctx, tx.Network, *tx.ExternalTransactionID)
	if err != nil {
		logger.Log.Warnw("fee lookup failed, confirming without fee",
			"transaction_id", tx.TransactionID, "network", tx.Network, "error", err)
		return
	}
	if rawFee == nil {
		return
	}

	fee := decimal.New(int64(*rawFee), -solanaFeeDecimals)
	update.FeeAmount = &fee
	update.FeeAssetSymbol = &symbol
}

// publishTerminal emits one event per applied terminal transition, best
// effort.
func (w *ConfirmationWorker) publishTerminal(ctx context.Context, txs []models.WalletTransactionDB, updates []models.TransactionStatusUpdate) {
	if w.events == nil {
		return
	}

	txByID := make(map[string]models.WalletTransactionDB, len(txs))
	for _, tx := range txs {
		txByID[tx.TransactionID.String()] = tx
	}

	msgs := make([]kafka.Message, 0, len(updates))
	for _, u := range updates {
		tx := txByID[u.TransactionID.String()]

		operation := "confirm"
		if u.Status == models.StatusFailed {
			operation = "fail"
		}

		event := models.TransactionEvent{
			TransactionID: u.TransactionID.String(),
			WalletID:      tx.WalletID.String(),
			Symbol:        tx.Symbol,
			Network:       tx.Network,
			Amount:        tx.Amount.String(),
			Operation:     operation,
			Status:        u.Status,
			Timestamp:     u.CompletedAt.Unix(),
		}

		data, err := json.Marshal(event)
		if err != nil {
			logger.Log.Errorw("failed to marshal transaction event", "transaction_id", event.TransactionID, "error", err)
			continue
		}
		msgs = append(msgs, kafka.Message{Key: []byte(event.TransactionID), Value: data})
	}

	if len(msgs) == 0 {
		return
	}

	if err := w.events.WriteMessages(ctx, msgs...); err != nil {
		logger.Log.Errorw("failed to publish terminal transition events", "count", len(msgs), "error", err)
	}
}
