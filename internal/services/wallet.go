package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
)

var (
	// ErrInvalidAmount is returned when a deposit or withdrawal amount is not positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrAssetNotFound is returned when the (symbol, network) asset was never touched for this wallet.
	ErrAssetNotFound = errors.New("asset not found for this wallet")
	// ErrInsufficientBalance is returned when available balance does not cover a withdrawal.
	ErrInsufficientBalance = errors.New("insufficient available balance")
	// ErrNoLinkedWallet is returned when an on-chain withdrawal has no destination address.
	ErrNoLinkedWallet = errors.New("no linked external wallet for this network")
	// ErrUnlinkedAddress is returned when a withdrawal destination is not one of the caller's linked wallets.
	ErrUnlinkedAddress = errors.New("destination address is not a linked external wallet")
	// ErrHotWalletNotConfigured is returned when the sending address is unset.
	ErrHotWalletNotConfigured = errors.New("hot wallet address is not configured")
	// ErrGatewaySubmission is returned when the blockchain gateway fails to accept a withdrawal.
	ErrGatewaySubmission = errors.New("failed to submit on-chain withdrawal")
	// ErrInvalidSignature is returned when an external wallet ownership proof does not verify.
	ErrInvalidSignature = errors.New("invalid signature or public key")
	// ErrExternalWalletNotFound is returned when the referenced external wallet does not exist.
	ErrExternalWalletNotFound = errors.New("external wallet not found")
	// ErrAccessDenied is returned when the external wallet belongs to another user.
	ErrAccessDenied = errors.New("no access to this external wallet")
)

// WalletReader defines wallet read operations.
type WalletReader interface {
	GetDefaultByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
}

// WalletWriter defines wallet write operations.
type WalletWriter interface {
	Save(ctx context.Context, wallet models.WalletDB) error
}

// AssetReader defines asset read operations.
type AssetReader interface {
	GetBySymbolNetwork(ctx context.Context, walletID uuid.UUID, symbol, network string) (*models.WalletAssetDB, error)
	ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]models.WalletAssetDB, error)
}

// AssetWriter defines balance mutations. SaveWithdraw must debit
// conditionally and report an error when the balance does not cover amount.
type AssetWriter interface {
	SaveDeposit(ctx context.Context, walletID uuid.UUID, symbol, network string, amount decimal.Decimal) (*models.WalletAssetDB, error)
	SaveWithdraw(ctx context.Context, assetID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
}

// TransactionReader defines transaction read operations.
type TransactionReader interface {
	ListByWalletID(ctx context.Context, walletID uuid.UUID, page, pageSize int, symbol, network *string) ([]models.WalletTransactionDB, error)
}

// TransactionWriter defines transaction write operations.
type TransactionWriter interface {
	Save(ctx context.Context, tx models.WalletTransactionDB) error
}

// WithdrawalRequestWriter appends withdrawal audit rows.
type WithdrawalRequestWriter interface {
	Save(ctx context.Context, req models.WithdrawalRequestDB) error
}

// ExternalWalletReader defines linked-wallet read operations.
type ExternalWalletReader interface {
	GetByID(ctx context.Context, externalWalletID uuid.UUID) (*models.ExternalWalletDB, error)
	GetByKey(ctx context.Context, walletID uuid.UUID, network, publicKey string) (*models.ExternalWalletDB, error)
	GetPrimary(ctx context.Context, walletID uuid.UUID, network string) (*models.ExternalWalletDB, error)
	ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]models.ExternalWalletDB, error)
}

// ExternalWalletWriter defines linked-wallet write operations.
type ExternalWalletWriter interface {
	Save(ctx context.Context, w models.ExternalWalletDB) error
	UpdateLastVerified(ctx context.Context, externalWalletID uuid.UUID, verifiedAt time.Time) error
	SetPrimary(ctx context.Context, walletID uuid.UUID, network string, externalWalletID uuid.UUID) error
}

// GatewayClient submits withdrawals to the blockchain gateway.
type GatewayClient interface {
	Withdraw(ctx context.Context, req models.GatewayWithdrawRequest) (*models.GatewayWithdrawResponse, error)
}

// SignatureVerifier checks external wallet ownership proofs.
type SignatureVerifier interface {
	Verify(publicKey, signature, message string) bool
}

// NetworkRegistry resolves network capabilities.
type NetworkRegistry interface {
	IsOnChain(code string) bool
}

// WalletCache caches wallet projections per user.
type WalletCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.WalletResponse, error)
	Set(ctx context.Context, userID uuid.UUID, wallet models.WalletResponse) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// WalletServiceDeps bundles the orchestrator's collaborators and config.
// Cache and KafkaWriter may be nil; both are best-effort.
type WalletServiceDeps struct {
	Wallets          WalletReader
	WalletWriter     WalletWriter
	Assets           AssetReader
	AssetWriter      AssetWriter
	Transactions     TransactionReader
	TxWriter         TransactionWriter
	Withdrawals      WithdrawalRequestWriter
	Externals        ExternalWalletReader
	ExternalWriter   ExternalWalletWriter
	Gateway          GatewayClient
	Verifier         SignatureVerifier
	Registry         NetworkRegistry
	Cache            WalletCache
	KafkaWriter      KafkaWriter
	HotWalletAddress string
}

// WalletService orchestrates the custodial ledger: balances, withdrawals,
// external wallet links. It is the only writer of balance fields.
type WalletService struct {
	deps WalletServiceDeps
}

// NewWalletService creates a new WalletService.
func NewWalletService(deps WalletServiceDeps) *WalletService {
	return &WalletService{deps: deps}
}

// GetOrCreateDefaultWallet returns the user's default wallet projection,
// creating an empty wallet on first access. Idempotent under concurrent
// first calls: the losing insert is a no-op and the winner's row is re-read.
func (s *WalletService) GetOrCreateDefaultWallet(ctx context.Context, userID uuid.UUID) (*models.WalletResponse, error) {
	if s.deps.Cache != nil {
		cached, err := s.deps.Cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Warnw("wallet cache read failed", "user_id", userID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	wallet, err := s.getOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.walletProjection(ctx, wallet)
}

// Deposit credits available balance and appends a confirmed inbound
// transaction. No external call is involved.
func (s *WalletService) Deposit(ctx context.Context, userID uuid.UUID, symbol, network string, amount decimal.Decimal, note string) (*models.WalletResponse, error) {
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	wallet, err := s.getOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	asset, err := s.deps.AssetWriter.SaveDeposit(ctx, wallet.WalletID, symbol, network, amount)
	if err != nil {
		logger.Log.Errorw("failed to save deposit",
			"user_id", userID, "symbol", symbol, "network", network, "amount", amount, "error", err)
		return nil, err
	}

	now := time.Now().UTC()
	tx := models.WalletTransactionDB{
		TransactionID: uuid.New(),
		WalletID:      wallet.WalletID,
		AssetID:       asset.AssetID,
		Direction:     models.DirectionInbound,
		Type:          models.TypeDeposit,
		Status:        models.StatusConfirmed,
		Amount:        amount,
		FeeAmount:     decimal.Zero,
		RequestedAt:   now,
		CompletedAt:   &now,
		Note:          optionalString(note),
	}
	if err := s.deps.TxWriter.Save(ctx, tx); err != nil {
		logger.Log.Errorw("failed to save deposit transaction", "user_id", userID, "error", err)
		return nil, err
	}

	s.invalidateCache(ctx, userID)
	s.publishTransaction(ctx, models.TransactionEvent{
		TransactionID: tx.TransactionID.String(),
		UserID:        userID.String(),
		WalletID:      wallet.WalletID.String(),
		Symbol:        symbol,
		Network:       network,
		Amount:        amount.String(),
		Operation:     "deposit",
		Status:        tx.Status,
		Timestamp:     now.Unix(),
	})

	return s.walletProjection(ctx, wallet)
}

// Withdraw debits available balance, routing through the blockchain gateway
// when the asset's network settles on chain. On the on-chain path the debit
// happens only after the gateway accepts the submission, and the debit plus
// the pending transaction insert commit as one unit with the surrounding
// request transaction. Returns the chain transaction id for on-chain
// withdrawals.
func (s *WalletService) Withdraw(ctx context.Context, userID uuid.UUID, symbol, network string, amount decimal.Decimal, toAddress, note string) (*models.WalletResponse, string, error) {
	if amount.Sign() <= 0 {
		return nil, "", ErrInvalidAmount
	}

	wallet, err := s.getOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	asset, err := s.deps.Assets.GetBySymbolNetwork(ctx, wallet.WalletID, symbol, network)
	if err != nil {
		return nil, "", err
	}
	if asset == nil {
		return nil, "", ErrAssetNotFound
	}
	if asset.AvailableBalance.LessThan(amount) {
		return nil, "", ErrInsufficientBalance
	}

	if !s.deps.Registry.IsOnChain(asset.Network) {
		resp, err := s.withdrawOffChain(ctx, userID, wallet, asset, amount, note)
		return resp, "", err
	}

	return s.withdrawOnChain(ctx, userID, wallet, asset, amount, toAddress, note)
}

// withdrawOffChain settles purely in the internal ledger, synchronously
// confirmed. Off-chain assets have no settlement check by design; the
// off-chain settlement policy owner signed this off.
func (s *WalletService) withdrawOffChain(ctx context.Context, userID uuid.UUID, wallet *models.WalletDB, asset *models.WalletAssetDB, amount decimal.Decimal, note string) (*models.WalletResponse, error) {
	if _, err := s.deps.AssetWriter.SaveWithdraw(ctx, asset.AssetID, amount); err != nil {
		return nil, mapWithdrawError(err)
	}

	now := time.Now().UTC()
	tx := models.WalletTransactionDB{
		TransactionID: uuid.New(),
		WalletID:      wallet.WalletID,
		AssetID:       asset.AssetID,
		Direction:     models.DirectionOutbound,
		Type:          models.TypeWithdrawal,
		Status:        models.StatusConfirmed,
		Amount:        amount,
		FeeAmount:     decimal.Zero,
		RequestedAt:   now,
		CompletedAt:   &now,
		Note:          optionalString(note),
	}
	if err := s.deps.TxWriter.Save(ctx, tx); err != nil {
		logger.Log.Errorw("failed to save withdrawal transaction", "user_id", userID, "error", err)
		return nil, err
	}

	s.invalidateCache(ctx, userID)
	s.publishTransaction(ctx, models.TransactionEvent{
		TransactionID: tx.TransactionID.String(),
		UserID:        userID.String(),
		WalletID:      wallet.WalletID.String(),
		Symbol:        asset.Symbol,
		Network:       asset.Network,
		Amount:        amount.String(),
		Operation:     "withdraw",
		Status:        tx.Status,
		Timestamp:     now.Unix(),
	})

	return s.walletProjection(ctx, wallet)
}

// withdrawOnChain submits to the gateway first and mutates the ledger only
// on success: a gateway failure leaves the balance untouched.
func (s *WalletService) withdrawOnChain(ctx context.Context, userID uuid.UUID, wallet *models.WalletDB, asset *models.WalletAssetDB, amount decimal.Decimal, toAddress, note string) (*models.WalletResponse, string, error) {
	if toAddress == "" {
		external, err := s.deps.Externals.GetPrimary(ctx, wallet.WalletID, asset.Network)
		if err != nil {
			return nil, "", err
		}
		if external == nil {
			return nil, "", ErrNoLinkedWallet
		}
		toAddress = external.PublicKey
	} else {
		// Funds only ever leave toward an address whose ownership was
		// proven by signature. An override still has to be linked.
		linked, err := s.deps.Externals.GetByKey(ctx, wallet.WalletID, asset.Network, toAddress)
		if err != nil {
			return nil, "", err
		}
		if linked == nil {
			return nil, "", ErrUnlinkedAddress
		}
	}

	if s.deps.HotWalletAddress == "" {
		return nil, "", ErrHotWalletNotConfigured
	}

	correlationID := "wallet-withdraw-" + uuid.NewString()

	gatewayResp, err := s.deps.Gateway.Withdraw(ctx, models.GatewayWithdrawRequest{
		NetworkCode:   asset.Network,
		FromAddress:   s.deps.HotWalletAddress,
		ToAddress:     toAddress,
		Amount:        amount,
		CorrelationID: correlationID,
	})
	if err != nil {
		logger.Log.Errorw("gateway rejected on-chain withdrawal",
			"user_id", userID, "network", asset.Network, "correlation_id", correlationID, "error", err)
		return nil, "", fmt.Errorf("%w: %v", ErrGatewaySubmission, err)
	}

	if _, err := s.deps.AssetWriter.SaveWithdraw(ctx, asset.AssetID, amount); err != nil {
		logger.Log.Errorw("failed to debit after gateway acceptance",
			"user_id", userID, "correlation_id", correlationID, "tx_hash", gatewayResp.TxHash, "error", err)
		return nil, "", mapWithdrawError(err)
	}

	now := time.Now().UTC()
	feeSymbol := asset.Symbol
	tx := models.WalletTransactionDB{
		TransactionID:         uuid.New(),
		WalletID:              wallet.WalletID,
		AssetID:               asset.AssetID,
		Direction:             models.DirectionOutbound,
		Type:                  models.TypeWithdrawal,
		Status:                models.StatusPending,
		Amount:                amount,
		FeeAmount:             gatewayResp.Fee,
		FeeAssetSymbol:        &feeSymbol,
		ExternalTransactionID: &gatewayResp.TxHash,
		RequestedAt:           now,
		Note:                  optionalString(note),
	}
	if err := s.deps.TxWriter.Save(ctx, tx); err != nil {
		logger.Log.Errorw("failed to save pending withdrawal transaction", "user_id", userID, "error", err)
		return nil, "", err
	}

	audit := models.WithdrawalRequestDB{
		RequestID:     uuid.New(),
		WalletID:      wallet.WalletID,
		AssetID:       asset.AssetID,
		TransactionID: tx.TransactionID,
		ToAddress:     toAddress,
		Network:       asset.Network,
		Amount:        amount,
		Status:        models.WithdrawalRequested,
		RequestedAt:   now,
	}
	if err := s.deps.Withdrawals.Save(ctx, audit); err != nil {
		logger.Log.Errorw("failed to save withdrawal request audit row", "user_id", userID, "error", err)
		return nil, "", err
	}

	s.invalidateCache(ctx, userID)
	s.publishTransaction(ctx, models.TransactionEvent{
		TransactionID: tx.TransactionID.String(),
		UserID:        userID.String(),
		WalletID:      wallet.WalletID.String(),
		Symbol:        asset.Symbol,
		Network:       asset.Network,
		Amount:        amount.String(),
		Operation:     "withdraw",
		Status:        tx.Status,
		Timestamp:     now.Unix(),
	})

	resp, err := s.walletProjection(ctx, wallet)
	if err != nil {
		return nil, "", err
	}
	return resp, gatewayResp.TxHash, nil
}

// GetTransactions returns a page of the user's transactions for the default
// wallet, newest requested first.
func (s *WalletService) GetTransactions(ctx context.Context, userID uuid.UUID, page, pageSize int, symbol, network *string) ([]models.WalletTransactionDB, error) {
	wallet, err := s.getOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	return s.deps.Transactions.ListByWalletID(ctx, wallet.WalletID, page, pageSize, symbol, network)
}

// LinkExternalWallet verifies ownership of an external address and links it.
// Re-linking an existing (network, publicKey) only refreshes the
// verification timestamp. The first link on a network becomes primary.
func (s *WalletService) LinkExternalWallet(ctx context.Context, userID uuid.UUID, network, publicKey, sig, message, label string) (*models.WalletResponse, error) {
	if !s.deps.Verifier.Verify(publicKey, sig, message) {
		logger.Log.Warnw("external wallet signature verification failed",
			"user_id", userID, "network", network, "public_key", publicKey)
		return nil, ErrInvalidSignature
	}

	wallet, err := s.getOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	existing, err := s.deps.Externals.GetByKey(ctx, wallet.WalletID, network, publicKey)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.deps.ExternalWriter.UpdateLastVerified(ctx, existing.ExternalWalletID, now); err != nil {
			return nil, err
		}
	} else {
		current, err := s.deps.Externals.GetPrimary(ctx, wallet.WalletID, network)
		if err != nil {
			return nil, err
		}

		external := models.ExternalWalletDB{
			ExternalWalletID: uuid.New(),
			WalletID:         wallet.WalletID,
			Network:          network,
			PublicKey:        publicKey,
			Label:            optionalString(label),
			IsPrimary:        current == nil, // first link on this network
			LinkedAt:         now,
			LastVerifiedAt:   &now,
		}
		if err := s.deps.ExternalWriter.Save(ctx, external); err != nil {
			return nil, err
		}
	}

	s.invalidateCache(ctx, userID)

	return s.walletProjection(ctx, wallet)
}

// GetExternalWallets lists the user's linked external wallets.
func (s *WalletService) GetExternalWallets(ctx context.Context, userID uuid.UUID) ([]models.ExternalWalletResponse, error) {
	wallet, err := s.getOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	externals, err := s.deps.Externals.ListByWalletID(ctx, wallet.WalletID)
	if err != nil {
		return nil, err
	}

	return toExternalWalletResponses(externals), nil
}

// SetPrimaryExternalWallet makes the target the single primary linked wallet
// for its (wallet, network) after checking ownership.
func (s *WalletService) SetPrimaryExternalWallet(ctx context.Context, userID uuid.UUID, externalWalletID uuid.UUID) (*models.ExternalWalletResponse, error) {
	external, err := s.deps.Externals.GetByID(ctx, externalWalletID)
	if err != nil {
		return nil, err
	}
	if external == nil {
		return nil, ErrExternalWalletNotFound
	}

	wallet, err := s.deps.Wallets.GetDefaultByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil || wallet.WalletID != external.WalletID {
		return nil, ErrAccessDenied
	}

	if err := s.deps.ExternalWriter.SetPrimary(ctx, external.WalletID, external.Network, external.ExternalWalletID); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, userID)

	external.IsPrimary = true
	resp := toExternalWalletResponse(*external)
	return &resp, nil
}

// ----------------- helpers -----------------

func (s *WalletService) getOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	wallet, err := s.deps.Wallets.GetDefaultByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	err = s.deps.WalletWriter.Save(ctx, models.WalletDB{
		WalletID:   uuid.New(),
		UserID:     userID,
		WalletName: models.DefaultWalletName,
		IsDefault:  true,
		Status:     models.WalletStatusActive,
	})
	if err != nil {
		logger.Log.Errorw("failed to create default wallet", "user_id", userID, "error", err)
		return nil, err
	}

	// Re-read: under a concurrent first call this returns the winner's row.
	wallet, err = s.deps.Wallets.GetDefaultByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, errors.New("default wallet missing after create")
	}
	return wallet, nil
}

func (s *WalletService) walletProjection(ctx context.Context, wallet *models.WalletDB) (*models.WalletResponse, error) {
	assets, err := s.deps.Assets.ListByWalletID(ctx, wallet.WalletID)
	if err != nil {
		return nil, err
	}

	externals, err := s.deps.Externals.ListByWalletID(ctx, wallet.WalletID)
	if err != nil {
		return nil, err
	}

	assetResponses := make([]models.WalletAssetResponse, 0, len(assets))
	for _, a := range assets {
		assetResponses = append(assetResponses, models.WalletAssetResponse{
			AssetID:          a.AssetID,
			Symbol:           a.Symbol,
			Network:          a.Network,
			AvailableBalance: a.AvailableBalance,
			PendingBalance:   a.PendingBalance,
		})
	}

	resp := models.WalletResponse{
		WalletID:        wallet.WalletID,
		UserID:          wallet.UserID,
		WalletName:      wallet.WalletName,
		IsDefault:       wallet.IsDefault,
		Assets:          assetResponses,
		ExternalWallets: toExternalWalletResponses(externals),
	}

	if s.deps.Cache != nil {
		if err := s.deps.Cache.Set(ctx, wallet.UserID, resp); err != nil {
			logger.Log.Warnw("wallet cache write failed", "user_id", wallet.UserID, "error", err)
		}
	}

	return &resp, nil
}

// publishTransaction publishes a transaction event to Kafka, best effort.
func (s *WalletService) publishTransaction(ctx context.Context, event models.TransactionEvent) {
	if s.deps.KafkaWriter == nil {
		logger.Log.Warnw("kafka writer not configured, skipping publishing", "transaction_id", event.TransactionID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction event", "transaction_id", event.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.deps.KafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction event", "transaction_id", event.TransactionID, "error", err)
	} else {
		logger.Log.Infow("transaction event published", "transaction_id", event.TransactionID, "operation", event.Operation)
	}
}

func (s *WalletService) invalidateCache(ctx context.Context, userID uuid.UUID) {
	if s.deps.Cache == nil {
		return
	}
	if err := s.deps.Cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Warnw("wallet cache invalidation failed", "user_id", userID, "error", err)
	}
}

func mapWithdrawError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrInsufficientBalance
	}
	return err
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toExternalWalletResponse(w models.ExternalWalletDB) models.ExternalWalletResponse {
	return models.ExternalWalletResponse{
		ExternalWalletID: w.ExternalWalletID,
		Network:          w.Network,
		PublicKey:        w.PublicKey,
		Label:            w.Label,
		IsPrimary:        w.IsPrimary,
		LinkedAt:         w.LinkedAt,
		LastVerifiedAt:   w.LastVerifiedAt,
	}
}

func toExternalWalletResponses(ws []models.ExternalWalletDB) []models.ExternalWalletResponse {
	out := make([]models.ExternalWalletResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, toExternalWalletResponse(w))
	}
	return out
}
