package repositories

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAssetWriteRepository_SaveDeposit(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	walletID := insertWallet(t, db, uuid.New())
	writer := NewAssetWriteRepository(db, nil)

	asset, err := writer.SaveDeposit(ctx, walletID, "SOL", "solana", decimal.RequireFromString("1.5"))
	assert.NoError(t, err)
	assert.NotNil(t, asset)
	assert.Equal(t, walletID, asset.WalletID)
	assert.Equal(t, "SOL", asset.Symbol)
	assert.Equal(t, "solana", asset.Network)
	assert.True(t, asset.AvailableBalance.Equal(decimal.RequireFromString("1.5")))

	// Second deposit accumulates on the same row.
	again, err := writer.SaveDeposit(ctx, walletID, "SOL", "solana", decimal.RequireFromString("0.25"))
	assert.NoError(t, err)
	assert.Equal(t, asset.AssetID, again.AssetID)
	assert.True(t, again.AvailableBalance.Equal(decimal.RequireFromString("1.75")))
	assert.True(t, getAvailableBalance(t, db, asset.AssetID).Equal(decimal.RequireFromString("1.75")))
}

func TestAssetWriteRepository_SaveWithdraw(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	walletID := insertWallet(t, db, uuid.New())
	writer := NewAssetWriteRepository(db, nil)

	asset, err := writer.SaveDeposit(ctx, walletID, "SOL", "solana", decimal.NewFromInt(2))
	assert.NoError(t, err)

	balance, err := writer.SaveWithdraw(ctx, asset.AssetID, decimal.RequireFromString("0.75"))
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("1.25")))

	// Debit beyond the balance never applies.
	_, err = writer.SaveWithdraw(ctx, asset.AssetID, decimal.NewFromInt(2))
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.True(t, getAvailableBalance(t, db, asset.AssetID).Equal(decimal.RequireFromString("1.25")))
}

func TestAssetWriteRepository_SaveWithdrawConcurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	walletID := insertWallet(t, db, uuid.New())
	writer := NewAssetWriteRepository(db, nil)

	asset, err := writer.SaveDeposit(ctx, walletID, "SOL", "solana", decimal.NewFromInt(64))
	assert.NoError(t, err)

	const numGoroutines = 80
	var rejected int64
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			if _, err := writer.SaveWithdraw(ctx, asset.AssetID, decimal.NewFromInt(1)); err != nil {
				atomic.AddInt64(&rejected, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(numGoroutines-64), rejected)
	assert.True(t, getAvailableBalance(t, db, asset.AssetID).IsZero())
}

func TestAssetReadRepository_GetBySymbolNetwork(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	walletID := insertWallet(t, db, uuid.New())
	writer := NewAssetWriteRepository(db, nil)
	reader := NewAssetReadRepository(db, nil)

	created, err := writer.SaveDeposit(ctx, walletID, "SOL", "solana", decimal.NewFromInt(3))
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		asset, err := reader.GetBySymbolNetwork(ctx, walletID, "SOL", "solana")
		assert.NoError(t, err)
		assert.NotNil(t, asset)
		assert.Equal(t, created.AssetID, asset.AssetID)
		assert.True(t, asset.AvailableBalance.Equal(decimal.NewFromInt(3)))
	})

	t.Run("NeverTouched", func(t *testing.T) {
		asset, err := reader.GetBySymbolNetwork(ctx, walletID, "ETH", "ethereum")
		assert.NoError(t, err)
		assert.Nil(t, asset)
	})
}

func TestAssetReadRepository_ListByWalletID(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	walletID := insertWallet(t, db, uuid.New())
	writer := NewAssetWriteRepository(db, nil)
	reader := NewAssetReadRepository(db, nil)

	for _, a := range []struct{ symbol, network string }{
		{"SOL", "solana"},
		{"ETH", "ethereum"},
		{"SOL", "internal"},
	} {
		_, err := writer.SaveDeposit(ctx, walletID, a.symbol, a.network, decimal.NewFromInt(1))
		assert.NoError(t, err)
	}

	assets, err := reader.ListByWalletID(ctx, walletID)
	assert.NoError(t, err)
	assert.Len(t, assets, 3)

	// Ordered by symbol, then network.
	assert.Equal(t, "ETH", assets[0].Symbol)
	assert.Equal(t, "internal", assets[1].Network)
	assert.Equal(t, "solana", assets[2].Network)

	empty, err := reader.ListByWalletID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, empty)
}
