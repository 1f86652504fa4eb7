package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
)

func TestWalletCacheRepository(t *testing.T) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewWalletCacheRepository(rdb, 2*time.Second)

	userID := uuid.New()
	wallet := models.WalletResponse{
		WalletID:   uuid.New(),
		UserID:     userID,
		WalletName: models.DefaultWalletName,
		IsDefault:  true,
		Assets: []models.WalletAssetResponse{
			{AssetID: uuid.New(), Symbol: "SOL", Network: "solana", AvailableBalance: decimal.RequireFromString("1.5")},
		},
	}

	t.Run("Set and Get wallet projection", func(t *testing.T) {
		err := repo.Set(ctx, userID, wallet)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, wallet.WalletID, got.WalletID)
		assert.Len(t, got.Assets, 1)
		assert.True(t, got.Assets[0].AvailableBalance.Equal(decimal.RequireFromString("1.5")))
	})

	t.Run("Miss returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Invalidate drops entry", func(t *testing.T) {
		err := repo.Set(ctx, userID, wallet)
		assert.NoError(t, err)

		err = repo.Invalidate(ctx, userID)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Undecodable entry dropped as miss", func(t *testing.T) {
		err := rdb.Set(ctx, "wallet:"+userID.String(), "{not json", time.Minute).Err()
		assert.NoError(t, err)

		got, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, got)

		exists, err := rdb.Exists(ctx, "wallet:"+userID.String()).Result()
		assert.NoError(t, err)
		assert.Equal(t, int64(0), exists)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		err := repo.Set(ctx, userID, wallet)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
