package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
)

// WalletCacheRepository caches wallet projections in Redis, keyed by user.
// A cache miss returns (nil, nil); every balance mutation invalidates the
// owner's entry.
type WalletCacheRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewWalletCacheRepository(rdb *redis.Client, ttl time.Duration) *WalletCacheRepository {
	return &WalletCacheRepository{rdb: rdb, ttl: ttl}
}

func walletCacheKey(userID uuid.UUID) string {
	return "wallet:" + userID.String()
}

// Get returns the cached projection for a user, or nil on miss.
func (r *WalletCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.WalletResponse, error) {
	data, err := r.rdb.Get(ctx, walletCacheKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var wallet models.WalletResponse
	if err := json.Unmarshal(data, &wallet); err != nil {
		logger.Log.Warnw("dropping undecodable wallet cache entry", "user_id", userID, "error", err)
		_ = r.rdb.Del(ctx, walletCacheKey(userID)).Err()
		return nil, nil
	}

	return &wallet, nil
}

// Set stores the projection with the configured TTL.
func (r *WalletCacheRepository) Set(ctx context.Context, userID uuid.UUID, wallet models.WalletResponse) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, walletCacheKey(userID), data, r.ttl).Err()
}

// Invalidate drops the user's cached projection.
func (r *WalletCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return r.rdb.Del(ctx, walletCacheKey(userID)).Err()
}
