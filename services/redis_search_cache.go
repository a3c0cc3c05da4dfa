package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

/// This file caches rendered gamer search results

const (
	catalogVersionKey = "catalog:version"
	searchResultTTL   = 30 * time.Second
)

// CatalogVersion returns the current catalog generation. Every catalog
// write bumps it, which implicitly drops all search entries keyed under
// the old generation.
func (r *RedisService) CatalogVersion(ctx context.Context) (int64, error) {
	value, err := r.Get(ctx, catalogVersionKey)
	if err == redis.Nil {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

func (r *RedisService) BumpCatalogVersion(ctx context.Context) error {
	_, err := r.Increment(ctx, catalogVersionKey)
	return err
}

// SearchCacheKey derives the cache key for one search request under the
// current catalog generation.
func (r *RedisService) SearchCacheKey(ctx context.Context, rawQuery string) (string, error) {
	version, err := r.CatalogVersion(ctx)
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256([]byte(rawQuery))
	return fmt.Sprintf("search:%d:%s", version, hex.EncodeToString(digest[:16])), nil
}

// GetSearchResult returns the cached JSON payload for key, or redis.Nil.
func (r *RedisService) GetSearchResult(ctx context.Context, key string) ([]byte, error) {
	payload, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

func (r *RedisService) CacheSearchResult(ctx context.Context, key string, payload []byte) error {
	return r.Set(ctx, key, payload, searchResultTTL)
}
