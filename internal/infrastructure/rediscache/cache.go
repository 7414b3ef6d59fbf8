// Package rediscache shares comparison results between service instances.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"boatmatch/internal/domain/value"
	"boatmatch/pkg/contextx"
	"boatmatch/pkg/logx"
)

const DefaultKeyPrefix = "boatmatch:comparison:"

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault           //nolint:gochecknoglobals
)

// Cache stores comparison results as JSON strings with a TTL. Redis failures
// degrade to cache misses.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
	prefix string
}

func New(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    max(0, ttl),
		prefix: DefaultKeyPrefix,
	}
}

func (c *Cache) WithKeyPrefix(prefix string) *Cache {
	c.prefix = prefix
	return c
}

func (c *Cache) Get(ctx context.Context, key string) (value.ComparisonResult, bool) {
	payload, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger(ctx).Warn("redis.Get", logx.Error(err), logx.FieldCacheKey, key)
		}

		return value.ComparisonResult{}, false
	}

	result, err := Decode(payload)
	if err != nil {
		logger(ctx).Warn("rediscache.Decode", logx.Error(err), logx.FieldCacheKey, key)

		return value.ComparisonResult{}, false
	}

	return result, true
}

func (c *Cache) Set(ctx context.Context, key string, result value.ComparisonResult) {
	payload, err := Encode(result)
	if err != nil {
		logger(ctx).Warn("rediscache.Encode", logx.Error(err), logx.FieldCacheKey, key)

		return
	}

	if err = c.client.Set(ctx, c.prefix+key, payload, c.ttl).Err(); err != nil {
		logger(ctx).Warn("redis.Set", logx.Error(err), logx.FieldCacheKey, key)
	}
}

func Encode(result value.ComparisonResult) ([]byte, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return payload, nil
}

func Decode(payload []byte) (value.ComparisonResult, error) {
	var result value.ComparisonResult

	if err := json.Unmarshal(payload, &result); err != nil {
		return value.ComparisonResult{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return result, nil
}
