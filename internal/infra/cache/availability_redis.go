package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
)

// AvailabilityRedisCache guarda as projeções de disponibilidade por
// profissional. TTL curto: a invalidação explícita nas mutações do
// ledger é a via principal, o TTL é só o teto.
type AvailabilityRedisCache struct {
	rdb *redis.Client
	log *zap.Logger
	ttl time.Duration
}

func NewAvailabilityRedisCache(rdb *redis.Client, log *zap.Logger) *AvailabilityRedisCache {
	return &AvailabilityRedisCache{
		rdb: rdb,
		log: log,
		ttl: 5 * time.Minute,
	}
}

func datesKey(professionalID uint, from string) string {
	return fmt.Sprintf("availability:dates:%d:%s", professionalID, from)
}

func timesKey(professionalID uint, date string) string {
	return fmt.Sprintf("availability:times:%d:%s", professionalID, date)
}

func (c *AvailabilityRedisCache) GetDates(
	ctx context.Context,
	professionalID uint,
	from string,
) ([]string, bool) {
	return c.get(ctx, datesKey(professionalID, from))
}

func (c *AvailabilityRedisCache) SetDates(
	ctx context.Context,
	professionalID uint,
	from string,
	dates []string,
) {
	c.set(ctx, datesKey(professionalID, from), dates)
}

func (c *AvailabilityRedisCache) GetTimes(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]string, bool) {
	return c.get(ctx, timesKey(professionalID, date))
}

func (c *AvailabilityRedisCache) SetTimes(
	ctx context.Context,
	professionalID uint,
	date string,
	times []string,
) {
	c.set(ctx, timesKey(professionalID, date), times)
}

func (c *AvailabilityRedisCache) Invalidate(ctx context.Context, professionalID uint) {
	patterns := []string{
		fmt.Sprintf("availability:dates:%d:*", professionalID),
		fmt.Sprintf("availability:times:%d:*", professionalID),
	}

	for _, pattern := range patterns {
		iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
				c.log.Warn("cache invalidation failed",
					zap.String("key", iter.Val()),
					zap.Error(err),
				)
			}
		}
		if err := iter.Err(); err != nil {
			c.log.Warn("cache scan failed",
				zap.String("pattern", pattern),
				zap.Error(err),
			)
		}
	}
}

// --------------------------------------------------
// internals
// --------------------------------------------------

func (c *AvailabilityRedisCache) get(ctx context.Context, key string) ([]string, bool) {
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *AvailabilityRedisCache) set(ctx context.Context, key string, values []string) {
	raw, err := json.Marshal(values)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Compile-time check
var _ domain.AvailabilityCache = (*AvailabilityRedisCache)(nil)
