package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"marinahub/internal/metrics"
)

// SummaryCache caches computed marina and group summaries. A disabled cache
// behaves like an always-empty one.
type SummaryCache interface {
	GetMarinaSummary(ctx context.Context, marinaID int64) (*metrics.MarinaSummary, error)
	SetMarinaSummary(ctx context.Context, summary *metrics.MarinaSummary) error
	DeleteMarinaSummary(ctx context.Context, marinaID int64) error

	GetGroupSummary(ctx context.Context, groupID int64) (*metrics.GroupSummary, error)
	SetGroupSummary(ctx context.Context, summary *metrics.GroupSummary) error
	DeleteGroupSummary(ctx context.Context, groupID int64) error

	FlushAll(ctx context.Context) error
}

// ErrMiss is returned on cache misses, disabled cache included.
var ErrMiss = redis.Nil

type RedisCache struct {
	client  *redis.Client
	enabled bool
	ttl     time.Duration
}

func NewRedisCache(addr, password string, db int, enabled bool, ttl time.Duration) (SummaryCache, error) {
	if !enabled {
		return &RedisCache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if ttl <= 0 {
		ttl = time.Minute
	}

	return &RedisCache{
		client:  client,
		enabled: true,
		ttl:     ttl,
	}, nil
}

func marinaSummaryKey(id int64) string {
	return fmt.Sprintf("marina_summary:%d", id)
}

func groupSummaryKey(id int64) string {
	return fmt.Sprintf("group_summary:%d", id)
}

func (c *RedisCache) GetMarinaSummary(ctx context.Context, marinaID int64) (*metrics.MarinaSummary, error) {
	if !c.enabled {
		return nil, ErrMiss
	}

	data, err := c.client.Get(ctx, marinaSummaryKey(marinaID)).Bytes()
	if err != nil {
		return nil, err
	}

	var summary metrics.MarinaSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *RedisCache) SetMarinaSummary(ctx context.Context, summary *metrics.MarinaSummary) error {
	if !c.enabled {
		return nil
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, marinaSummaryKey(summary.ID), data, c.ttl).Err()
}

func (c *RedisCache) DeleteMarinaSummary(ctx context.Context, marinaID int64) error {
	if !c.enabled {
		return nil
	}

	return c.client.Del(ctx, marinaSummaryKey(marinaID)).Err()
}

func (c *RedisCache) GetGroupSummary(ctx context.Context, groupID int64) (*metrics.GroupSummary, error) {
	if !c.enabled {
		return nil, ErrMiss
	}

	data, err := c.client.Get(ctx, groupSummaryKey(groupID)).Bytes()
	if err != nil {
		return nil, err
	}

	var summary metrics.GroupSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *RedisCache) SetGroupSummary(ctx context.Context, summary *metrics.GroupSummary) error {
	if !c.enabled {
		return nil
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, groupSummaryKey(summary.ID), data, c.ttl).Err()
}

func (c *RedisCache) DeleteGroupSummary(ctx context.Context, groupID int64) error {
	if !c.enabled {
		return nil
	}

	return c.client.Del(ctx, groupSummaryKey(groupID)).Err()
}

func (c *RedisCache) FlushAll(ctx context.Context) error {
	if !c.enabled {
		return nil
	}

	return c.client.FlushAll(ctx).Err()
}
