package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gradefresh/quality-api/internal/core/domain"
)

const verdictTTL = 24 * time.Hour

// VerdictCache stores classification verdicts keyed by image content hash.
// Identical uploads skip the model entirely until the key expires.
type VerdictCache struct {
	client *redis.Client
}

// NewVerdictCache creates a VerdictCache wrapping the given Redis client.
func NewVerdictCache(client *redis.Client) *VerdictCache {
	return &VerdictCache{client: client}
}

// Get returns the cached verdict for key, or (nil, nil) on a miss.
func (c *VerdictCache) Get(ctx context.Context, key string) (*domain.Verdict, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("verdict cache get: %w", err)
	}

	var v domain.Verdict
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("verdict cache decode: %w", err)
	}
	return &v, nil
}

// Set stores the verdict under key (expires after verdictTTL).
func (c *VerdictCache) Set(ctx context.Context, key string, verdict *domain.Verdict) error {
	raw, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("verdict cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, verdictTTL).Err()
}
