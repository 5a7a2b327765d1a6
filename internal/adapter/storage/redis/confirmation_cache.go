package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"donation-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ConfirmationCache implements ports.ConfirmationCache using Redis.
// It only short-circuits repeats; the contribution log stays authoritative.
type ConfirmationCache struct {
	client *goredis.Client
	prefix string
}

// NewConfirmationCache creates a new Redis-backed confirmation cache.
func NewConfirmationCache(client *goredis.Client) *ConfirmationCache {
	return &ConfirmationCache{
		client: client,
		prefix: "confirmation:",
	}
}

// Get returns the cached ingest result for txHash, or nil on a miss.
func (c *ConfirmationCache) Get(ctx context.Context, txHash string) (*domain.IngestResult, error) {
	val, err := c.client.Get(ctx, c.key(txHash)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis confirmation get: %w", err)
	}

	var result domain.IngestResult
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, fmt.Errorf("decode cached confirmation: %w", err)
	}
	return &result, nil
}

// Set stores result under its transaction hash with TTL.
func (c *ConfirmationCache) Set(ctx context.Context, result *domain.IngestResult, ttl time.Duration) error {
	val, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode confirmation: %w", err)
	}
	if err := c.client.Set(ctx, c.key(result.TransactionHash), val, ttl).Err(); err != nil {
		return fmt.Errorf("redis confirmation set: %w", err)
	}
	return nil
}

func (c *ConfirmationCache) key(txHash string) string {
	return c.prefix + domain.NormalizeAddress(txHash)
}
