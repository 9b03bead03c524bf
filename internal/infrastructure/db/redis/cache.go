package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mitienda/catalog-api/internal/core/domain"
)

const cacheTTL = time.Hour

// ProductCache is a read-through product cache backed by Redis.
// Key format: product:id:<id> and product:name:<normalized_name>.
// A cache miss is reported as (nil, nil); failures never carry product data.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

func (c *ProductCache) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return c.get(ctx, c.idKey(id))
}

func (c *ProductCache) GetByName(ctx context.Context, normalized string) (*domain.Product, error) {
	return c.get(ctx, c.nameKey(normalized))
}

// Set stores p under both its id key and its normalized-name key.
func (c *ProductCache) Set(ctx context.Context, p *domain.Product) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	if err := c.client.Set(ctx, c.idKey(p.ID), raw, cacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return c.client.Set(ctx, c.nameKey(domain.NormalizeProductName(p.Name)), raw, cacheTTL).Err()
}

// Invalidate drops both keys for p. Called with the pre-update record so a
// rename also clears the stale name key.
func (c *ProductCache) Invalidate(ctx context.Context, p *domain.Product) error {
	return c.client.Del(ctx,
		c.idKey(p.ID),
		c.nameKey(domain.NormalizeProductName(p.Name)),
	).Err()
}

func (c *ProductCache) get(ctx context.Context, key string) (*domain.Product, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &p, nil
}

func (c *ProductCache) idKey(id int64) string {
	return "product:id:" + strconv.FormatInt(id, 10)
}

func (c *ProductCache) nameKey(normalized string) string {
	return "product:name:" + normalized
}
