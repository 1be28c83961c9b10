package cache

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/polyforma/qualitrack/internal/domain/catalog"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

const (
	productKeyPrefix = "catalog:product:"
	productTTLJitter = 30 * time.Second
	nullMarkerTTL    = time.Minute
	fieldName        = "name"
	fieldThreshold   = "alert_threshold"
	fieldNullMarker  = "_null"
)

// CachedProductReader is a read-through cache in front of the catalog.
// Redis failures are logged and the call goes straight to the catalog.
type CachedProductReader struct {
	next   catalog.Reader
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewCachedProductReader(next catalog.Reader, client *redis.Client, ttl time.Duration, logger logger.Interface) *CachedProductReader {
	return &CachedProductReader{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedProductReader) key(id uint) string {
	return fmt.Sprintf("%s%d", productKeyPrefix, id)
}

func (c *CachedProductReader) GetProduct(ctx context.Context, id uint) (*catalog.Product, error) {
	product, hit, err := c.lookup(ctx, id)
	if err != nil {
		c.logger.Warnw("product cache read failed, using catalog", "product_id", id, "error", err)
	} else if hit {
		if product == nil {
			return nil, catalog.ErrProductNotFound
		}
		return product, nil
	}

	product, err = c.next.GetProduct(ctx, id)
	switch {
	case err == nil:
		c.store(ctx, product)
	case errors.Is(err, catalog.ErrProductNotFound):
		c.storeNullMarker(ctx, id)
	}
	return product, err
}

// Invalidate drops a cached product after the catalog changes it.
func (c *CachedProductReader) Invalidate(ctx context.Context, id uint) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate product cache: %w", err)
	}
	return nil
}

func (c *CachedProductReader) lookup(ctx context.Context, id uint) (*catalog.Product, bool, error) {
	result, err := c.client.HGetAll(ctx, c.key(id)).Result()
	if err != nil {
		return nil, false, err
	}
	if len(result) == 0 {
		return nil, false, nil
	}
	if result[fieldNullMarker] == "1" {
		return nil, true, nil
	}

	product := &catalog.Product{ID: id, Name: result[fieldName]}
	if raw := result[fieldThreshold]; raw != "" {
		threshold, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, false, fmt.Errorf("corrupt threshold %q: %w", raw, err)
		}
		product.AlertThreshold = &threshold
	}
	return product, true, nil
}

func (c *CachedProductReader) store(ctx context.Context, product *catalog.Product) {
	fields := map[string]any{fieldName: product.Name, fieldThreshold: ""}
	if product.AlertThreshold != nil {
		fields[fieldThreshold] = product.AlertThreshold.String()
	}

	key := c.key(product.ID)
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, c.ttl+jitter())
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warnw("failed to cache product", "product_id", product.ID, "error", err)
	}
}

func (c *CachedProductReader) storeNullMarker(ctx context.Context, id uint) {
	key := c.key(id)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, fieldNullMarker, "1")
	pipe.Expire(ctx, key, nullMarkerTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warnw("failed to cache missing product", "product_id", id, "error", err)
	}
}

func jitter() time.Duration {
	return time.Duration(rand.Int64N(int64(productTTLJitter)))
}

// NewClient opens a redis client and checks it answers.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}
