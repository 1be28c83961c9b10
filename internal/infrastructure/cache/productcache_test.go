package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforma/qualitrack/internal/domain/catalog"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type countingCatalog struct {
	products map[uint]*catalog.Product
	calls    int
}

func (c *countingCatalog) GetProduct(_ context.Context, id uint) (*catalog.Product, error) {
	c.calls++
	p, ok := c.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return p, nil
}

func newCatalog() *countingCatalog {
	threshold := decimal.RequireFromString("4.5")
	return &countingCatalog{products: map[uint]*catalog.Product{
		1: {ID: 1, Name: "Tapa rosca 28mm", AlertThreshold: &threshold},
		2: {ID: 2, Name: "Envase 500ml"},
	}}
}

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})
	return client
}

func TestCachedProductReader_ReadThrough(t *testing.T) {
	client := setupTestRedis(t)
	next := newCatalog()
	reader := NewCachedProductReader(next, client, time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		p, err := reader.GetProduct(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Tapa rosca 28mm", p.Name)
		require.NotNil(t, p.AlertThreshold)
		assert.True(t, p.AlertThreshold.Equal(decimal.RequireFromString("4.5")))
	}
	assert.Equal(t, 1, next.calls)

	p, err := reader.GetProduct(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, p.AlertThreshold, "default threshold survives the cache")
	p, err = reader.GetProduct(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, p.AlertThreshold)
	assert.Equal(t, 2, next.calls)
}

func TestCachedProductReader_CachesMissingProducts(t *testing.T) {
	client := setupTestRedis(t)
	next := newCatalog()
	reader := NewCachedProductReader(next, client, time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	_, err := reader.GetProduct(ctx, 99)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	_, err = reader.GetProduct(ctx, 99)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.Equal(t, 1, next.calls)
}

func TestCachedProductReader_Invalidate(t *testing.T) {
	client := setupTestRedis(t)
	next := newCatalog()
	reader := NewCachedProductReader(next, client, time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	_, err := reader.GetProduct(ctx, 2)
	require.NoError(t, err)
	next.products[2].Name = "Envase 500ml PET"
	require.NoError(t, reader.Invalidate(ctx, 2))

	p, err := reader.GetProduct(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Envase 500ml PET", p.Name)
}

func TestCachedProductReader_FallsBackWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })

	next := newCatalog()
	reader := NewCachedProductReader(next, client, time.Minute, logger.NewNopLogger())

	p, err := reader.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), p.ID)

	_, err = reader.GetProduct(context.Background(), 99)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}
