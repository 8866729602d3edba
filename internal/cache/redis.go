package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/dapperagenda/barber-api/internal/config"
)

const slugTTL = 10 * time.Minute

type Client struct {
	rdb *redis.Client
}

// NewClient connects to Redis. Returns (nil, nil) when no address is
// configured so the API can run without a cache.
func NewClient(cfg config.RedisConfig) (*Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetShopID resolves a cached public slug. Returns 0 on miss.
func (c *Client) GetShopID(ctx context.Context, slug string) uint {
	v, err := c.rdb.Get(ctx, "shop:slug:"+slug).Result()
	if err != nil {
		return 0
	}
	id, _ := strconv.ParseUint(v, 10, 64)
	return uint(id)
}

func (c *Client) SetShopID(ctx context.Context, slug string, id uint) {
	c.rdb.Set(ctx, "shop:slug:"+slug, strconv.FormatUint(uint64(id), 10), slugTTL)
}

// InvalidateSlug drops a cached slug after the shop renames it.
func (c *Client) InvalidateSlug(ctx context.Context, slug string) {
	c.rdb.Del(ctx, "shop:slug:"+slug)
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
