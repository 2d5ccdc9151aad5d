// Package cache wraps the optional redis connection.
package cache

import (
	"context"
	"log/slog"
	"time"

	"mimapa/config"
	"mimapa/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyNamespace = "mimapa"

// ErrMiss is returned when a key is absent.
var ErrMiss = errors.New("cache miss")

// Client is a namespaced key/value store. A Client without a connection is disabled:
// reads miss and writes are dropped.
type Client struct {
	raw *redis.Client
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to redis when it is configured
func New(params Params) *Client {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Address == "" {
		params.Logger.Info("Redis not configured, cache disabled")

		return &Client{}
	}

	raw := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is an optimization; an unreachable redis only degrades it.
			if err := raw.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return raw.Close()
		},
	})

	return &Client{raw: raw}
}

// NewWithClient wraps an existing connection
func NewWithClient(raw *redis.Client) *Client {
	return &Client{raw: raw}
}

// Enabled reports whether a connection is configured
func (c *Client) Enabled() bool {
	return c != nil && c.raw != nil
}

// Key joins parts under the application namespace
func Key(parts ...string) string {
	key := keyNamespace
	for _, part := range parts {
		key += ":" + part
	}

	return key
}

// Get returns the value stored at key or ErrMiss
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if !c.Enabled() {
		return nil, ErrMiss
	}

	value, err := c.raw.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return value, nil
}

// Set stores value at key with ttl
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}

	return errors.Wrapf(c.raw.Set(ctx, key, value, ttl).Err(), "redis set %s", key)
}

// SetNX stores value only when key is absent and reports whether it did.
// A disabled client always reports a first write.
func (c *Client) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	if !c.Enabled() {
		return true, nil
	}

	stored, err := c.raw.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, errors.Wrapf(err, "redis setnx %s", key)
	}

	return stored, nil
}

// Ping checks connectivity; a disabled client is always healthy
func (c *Client) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}

	return errors.WithStack(c.raw.Ping(ctx).Err())
}
