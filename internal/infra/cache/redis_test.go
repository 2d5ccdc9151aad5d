package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	raw := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = raw.Close() })

	return NewWithClient(raw), server
}

func TestClient_SetGet(t *testing.T) {
	ctx := context.Background()
	client, server := newTestClient(t)

	key := Key("geocode", "search", "madrid")
	assert.Equal(t, "mimapa:geocode:search:madrid", key)

	_, err := client.Get(ctx, key)
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, client.Set(ctx, key, []byte(`{"found":true}`), time.Minute))

	value, err := client.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"found":true}`, string(value))

	server.FastForward(2 * time.Minute)
	_, err = client.Get(ctx, key)
	assert.ErrorIs(t, err, ErrMiss)

	assert.NoError(t, client.Ping(ctx))
}

func TestClient_Disabled(t *testing.T) {
	ctx := context.Background()
	client := &Client{}

	assert.False(t, client.Enabled())
	assert.NoError(t, client.Set(ctx, "k", []byte("v"), time.Minute))
	_, err := client.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, client.Ping(ctx))
}

func TestClient_ConnectionError(t *testing.T) {
	client, server := newTestClient(t)
	server.Close()

	_, err := client.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
}

func TestClient_SetNX(t *testing.T) {
	ctx := context.Background()
	client, server := newTestClient(t)
	key := Key("events", "msg-1")

	first, err := client.SetNX(ctx, key, []byte("1"), time.Minute)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := client.SetNX(ctx, key, []byte("1"), time.Minute)
	require.NoError(t, err)
	assert.False(t, again)

	server.FastForward(2 * time.Minute)
	afterExpiry, err := client.SetNX(ctx, key, []byte("1"), time.Minute)
	require.NoError(t, err)
	assert.True(t, afterExpiry)

	disabled, err := (&Client{}).SetNX(ctx, key, []byte("1"), time.Minute)
	require.NoError(t, err)
	assert.True(t, disabled)
}
