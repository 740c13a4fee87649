package app

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rideshare/internal/config"
)

func TestNewRedisClient_Disabled(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.RedisConfig{Enabled: false}, nil)
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_Connects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), config.RedisConfig{Enabled: true, Addr: mr.Addr()}, nil)
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()
}

func TestNewRedisClient_PingFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	client, err := NewRedisClient(context.Background(), config.RedisConfig{Enabled: true, Addr: addr}, nil)
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestKeyCollection(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "idempotency", keyCollection(redis.NewStringCmd(ctx, "get", "idempotency:POST:/v1/rides:abc")))
	assert.Equal(t, "redis", keyCollection(redis.NewStringCmd(ctx, "get", "plain")))
	assert.Equal(t, "redis", keyCollection(redis.NewStatusCmd(ctx, "ping")))
}
