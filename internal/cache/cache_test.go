package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
)

// unreachable points at a port nothing listens on so every call fails fast.
func unreachable() *Client {
	return NewWithClient(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	}))
}

func TestClient_NilIsNoop(t *testing.T) {
	var c *Client
	ctx := context.Background()

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Close())
}

func TestClient_FailsSafeWhenUnreachable(t *testing.T) {
	c := unreachable()
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	c := unreachable()
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, _ = c.Get(ctx, "k")
	}
	assert.Equal(t, gobreaker.StateOpen, c.breaker.State())
}
