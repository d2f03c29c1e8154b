package lib

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisClientRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer NewRedisClient(nil)

	ctx := context.Background()
	err := rdb.Set(ctx, "kitchen:pending:1", `[{"id":1}]`, 5*time.Second).Err()
	assert.Nil(t, err)

	val, err := rdb.Get(ctx, "kitchen:pending:1").Result()
	assert.Nil(t, err)
	assert.Equal(t, `[{"id":1}]`, val)

	mr.FastForward(6 * time.Second)
	_, err = rdb.Get(ctx, "kitchen:pending:1").Result()
	assert.Equal(t, redis.Nil, err)
}

func TestGetRedisClientReturnsInjected(t *testing.T) {
	mr := miniredis.RunT(t)
	injected := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	NewRedisClient(injected)
	defer NewRedisClient(nil)

	assert.Equal(t, injected, GetRedisClient())
}
