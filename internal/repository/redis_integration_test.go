//go:build integration

package repository

// Integration test for the Redis-backed KV against a real Redis via
// testcontainers. Run with: go test -tags integration ./internal/repository/... -v

import (
	"context"
	"testing"
	"time"

	"github.com/jaksoftwares/ReceiptPro/internal/model"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisKVRoundTrip(t *testing.T) {
	ctx := context.Background()

	redisC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisC.Terminate(context.Background()) })

	uri, err := redisC.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := goredis.ParseURL(uri)
	require.NoError(t, err)
	rdb := goredis.NewClient(opts)
	require.NoError(t, rdb.Ping(ctx).Err())

	kv := NewRedisKV(rdb)

	// Missing key reports absence, not an error.
	_, ok, err := kv.Get(ctx, KeyReceipts)
	require.NoError(t, err)
	assert.False(t, ok)

	repo := NewProfileRepository(kv)
	p := &model.BusinessProfile{
		Name:      "Container Co",
		Email:     "box@example.com",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Upsert(ctx, p))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Container Co", all[0].Name)

	require.NoError(t, kv.Del(ctx, KeyBusinessProfiles))
	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
