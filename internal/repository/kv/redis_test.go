package kv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	values map[string]string
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string]string)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.values[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedis_PrefixesKeys(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	repo := NewRedis(client, "", "demo")

	require.NoError(t, repo.Set(ctx, KeyCart, `[]`))
	assert.Equal(t, `[]`, client.values["storefront:demo:cart"])

	v, ok, err := repo.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)

	require.NoError(t, repo.Remove(ctx, KeyCart))
	_, ok, err = repo.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_GetError(t *testing.T) {
	client := newFakeRedis()
	client.getErr = errors.New("connection refused")
	repo := NewRedis(client, "app:", "demo")

	_, ok, err := repo.Get(context.Background(), KeyCart)
	assert.False(t, ok)
	assert.EqualError(t, err, "connection refused")
}
