package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, 0)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "events:list", []byte(`{"ok":true}`), 0))

	got, err := c.Get(ctx, "events:list")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"ok":true}`), got)
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache(time.Minute, 0)
	defer c.Close()

	_, err := c.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, 0)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheDeleteByPrefix(t *testing.T) {
	c := NewMemoryCache(time.Minute, 0)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "events:list:1", []byte("a"), 0))
	require.NoError(t, c.Set(ctx, "events:list:2", []byte("b"), 0))
	require.NoError(t, c.Set(ctx, "sermons:list:1", []byte("c"), 0))

	require.NoError(t, c.DeleteByPrefix(ctx, EntityPrefix("events")))

	_, err := c.Get(ctx, "events:list:1")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = c.Get(ctx, "events:list:2")
	assert.ErrorIs(t, err, ErrCacheMiss)

	got, err := c.Get(ctx, "sermons:list:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), got)
}

func TestMemoryCacheClosed(t *testing.T) {
	c := NewMemoryCache(time.Minute, 0)
	require.NoError(t, c.Close())

	err := c.Set(context.Background(), "k", []byte("v"), 0)
	assert.ErrorIs(t, err, ErrCacheClosed)
	_, err = c.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrCacheClosed)
}

func TestListKey(t *testing.T) {
	assert.Equal(t, "events:list", ListKey("events", "list"))
	assert.Equal(t, "blog_posts:slug:easter-service", ListKey("blog_posts", "slug", "easter-service"))
	assert.Equal(t, "site_settings", ListKey("site_settings"))
}
