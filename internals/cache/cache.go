// Package cache backs the public read endpoints. Every list/read response is
// stored under an entity-prefixed key; a successful admin write invalidates
// the whole entity prefix so the next read refetches. Invalidation is coarse
// on purpose: no item-level patching, last write wins.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	ErrCacheMiss   = errors.New("cache: miss")
	ErrCacheClosed = errors.New("cache: closed")
)

// Cacher is implemented by the memory and redis backends.
type Cacher interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Close() error
}

// ListKey builds "<entity>:<part>:<part>..." keys for list reads.
func ListKey(entity string, parts ...string) string {
	key := entity
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

// EntityPrefix is the invalidation scope for one entity.
func EntityPrefix(entity string) string {
	return entity + ":"
}

// InvalidateEntity drops every cached read for the entity. Called after each
// successful insert/update/delete.
func InvalidateEntity(ctx context.Context, c Cacher, entity string) {
	if c == nil {
		return
	}
	_ = c.DeleteByPrefix(ctx, EntityPrefix(entity))
}
