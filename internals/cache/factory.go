package cache

import (
	"log"
	"os"
	"time"
)

// NewFromEnv picks the backend from CACHE_BACKEND (memory|redis). A broken
// Redis config degrades to the memory backend rather than failing startup;
// the cache is an optimization, not a dependency.
func NewFromEnv() Cacher {
	ttl := 5 * time.Minute
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}

	if os.Getenv("CACHE_BACKEND") == "redis" {
		url := os.Getenv("REDIS_URL")
		prefix := os.Getenv("CACHE_PREFIX")
		if prefix == "" {
			prefix = "churchheroes:"
		}
		rc, err := NewRedisCache(url, prefix, ttl)
		if err != nil {
			log.Printf("[WARN] redis cache unavailable (%v), falling back to memory", err)
		} else {
			log.Println("✅ redis cache connected")
			return rc
		}
	}

	return NewMemoryCache(ttl, time.Minute)
}
