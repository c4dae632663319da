package external

import (
	"context"
	"sync"
	"time"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

// MemoryCacheProvider implements CacheProvider port with a process-local map
type MemoryCacheProvider struct {
	data    map[string]memoryCacheItem
	mutex   sync.RWMutex
	metrics ports.CacheMetrics
	now     func() time.Time
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCacheProvider creates an empty in-memory cache reporting to metrics
func NewMemoryCacheProvider(metrics ports.CacheMetrics) *MemoryCacheProvider {
	return &MemoryCacheProvider{
		data:    make(map[string]memoryCacheItem),
		metrics: metrics,
		now:     time.Now,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}
	defer c.observe("get", time.Now())

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists || c.now().After(item.expiresAt) {
		if exists {
			c.evict(key, item.expiresAt)
		}
		c.metrics.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.metrics.RecordHit()
	return item.data, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}
	defer c.observe("set", time.Now())

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = memoryCacheItem{
		data:      value,
		expiresAt: c.now().Add(ttl),
	}

	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists {
		return false, nil
	}

	return !c.now().After(item.expiresAt), nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]memoryCacheItem)
	return nil
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCacheProvider) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// evict drops an expired entry unless it was refreshed in the meantime
func (c *MemoryCacheProvider) evict(key string, expiresAt time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if current, ok := c.data[key]; ok && current.expiresAt.Equal(expiresAt) {
		delete(c.data, key)
	}
}

func (c *MemoryCacheProvider) observe(operation string, start time.Time) {
	c.metrics.RecordOperation(operation, time.Since(start))
}
