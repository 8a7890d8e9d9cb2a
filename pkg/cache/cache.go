package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/pkg/errors"
)

type Config struct {
	Enable   bool          `yaml:"enable" envconfig:"CACHE_ENABLE" default:"true"`
	TTL      time.Duration `yaml:"ttl" envconfig:"CACHE_TTL" default:"60s"`
	MaxItems int64         `yaml:"maxItems" envconfig:"CACHE_MAX_ITEMS" default:"1000"`
}

// Cache is a read-through cache with a fixed ttl per entry. A nil *Cache is valid and never caches.
type Cache[V any] struct {
	store *ristretto.Cache[string, V]
	ttl   time.Duration
}

// New returns a nil *Cache when caching is disabled or MaxItems is not positive.
func New[V any](cfg Config) (*Cache[V], error) {
	if !cfg.Enable || cfg.MaxItems <= 0 {
		return nil, nil
	}
	store, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters: cfg.MaxItems * 10,
		MaxCost:     cfg.MaxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ristretto.NewCache")
	}
	return &Cache[V]{store: store, ttl: cfg.TTL}, nil
}

// GetOrLoad returns the cached value for key or calls load and caches its result.
// Errors from load are returned as is and never cached.
func (c *Cache[V]) GetOrLoad(key string, load func() (V, error)) (V, error) {
	if c == nil {
		return load()
	}
	if v, ok := c.store.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.store.SetWithTTL(key, v, 1, c.ttl)
	c.store.Wait()
	return v, nil
}

func (c *Cache[V]) Clear() {
	if c == nil {
		return
	}
	c.store.Clear()
}

func (c *Cache[V]) Close() {
	if c == nil {
		return
	}
	c.store.Close()
}
