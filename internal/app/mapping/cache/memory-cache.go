package mapping_cache

import (
	"context"
	"sync"
	"time"

	"github.com/init-pkg/column-mapper/domain/app"
)

type memEntry struct {
	result  app.MappingResult
	expires time.Time
}

// MemoryCache keeps results in process, used when Redis is disabled.
type MemoryCache struct {
	m   sync.Map
	ttl time.Duration
	now func() time.Time
}

var _ app.MappingCache = &MemoryCache{}

func NewMemory(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, key string) (app.MappingResult, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return app.MappingResult{}, false
	}
	e := v.(memEntry)
	if c.ttl > 0 && c.now().After(e.expires) {
		c.m.Delete(key)
		return app.MappingResult{}, false
	}
	return e.result, true
}

func (c *MemoryCache) Set(_ context.Context, key string, result app.MappingResult) {
	c.m.Store(key, memEntry{result: result, expires: c.now().Add(c.ttl)})
}
