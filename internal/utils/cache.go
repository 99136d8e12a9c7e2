package utils

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheItem[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache 带过期时间的本地 LRU 缓存
type TTLCache[V any] struct {
	lru   *lru.Cache[string, cacheItem[V]]
	now   func() time.Time
	locks sync.Map
}

// NewTTLCache 创建容量为 size 的缓存
func NewTTLCache[V any](size int) (*TTLCache[V], error) {
	l, err := lru.New[string, cacheItem[V]](size)
	if err != nil {
		return nil, err
	}
	return &TTLCache[V]{lru: l, now: time.Now}, nil
}

func (c *TTLCache[V]) Set(key string, value V, ttl time.Duration) {
	c.lru.Add(key, cacheItem[V]{value: value, expiresAt: c.now().Add(ttl)})
}

// Get 不存在或已过期时 ok 为 false
func (c *TTLCache[V]) Get(key string) (value V, ok bool) {
	item, found := c.lru.Get(key)
	if !found {
		return value, false
	}
	if !c.now().Before(item.expiresAt) {
		c.lru.Remove(key)
		return value, false
	}
	return item.value, true
}

func (c *TTLCache[V]) Delete(key string) {
	c.lru.Remove(key)
}

// GetOrLoad 命中缓存直接返回，否则调用 load 并缓存成功的结果
// 同一个 key 的并发加载会串行化
func (c *TTLCache[V]) GetOrLoad(key string, ttl time.Duration, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	mu := c.keyLock(key)
	mu.Lock()
	defer mu.Unlock()

	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.Set(key, v, ttl)
	return v, nil
}

func (c *TTLCache[V]) keyLock(key string) *sync.Mutex {
	mu, _ := c.locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
