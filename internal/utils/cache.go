package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/patrickmn/go-cache"
)

// Cache 全局缓存实例（设置快照、面板统计等短期数据）
var Cache *cache.Cache

// InitCache 初始化缓存
func InitCache() {
	// 默认过期时间5分钟，清理间隔10分钟
	Cache = cache.New(5*time.Minute, 10*time.Minute)
}

// CacheGet 获取缓存值
func CacheGet(key string) (interface{}, bool) {
	return Cache.Get(key)
}

// CacheSet 设置缓存值
func CacheSet(key string, value interface{}, duration time.Duration) {
	Cache.Set(key, value, duration)
}

// CacheDelete 删除缓存
func CacheDelete(key string) {
	Cache.Delete(key)
}

// cacheItem 包装实际的数据，增加过期时间
type cacheItem[T any] struct {
	Value     T
	ExpiredAt time.Time
}

// TTLCache 带过期时间的 LRU 缓存（元数据抓取结果等远端数据）
type TTLCache[T any] struct {
	storage *lru.Cache[string, cacheItem[T]]
	ttl     time.Duration
}

// NewTTLCache 初始化，size 是最大缓存条数，ttl 是数据有效期
func NewTTLCache[T any](size int, ttl time.Duration) *TTLCache[T] {
	// lru.New 是线程安全的
	c, _ := lru.New[string, cacheItem[T]](size)
	return &TTLCache[T]{
		storage: c,
		ttl:     ttl,
	}
}

// Set 写入（LRU 的 Add 会自动覆盖同键旧值）
func (c *TTLCache[T]) Set(key string, value T) {
	c.storage.Add(key, cacheItem[T]{
		Value:     value,
		ExpiredAt: time.Now().Add(c.ttl),
	})
}

// Get 读取，过期条目当作未命中并顺手删除
func (c *TTLCache[T]) Get(key string) (T, bool) {
	var zero T
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}

	if time.Now().After(item.ExpiredAt) {
		c.storage.Remove(key)
		return zero, false
	}

	return item.Value, true
}

// Delete 删除
func (c *TTLCache[T]) Delete(key string) {
	c.storage.Remove(key)
}

// Len 当前条数
func (c *TTLCache[T]) Len() int {
	return c.storage.Len()
}
