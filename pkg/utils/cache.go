package utils

import (
	"sync"
	"time"
)

// DefaultCacheTTL 默认 10 分钟过期，足够完成授权流程
const DefaultCacheTTL = 10 * time.Minute

// 使用 sync.Map 保证并发安全
var (
	memoryCache sync.Map
)

// cacheItem 内部结构，包含值和过期时间
type cacheItem struct {
	value      string
	expiration time.Time
}

// SetCache 设置缓存
// key: OAuth state nonce
// value: company_id
func SetCache(key string, value string) {
	SetCacheTTL(key, value, DefaultCacheTTL)
}

// SetCacheTTL 指定过期时间
func SetCacheTTL(key, value string, ttl time.Duration) {
	memoryCache.Store(key, cacheItem{
		value:      value,
		expiration: time.Now().Add(ttl),
	})
}

// GetCache 获取缓存并验证是否过期
func GetCache(key string) (string, bool) {
	val, ok := memoryCache.Load(key)
	if !ok {
		return "", false
	}

	item := val.(cacheItem)

	// 检查是否过期
	if time.Now().After(item.expiration) {
		memoryCache.Delete(key) // 懒删除
		return "", false
	}

	return item.value, true
}

// TakeCache 取出并删除 (用完即焚)
func TakeCache(key string) (string, bool) {
	val, ok := memoryCache.LoadAndDelete(key)
	if !ok {
		return "", false
	}
	item := val.(cacheItem)
	if time.Now().After(item.expiration) {
		return "", false
	}
	return item.value, true
}

// DeleteCache 删除缓存
func DeleteCache(key string) {
	memoryCache.Delete(key)
}
