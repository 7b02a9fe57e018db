package middleware

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ==================== 同步类型 ====================

// SyncType 手动同步类型
type SyncType string

const (
	SyncTypeAnnouncement SyncType = "announcement"
	SyncTypeCompetitor   SyncType = "competitor"
	SyncTypeAds          SyncType = "ads"
	SyncTypeOrder        SyncType = "order"
)

// syncIntervals 各同步类型的冷却间隔
var syncIntervals = map[SyncType]time.Duration{
	SyncTypeAnnouncement: 2 * time.Minute,
	SyncTypeCompetitor:   time.Minute,
	SyncTypeAds:          time.Minute,
	SyncTypeOrder:        2 * time.Minute,
}

// fallbackInterval 未登记类型的冷却间隔，可由 sync.cooldown 覆盖
var fallbackInterval = time.Minute

// SetDefaultInterval 设置兜底冷却间隔
func SetDefaultInterval(d time.Duration) {
	if d > 0 {
		fallbackInterval = d
	}
}

// GetInterval 获取同步类型的冷却间隔
func GetInterval(syncType SyncType) time.Duration {
	if d, ok := syncIntervals[syncType]; ok {
		return d
	}
	return fallbackInterval
}

// CompanySyncKey 企业级冷却键，resource 为目录商品 ID / 商品 ID 等细分维度
func CompanySyncKey(companyID int64, syncType SyncType, resource string) string {
	if resource == "" {
		return fmt.Sprintf("company:%d:%s", companyID, syncType)
	}
	return fmt.Sprintf("company:%d:%s:%s", companyID, syncType, resource)
}

// ==================== 企业同步冷却 ====================

// SyncCooldown 每个冷却键一个令牌桶：容量 1，每 interval 补充一次
type SyncCooldown struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewSyncCooldown 创建冷却表
func NewSyncCooldown() *SyncCooldown {
	return &SyncCooldown{limiters: make(map[string]*rate.Limiter)}
}

var companyCooldown = NewSyncCooldown()

// Acquire 尝试占用一次同步机会；被拒绝时返回剩余等待时间
func (s *SyncCooldown) Acquire(key string, interval time.Duration) (bool, time.Duration) {
	now := time.Now()

	s.mu.Lock()
	lim, ok := s.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rate.Every(interval), 1)
		s.limiters[key] = lim
	} else if lim.Limit() != rate.Every(interval) {
		lim.SetLimitAt(now, rate.Every(interval))
	}
	s.mu.Unlock()

	r := lim.ReserveN(now, 1)
	if !r.OK() {
		return false, interval
	}
	if wait := r.DelayFrom(now); wait > 0 {
		r.CancelAt(now)
		return false, wait
	}
	return true, 0
}

// Release 归还冷却，下一次请求立即放行
func (s *SyncCooldown) Release(key string) {
	s.mu.Lock()
	delete(s.limiters, key)
	s.mu.Unlock()
}
