package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== 同步限流中间件 ====================

// SyncRateLimit 同步限流中间件
// 按企业 + 同步类型（+ 可选路径参数）维度限流，需挂在 JWTAuth 之后
//
// 使用示例:
//
//	api.POST("/catalog-competitors/sync/:product_id",
//	    middleware.SyncRateLimit(middleware.SyncTypeCompetitor, 0, "product_id"),
//	    ctl.SyncCompetitors,
//	)
//
// 参数:
//   - syncType: 同步类型
//   - interval: 冷却间隔，0 表示使用默认值
//   - param: 参与限流键的路径参数名，可为空
func SyncRateLimit(syncType SyncType, interval time.Duration, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := interval
		if d == 0 {
			d = GetInterval(syncType)
		}

		resource := ""
		if param != "" {
			resource = c.Param(param)
		}
		key := CompanySyncKey(GetCompanyID(c), syncType, resource)

		allowed, wait := companyCooldown.Acquire(key, d)
		if !allowed {
			retryAfter := int(wait.Seconds())
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    429,
				"message": formatRetryMessage(wait),
				"data": gin.H{
					"retry_after": retryAfter,
					"sync_type":   syncType,
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ==================== 辅助函数 ====================

// formatRetryMessage 格式化重试提示信息
func formatRetryMessage(d time.Duration) string {
	seconds := int(d.Seconds())

	if seconds < 60 {
		return fmt.Sprintf("同步冷却中，请 %d 秒后重试", seconds)
	}

	minutes := seconds / 60
	remainingSeconds := seconds % 60

	if remainingSeconds == 0 {
		return fmt.Sprintf("同步冷却中，请 %d 分钟后重试", minutes)
	}

	return fmt.Sprintf("同步冷却中，请 %d 分 %d 秒后重试", minutes, remainingSeconds)
}

// ResetSyncLimit 重置同步限流
func ResetSyncLimit(companyID int64, syncType SyncType, resource string) {
	companyCooldown.Release(CompanySyncKey(companyID, syncType, resource))
}
