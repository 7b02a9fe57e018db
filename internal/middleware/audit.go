package middleware

import (
	"context"
	"reflect"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ==================== 审计上下文 ====================

// AuditContext Key
type auditContextKey struct{}

// AuditInfo 审计信息
type AuditInfo struct {
	UserID    int64
	CompanyID int64
}

// WithAuditInfo 注入审计信息到 context
func WithAuditInfo(ctx context.Context, userID, companyID int64) context.Context {
	return context.WithValue(ctx, auditContextKey{}, &AuditInfo{
		UserID:    userID,
		CompanyID: companyID,
	})
}

// GetAuditInfo 从 context 获取审计信息
func GetAuditInfo(ctx context.Context) *AuditInfo {
	if info, ok := ctx.Value(auditContextKey{}).(*AuditInfo); ok {
		return info
	}
	return nil
}

// GetAuditUserID 从 context 获取审计用户 ID
func GetAuditUserID(ctx context.Context) int64 {
	if info := GetAuditInfo(ctx); info != nil {
		return info.UserID
	}
	return 0
}

// ==================== Gin 中间件 ====================

// AuditContext 审计上下文中间件
// 将 JWT 中的用户信息注入到 request context，供 GORM 回调使用
func AuditContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)

		if userID > 0 {
			ctx := WithAuditInfo(c.Request.Context(), userID, GetCompanyID(c))
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

// ==================== GORM 回调 ====================

// RegisterAuditCallbacks 注册 GORM 审计回调
// 仅对带 CreatedBy / UpdatedBy 字段的模型生效
func RegisterAuditCallbacks(db *gorm.DB) error {
	err := db.Callback().Create().Before("gorm:create").Register("audit:create", func(tx *gorm.DB) {
		userID := auditUserID(tx)
		if userID == 0 {
			return
		}
		setAuditField(tx, "CreatedBy", userID, true)
		setAuditField(tx, "UpdatedBy", userID, false)
	})
	if err != nil {
		return err
	}

	return db.Callback().Update().Before("gorm:update").Register("audit:update", func(tx *gorm.DB) {
		userID := auditUserID(tx)
		if userID == 0 {
			return
		}
		setAuditField(tx, "UpdatedBy", userID, false)
	})
}

func auditUserID(tx *gorm.DB) int64 {
	if tx.Statement.Context == nil {
		return 0
	}
	return GetAuditUserID(tx.Statement.Context)
}

// setAuditField 设置审计字段
// 通过 SetColumn 写入，map 形式的 Updates 同样生效；
// 使用 Select 限定列的更新不会带上审计字段
func setAuditField(tx *gorm.DB, fieldName string, value int64, onlyZero bool) {
	if tx.Statement.Schema == nil {
		return
	}

	field := tx.Statement.Schema.LookUpField(fieldName)
	if field == nil {
		return
	}

	if onlyZero && tx.Statement.ReflectValue.Kind() == reflect.Struct {
		if _, isZero := field.ValueOf(tx.Statement.Context, tx.Statement.ReflectValue); !isZero {
			return
		}
	}

	tx.Statement.SetColumn(field.DBName, value, true)
}
