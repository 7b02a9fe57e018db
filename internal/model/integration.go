package model

import (
	"time"
)

// TokenSafetyMargin 视为"即将过期"的安全余量
const TokenSafetyMargin = 5 * time.Minute

// MeliIntegration Mercado Livre 授权凭证，每个企业至多一条
type MeliIntegration struct {
	BaseModel
	CompanyID int64 `gorm:"uniqueIndex;not null" json:"company_id"`

	AccessToken  string  `gorm:"type:text;not null" json:"-"`
	RefreshToken *string `gorm:"type:text" json:"-"`
	TokenType    string  `gorm:"size:50;default:Bearer" json:"token_type"`
	Scope        string  `gorm:"type:text" json:"scope"`
	// MeliUserID 卖家在 Mercado Livre 侧的 user_id
	MeliUserID string     `gorm:"column:user_id;size:50;index" json:"user_id"`
	ExpiresIn  int        `json:"expires_in"`
	ExpiresAt  *time.Time `gorm:"index" json:"expires_at"`
	IsActive   bool       `gorm:"default:true;index" json:"is_active"`

	// 发起授权 / 最近一次手工操作的系统用户
	CreatedBy int64 `json:"created_by"`
	UpdatedBy int64 `json:"updated_by"`
}

func (MeliIntegration) TableName() string { return "meli_integrations" }

// TokenUsable 凭证有效且距过期超过安全余量
func (m *MeliIntegration) TokenUsable(now time.Time) bool {
	if m == nil || !m.IsActive || m.AccessToken == "" || m.ExpiresAt == nil {
		return false
	}
	return m.ExpiresAt.After(now.Add(TokenSafetyMargin))
}

// HasRefreshToken 是否可以刷新
func (m *MeliIntegration) HasRefreshToken() bool {
	return m != nil && m.RefreshToken != nil && *m.RefreshToken != ""
}
