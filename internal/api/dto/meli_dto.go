package dto

import "time"

// ==================== OAuth ====================

// AuthorizationURLResponse 授权链接
type AuthorizationURLResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}

// CallbackRequest 前端回传授权码
type CallbackRequest struct {
	Code        string `json:"code" binding:"required"`
	State       string `json:"state"`
	RedirectURI string `json:"redirect_uri" binding:"omitempty,url"`
}

// IntegrationInfo 授权凭证（不含 token）
type IntegrationInfo struct {
	ID        int64      `json:"id"`
	CompanyID int64      `json:"company_id"`
	UserID    string     `json:"user_id"`
	TokenType string     `json:"token_type"`
	Scope     string     `json:"scope"`
	ExpiresIn int        `json:"expires_in"`
	ExpiresAt *time.Time `json:"expires_at"`
	IsActive  bool       `json:"is_active"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IntegrationStatusResponse 连接状态
type IntegrationStatusResponse struct {
	Connected  bool       `json:"connected"`
	IsActive   bool       `json:"is_active"`
	TokenValid bool       `json:"token_valid"`
	UserID     string     `json:"user_id,omitempty"`
	Nickname   string     `json:"nickname,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Message    string     `json:"message,omitempty"`
}

// TestConnectionResponse 连接测试
type TestConnectionResponse struct {
	Connected bool   `json:"connected"`
	UserID    string `json:"user_id"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	SiteID    string `json:"site_id"`
}
