package dto

import "time"

// ==================== 注册 ====================

// RegisterRequest 注册企业及首个用户
type RegisterRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6,max=100"`
	CompanyName string `json:"company_name" binding:"required,min=2,max=255"`
	CNPJ        string `json:"cnpj" binding:"required,cnpj"`
}

// ==================== 登录 ====================

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=3,max=100"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         *UserInfo `json:"user"`
}

// ==================== Token 刷新 ====================

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse 刷新 Token 响应
type RefreshTokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// ==================== 用户信息 ====================

// CompanyInfo 企业信息
type CompanyInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	CNPJ string `json:"cnpj"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	IsActive  bool         `json:"is_active"`
	CompanyID int64        `json:"company_id"`
	Company   *CompanyInfo `json:"company,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// UpdateProfileRequest 修改个人信息
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// UpdateCompanyRequest 修改企业信息
type UpdateCompanyRequest struct {
	Name string `json:"name" binding:"omitempty,min=2,max=255"`
	CNPJ string `json:"cnpj" binding:"omitempty,cnpj"`
}
