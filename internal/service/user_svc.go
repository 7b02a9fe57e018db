package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/middleware"
	"meli_dev_v1_202610/internal/model"
	"meli_dev_v1_202610/internal/repository"
	"meli_dev_v1_202610/pkg/errs"
	"meli_dev_v1_202610/pkg/utils"
)

// ==================== UserService 用户服务 ====================

// UserService 用户 / 企业服务
type UserService struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) *UserService {
	return &UserService{userRepo: userRepo, companyRepo: companyRepo}
}

// ==================== 认证相关 ====================

// Register 注册企业及首个用户
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserInfo, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	cnpj := utils.NormalizeCNPJ(req.CNPJ)

	// 检查邮箱是否存在
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errs.Internal(err, "注册失败")
	}
	if exists {
		return nil, ErrEmailExists
	}

	// 检查 CNPJ 是否存在
	exists, err = s.companyRepo.ExistsByCNPJ(ctx, cnpj, 0)
	if err != nil {
		return nil, errs.Internal(err, "注册失败")
	}
	if exists {
		return nil, ErrCNPJExists
	}

	// 加密密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Internal(err, "注册失败")
	}

	company := &model.Company{Name: strings.TrimSpace(req.CompanyName), CNPJ: cnpj}
	user := &model.User{
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		HashedPassword: string(hashedPassword),
		IsActive:       true,
	}
	if err := s.companyRepo.CreateWithOwner(ctx, company, user); err != nil {
		return nil, errs.Internal(err, "注册失败")
	}
	user.Company = company

	return s.toUserInfo(user), nil
}

// Login 用户登录
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 查找用户
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, errs.Internal(err, "登录失败")
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// 检查状态
	if !user.IsActive {
		return nil, ErrUserDisabled
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 生成 Token
	accessToken, refreshToken, err := middleware.GenerateTokenPair(user.ID, user.CompanyID, user.Email)
	if err != nil {
		return nil, errs.Internal(err, "生成 Token 失败")
	}

	cfg := middleware.GetJWTConfig()
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresAt:    time.Now().Add(cfg.AccessTokenTTL),
		User:         s.toUserInfo(user),
	}, nil
}

// RefreshToken 刷新 Token
func (s *UserService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	// 解析 Refresh Token
	claims, err := middleware.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// 验证是否为 Refresh Token
	if claims.Subject != middleware.TokenSubjectRefresh {
		return nil, ErrInvalidToken
	}

	// 获取用户信息（确保用户仍然有效）
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errs.Internal(err, "刷新 Token 失败")
	}
	if user == nil || !user.IsActive {
		return nil, ErrUserDisabled
	}

	// 生成新 Token
	accessToken, refreshToken, err := middleware.GenerateTokenPair(user.ID, user.CompanyID, user.Email)
	if err != nil {
		return nil, errs.Internal(err, "生成 Token 失败")
	}

	cfg := middleware.GetJWTConfig()
	return &dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresAt:    time.Now().Add(cfg.AccessTokenTTL),
	}, nil
}

// ==================== 个人 / 企业信息 ====================

// GetProfile 获取当前用户信息
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errs.Internal(err, "查询用户失败")
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.toUserInfo(user), nil
}

// UpdateProfile 修改姓名
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserInfo, error) {
	if err := s.userRepo.UpdateName(ctx, userID, strings.TrimSpace(req.Name)); err != nil {
		return nil, errs.Internal(err, "更新用户失败")
	}
	return s.GetProfile(ctx, userID)
}

// UpdateCompany 修改企业名称 / CNPJ，CNPJ 全局唯一
func (s *UserService) UpdateCompany(ctx context.Context, companyID int64, req *dto.UpdateCompanyRequest) (*dto.CompanyInfo, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, errs.Internal(err, "查询企业失败")
	}
	if company == nil {
		return nil, errs.NotFound("企业不存在")
	}

	fields := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		fields["name"] = name
	}
	if req.CNPJ != "" {
		cnpj := utils.NormalizeCNPJ(req.CNPJ)
		if cnpj != company.CNPJ {
			exists, err := s.companyRepo.ExistsByCNPJ(ctx, cnpj, companyID)
			if err != nil {
				return nil, errs.Internal(err, "查询企业失败")
			}
			if exists {
				return nil, ErrCNPJExists
			}
			fields["cnpj"] = cnpj
		}
	}

	if len(fields) > 0 {
		if err := s.companyRepo.UpdateFields(ctx, companyID, fields); err != nil {
			return nil, errs.Internal(err, "更新企业失败")
		}
		if company, err = s.companyRepo.GetByID(ctx, companyID); err != nil {
			return nil, errs.Internal(err, "查询企业失败")
		}
	}
	return toCompanyInfo(company), nil
}

// ==================== 辅助方法 ====================

// toUserInfo 转换为 DTO
func (s *UserService) toUserInfo(user *model.User) *dto.UserInfo {
	info := &dto.UserInfo{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CompanyID: user.CompanyID,
		CreatedAt: user.CreatedAt,
	}
	if user.Company != nil {
		info.Company = toCompanyInfo(user.Company)
	}
	return info
}

func toCompanyInfo(c *model.Company) *dto.CompanyInfo {
	return &dto.CompanyInfo{ID: c.ID, Name: c.Name, CNPJ: c.CNPJ}
}

// ==================== 错误定义 ====================

var (
	ErrInvalidCredentials = errs.Auth("邮箱或密码错误")
	ErrUserDisabled       = errs.Auth("用户已禁用")
	ErrInvalidToken       = errs.Auth("Token 无效")
	ErrUserNotFound       = errs.NotFound("用户不存在")
	ErrEmailExists        = errs.Validation("邮箱已注册")
	ErrCNPJExists         = errs.Validation("CNPJ 已注册")
)
