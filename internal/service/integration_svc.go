package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/model"
	"meli_dev_v1_202610/internal/repository"
	"meli_dev_v1_202610/pkg/errs"
	"meli_dev_v1_202610/pkg/meli"
	"meli_dev_v1_202610/pkg/utils"
)

// statePrefix OAuth state 格式: company_{id}_{nonce}
const statePrefix = "company_"

// TokenProvider 同步 / 透传接口获取可用凭证
type TokenProvider interface {
	EnsureValidToken(ctx context.Context, companyID int64) (*model.MeliIntegration, error)
}

// ==================== IntegrationService 授权凭证生命周期 ====================

type IntegrationService struct {
	repo   repository.IntegrationRepository
	client *meli.Client
	logger *zap.Logger
	now    func() time.Time

	// refreshLocks company_id -> *sync.Mutex
	// refresh_token 只能使用一次，同一企业的刷新必须串行
	refreshLocks sync.Map
}

// NewIntegrationService 创建授权服务
func NewIntegrationService(repo repository.IntegrationRepository, client *meli.Client, logger *zap.Logger) *IntegrationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntegrationService{
		repo:   repo,
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// ==================== OAuth 授权码流程 ====================

// BuildAuthorizationURL 生成授权链接，不产生副作用
func (s *IntegrationService) BuildAuthorizationURL(state, redirectURI string) (string, error) {
	return s.client.AuthorizationURL(state, redirectURI)
}

// NewAuthorization 为企业生成 state 并返回授权链接
// nonce 存入内存缓存 10 分钟，供公开回调校验
func (s *IntegrationService) NewAuthorization(companyID int64, redirectURI string) (*dto.AuthorizationURLResponse, error) {
	nonce := uuid.NewString()
	state := fmt.Sprintf("%s%d_%s", statePrefix, companyID, nonce)

	authURL, err := s.BuildAuthorizationURL(state, redirectURI)
	if err != nil {
		return nil, err
	}
	utils.SetCache(nonce, strconv.FormatInt(companyID, 10))

	return &dto.AuthorizationURLResponse{AuthorizationURL: authURL, State: state}, nil
}

// ExchangeCodeForToken 授权码换取 token，只请求一次
func (s *IntegrationService) ExchangeCodeForToken(ctx context.Context, code, redirectURI string) (*meli.TokenResponse, error) {
	return s.client.ExchangeCode(ctx, code, redirectURI)
}

// RefreshAccessToken 刷新 token，响应不含新 refresh_token 时沿用旧值
func (s *IntegrationService) RefreshAccessToken(ctx context.Context, refreshToken string) (*meli.TokenResponse, error) {
	return s.client.RefreshToken(ctx, refreshToken)
}

// SaveCredential 按企业 upsert 凭证并激活
func (s *IntegrationService) SaveCredential(ctx context.Context, companyID int64, tok *meli.TokenResponse) (*model.MeliIntegration, error) {
	expiresAt := s.now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	tokenType := tok.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	integ := &model.MeliIntegration{
		CompanyID:   companyID,
		AccessToken: tok.AccessToken,
		TokenType:   tokenType,
		Scope:       tok.Scope,
		MeliUserID:  tok.UserID,
		ExpiresIn:   tok.ExpiresIn,
		ExpiresAt:   &expiresAt,
		IsActive:    true,
	}
	if tok.RefreshToken != "" {
		rt := tok.RefreshToken
		integ.RefreshToken = &rt
	}

	saved, err := s.repo.Save(ctx, integ)
	if err != nil {
		return nil, errs.Internal(err, "保存授权凭证失败")
	}
	return saved, nil
}

// ParseState 解析 company_{id}_{nonce}
func ParseState(state string) (companyID int64, nonce string, ok bool) {
	if !strings.HasPrefix(state, statePrefix) {
		return 0, "", false
	}
	parts := strings.SplitN(strings.TrimPrefix(state, statePrefix), "_", 2)
	if len(parts) != 2 || parts[1] == "" {
		return 0, "", false
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, "", false
	}
	return id, parts[1], true
}

// HandleCallback 已登录用户回传授权码
// state 可选，提供时必须属于当前企业
func (s *IntegrationService) HandleCallback(ctx context.Context, companyID int64, req *dto.CallbackRequest) (*model.MeliIntegration, error) {
	if req.State != "" {
		stateCompany, nonce, ok := ParseState(req.State)
		if !ok || stateCompany != companyID {
			return nil, errs.Validation("state 与当前企业不匹配")
		}
		utils.DeleteCache(nonce)
	}
	return s.completeAuthorization(ctx, companyID, req.Code, req.RedirectURI)
}

// HandlePublicCallback Mercado Livre 直接重定向回来的公开回调
// nonce 必须存在于缓存中，只能使用一次
func (s *IntegrationService) HandlePublicCallback(ctx context.Context, code, state string) (*model.MeliIntegration, error) {
	companyID, nonce, ok := ParseState(state)
	if !ok {
		return nil, errs.Validation("state 格式无效")
	}
	cached, found := utils.TakeCache(nonce)
	if !found || cached != strconv.FormatInt(companyID, 10) {
		return nil, errs.Validation("授权超时或 state 无效，请重新发起")
	}
	return s.completeAuthorization(ctx, companyID, code, "")
}

func (s *IntegrationService) completeAuthorization(ctx context.Context, companyID int64, code, redirectURI string) (*model.MeliIntegration, error) {
	tok, err := s.ExchangeCodeForToken(ctx, code, redirectURI)
	if err != nil {
		return nil, err
	}

	// token 响应不含 user_id 时补查 users/me
	if tok.UserID == "" {
		me, err := s.client.GetMe(ctx, tok.AccessToken)
		if err != nil {
			s.logger.Warn("获取授权用户信息失败", zap.Int64("company_id", companyID), zap.Error(err))
		} else {
			tok.UserID = me.IDString()
		}
	}

	integ, err := s.SaveCredential(ctx, companyID, tok)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Mercado Livre 授权成功",
		zap.Int64("company_id", companyID),
		zap.String("meli_user_id", integ.MeliUserID))
	return integ, nil
}

// ==================== Token 获取 ====================

// GetValidToken 仅在凭证有效且距过期超过 5 分钟时返回 token，从不刷新
// 无可用 token 时返回空字符串
func (s *IntegrationService) GetValidToken(ctx context.Context, companyID int64) (string, error) {
	integ, err := s.repo.GetActiveByCompany(ctx, companyID)
	if err != nil {
		return "", errs.Internal(err, "查询授权凭证失败")
	}
	if !integ.TokenUsable(s.now()) {
		return "", nil
	}
	return integ.AccessToken, nil
}

// EnsureValidToken 返回可用凭证，必要时刷新一次
func (s *IntegrationService) EnsureValidToken(ctx context.Context, companyID int64) (*model.MeliIntegration, error) {
	integ, err := s.repo.GetActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, errs.Internal(err, "查询授权凭证失败")
	}
	if integ == nil {
		return nil, errs.NotFound("未连接 Mercado Livre 账号")
	}
	if integ.TokenUsable(s.now()) {
		return integ, nil
	}
	if !integ.HasRefreshToken() {
		return nil, errs.Auth("Mercado Livre 授权已过期，请重新授权")
	}

	refreshed, err := s.RefreshCredential(ctx, integ)
	if err != nil {
		s.logger.Warn("自动刷新 token 失败", zap.Int64("company_id", companyID), zap.Error(err))
		return nil, errs.Auth("Mercado Livre 授权已过期，请重新授权")
	}
	return refreshed, nil
}

// RefreshCredential 刷新指定凭证并保存
// 定时任务与请求内的自动刷新可能同时触发，拿到锁后若凭证已被换新则直接返回
func (s *IntegrationService) RefreshCredential(ctx context.Context, integ *model.MeliIntegration) (*model.MeliIntegration, error) {
	if !integ.HasRefreshToken() {
		return nil, errs.Validation("没有可用的 refresh_token")
	}

	mu := s.refreshLock(integ.CompanyID)
	mu.Lock()
	defer mu.Unlock()

	latest, err := s.repo.GetActiveByCompany(ctx, integ.CompanyID)
	if err != nil {
		return nil, errs.Internal(err, "查询授权凭证失败")
	}
	if latest == nil {
		return nil, errs.NotFound("未连接 Mercado Livre 账号")
	}
	if refreshedSince(integ, latest) && latest.TokenUsable(s.now()) {
		return latest, nil
	}
	if !latest.HasRefreshToken() {
		return nil, errs.Validation("没有可用的 refresh_token")
	}

	tok, err := s.RefreshAccessToken(ctx, *latest.RefreshToken)
	if err != nil {
		return nil, err
	}
	if tok.UserID == "" {
		tok.UserID = latest.MeliUserID
	}
	if tok.Scope == "" {
		tok.Scope = latest.Scope
	}
	return s.SaveCredential(ctx, latest.CompanyID, tok)
}

func (s *IntegrationService) refreshLock(companyID int64) *sync.Mutex {
	mu, _ := s.refreshLocks.LoadOrStore(companyID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// refreshedSince 调用方读到凭证之后，库里的 token 是否已被换过
func refreshedSince(seen, latest *model.MeliIntegration) bool {
	if seen.AccessToken != latest.AccessToken {
		return true
	}
	return seen.HasRefreshToken() && latest.HasRefreshToken() && *seen.RefreshToken != *latest.RefreshToken
}

// ==================== 连接管理 ====================

// ConnectionStatus 连接状态，connected 需要 users/me 实际可用
func (s *IntegrationService) ConnectionStatus(ctx context.Context, companyID int64) (*dto.IntegrationStatusResponse, error) {
	integ, err := s.repo.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, errs.Internal(err, "查询授权凭证失败")
	}
	if integ == nil {
		return &dto.IntegrationStatusResponse{Message: "未连接 Mercado Livre 账号"}, nil
	}

	resp := &dto.IntegrationStatusResponse{
		IsActive:   integ.IsActive,
		TokenValid: integ.TokenUsable(s.now()),
		UserID:     integ.MeliUserID,
		ExpiresAt:  integ.ExpiresAt,
	}
	if !integ.IsActive {
		resp.Message = "连接已断开"
		return resp, nil
	}
	if !resp.TokenValid {
		resp.Message = "token 已过期，请刷新或重新授权"
		return resp, nil
	}

	me, err := s.client.GetMe(ctx, integ.AccessToken)
	if err != nil {
		resp.Message = "连接测试失败: " + errs.PublicMessage(err)
		return resp, nil
	}
	resp.Connected = true
	resp.Nickname = me.Nickname
	return resp, nil
}

// ManualRefresh 手动刷新 token
func (s *IntegrationService) ManualRefresh(ctx context.Context, companyID int64) (*model.MeliIntegration, error) {
	integ, err := s.repo.GetActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, errs.Internal(err, "查询授权凭证失败")
	}
	if integ == nil {
		return nil, errs.Validation("未连接 Mercado Livre 账号")
	}
	if !integ.HasRefreshToken() {
		return nil, errs.Validation("没有可用的 refresh_token，请重新授权")
	}
	return s.RefreshCredential(ctx, integ)
}

// Disconnect 断开连接，保留记录
func (s *IntegrationService) Disconnect(ctx context.Context, companyID int64) error {
	integ, err := s.repo.GetByCompany(ctx, companyID)
	if err != nil {
		return errs.Internal(err, "查询授权凭证失败")
	}
	if integ == nil {
		return errs.NotFound("未找到 Mercado Livre 连接")
	}
	if err := s.repo.Deactivate(ctx, companyID); err != nil {
		return errs.Internal(err, "断开连接失败")
	}
	s.logger.Info("Mercado Livre 连接已断开", zap.Int64("company_id", companyID))
	return nil
}

// TestConnection 使用当前 token 调用 users/me
func (s *IntegrationService) TestConnection(ctx context.Context, companyID int64) (*dto.TestConnectionResponse, error) {
	token, err := s.GetValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, errs.Validation("没有可用的 token，请先授权或刷新")
	}
	me, err := s.client.GetMe(ctx, token)
	if err != nil {
		return nil, err
	}
	return &dto.TestConnectionResponse{
		Connected: true,
		UserID:    me.IDString(),
		Nickname:  me.Nickname,
		Email:     me.Email,
		SiteID:    me.SiteID,
	}, nil
}

// GetIntegration 当前企业的凭证信息（不含 token）
func (s *IntegrationService) GetIntegration(ctx context.Context, companyID int64) (*dto.IntegrationInfo, error) {
	integ, err := s.repo.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, errs.Internal(err, "查询授权凭证失败")
	}
	if integ == nil {
		return nil, errs.NotFound("未连接 Mercado Livre 账号")
	}
	return ToIntegrationInfo(integ), nil
}

// ToIntegrationInfo 隐藏 token
func ToIntegrationInfo(integ *model.MeliIntegration) *dto.IntegrationInfo {
	return &dto.IntegrationInfo{
		ID:        integ.ID,
		CompanyID: integ.CompanyID,
		UserID:    integ.MeliUserID,
		TokenType: integ.TokenType,
		Scope:     integ.Scope,
		ExpiresIn: integ.ExpiresIn,
		ExpiresAt: integ.ExpiresAt,
		IsActive:  integ.IsActive,
		UpdatedAt: integ.UpdatedAt,
	}
}

// ListExpiring 即将过期的凭证（定时任务使用）
func (s *IntegrationService) ListExpiring(ctx context.Context, within time.Duration) ([]model.MeliIntegration, error) {
	return s.repo.FindExpiring(ctx, s.now().Add(within))
}

// ListActive 所有启用的凭证
func (s *IntegrationService) ListActive(ctx context.Context) ([]model.MeliIntegration, error) {
	return s.repo.ListActive(ctx)
}
