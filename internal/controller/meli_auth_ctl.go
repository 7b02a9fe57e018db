package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/middleware"
	"meli_dev_v1_202610/internal/service"
)

// ==================== MeliAuthController Mercado Livre 授权 ====================

type MeliAuthController struct {
	integrationService *service.IntegrationService
	logger             *zap.Logger
}

// NewMeliAuthController 创建授权控制器
func NewMeliAuthController(integrationService *service.IntegrationService, logger *zap.Logger) *MeliAuthController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeliAuthController{integrationService: integrationService, logger: logger}
}

// GetAuthorizationURL 获取授权链接
// @Summary 获取 Mercado Livre 授权链接
// @Tags MercadoLivre-Auth
// @Produce json
// @Security BearerAuth
// @Param redirect_uri query string false "回调地址，默认使用配置"
// @Success 200 {object} dto.AuthorizationURLResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/mercado-livre/authorization-url [get]
func (c *MeliAuthController) GetAuthorizationURL(ctx *gin.Context) {
	resp, err := c.integrationService.NewAuthorization(middleware.GetCompanyID(ctx), ctx.Query("redirect_uri"))
	if err != nil {
		fail(ctx, err)
		return
	}
	success(ctx, "success", resp)
}

// Callback 前端回传授权码
// @Summary 提交授权码完成授权
// @Tags MercadoLivre-Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CallbackRequest true "授权码"
// @Success 200 {object} dto.IntegrationInfo
// @Failure 400 {object} map[string]interface{}
// @Router /api/mercado-livre/callback [post]
func (c *MeliAuthController) Callback(ctx *gin.Context) {
	var req dto.CallbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	integ, err := c.integrationService.HandleCallback(ctx.Request.Context(), middleware.GetCompanyID(ctx), &req)
	if err != nil {
		fail(ctx, err)
		return
	}
	success(ctx, "授权成功", service.ToIntegrationInfo(integ))
}

// PublicCallback Mercado Livre 直接重定向的公开回调
// @Summary OAuth 公开回调
// @Tags MercadoLivre-Auth
// @Produce json
// @Param code query string true "授权码"
// @Param state query string true "company_{id}_{nonce}"
// @Success 200 {object} dto.IntegrationInfo
// @Failure 400 {object} map[string]interface{}
// @Router /api/mercado-livre/auth/callback [get]
func (c *MeliAuthController) PublicCallback(ctx *gin.Context) {
	code := ctx.Query("code")
	state := ctx.Query("state")
	if code == "" || state == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "缺少 code 或 state"})
		return
	}

	integ, err := c.integrationService.HandlePublicCallback(ctx.Request.Context(), code, state)
	if err != nil {
		fail(ctx, err)
		return
	}
	success(ctx, "Mercado Livre 授权成功", service.ToIntegrationInfo(integ))
}

// Notifications Mercado Livre webhook，仅记录并确认
// @Summary 接收 Mercado Livre 通知
// @Tags MercadoLivre-Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/mercado-livre/notifications/callback [post]
func (c *MeliAuthController) Notifications(ctx *gin.Context) {
	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		badRequest(ctx, err)
		return
	}

	c.logger.Info("收到 Mercado Livre 通知",
		zap.Any("topic", payload["topic"]),
		zap.Any("resource", payload["resource"]),
		zap.Any("user_id", payload["user_id"]))
	ctx.JSON(http.StatusOK, gin.H{"code": 0, "message": "received"})
}

// Status 连接状态
// @Summary 查询连接状态
// @Tags MercadoLivre-Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.IntegrationStatusResponse
// @Router /api/mercado-livre/status [get]
func (c *MeliAuthController) Status(ctx *gin.Context) {
	resp, err := c.integrationService.ConnectionStatus(ctx.Request.Context(), middleware.GetCompanyID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	success(ctx, "success", resp)
}

// Refresh 手动刷新 token
// @Summary 手动刷新 token
// @Tags MercadoLivre-Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.IntegrationInfo
// @Failure 400 {object} map[string]interface{}
// @Router /api/mercado-livre/refresh [post]
func (c *MeliAuthController) Refresh(ctx *gin.Context) {
	integ, err := c.integrationService.ManualRefresh(ctx.Request.Context(), middleware.GetCompanyID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	success(ctx, "刷新成功", service.ToIntegrationInfo(integ))
}

// Disconnect 断开连接
// @Summary 断开 Mercado Livre 连接
// @Tags MercadoLivre-Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/mercado-livre/disconnect [delete]
func (c *MeliAuthController) Disconnect(ctx *gin.Context) {
	if err := c.integrationService.Disconnect(ctx.Request.Context(), middleware.GetCompanyID(ctx)); err != nil {
		fail(ctx, err)
		return
	}
	success(ctx, "已断开连接", nil)
}

// TestConnection 测试连接
// @Summary 使用当前 token 调用 users/me
// @Tags MercadoLivre-Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TestConnectionResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/mercado-livre/test-connection [get]
func (c *MeliAuthController) TestConnection(ctx *gin.Context) {
	resp, err := c.integrationService.TestConnection(ctx.Request.Context(), middleware.GetCompanyID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	success(ctx, "连接正常", resp)
}
