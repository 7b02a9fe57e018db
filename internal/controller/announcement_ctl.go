package controller

import (
	"github.com/gin-gonic/gin"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/middleware"
	"meli_dev_v1_202610/internal/service"
)

// AnnouncementController 本地商品镜像
type AnnouncementController struct {
	listingService *service.ListingService
}

func NewAnnouncementController(listingService *service.ListingService) *AnnouncementController {
	return &AnnouncementController{listingService: listingService}
}

// ListAnnouncements 本地商品列表
// @Summary 本地商品列表
// @Tags MercadoLivre-Announcement
// @Produce json
// @Security BearerAuth
// @Param limit query int false "每页数量 (1-100)" default(50)
// @Param offset query int false "偏移" default(0)
// @Param status query string false "状态"
// @Success 200 {object} dto.AnnouncementListResponse
// @Router /api/mercado-livre/announcements [get]
func (ctrl *AnnouncementController) ListAnnouncements(c *gin.Context) {
	var req dto.AnnouncementListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := ctrl.listingService.ListAnnouncements(c.Request.Context(), middleware.GetCompanyID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", resp)
}

// GetAnnouncement 本地商品详情
// @Summary 本地商品详情
// @Tags MercadoLivre-Announcement
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品 ID"
// @Success 200 {object} model.Announcement
// @Failure 404 {object} map[string]interface{}
// @Router /api/mercado-livre/announcements/{id} [get]
func (ctrl *AnnouncementController) GetAnnouncement(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}

	a, err := ctrl.listingService.GetAnnouncement(c.Request.Context(), middleware.GetCompanyID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", a)
}

// SyncAnnouncements 同步卖家全部商品
// @Summary 从 Mercado Livre 同步商品
// @Tags MercadoLivre-Announcement
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SyncAnnouncementsResult
// @Failure 429 {object} map[string]interface{} "限流中"
// @Router /api/mercado-livre/sync-announcements [post]
func (ctrl *AnnouncementController) SyncAnnouncements(c *gin.Context) {
	companyID := middleware.GetCompanyID(c)

	result, err := ctrl.listingService.SyncAnnouncements(c.Request.Context(), companyID)
	if err != nil {
		// 失败不占用冷却时间
		middleware.ResetSyncLimit(companyID, middleware.SyncTypeAnnouncement, "")
		fail(c, err)
		return
	}
	success(c, "同步完成", result)
}

// UpdateAdditionalInfo 运营字段
// @Summary 更新商品成本、税费等运营字段
// @Tags MercadoLivre-Announcement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品 ID"
// @Param request body dto.AdditionalInfoRequest true "运营字段"
// @Success 200 {object} model.Announcement
// @Failure 400 {object} map[string]interface{}
// @Router /api/mercado-livre/announcements/{id}/additional-info [put]
func (ctrl *AnnouncementController) UpdateAdditionalInfo(c *gin.Context) {
	itemID, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var req dto.AdditionalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	a, err := ctrl.listingService.UpdateAdditionalInfo(c.Request.Context(), middleware.GetCompanyID(c), itemID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "更新成功", a)
}
