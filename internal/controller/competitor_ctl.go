package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/middleware"
	"meli_dev_v1_202610/internal/service"
)

// CompetitorController 目录竞品
type CompetitorController struct {
	competitorService *service.CompetitorService
}

func NewCompetitorController(competitorService *service.CompetitorService) *CompetitorController {
	return &CompetitorController{competitorService: competitorService}
}

// GetLiveCompetitors 实时竞品
// @Summary 实时获取目录商品竞品（按价格升序，不落库）
// @Tags MercadoLivre-Competitor
// @Produce json
// @Security BearerAuth
// @Param id path string true "目录商品 ID"
// @Success 200 {object} dto.LiveCompetitorsResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/mercado-livre/catalog-competitors/{id} [get]
func (ctrl *CompetitorController) GetLiveCompetitors(c *gin.Context) {
	productID, ok := pathParam(c, "id")
	if !ok {
		return
	}

	resp, err := ctrl.competitorService.FetchLiveCompetitors(c.Request.Context(), middleware.GetCompanyID(c), productID)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", resp)
}

// SyncCompetitors 同步竞品
// @Summary 同步目录商品竞品，移除已下架的竞品
// @Tags MercadoLivre-Competitor
// @Produce json
// @Security BearerAuth
// @Param product_id path string true "目录商品 ID"
// @Param allow_empty query bool false "上游返回空列表时是否清空本地"
// @Success 200 {object} dto.CompetitorSyncResult
// @Failure 429 {object} map[string]interface{} "限流中"
// @Router /api/mercado-livre/catalog-competitors/sync/{product_id} [post]
func (ctrl *CompetitorController) SyncCompetitors(c *gin.Context) {
	productID, ok := pathParam(c, "product_id")
	if !ok {
		return
	}
	allowEmpty, _ := strconv.ParseBool(c.Query("allow_empty"))
	companyID := middleware.GetCompanyID(c)

	result, err := ctrl.competitorService.SyncCompetitors(c.Request.Context(), companyID, productID, allowEmpty)
	if err != nil {
		middleware.ResetSyncLimit(companyID, middleware.SyncTypeCompetitor, productID)
		fail(c, err)
		return
	}
	success(c, "同步完成", result)
}

// ListCompetitors 本地竞品
// @Summary 本地竞品列表（按价格升序）
// @Tags MercadoLivre-Competitor
// @Produce json
// @Security BearerAuth
// @Param product_id path string true "目录商品 ID"
// @Success 200 {array} model.CatalogCompetitor
// @Router /api/mercado-livre/catalog-competitors/db/{product_id} [get]
func (ctrl *CompetitorController) ListCompetitors(c *gin.Context) {
	productID, ok := pathParam(c, "product_id")
	if !ok {
		return
	}

	list, err := ctrl.competitorService.ListCompetitors(c.Request.Context(), middleware.GetCompanyID(c), productID)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", list)
}

// UpdateManualURL 手工链接
// @Summary 更新竞品手工链接，空值清除
// @Tags MercadoLivre-Competitor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "竞品商品 ID"
// @Param request body dto.ManualURLRequest true "链接"
// @Success 200 {object} model.CatalogCompetitor
// @Failure 404 {object} map[string]interface{}
// @Router /api/mercado-livre/catalog-competitors/{id}/manual-url [put]
func (ctrl *CompetitorController) UpdateManualURL(c *gin.Context) {
	itemID, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var req dto.ManualURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	row, err := ctrl.competitorService.UpdateManualURL(c.Request.Context(), middleware.GetCompanyID(c), itemID, req.ManualURL)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "更新成功", row)
}
