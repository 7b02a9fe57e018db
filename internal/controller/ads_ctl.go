package controller

import (
	"github.com/gin-gonic/gin"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/middleware"
	"meli_dev_v1_202610/internal/service"
)

// AdsController 商品广告
type AdsController struct {
	adsService *service.AdsService
}

func NewAdsController(adsService *service.AdsService) *AdsController {
	return &AdsController{adsService: adsService}
}

// GetAdvertisers 广告主
// @Summary 获取卖家的广告主账号
// @Tags MercadoLivre-Ads
// @Produce json
// @Security BearerAuth
// @Success 200 {array} meli.Advertiser
// @Router /api/mercado-livre/advertisers [get]
func (ctrl *AdsController) GetAdvertisers(c *gin.Context) {
	list, err := ctrl.adsService.GetAdvertisers(c.Request.Context(), middleware.GetCompanyID(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", list)
}

// GetProductAd 实时广告详情
// @Summary 实时获取商品广告详情
// @Tags MercadoLivre-Ads
// @Produce json
// @Security BearerAuth
// @Param item_id path string true "商品 ID"
// @Success 200 {object} dto.ProductAdDetail
// @Router /api/mercado-livre/product-ads/items/{item_id} [get]
func (ctrl *AdsController) GetProductAd(c *gin.Context) {
	itemID, ok := pathParam(c, "item_id")
	if !ok {
		return
	}

	detail, err := ctrl.adsService.GetProductAd(c.Request.Context(), middleware.GetCompanyID(c), itemID)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", detail)
}

// SyncProductAds 同步广告指标
// @Summary 同步商品 7/15/30/60/90 天广告指标
// @Tags MercadoLivre-Ads
// @Produce json
// @Security BearerAuth
// @Param item_id path string true "商品 ID"
// @Success 200 {object} dto.AdsSyncResult
// @Failure 429 {object} map[string]interface{} "限流中"
// @Router /api/mercado-livre/product-ads/sync/{item_id} [post]
func (ctrl *AdsController) SyncProductAds(c *gin.Context) {
	itemID, ok := pathParam(c, "item_id")
	if !ok {
		return
	}
	companyID := middleware.GetCompanyID(c)

	result, err := ctrl.adsService.SyncProductAds(c.Request.Context(), companyID, itemID)
	if err != nil {
		middleware.ResetSyncLimit(companyID, middleware.SyncTypeAds, itemID)
		fail(c, err)
		return
	}
	success(c, "同步完成", result)
}

// GetStoredAds 本地广告指标
// @Summary 本地广告指标
// @Tags MercadoLivre-Ads
// @Produce json
// @Security BearerAuth
// @Param item_id path string true "商品 ID"
// @Param period_days query int false "统计窗口" Enums(7, 15, 30, 60, 90) default(15)
// @Success 200 {object} dto.StoredAdsResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/mercado-livre/product-ads/db/{item_id} [get]
func (ctrl *AdsController) GetStoredAds(c *gin.Context) {
	itemID, ok := pathParam(c, "item_id")
	if !ok {
		return
	}
	var req dto.StoredAdsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := ctrl.adsService.GetStoredAds(c.Request.Context(), middleware.GetCompanyID(c), itemID, req.PeriodDays)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", resp)
}
