package controller

import (
	"github.com/gin-gonic/gin"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/middleware"
	"meli_dev_v1_202610/internal/service"
)

// ==================== OrderController 订单 ====================

type OrderController struct {
	orderService *service.OrderService
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// SearchOrders 实时订单搜索
// @Summary 实时搜索卖家订单
// @Tags MercadoLivre-Order
// @Produce json
// @Security BearerAuth
// @Param status query string false "订单状态"
// @Param date_from query string false "开始日期 YYYY-MM-DD"
// @Param date_to query string false "结束日期 YYYY-MM-DD"
// @Param limit query int false "每页数量 (1-51)" default(50)
// @Param offset query int false "偏移" default(0)
// @Success 200 {object} meli.OrderSearchResponse
// @Router /api/mercado-livre/orders/search [get]
func (ctrl *OrderController) SearchOrders(c *gin.Context) {
	var req dto.OrderSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := ctrl.orderService.SearchOrders(c.Request.Context(), middleware.GetCompanyID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", resp)
}

// SyncOrders 同步订单
// @Summary 同步订单，已存在的订单不重复拉取详情
// @Tags MercadoLivre-Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param refresh_existing query bool false "刷新已存在订单状态"
// @Param status query string false "订单状态"
// @Param date_from query string false "开始日期 YYYY-MM-DD"
// @Param date_to query string false "结束日期 YYYY-MM-DD"
// @Success 200 {object} dto.OrderSyncResult
// @Failure 429 {object} map[string]interface{} "限流中"
// @Router /api/mercado-livre/orders/sync [post]
func (ctrl *OrderController) SyncOrders(c *gin.Context) {
	var opts dto.OrderSyncOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		badRequest(c, err)
		return
	}
	// body 可选，覆盖 query
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&opts); err != nil {
			badRequest(c, err)
			return
		}
	}
	companyID := middleware.GetCompanyID(c)

	result, err := ctrl.orderService.SyncOrders(c.Request.Context(), companyID, opts)
	if err != nil {
		middleware.ResetSyncLimit(companyID, middleware.SyncTypeOrder, "")
		fail(c, err)
		return
	}
	success(c, "同步完成", result)
}

// ListStoredOrders 本地订单
// @Summary 本地订单列表（按下单时间倒序）
// @Tags MercadoLivre-Order
// @Produce json
// @Security BearerAuth
// @Param status query string false "订单状态"
// @Param date_from query string false "开始日期 YYYY-MM-DD"
// @Param date_to query string false "结束日期 YYYY-MM-DD（含当天）"
// @Param limit query int false "每页数量 (1-200)" default(50)
// @Param offset query int false "偏移" default(0)
// @Success 200 {object} dto.StoredOrdersResponse
// @Router /api/mercado-livre/orders/db [get]
func (ctrl *OrderController) ListStoredOrders(c *gin.Context) {
	var req dto.StoredOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := ctrl.orderService.ListStoredOrders(c.Request.Context(), middleware.GetCompanyID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", resp)
}

// GetStoredOrder 本地订单详情
// @Summary 本地订单详情
// @Tags MercadoLivre-Order
// @Produce json
// @Security BearerAuth
// @Param order_id path string true "订单 ID"
// @Success 200 {object} model.MeliOrder
// @Failure 404 {object} map[string]interface{}
// @Router /api/mercado-livre/orders/{order_id} [get]
func (ctrl *OrderController) GetStoredOrder(c *gin.Context) {
	orderID, ok := pathParam(c, "order_id")
	if !ok {
		return
	}

	order, err := ctrl.orderService.GetStoredOrder(c.Request.Context(), middleware.GetCompanyID(c), orderID)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", order)
}
