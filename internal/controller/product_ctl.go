package controller

import (
	"github.com/gin-gonic/gin"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/middleware"
	"meli_dev_v1_202610/internal/service"
)

// ProductController 实时商品透传（不落库）
type ProductController struct {
	productService *service.ProductService
	listingService *service.ListingService
}

func NewProductController(productService *service.ProductService, listingService *service.ListingService) *ProductController {
	return &ProductController{productService: productService, listingService: listingService}
}

// ==================== 查询接口 ====================

// ListProducts 卖家商品列表
// @Summary 实时获取卖家商品（含促销价与目录位置）
// @Tags MercadoLivre-Product
// @Produce json
// @Security BearerAuth
// @Param limit query int false "每页数量" default(50)
// @Param offset query int false "偏移" default(0)
// @Success 200 {object} dto.ProductListResponse
// @Router /api/mercado-livre/products [get]
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	var req dto.ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := ctrl.productService.ListProducts(c.Request.Context(), middleware.GetCompanyID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", resp)
}

// GetProduct 商品详情
// @Summary 实时获取商品详情
// @Tags MercadoLivre-Product
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品 ID (MLB...)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/mercado-livre/products/{id} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}

	raw, err := ctrl.productService.GetProduct(c.Request.Context(), middleware.GetCompanyID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", raw)
}

// GetItemDetails 任意商品详情，公开商品无需授权
// @Summary 获取任意商品详情
// @Tags MercadoLivre-Product
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品 ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/mercado-livre/item-details/{id} [get]
func (ctrl *ProductController) GetItemDetails(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}

	raw, err := ctrl.productService.GetItemDetails(c.Request.Context(), middleware.GetCompanyID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", raw)
}

// GetItemCosts 刊登费用
// @Summary 获取商品刊登费用，接口失败时返回估算值
// @Tags MercadoLivre-Product
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品 ID"
// @Success 200 {object} dto.ItemCostsResponse
// @Router /api/mercado-livre/item-costs/{id} [get]
func (ctrl *ProductController) GetItemCosts(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}

	resp, err := ctrl.listingService.GetItemCosts(c.Request.Context(), middleware.GetCompanyID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", resp)
}

// ==================== 写操作 ====================

// CreateProduct 创建商品
// @Summary 在 Mercado Livre 创建商品
// @Tags MercadoLivre-Product
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProductReq true "商品信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/mercado-livre/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req dto.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	raw, err := ctrl.productService.CreateProduct(c.Request.Context(), middleware.GetCompanyID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "创建成功", raw)
}

// UpdateProduct 更新商品
// @Summary 更新商品（白名单字段）
// @Tags MercadoLivre-Product
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品 ID"
// @Param request body dto.UpdateProductReq true "更新字段"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/mercado-livre/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	raw, err := ctrl.productService.UpdateProduct(c.Request.Context(), middleware.GetCompanyID(c), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "更新成功", raw)
}

// DeleteProduct 删除商品（优先暂停）
// @Summary 暂停商品，暂停失败时删除
// @Tags MercadoLivre-Product
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品 ID"
// @Success 200 {object} dto.DeleteProductResponse
// @Router /api/mercado-livre/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}

	resp, err := ctrl.productService.DeleteProduct(c.Request.Context(), middleware.GetCompanyID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "操作成功", resp)
}

// ==================== 类目 ====================

// ListCategories 站点类目
// @Summary 站点顶级类目
// @Tags MercadoLivre-Product
// @Produce json
// @Security BearerAuth
// @Param site_id query string false "站点" default(MLB)
// @Success 200 {array} meli.CategoryRef
// @Router /api/mercado-livre/categories [get]
func (ctrl *ProductController) ListCategories(c *gin.Context) {
	list, err := ctrl.productService.ListCategories(c.Request.Context(), c.DefaultQuery("site_id", "MLB"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", list)
}

// GetCategory 类目详情
// @Summary 类目详情及属性
// @Tags MercadoLivre-Product
// @Produce json
// @Security BearerAuth
// @Param id path string true "类目 ID"
// @Success 200 {object} service.CategoryDetail
// @Router /api/mercado-livre/categories/{id} [get]
func (ctrl *ProductController) GetCategory(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}

	detail, err := ctrl.productService.GetCategory(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "success", detail)
}
