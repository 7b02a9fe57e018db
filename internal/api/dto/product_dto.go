package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ==================== 实时商品 ====================

// ProductListRequest 实时商品列表
type ProductListRequest struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ProductSummary 商品概要（含价格补充）
type ProductSummary struct {
	ID                string              `json:"id"`
	Title             string              `json:"title"`
	Price             decimal.Decimal     `json:"price"`
	OriginalPrice     decimal.NullDecimal `json:"original_price"`
	SalePrice         decimal.NullDecimal `json:"sale_price"`
	CurrencyID        string              `json:"currency_id"`
	AvailableQuantity int                 `json:"available_quantity"`
	SoldQuantity      int                 `json:"sold_quantity"`
	Status            string              `json:"status"`
	Condition         string              `json:"condition"`
	Permalink         string              `json:"permalink"`
	Thumbnail         string              `json:"thumbnail"`
	CategoryID        string              `json:"category_id"`
	ListingTypeID     string              `json:"listing_type_id"`
	CatalogListing    bool                `json:"catalog_listing"`
	CatalogProductID  *string             `json:"catalog_product_id"`
	PriceToWin        decimal.NullDecimal `json:"price_to_win"`
	CatalogStatus     *string             `json:"catalog_status"`
}

// ProductListResponse 实时商品列表响应
type ProductListResponse struct {
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
	Results []ProductSummary `json:"results"`
}

// ==================== 商品写操作 ====================

// CreateProductReq 创建商品
type CreateProductReq struct {
	Title             string          `json:"title" binding:"required,max=120"`
	CategoryID        string          `json:"category_id" binding:"required"`
	Price             decimal.Decimal `json:"price" binding:"required"`
	CurrencyID        string          `json:"currency_id"`
	AvailableQuantity int             `json:"available_quantity" binding:"required,min=1"`
	BuyingMode        string          `json:"buying_mode"`
	Condition         string          `json:"condition" binding:"omitempty,oneof=new used not_specified"`
	ListingTypeID     string          `json:"listing_type_id"`
	Description       string          `json:"description"`
	Pictures          []string        `json:"pictures" binding:"omitempty,dive,url"`
	Attributes        json.RawMessage `json:"attributes" swaggertype:"array,object"`
}

// UpdateProductReq 更新商品，只转发白名单字段
type UpdateProductReq struct {
	Title             *string          `json:"title" binding:"omitempty,max=120"`
	Price             *decimal.Decimal `json:"price"`
	AvailableQuantity *int             `json:"available_quantity" binding:"omitempty,min=0"`
	Condition         *string          `json:"condition" binding:"omitempty,oneof=new used not_specified"`
	Pictures          []string         `json:"pictures" binding:"omitempty,dive,url"`
	Attributes        json.RawMessage  `json:"attributes" swaggertype:"array,object"`
	Status            *string          `json:"status" binding:"omitempty,oneof=active paused closed"`
}

// DeleteProductResponse 删除结果，优先暂停
type DeleteProductResponse struct {
	ProductID string `json:"product_id"`
	Action    string `json:"action"` // paused / deleted
}
