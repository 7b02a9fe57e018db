package dto

import (
	"github.com/shopspring/decimal"

	"meli_dev_v1_202610/internal/model"
)

// ==================== 商品镜像 ====================

// AnnouncementListRequest 本地商品列表
type AnnouncementListRequest struct {
	Limit  int    `form:"limit,default=50" binding:"min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
	Status string `form:"status"`
}

// AnnouncementListResponse 本地商品列表响应
type AnnouncementListResponse struct {
	Total  int64                `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
	List   []model.Announcement `json:"list"`
}

// SyncAnnouncementsResult 商品同步结果
type SyncAnnouncementsResult struct {
	Synced         int      `json:"synced"`
	Updated        int      `json:"updated"`
	Unchanged      int      `json:"unchanged"`
	TotalFound     int      `json:"total_found"`
	TotalProcessed int      `json:"total_processed"`
	Errors         []string `json:"errors"`
}

// AdditionalInfoRequest 运营手工字段，未传的字段保持不变，传 null 清空
type AdditionalInfoRequest struct {
	ProductCost     Optional[decimal.Decimal] `json:"product_cost"`
	Taxes           Optional[string]          `json:"taxes"`
	AdsCost         Optional[string]          `json:"ads_cost"`
	ShippingCost    Optional[decimal.Decimal] `json:"shipping_cost"`
	AdditionalFees  Optional[string]          `json:"additional_fees"`
	AdditionalNotes Optional[string]          `json:"additional_notes"`
}

// ItemCostsResponse 刊登费用
type ItemCostsResponse struct {
	ItemID            string              `json:"item_id"`
	Price             decimal.Decimal     `json:"price"`
	CurrencyID        string              `json:"currency_id"`
	CategoryID        string              `json:"category_id"`
	ListingTypeID     string              `json:"listing_type_id"`
	ListingTypeName   string              `json:"listing_type_name,omitempty"`
	ListingFeeAmount  decimal.Decimal     `json:"listing_fee_amount"`
	SaleFeeAmount     decimal.Decimal     `json:"sale_fee_amount"`
	SaleFeePercentage decimal.NullDecimal `json:"sale_fee_percentage"`
	TotalCost         decimal.Decimal     `json:"total_cost"`
	// Estimated 费用接口失败时按固定规则估算
	Estimated bool `json:"estimated"`
}
