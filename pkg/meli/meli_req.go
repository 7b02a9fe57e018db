package meli

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PictureSource 图片来源
type PictureSource struct {
	Source string `json:"source"`
}

// ItemDescription 纯文本描述
type ItemDescription struct {
	PlainText string `json:"plain_text"`
}

// ItemCreateReq 创建商品
// POST /items
type ItemCreateReq struct {
	Title             string           `json:"title"`
	CategoryID        string           `json:"category_id"`
	Price             decimal.Decimal  `json:"price"`
	CurrencyID        string           `json:"currency_id"`
	AvailableQuantity int              `json:"available_quantity"`
	BuyingMode        string           `json:"buying_mode"`
	Condition         string           `json:"condition"`
	ListingTypeID     string           `json:"listing_type_id"`
	Description       *ItemDescription `json:"description,omitempty"`
	Pictures          []PictureSource  `json:"pictures,omitempty"`
	Attributes        json.RawMessage  `json:"attributes,omitempty"`
}

// ItemUpdateReq 更新商品，仅发送非空字段
// PUT /items/{id}
type ItemUpdateReq struct {
	Title             *string          `json:"title,omitempty"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	AvailableQuantity *int             `json:"available_quantity,omitempty"`
	Condition         *string          `json:"condition,omitempty"`
	Pictures          []PictureSource  `json:"pictures,omitempty"`
	Attributes        json.RawMessage  `json:"attributes,omitempty"`
	Status            *string          `json:"status,omitempty"`
}

// Empty 没有任何需要更新的字段
func (r *ItemUpdateReq) Empty() bool {
	return r.Title == nil && r.Price == nil && r.AvailableQuantity == nil &&
		r.Condition == nil && len(r.Pictures) == 0 && len(r.Attributes) == 0 && r.Status == nil
}

// ListingPriceQuery 费用计算参数
type ListingPriceQuery struct {
	Price         decimal.Decimal
	CategoryID    string
	CurrencyID    string
	ListingTypeID string
}

// OrderSearchQuery 订单搜索参数
type OrderSearchQuery struct {
	SellerID string
	Status   string
	DateFrom string // YYYY-MM-DD
	DateTo   string // YYYY-MM-DD
	Limit    int
	Offset   int
}

// AdMetricsQuery 广告指标时间窗口
type AdMetricsQuery struct {
	DateFrom string // YYYY-MM-DD
	DateTo   string // YYYY-MM-DD
	Metrics  []string
}
