package model

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// CatalogCompetitor 目录商品下的竞品，每个企业各自维护一份，(company_id, item_id) 唯一
type CatalogCompetitor struct {
	BaseModel
	CompanyID        int64  `gorm:"not null;uniqueIndex:idx_competitor_company_item,priority:1" json:"company_id"`
	CatalogProductID string `gorm:"size:50;index;not null" json:"catalog_product_id"`
	ItemID           string `gorm:"size:50;not null;uniqueIndex:idx_competitor_company_item,priority:2" json:"item_id"`

	Title             string              `gorm:"size:500" json:"title"`
	Price             decimal.Decimal     `gorm:"type:decimal(12,2)" json:"price"`
	OriginalPrice     decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"original_price"`
	Condition         string              `gorm:"size:50" json:"condition"`
	AvailableQuantity int                 `json:"available_quantity"`
	SoldQuantity      int                 `json:"sold_quantity"`
	Permalink         string              `gorm:"size:500" json:"permalink"`
	URL               string              `gorm:"column:url;size:500" json:"url"`
	// ManualURL 运营手工维护，同步不覆盖
	ManualURL *string `gorm:"column:manual_url;size:500" json:"manual_url"`

	SellerID                string  `gorm:"size:50" json:"seller_id"`
	SellerNickname          *string `gorm:"size:255" json:"seller_nickname"`
	SellerReputationLevel   *string `gorm:"size:50" json:"seller_reputation_level"`
	SellerPowerStatus       *string `gorm:"size:50" json:"seller_power_status"`
	SellerTransactionsTotal int     `json:"seller_transactions_total"`

	ShippingMode         *string        `gorm:"size:50" json:"shipping_mode"`
	ShippingLogisticType *string        `gorm:"size:50" json:"shipping_logistic_type"`
	ShippingFree         bool           `json:"shipping_free"`
	ShippingTags         pq.StringArray `gorm:"type:text[]" json:"shipping_tags"`

	ListingTypeID *string        `gorm:"size:50" json:"listing_type_id"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	DealIDs       pq.StringArray `gorm:"column:deal_ids;type:text[]" json:"deal_ids"`

	MLDateCreated *time.Time `gorm:"column:ml_date_created" json:"ml_date_created"`
	MLLastUpdated *time.Time `gorm:"column:ml_last_updated" json:"ml_last_updated"`
}

func (CatalogCompetitor) TableName() string { return "catalog_competitors" }

// CompetitorSyncColumns 同步时覆盖的列（不含 manual_url）
var CompetitorSyncColumns = []string{
	"catalog_product_id", "title", "price", "original_price", "condition",
	"available_quantity", "sold_quantity", "permalink", "url",
	"seller_id", "seller_nickname", "seller_reputation_level", "seller_power_status",
	"seller_transactions_total", "shipping_mode", "shipping_logistic_type", "shipping_free",
	"shipping_tags", "listing_type_id", "tags", "deal_ids",
	"ml_date_created", "ml_last_updated", "updated_at",
}
