package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// AdsPeriods Product Ads 同步的回溯窗口（天）
var AdsPeriods = []int{7, 15, 30, 60, 90}

// ProductAdsData 单个商品在某一回溯窗口内的广告指标
// (company_id, ml_item_id, period_days) 唯一，不删除
type ProductAdsData struct {
	BaseModel
	CompanyID  int64  `gorm:"uniqueIndex:idx_ads_company_item_period;not null" json:"company_id"`
	MLItemID   string `gorm:"column:ml_item_id;size:50;uniqueIndex:idx_ads_company_item_period;not null" json:"ml_item_id"`
	PeriodDays int    `gorm:"uniqueIndex:idx_ads_company_item_period;not null" json:"period_days"`

	AdvertiserID    string              `gorm:"size:50" json:"advertiser_id"`
	SiteID          string              `gorm:"size:10" json:"site_id"`
	CampaignID      *string             `gorm:"size:50" json:"campaign_id"`
	Title           string              `gorm:"size:500" json:"title"`
	Price           decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"price"`
	Status          string              `gorm:"size:50" json:"status"`
	DataPeriodStart *time.Time          `json:"data_period_start"`
	DataPeriodEnd   *time.Time          `json:"data_period_end"`

	// 指标
	Clicks                   int             `json:"clicks"`
	Prints                   int             `json:"prints"`
	CTR                      *float64        `gorm:"column:ctr" json:"ctr"`
	Cost                     decimal.Decimal `gorm:"type:decimal(12,2)" json:"cost"`
	CPC                      *float64        `gorm:"column:cpc" json:"cpc"`
	ACOS                     *float64        `gorm:"column:acos" json:"acos"`
	TACOS                    *float64        `gorm:"column:tacos" json:"tacos"`
	ROAS                     *float64        `gorm:"column:roas" json:"roas"`
	CVR                      *float64        `gorm:"column:cvr" json:"cvr"`
	SOV                      *float64        `gorm:"column:sov" json:"sov"`
	OrganicUnitsQuantity     int             `json:"organic_units_quantity"`
	OrganicUnitsAmount       decimal.Decimal `gorm:"type:decimal(12,2)" json:"organic_units_amount"`
	OrganicItemsQuantity     int             `json:"organic_items_quantity"`
	DirectItemsQuantity      int             `json:"direct_items_quantity"`
	DirectUnitsQuantity      int             `json:"direct_units_quantity"`
	DirectAmount             decimal.Decimal `gorm:"type:decimal(12,2)" json:"direct_amount"`
	IndirectItemsQuantity    int             `json:"indirect_items_quantity"`
	IndirectUnitsQuantity    int             `json:"indirect_units_quantity"`
	IndirectAmount           decimal.Decimal `gorm:"type:decimal(12,2)" json:"indirect_amount"`
	AdvertisingItemsQuantity int             `json:"advertising_items_quantity"`
	UnitsQuantity            int             `json:"units_quantity"`
	TotalAmount              decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`

	FullData    datatypes.JSON `gorm:"type:jsonb" json:"-"`
	MetricsData datatypes.JSON `gorm:"type:jsonb" json:"-"`
}

func (ProductAdsData) TableName() string { return "product_ads_data" }
