package dto

import (
	"encoding/json"

	"meli_dev_v1_202610/internal/model"
)

// AdsSyncResult 广告指标同步结果
type AdsSyncResult struct {
	ItemID        string   `json:"item_id"`
	AdvertiserID  string   `json:"advertiser_id"`
	SiteID        string   `json:"site_id"`
	PeriodsSynced []int    `json:"periods_synced"`
	PeriodsFailed []int    `json:"periods_failed"`
	Errors        []string `json:"errors"`
}

// StoredAdsRequest 本地广告指标查询
type StoredAdsRequest struct {
	PeriodDays int `form:"period_days,default=15" binding:"oneof=7 15 30 60 90"`
}

// StoredAdsResponse 本地广告指标
type StoredAdsResponse struct {
	ItemID     string                `json:"item_id"`
	PeriodDays int                   `json:"period_days"`
	Data       *model.ProductAdsData `json:"data"`
	// Periods 已同步的所有窗口
	Periods []int `json:"periods"`
}

// ProductAdDetail 实时广告详情
type ProductAdDetail struct {
	ItemID       string          `json:"item_id"`
	AdvertiserID string          `json:"advertiser_id"`
	SiteID       string          `json:"site_id"`
	Ad           json.RawMessage `json:"ads_data" swaggertype:"object"`
}
