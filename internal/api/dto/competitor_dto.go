package dto

import "meli_dev_v1_202610/pkg/meli"

// CompetitorSyncResult 竞品同步结果
type CompetitorSyncResult struct {
	CatalogProductID string `json:"catalog_product_id"`
	Synced           int    `json:"synced"`
	Removed          int    `json:"removed"`
	TotalCurrent     int    `json:"total_current"`
	// Guarded 上游返回空列表且本地已有数据，未执行删除
	Guarded  bool `json:"guarded"`
	NotFound bool `json:"not_found,omitempty"`
}

// ManualURLRequest 手工维护竞品链接，空值表示清除
type ManualURLRequest struct {
	ManualURL *string `json:"manual_url" binding:"omitempty,url"`
}

// CompetitorItem 实时竞品报价
type CompetitorItem struct {
	meli.CatalogItem
	URL string `json:"url"`
}

// LiveCompetitorsResponse 实时竞品列表
type LiveCompetitorsResponse struct {
	CatalogProductID string           `json:"catalog_product_id"`
	Total            int              `json:"total"`
	Results          []CompetitorItem `json:"results"`
}
