package dto

import "meli_dev_v1_202610/internal/model"

// ==================== 订单查询 ====================

// OrderSearchRequest 实时订单搜索
type OrderSearchRequest struct {
	Status   string `form:"status"`
	DateFrom string `form:"date_from"` // 2026-01-01
	DateTo   string `form:"date_to"`
	Limit    int    `form:"limit,default=50" binding:"min=1,max=51"`
	Offset   int    `form:"offset,default=0" binding:"min=0"`
}

// StoredOrdersRequest 本地订单列表
type StoredOrdersRequest struct {
	Status   string `form:"status"`
	DateFrom string `form:"date_from"` // YYYY-MM-DD
	DateTo   string `form:"date_to"`
	Limit    int    `form:"limit,default=50" binding:"min=1,max=200"`
	Offset   int    `form:"offset,default=0" binding:"min=0"`
}

// StoredOrdersResponse 本地订单列表响应
type StoredOrdersResponse struct {
	Total   int64             `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
	HasMore bool              `json:"has_more"`
	List    []model.MeliOrder `json:"list"`
}

// ==================== 订单同步 ====================

// OrderSyncOptions 订单同步选项
type OrderSyncOptions struct {
	// RefreshExisting 已存在的订单仅用搜索结果更新状态字段
	RefreshExisting bool   `form:"refresh_existing" json:"refresh_existing"`
	Status          string `form:"status" json:"status"`
	DateFrom        string `form:"date_from" json:"date_from"`
	DateTo          string `form:"date_to" json:"date_to"`
}

// OrderSyncResult 订单同步结果
type OrderSyncResult struct {
	Synced         int      `json:"synced"`
	Skipped        int      `json:"skipped"`
	Updated        int      `json:"updated"`
	TotalFound     int      `json:"total_found"`
	TotalProcessed int      `json:"total_processed"`
	Errors         []string `json:"errors"`
}
