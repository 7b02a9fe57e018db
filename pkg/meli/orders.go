package meli

import (
	"context"
	"net/url"
	"strconv"
)

// 订单日期以巴西时区 (-03:00) 的整天为边界
const (
	dayStartSuffix = "T00:00:00.000-03:00"
	dayEndSuffix   = "T23:59:59.999-03:00"
)

// SearchOrders 卖家订单搜索
func (c *Client) SearchOrders(ctx context.Context, token string, q OrderSearchQuery) (*OrderSearchResponse, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	params := map[string]string{
		"seller": q.SellerID,
		"limit":  strconv.Itoa(q.Limit),
		"offset": strconv.Itoa(q.Offset),
	}
	if q.Status != "" {
		params["order.status"] = q.Status
	}
	if q.DateFrom != "" {
		params["order.date_created.from"] = q.DateFrom + dayStartSuffix
	}
	if q.DateTo != "" {
		params["order.date_created.to"] = q.DateTo + dayEndSuffix
	}

	var res OrderSearchResponse
	if _, err := c.get(ctx, "/orders/search", token, &res, withQuery(params)); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetOrder 订单详情，同时返回原始 JSON
func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*Order, []byte, error) {
	var order Order
	raw, err := c.get(ctx, "/orders/"+url.PathEscape(orderID), token, &order)
	if err != nil {
		return nil, nil, err
	}
	return &order, raw, nil
}
