package meli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"meli_dev_v1_202610/pkg/errs"
)

// SearchSellerItems 卖家商品 ID 分页
func (c *Client) SearchSellerItems(ctx context.Context, token, userID string, limit, offset int) (*ItemSearchResponse, error) {
	var res ItemSearchResponse
	_, err := c.get(ctx, "/users/"+url.PathEscape(userID)+"/items/search", token, &res,
		withQuery(map[string]string{
			"limit":  strconv.Itoa(limit),
			"offset": strconv.Itoa(offset),
		}))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetItem 商品详情，同时返回原始 JSON；token 为空时匿名访问
func (c *Client) GetItem(ctx context.Context, token, itemID string) (*Item, []byte, error) {
	var item Item
	raw, err := c.get(ctx, "/items/"+url.PathEscape(itemID), token, &item)
	if err != nil {
		return nil, nil, err
	}
	return &item, raw, nil
}

// GetItemPrices 商品价格列表
func (c *Client) GetItemPrices(ctx context.Context, token, itemID string) (*ItemPrices, []byte, error) {
	var res ItemPrices
	raw, err := c.get(ctx, "/items/"+url.PathEscape(itemID)+"/prices", token, &res)
	if err != nil {
		return nil, nil, err
	}
	return &res, raw, nil
}

// GetSalePrice 当前售价
func (c *Client) GetSalePrice(ctx context.Context, token, itemID string) (*SalePrice, []byte, error) {
	var res SalePrice
	raw, err := c.get(ctx, "/items/"+url.PathEscape(itemID)+"/sale_price", token, &res,
		withQuery(map[string]string{"context": "channel_marketplace"}))
	if err != nil {
		return nil, nil, err
	}
	return &res, raw, nil
}

// GetPriceToWin 目录竞争位置
func (c *Client) GetPriceToWin(ctx context.Context, token, itemID string) (*PriceToWin, []byte, error) {
	var res PriceToWin
	raw, err := c.get(ctx, "/items/"+url.PathEscape(itemID)+"/price_to_win", token, &res,
		withQuery(map[string]string{"version": "v2"}))
	if err != nil {
		return nil, nil, err
	}
	return &res, raw, nil
}

// GetListingPrices 刊登费用计算
// 响应可能是对象也可能是数组，统一返回数组
func (c *Client) GetListingPrices(ctx context.Context, token, siteID string, q ListingPriceQuery) ([]ListingPrice, error) {
	if siteID == "" {
		siteID = "MLB"
	}
	params := map[string]string{
		"price":       q.Price.String(),
		"category_id": q.CategoryID,
		"currency_id": q.CurrencyID,
	}
	if q.CurrencyID == "" {
		params["currency_id"] = "BRL"
	}
	if q.ListingTypeID != "" {
		params["listing_type_id"] = q.ListingTypeID
	}

	raw, err := c.get(ctx, "/sites/"+url.PathEscape(siteID)+"/listing_prices", token, nil, withQuery(params))
	if err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var list []ListingPrice
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, &errs.Error{Kind: errs.KindUpstream, UpstreamStatus: http.StatusBadGateway, Message: "解析费用信息失败", Err: err}
		}
		return list, nil
	}
	var single ListingPrice
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, &errs.Error{Kind: errs.KindUpstream, UpstreamStatus: http.StatusBadGateway, Message: "解析费用信息失败", Err: err}
	}
	return []ListingPrice{single}, nil
}

// PickListingPrice 优先匹配 listing_type_id，否则取第一条
func PickListingPrice(list []ListingPrice, listingTypeID string) *ListingPrice {
	if len(list) == 0 {
		return nil
	}
	if listingTypeID != "" {
		for i := range list {
			if list[i].ListingTypeID == listingTypeID {
				return &list[i]
			}
		}
	}
	return &list[0]
}

// ==================== 写操作 ====================

// CreateItem 创建商品
func (c *Client) CreateItem(ctx context.Context, token string, req *ItemCreateReq) (json.RawMessage, error) {
	raw, err := c.execute(ctx, http.MethodPost, "/items", token, nil, withBody(req))
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// UpdateItem 更新商品
func (c *Client) UpdateItem(ctx context.Context, token, itemID string, req *ItemUpdateReq) (json.RawMessage, error) {
	raw, err := c.execute(ctx, http.MethodPut, "/items/"+url.PathEscape(itemID), token, nil, withBody(req))
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// DeleteItem 删除商品
func (c *Client) DeleteItem(ctx context.Context, token, itemID string) error {
	_, err := c.execute(ctx, http.MethodDelete, "/items/"+url.PathEscape(itemID), token, nil)
	return err
}
