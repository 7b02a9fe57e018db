package meli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"meli_dev_v1_202610/pkg/errs"
)

var hundred = decimal.NewFromInt(100)

// DefaultAdMetrics Product Ads 指标字段
var DefaultAdMetrics = []string{
	"clicks", "prints", "ctr", "cost", "cpc", "acos", "tacos", "roas", "cvr", "sov",
	"organic_units_quantity", "organic_units_amount", "organic_items_quantity",
	"direct_items_quantity", "direct_units_quantity", "direct_amount",
	"indirect_items_quantity", "indirect_units_quantity", "indirect_amount",
	"advertising_items_quantity", "units_quantity", "total_amount",
}

// GetAdvertisers Product Ads 广告主列表
func (c *Client) GetAdvertisers(ctx context.Context, token, userID string) (*AdvertisersResponse, error) {
	var res AdvertisersResponse
	_, err := c.get(ctx, "/advertising/advertisers", token, &res,
		withHeader("Api-Version", "1"),
		withQuery(map[string]string{
			"product_id": "PADS",
			"user_id":    userID,
		}))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetProductAd 广告详情（不含指标）
func (c *Client) GetProductAd(ctx context.Context, token, siteID, itemID string) (*ProductAd, []byte, error) {
	var ad ProductAd
	raw, err := c.get(ctx, productAdPath(siteID, itemID), token, &ad, withHeader("api-version", "2"))
	if err != nil {
		return nil, nil, err
	}
	return &ad, raw, nil
}

// GetProductAdMetrics 指定时间窗口的广告指标，返回解析后的指标及其原始 JSON
func (c *Client) GetProductAdMetrics(ctx context.Context, token, siteID, itemID string, q AdMetricsQuery) (*AdMetrics, json.RawMessage, error) {
	metrics := q.Metrics
	if len(metrics) == 0 {
		metrics = DefaultAdMetrics
	}
	params := map[string]string{"metrics": strings.Join(metrics, ",")}
	if q.DateFrom != "" {
		params["date_from"] = q.DateFrom
	}
	if q.DateTo != "" {
		params["date_to"] = q.DateTo
	}

	raw, err := c.get(ctx, productAdPath(siteID, itemID), token, nil,
		withHeader("api-version", "2"),
		withQuery(params))
	if err != nil {
		return nil, nil, err
	}

	m, section, err := ExtractAdMetrics(raw)
	if err != nil {
		return nil, nil, &errs.Error{Kind: errs.KindUpstream, UpstreamStatus: http.StatusBadGateway, Message: "解析广告指标失败", Err: err}
	}
	return m, section, nil
}

func productAdPath(siteID, itemID string) string {
	if siteID == "" {
		siteID = "MLB"
	}
	return "/marketplace/advertising/" + url.PathEscape(siteID) + "/product_ads/ads/" + url.PathEscape(itemID)
}

// ExtractAdMetrics 依次尝试 metrics_summary、metrics、顶层字段
// tacos 缺失时按 cost / (total_amount + organic_units_amount) * 100 推算
func ExtractAdMetrics(payload []byte) (*AdMetrics, json.RawMessage, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(payload, &top); err != nil {
		return nil, nil, err
	}

	var section json.RawMessage
	for _, key := range []string{"metrics_summary", "metrics"} {
		if v, ok := top[key]; ok && isObject(v) {
			section = v
			break
		}
	}
	if section == nil {
		_, hasClicks := top["clicks"]
		_, hasPrints := top["prints"]
		_, hasCost := top["cost"]
		if hasClicks || hasPrints || hasCost {
			section = payload
		}
	}

	m := &AdMetrics{}
	if section == nil {
		return m, nil, nil
	}
	if err := json.Unmarshal(section, m); err != nil {
		return nil, nil, err
	}

	if m.TACOS == nil {
		revenue := m.TotalAmount.Add(m.OrganicUnitsAmount)
		if revenue.IsPositive() {
			tacos, _ := m.Cost.Div(revenue).Mul(hundred).Round(2).Float64()
			m.TACOS = &tacos
		}
	}
	return m, section, nil
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}
