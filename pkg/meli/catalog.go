package meli

import (
	"context"
	"net/url"
)

// GetCatalogItems 目录商品下的所有卖家报价
func (c *Client) GetCatalogItems(ctx context.Context, token, catalogProductID string) (*CatalogItemsResponse, error) {
	var res CatalogItemsResponse
	if _, err := c.get(ctx, "/products/"+url.PathEscape(catalogProductID)+"/items", token, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetSiteCategories 站点顶级类目
func (c *Client) GetSiteCategories(ctx context.Context, siteID string) ([]CategoryRef, error) {
	if siteID == "" {
		siteID = "MLB"
	}
	var res []CategoryRef
	if _, err := c.get(ctx, "/sites/"+url.PathEscape(siteID)+"/categories", "", &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetCategory 类目详情
func (c *Client) GetCategory(ctx context.Context, categoryID string) (*Category, error) {
	var res Category
	if _, err := c.get(ctx, "/categories/"+url.PathEscape(categoryID), "", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetCategoryAttributes 类目属性
func (c *Client) GetCategoryAttributes(ctx context.Context, categoryID string) ([]CategoryAttribute, error) {
	var res []CategoryAttribute
	if _, err := c.get(ctx, "/categories/"+url.PathEscape(categoryID)+"/attributes", "", &res); err != nil {
		return nil, err
	}
	return res, nil
}
