package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/pkg/errs"
	"meli_dev_v1_202610/pkg/meli"
)

// ==================== ProductService 实时商品 ====================

// ProductService 直接读写 Mercado Livre 上的商品，不落库
type ProductService struct {
	tokens TokenProvider
	client *meli.Client
	logger *zap.Logger
}

// NewProductService 创建实时商品服务
func NewProductService(tokens TokenProvider, client *meli.Client, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{tokens: tokens, client: client, logger: logger}
}

// ListProducts 卖家商品一页，附带促销价与目录位置
func (s *ProductService) ListProducts(ctx context.Context, companyID int64, req *dto.ProductListRequest) (*dto.ProductListResponse, error) {
	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	resp := &dto.ProductListResponse{Limit: limit, Offset: req.Offset, Results: []dto.ProductSummary{}}

	page, err := s.client.SearchSellerItems(ctx, integ.AccessToken, integ.MeliUserID, limit, req.Offset)
	if err != nil {
		if meli.IsNotFound(err) {
			return resp, nil
		}
		return nil, err
	}
	resp.Total = page.Paging.Total

	for _, itemID := range page.Results {
		item, _, err := s.client.GetItem(ctx, integ.AccessToken, itemID)
		if err != nil {
			s.logger.Warn("获取商品详情失败", zap.String("item_id", itemID), zap.Error(err))
			continue
		}
		resp.Results = append(resp.Results, s.summarize(ctx, integ.AccessToken, item))
	}
	return resp, nil
}

func (s *ProductService) summarize(ctx context.Context, token string, item *meli.Item) dto.ProductSummary {
	sum := dto.ProductSummary{
		ID:                item.ID,
		Title:             item.Title,
		Price:             item.Price,
		OriginalPrice:     item.OriginalPrice,
		CurrencyID:        item.CurrencyID,
		AvailableQuantity: item.AvailableQuantity,
		SoldQuantity:      item.SoldQuantity,
		Status:            item.Status,
		Condition:         item.Condition,
		Permalink:         item.Permalink,
		Thumbnail:         item.Thumbnail,
		CategoryID:        item.CategoryID,
		ListingTypeID:     item.ListingTypeID,
		CatalogListing:    item.CatalogListing,
		CatalogProductID:  item.CatalogProductID.Ptr(),
	}

	if _, _, err := s.client.GetItemPrices(ctx, token, item.ID); err == nil {
		if sale, _, err := s.client.GetSalePrice(ctx, token, item.ID); err == nil && sale.Amount.Valid {
			sum.SalePrice = sale.Amount
			if sale.RegularAmount.Valid {
				sum.Price = sale.Amount.Decimal
				sum.OriginalPrice = sale.RegularAmount
			}
		}
	}
	if ptw, _, err := s.client.GetPriceToWin(ctx, token, item.ID); err == nil {
		sum.PriceToWin = ptw.PriceToWin
		sum.CatalogStatus = ptw.Status.Ptr()
	}
	return sum
}

// GetProduct 商品详情原始 JSON
func (s *ProductService) GetProduct(ctx context.Context, companyID int64, itemID string) (json.RawMessage, error) {
	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}
	_, raw, err := s.client.GetItem(ctx, integ.AccessToken, itemID)
	if err != nil {
		if meli.IsNotFound(err) {
			return nil, errs.NotFound("商品 %s 不存在", itemID)
		}
		return nil, err
	}
	return raw, nil
}

// GetItemDetails 先匿名查询，403 时再用企业 token 查询
func (s *ProductService) GetItemDetails(ctx context.Context, companyID int64, itemID string) (json.RawMessage, error) {
	_, raw, err := s.client.GetItem(ctx, "", itemID)
	if err == nil {
		return raw, nil
	}
	if meli.IsNotFound(err) {
		return nil, errs.NotFound("商品 %s 不存在", itemID)
	}
	if !meli.IsForbidden(err) && !meli.IsUnauthorized(err) {
		return nil, err
	}
	return s.GetProduct(ctx, companyID, itemID)
}

// CreateProduct 创建商品
func (s *ProductService) CreateProduct(ctx context.Context, companyID int64, req *dto.CreateProductReq) (json.RawMessage, error) {
	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}

	body := &meli.ItemCreateReq{
		Title:             req.Title,
		CategoryID:        req.CategoryID,
		Price:             req.Price,
		CurrencyID:        defaultString(req.CurrencyID, "BRL"),
		AvailableQuantity: req.AvailableQuantity,
		BuyingMode:        defaultString(req.BuyingMode, "buy_it_now"),
		Condition:         defaultString(req.Condition, "new"),
		ListingTypeID:     defaultString(req.ListingTypeID, "gold_special"),
		Pictures:          pictureSources(req.Pictures),
		Attributes:        req.Attributes,
	}
	if req.Description != "" {
		body.Description = &meli.ItemDescription{PlainText: req.Description}
	}

	raw, err := s.client.CreateItem(ctx, integ.AccessToken, body)
	if err != nil {
		return nil, err
	}
	s.logger.Info("创建商品成功", zap.Int64("company_id", companyID), zap.String("title", req.Title))
	return raw, nil
}

// UpdateProduct 只转发白名单字段
func (s *ProductService) UpdateProduct(ctx context.Context, companyID int64, itemID string, req *dto.UpdateProductReq) (json.RawMessage, error) {
	body := &meli.ItemUpdateReq{
		Title:             req.Title,
		Price:             req.Price,
		AvailableQuantity: req.AvailableQuantity,
		Condition:         req.Condition,
		Pictures:          pictureSources(req.Pictures),
		Attributes:        req.Attributes,
		Status:            req.Status,
	}
	if body.Empty() {
		return nil, errs.Validation("没有需要更新的字段")
	}

	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.UpdateItem(ctx, integ.AccessToken, itemID, body)
	if err != nil {
		if meli.IsNotFound(err) {
			return nil, errs.NotFound("商品 %s 不存在", itemID)
		}
		return nil, err
	}
	return raw, nil
}

// DeleteProduct 先尝试暂停，失败再删除
func (s *ProductService) DeleteProduct(ctx context.Context, companyID int64, itemID string) (*dto.DeleteProductResponse, error) {
	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}

	paused := "paused"
	_, pauseErr := s.client.UpdateItem(ctx, integ.AccessToken, itemID, &meli.ItemUpdateReq{Status: &paused})
	if pauseErr == nil {
		return &dto.DeleteProductResponse{ProductID: itemID, Action: "paused"}, nil
	}
	if meli.IsNotFound(pauseErr) {
		return nil, errs.NotFound("商品 %s 不存在", itemID)
	}
	s.logger.Warn("暂停商品失败，尝试删除", zap.String("item_id", itemID), zap.Error(pauseErr))

	if err := s.client.DeleteItem(ctx, integ.AccessToken, itemID); err != nil {
		if meli.IsNotFound(err) {
			return nil, errs.NotFound("商品 %s 不存在", itemID)
		}
		return nil, errs.Wrap(err, "删除商品失败")
	}
	return &dto.DeleteProductResponse{ProductID: itemID, Action: "deleted"}, nil
}

// ==================== 类目 ====================

// ListCategories 站点顶级类目
func (s *ProductService) ListCategories(ctx context.Context, siteID string) ([]meli.CategoryRef, error) {
	return s.client.GetSiteCategories(ctx, siteID)
}

// CategoryDetail 类目详情 + 属性
type CategoryDetail struct {
	*meli.Category
	Attributes []meli.CategoryAttribute `json:"attributes"`
}

// GetCategory 类目详情，属性获取失败不影响结果
func (s *ProductService) GetCategory(ctx context.Context, categoryID string) (*CategoryDetail, error) {
	cat, err := s.client.GetCategory(ctx, categoryID)
	if err != nil {
		if meli.IsNotFound(err) {
			return nil, errs.NotFound("类目 %s 不存在", categoryID)
		}
		return nil, err
	}
	attrs, err := s.client.GetCategoryAttributes(ctx, categoryID)
	if err != nil {
		s.logger.Warn("获取类目属性失败", zap.String("category_id", categoryID), zap.Error(err))
		attrs = []meli.CategoryAttribute{}
	}
	return &CategoryDetail{Category: cat, Attributes: attrs}, nil
}

// ==================== 辅助 ====================

func pictureSources(urls []string) []meli.PictureSource {
	if len(urls) == 0 {
		return nil
	}
	out := make([]meli.PictureSource, 0, len(urls))
	for _, u := range urls {
		out = append(out, meli.PictureSource{Source: u})
	}
	return out
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
