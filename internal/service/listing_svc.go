package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/model"
	"meli_dev_v1_202610/internal/repository"
	"meli_dev_v1_202610/pkg/errs"
	"meli_dev_v1_202610/pkg/meli"
)

// itemSearchPageSize users/{id}/items/search 每页数量
const itemSearchPageSize = 50

// 费用计算接口失败时的估算规则
var (
	estimatedSaleFeeRate    = decimal.RequireFromString("0.12")
	estimatedSaleFeePercent = decimal.NewFromInt(12)
	estimatedPremiumFee     = decimal.RequireFromString("15.90")
	estimatedClassicFee     = decimal.RequireFromString("7.90")
)

// ==================== ListingService 商品镜像 ====================

type ListingService struct {
	repo   repository.AnnouncementRepository
	tokens TokenProvider
	client *meli.Client
	logger *zap.Logger
}

// NewListingService 创建商品镜像服务
func NewListingService(repo repository.AnnouncementRepository, tokens TokenProvider, client *meli.Client, logger *zap.Logger) *ListingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListingService{repo: repo, tokens: tokens, client: client, logger: logger}
}

// listingEnrichment 单个商品的补充数据，全部为尽力而为
type listingEnrichment struct {
	ItemRaw    json.RawMessage    `json:"item"`
	PricesRaw  json.RawMessage    `json:"prices,omitempty"`
	SaleRaw    json.RawMessage    `json:"sale_price,omitempty"`
	PTWRaw     json.RawMessage    `json:"price_to_win,omitempty"`
	Fee        *meli.ListingPrice `json:"fee,omitempty"`
	sale       *meli.SalePrice
	priceToWin *meli.PriceToWin
}

// hash 同步载荷摘要
func (e *listingEnrichment) hash() string {
	b, _ := json.Marshal(e)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// SyncAnnouncements 同步卖家全部商品
// 每个商品独立提交；详情失败跳过并计入 errors，补充数据失败只记日志
func (s *ListingService) SyncAnnouncements(ctx context.Context, companyID int64) (*dto.SyncAnnouncementsResult, error) {
	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}
	token := integ.AccessToken

	itemIDs, err := s.collectItemIDs(ctx, token, integ.MeliUserID)
	if err != nil {
		return nil, err
	}

	result := &dto.SyncAnnouncementsResult{TotalFound: len(itemIDs), Errors: []string{}}
	log := s.logger.With(zap.Int64("company_id", companyID))

	for _, itemID := range itemIDs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		item, raw, err := s.client.GetItem(ctx, token, itemID)
		if err != nil {
			log.Warn("获取商品详情失败", zap.String("item_id", itemID), zap.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", itemID, errs.PublicMessage(err)))
			continue
		}

		enrich := s.enrich(ctx, token, item, raw)
		a := buildAnnouncement(companyID, item, enrich)

		existing, err := s.repo.GetByItemID(ctx, companyID, itemID)
		if err != nil {
			log.Error("查询本地商品失败", zap.String("item_id", itemID), zap.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("%s: 数据库错误", itemID))
			continue
		}

		switch {
		case existing == nil:
			if err := s.repo.Create(ctx, a); err != nil {
				log.Error("保存商品失败", zap.String("item_id", itemID), zap.Error(err))
				result.Errors = append(result.Errors, fmt.Sprintf("%s: 保存失败", itemID))
				continue
			}
			result.Synced++
		case existing.SyncHash == a.SyncHash:
			result.Unchanged++
		default:
			a.ID = existing.ID
			if err := s.repo.UpdateSyncFields(ctx, a); err != nil {
				log.Error("更新商品失败", zap.String("item_id", itemID), zap.Error(err))
				result.Errors = append(result.Errors, fmt.Sprintf("%s: 更新失败", itemID))
				continue
			}
			result.Updated++
		}
	}

	result.TotalProcessed = result.Synced + result.Updated + result.Unchanged
	log.Info("商品同步完成",
		zap.Int("synced", result.Synced),
		zap.Int("updated", result.Updated),
		zap.Int("unchanged", result.Unchanged),
		zap.Int("errors", len(result.Errors)))
	return result, nil
}

// collectItemIDs 分页拉取卖家商品 ID，404 视为没有商品
func (s *ListingService) collectItemIDs(ctx context.Context, token, sellerID string) ([]string, error) {
	var ids []string
	offset := 0
	for {
		page, err := s.client.SearchSellerItems(ctx, token, sellerID, itemSearchPageSize, offset)
		if err != nil {
			if meli.IsNotFound(err) {
				break
			}
			return nil, err
		}
		if len(page.Results) == 0 {
			break
		}
		ids = append(ids, page.Results...)
		if page.Paging.Offset+len(page.Results) >= page.Paging.Total {
			break
		}
		offset += itemSearchPageSize
	}
	return ids, nil
}

func (s *ListingService) enrich(ctx context.Context, token string, item *meli.Item, raw []byte) *listingEnrichment {
	e := &listingEnrichment{ItemRaw: raw}
	log := s.logger.With(zap.String("item_id", item.ID))

	// 价格：prices 成功后才查 sale_price
	if _, pricesRaw, err := s.client.GetItemPrices(ctx, token, item.ID); err != nil {
		log.Warn("获取商品价格失败", zap.Error(err))
	} else {
		e.PricesRaw = pricesRaw
		if sale, saleRaw, err := s.client.GetSalePrice(ctx, token, item.ID); err != nil {
			log.Warn("获取促销价格失败", zap.Error(err))
		} else {
			e.SaleRaw = saleRaw
			e.sale = sale
		}
	}

	if ptw, ptwRaw, err := s.client.GetPriceToWin(ctx, token, item.ID); err != nil {
		log.Debug("获取目录竞争位置失败", zap.Error(err))
	} else {
		e.PTWRaw = ptwRaw
		e.priceToWin = ptw
	}

	price := item.Price
	if e.sale != nil && e.sale.Amount.Valid && e.sale.RegularAmount.Valid {
		price = e.sale.Amount.Decimal
	}
	if price.IsPositive() && item.CategoryID != "" {
		list, err := s.client.GetListingPrices(ctx, token, item.SiteID, meli.ListingPriceQuery{
			Price:         price,
			CategoryID:    item.CategoryID,
			CurrencyID:    item.CurrencyID,
			ListingTypeID: item.ListingTypeID,
		})
		if err != nil {
			log.Warn("获取刊登费用失败", zap.Error(err))
		} else {
			e.Fee = meli.PickListingPrice(list, item.ListingTypeID)
		}
	}
	return e
}

// buildAnnouncement 商品详情 + 补充数据 -> 本地行（只含同步字段）
func buildAnnouncement(companyID int64, item *meli.Item, e *listingEnrichment) *model.Announcement {
	a := &model.Announcement{
		CompanyID:         companyID,
		MLItemID:          item.ID,
		Title:             item.Title,
		Price:             item.Price,
		CurrencyID:        item.CurrencyID,
		AvailableQuantity: item.AvailableQuantity,
		SoldQuantity:      item.SoldQuantity,
		Condition:         item.Condition,
		Status:            item.Status,
		Permalink:         item.Permalink,
		Thumbnail:         item.Thumbnail,
		SiteID:            item.SiteID,
		CategoryID:        item.CategoryID,
		DomainID:          item.DomainID,
		ListingTypeID:     item.ListingTypeID,
		CatalogListing:    item.CatalogListing,
		CatalogProductID:  item.CatalogProductID.Ptr(),
		FamilyName:        item.FamilyName.Ptr(),
		FamilyID:          item.FamilyID.Ptr(),
		UserProductID:     item.UserProductID.Ptr(),
		InventoryID:       item.InventoryID.Ptr(),
		BasePrice:         item.BasePrice,
		OriginalPrice:     item.OriginalPrice,
		FullData:          jsonColumn(e.ItemRaw),
		PricesInfo:        jsonColumn(e.PricesRaw),
		SalePriceInfo:     jsonColumn(e.SaleRaw),
		Attributes:        jsonColumn(item.Attributes),
		Pictures:          jsonColumn(item.Pictures),
		MLDateCreated:     item.DateCreated,
		MLLastUpdated:     item.LastUpdated,
		SyncHash:          e.hash(),
	}
	a.CatalogPositionInfo = jsonColumn(e.PTWRaw)
	if a.CurrencyID == "" {
		a.CurrencyID = "BRL"
	}
	if item.Tags != nil {
		tags, _ := json.Marshal(item.Tags)
		a.Tags = datatypes.JSON(tags)
	}

	// 促销价覆盖 price / original_price
	if e.sale != nil && e.sale.Amount.Valid {
		a.SalePrice = e.sale.Amount
		if e.sale.RegularAmount.Valid {
			a.Price = e.sale.Amount.Decimal
			a.OriginalPrice = e.sale.RegularAmount
		}
	}

	if ptw := e.priceToWin; ptw != nil {
		a.CatalogStatus = ptw.Status.Ptr()
		a.CatalogVisitShare = ptw.VisitShare.Ptr()
		a.CatalogCompetitorsSharing = ptw.CompetitorsSharingFirstPlace
		a.CatalogPriceToWin = ptw.PriceToWin
	}

	if fee := e.Fee; fee != nil {
		a.ListingTypeName = strPtrOrNil(fee.ListingTypeName)
		a.ListingExposure = strPtrOrNil(fee.ListingExposure)
		a.ListingFeeAmount = decimal.NewNullDecimal(fee.ListingFeeAmount)
		a.SaleFeeAmount = decimal.NewNullDecimal(fee.SaleFeeAmount)
		a.SaleFeePercentage = fee.SaleFeeDetails.PercentageFee
		a.SaleFeeFixed = fee.SaleFeeDetails.FixedFee
		a.TotalCost = decimal.NewNullDecimal(fee.ListingFeeAmount.Add(fee.SaleFeeAmount))
		a.RequiresPicture = &fee.RequiresPicture
		a.FreeRelist = &fee.FreeRelist
	}
	return a
}

// ==================== 查询 / 手工字段 ====================

// ListAnnouncements 本地商品分页
func (s *ListingService) ListAnnouncements(ctx context.Context, companyID int64, req *dto.AnnouncementListRequest) (*dto.AnnouncementListResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	list, total, err := s.repo.List(ctx, repository.AnnouncementFilter{
		CompanyID: companyID,
		Status:    req.Status,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, errs.Internal(err, "查询商品列表失败")
	}
	return &dto.AnnouncementListResponse{Total: total, Limit: limit, Offset: offset, List: list}, nil
}

// GetAnnouncement 本地商品详情
func (s *ListingService) GetAnnouncement(ctx context.Context, companyID int64, itemID string) (*model.Announcement, error) {
	a, err := s.repo.GetByItemID(ctx, companyID, itemID)
	if err != nil {
		return nil, errs.Internal(err, "查询商品失败")
	}
	if a == nil {
		return nil, errs.NotFound("商品 %s 不存在", itemID)
	}
	return a, nil
}

// setOptional 只收集请求中出现的字段
func setOptional[T any](fields map[string]interface{}, column string, v dto.Optional[T]) {
	if v.Set {
		fields[column] = v.ColumnValue()
	}
}

// UpdateAdditionalInfo 唯一修改运营字段的入口
func (s *ListingService) UpdateAdditionalInfo(ctx context.Context, companyID int64, itemID string, req *dto.AdditionalInfoRequest) (*model.Announcement, error) {
	a, err := s.GetAnnouncement(ctx, companyID, itemID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	setOptional(fields, "product_cost", req.ProductCost)
	setOptional(fields, "taxes", req.Taxes)
	setOptional(fields, "ads_cost", req.AdsCost)
	setOptional(fields, "shipping_cost", req.ShippingCost)
	setOptional(fields, "additional_fees", req.AdditionalFees)
	setOptional(fields, "additional_notes", req.AdditionalNotes)
	if len(fields) == 0 {
		return nil, errs.Validation("没有需要更新的字段")
	}

	if err := s.repo.UpdateFields(ctx, a.ID, fields); err != nil {
		return nil, errs.Internal(err, "更新商品信息失败")
	}
	return s.GetAnnouncement(ctx, companyID, itemID)
}

// ==================== 费用 ====================

// GetItemCosts 实时刊登费用，计算接口失败时按固定规则估算
func (s *ListingService) GetItemCosts(ctx context.Context, companyID int64, itemID string) (*dto.ItemCostsResponse, error) {
	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}
	item, _, err := s.client.GetItem(ctx, integ.AccessToken, itemID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ItemCostsResponse{
		ItemID:        item.ID,
		Price:         item.Price,
		CurrencyID:    item.CurrencyID,
		CategoryID:    item.CategoryID,
		ListingTypeID: item.ListingTypeID,
	}

	list, err := s.client.GetListingPrices(ctx, integ.AccessToken, item.SiteID, meli.ListingPriceQuery{
		Price:         item.Price,
		CategoryID:    item.CategoryID,
		CurrencyID:    item.CurrencyID,
		ListingTypeID: item.ListingTypeID,
	})
	if fee := meli.PickListingPrice(list, item.ListingTypeID); err == nil && fee != nil {
		resp.ListingTypeName = fee.ListingTypeName
		resp.ListingFeeAmount = fee.ListingFeeAmount
		resp.SaleFeeAmount = fee.SaleFeeAmount
		resp.SaleFeePercentage = fee.SaleFeeDetails.PercentageFee
		resp.TotalCost = fee.ListingFeeAmount.Add(fee.SaleFeeAmount)
		return resp, nil
	}
	if err != nil {
		s.logger.Warn("费用计算接口失败，使用估算值",
			zap.Int64("company_id", companyID), zap.String("item_id", itemID), zap.Error(err))
	}

	resp.ListingFeeAmount, resp.SaleFeeAmount = EstimateFees(item.Price, item.ListingTypeID)
	resp.SaleFeePercentage = decimal.NewNullDecimal(estimatedSaleFeePercent)
	resp.TotalCost = resp.ListingFeeAmount.Add(resp.SaleFeeAmount)
	resp.Estimated = true
	return resp, nil
}

// EstimateFees 估算刊登费和销售佣金
// gold_special / gold_pro: 15.90；gold: 7.90；其余 0；佣金按售价 12%
func EstimateFees(price decimal.Decimal, listingTypeID string) (listingFee, saleFee decimal.Decimal) {
	switch listingTypeID {
	case "gold_special", "gold_pro":
		listingFee = estimatedPremiumFee
	case "gold":
		listingFee = estimatedClassicFee
	default:
		listingFee = decimal.Zero
	}
	saleFee = price.Mul(estimatedSaleFeeRate).Round(2)
	return listingFee, saleFee
}

// ==================== 辅助 ====================

func jsonColumn(raw []byte) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
