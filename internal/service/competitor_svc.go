package service

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/model"
	"meli_dev_v1_202610/internal/repository"
	"meli_dev_v1_202610/pkg/errs"
	"meli_dev_v1_202610/pkg/meli"
)

const productURLBase = "https://produto.mercadolivre.com.br/"

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces       = regexp.MustCompile(`\s+`)
	slugDashes       = regexp.MustCompile(`-+`)
)

// ==================== CompetitorService 目录竞品 ====================

type CompetitorService struct {
	repo   repository.CompetitorRepository
	tokens TokenProvider
	client *meli.Client
	logger *zap.Logger
}

// NewCompetitorService 创建竞品服务
func NewCompetitorService(repo repository.CompetitorRepository, tokens TokenProvider, client *meli.Client, logger *zap.Logger) *CompetitorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompetitorService{repo: repo, tokens: tokens, client: client, logger: logger}
}

// sellerInfo 卖家信誉
type sellerInfo struct {
	Nickname          *string
	ReputationLevel   *string
	PowerSellerStatus *string
	TransactionsTotal int
}

// SyncCompetitors 全量对账目录商品下的竞品
// 上游返回空列表而本地有数据时默认不删除（guarded），allowEmpty 时清空
func (s *CompetitorService) SyncCompetitors(ctx context.Context, companyID int64, catalogProductID string, allowEmpty bool) (*dto.CompetitorSyncResult, error) {
	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}
	log := s.logger.With(zap.Int64("company_id", companyID), zap.String("catalog_product_id", catalogProductID))
	result := &dto.CompetitorSyncResult{CatalogProductID: catalogProductID}

	res, err := s.client.GetCatalogItems(ctx, integ.AccessToken, catalogProductID)
	if err != nil {
		if meli.IsNotFound(err) {
			result.NotFound = true
			return result, nil
		}
		return nil, err
	}

	localIDs, err := s.repo.ListItemIDs(ctx, companyID, catalogProductID)
	if err != nil {
		return nil, errs.Internal(err, "查询本地竞品失败")
	}
	if len(res.Results) == 0 && len(localIDs) > 0 && !allowEmpty {
		log.Warn("上游返回空竞品列表，跳过删除", zap.Int("local", len(localIDs)))
		result.Guarded = true
		result.TotalCurrent = len(localIDs)
		return result, nil
	}

	sellers := map[string]*sellerInfo{}
	current := make(map[string]struct{}, len(res.Results))
	for i := range res.Results {
		item := &res.Results[i]
		if item.ItemID == "" {
			continue
		}
		// 上游偶尔重复返回同一商品
		if _, dup := current[item.ItemID]; dup {
			continue
		}
		seller := s.lookupSeller(ctx, integ.AccessToken, item.SellerID.String(), sellers)
		c := buildCompetitor(companyID, catalogProductID, item, seller)

		if _, err := s.repo.Upsert(ctx, c); err != nil {
			log.Error("保存竞品失败", zap.String("item_id", item.ItemID), zap.Error(err))
			return nil, errs.Internal(err, "保存竞品失败")
		}
		current[item.ItemID] = struct{}{}
		result.Synced++
	}

	var stale []string
	for _, id := range localIDs {
		if _, ok := current[id]; !ok {
			stale = append(stale, id)
		}
	}
	removed, err := s.repo.DeleteByItemIDs(ctx, companyID, catalogProductID, stale)
	if err != nil {
		return nil, errs.Internal(err, "删除过期竞品失败")
	}
	result.Removed = int(removed)
	result.TotalCurrent = len(current)

	log.Info("竞品同步完成", zap.Int("synced", result.Synced), zap.Int("removed", result.Removed))
	return result, nil
}

// lookupSeller 同一次同步内按卖家缓存，失败返回空信息
func (s *CompetitorService) lookupSeller(ctx context.Context, token, sellerID string, cache map[string]*sellerInfo) *sellerInfo {
	if sellerID == "" {
		return &sellerInfo{}
	}
	if info, ok := cache[sellerID]; ok {
		return info
	}
	info := &sellerInfo{}
	user, err := s.client.GetUser(ctx, token, sellerID)
	if err != nil {
		s.logger.Debug("获取卖家信息失败", zap.String("seller_id", sellerID), zap.Error(err))
	} else {
		info.Nickname = strPtrOrNil(user.Nickname)
		if rep := user.SellerReputation; rep != nil {
			info.ReputationLevel = rep.LevelID
			info.PowerSellerStatus = rep.PowerSellerStatus
			info.TransactionsTotal = rep.Transactions.Total
		}
	}
	cache[sellerID] = info
	return info
}

func buildCompetitor(companyID int64, catalogProductID string, item *meli.CatalogItem, seller *sellerInfo) *model.CatalogCompetitor {
	c := &model.CatalogCompetitor{
		CompanyID:               companyID,
		CatalogProductID:        catalogProductID,
		ItemID:                  item.ItemID,
		Title:                   item.Title,
		Price:                   item.Price,
		Condition:               item.Condition,
		AvailableQuantity:       item.AvailableQuantity,
		SoldQuantity:            item.SoldQuantity,
		Permalink:               item.Permalink,
		URL:                     ProductURL(item.ItemID, item.Title),
		SellerID:                item.SellerID.String(),
		SellerNickname:          seller.Nickname,
		SellerReputationLevel:   seller.ReputationLevel,
		SellerPowerStatus:       seller.PowerSellerStatus,
		SellerTransactionsTotal: seller.TransactionsTotal,
		ShippingMode:            item.Shipping.Mode,
		ShippingLogisticType:    item.Shipping.LogisticType,
		ShippingFree:            item.Shipping.FreeShipping,
		ShippingTags:            item.Shipping.Tags,
		ListingTypeID:           item.ListingTypeID.Ptr(),
		Tags:                    item.Tags,
		DealIDs:                 item.DealIDs,
		MLDateCreated:           item.DateCreated,
		MLLastUpdated:           item.LastUpdated,
	}
	// 原价与售价相同视为无折扣
	if item.OriginalPrice.Valid && !item.OriginalPrice.Decimal.Equal(item.Price) {
		c.OriginalPrice = item.OriginalPrice
	}
	return c
}

// ==================== URL ====================

// Slugify 标题 -> URL 片段
// 去重音、转小写，只保留 [a-z0-9-]，空白转 -，合并连续 -
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}
	s := strings.ToLower(folded)
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ProductURL 竞品商品页地址
func ProductURL(itemID, title string) string {
	slug := Slugify(title)
	if slug == "" {
		return productURLBase + itemID
	}
	return productURLBase + itemID + "-" + slug
}

// ==================== 查询 ====================

// ListCompetitors 本地竞品，按价格升序
func (s *CompetitorService) ListCompetitors(ctx context.Context, companyID int64, catalogProductID string) ([]model.CatalogCompetitor, error) {
	list, err := s.repo.ListByCatalogProduct(ctx, companyID, catalogProductID)
	if err != nil {
		return nil, errs.Internal(err, "查询竞品失败")
	}
	return list, nil
}

// UpdateManualURL 手工维护竞品链接，nil 或空串表示清除
func (s *CompetitorService) UpdateManualURL(ctx context.Context, companyID int64, itemID string, manualURL *string) (*model.CatalogCompetitor, error) {
	if manualURL != nil && strings.TrimSpace(*manualURL) == "" {
		manualURL = nil
	}
	n, err := s.repo.UpdateManualURL(ctx, companyID, itemID, manualURL)
	if err != nil {
		return nil, errs.Internal(err, "更新竞品链接失败")
	}
	if n == 0 {
		return nil, errs.NotFound("竞品 %s 不存在", itemID)
	}
	c, err := s.repo.GetByItemID(ctx, companyID, itemID)
	if err != nil {
		return nil, errs.Internal(err, "查询竞品失败")
	}
	return c, nil
}

// FetchLiveCompetitors 实时竞品列表，不落库
func (s *CompetitorService) FetchLiveCompetitors(ctx context.Context, companyID int64, catalogProductID string) (*dto.LiveCompetitorsResponse, error) {
	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := &dto.LiveCompetitorsResponse{CatalogProductID: catalogProductID, Results: []dto.CompetitorItem{}}

	res, err := s.client.GetCatalogItems(ctx, integ.AccessToken, catalogProductID)
	if err != nil {
		if meli.IsNotFound(err) {
			return resp, nil
		}
		return nil, err
	}
	for _, item := range res.Results {
		resp.Results = append(resp.Results, dto.CompetitorItem{
			CatalogItem: item,
			URL:         ProductURL(item.ItemID, item.Title),
		})
	}
	sort.SliceStable(resp.Results, func(i, j int) bool {
		return resp.Results[i].Price.LessThan(resp.Results[j].Price)
	})
	resp.Total = len(resp.Results)
	return resp, nil
}
