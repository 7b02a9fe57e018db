package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/model"
	"meli_dev_v1_202610/internal/repository"
	"meli_dev_v1_202610/pkg/errs"
	"meli_dev_v1_202610/pkg/meli"
)

// DefaultAdsPeriod 本地广告指标默认查询窗口
const DefaultAdsPeriod = 15

const dateLayout = "2006-01-02"

// ==================== AdsService Product Ads ====================

type AdsService struct {
	repo   repository.ProductAdsRepository
	tokens TokenProvider
	client *meli.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewAdsService 创建广告服务
func NewAdsService(repo repository.ProductAdsRepository, tokens TokenProvider, client *meli.Client, logger *zap.Logger) *AdsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdsService{repo: repo, tokens: tokens, client: client, logger: logger, now: time.Now}
}

// resolveAdvertiser 取第一个广告主
func (s *AdsService) resolveAdvertiser(ctx context.Context, integ *model.MeliIntegration) (*meli.Advertiser, error) {
	res, err := s.client.GetAdvertisers(ctx, integ.AccessToken, integ.MeliUserID)
	if err != nil {
		if meli.IsNotFound(err) {
			return nil, errs.Validation("该账号没有 Product Ads 权限")
		}
		return nil, err
	}
	if len(res.Advertisers) == 0 {
		return nil, errs.NotFound("没有找到广告主")
	}
	adv := res.Advertisers[0]
	if adv.SiteID == "" {
		adv.SiteID = "MLB"
	}
	return &adv, nil
}

// GetAdvertisers 广告主列表
func (s *AdsService) GetAdvertisers(ctx context.Context, companyID int64) ([]meli.Advertiser, error) {
	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}
	res, err := s.client.GetAdvertisers(ctx, integ.AccessToken, integ.MeliUserID)
	if err != nil {
		if meli.IsNotFound(err) {
			return nil, errs.Validation("该账号没有 Product Ads 权限")
		}
		return nil, err
	}
	if res.Advertisers == nil {
		return []meli.Advertiser{}, nil
	}
	return res.Advertisers, nil
}

// GetProductAd 实时广告详情
func (s *AdsService) GetProductAd(ctx context.Context, companyID int64, itemID string) (*dto.ProductAdDetail, error) {
	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}
	adv, err := s.resolveAdvertiser(ctx, integ)
	if err != nil {
		return nil, err
	}
	_, raw, err := s.client.GetProductAd(ctx, integ.AccessToken, adv.SiteID, itemID)
	if err != nil {
		if meli.IsNotFound(err) {
			return nil, errs.NotFound("商品 %s 不在 Product Ads 中", itemID)
		}
		return nil, err
	}
	return &dto.ProductAdDetail{
		ItemID:       itemID,
		AdvertiserID: adv.AdvertiserID.String(),
		SiteID:       adv.SiteID,
		Ad:           raw,
	}, nil
}

// SyncProductAds 按 7/15/30/60/90 天窗口同步广告指标
// 单个窗口失败只记录，不影响其他窗口
func (s *AdsService) SyncProductAds(ctx context.Context, companyID int64, itemID string) (*dto.AdsSyncResult, error) {
	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}
	adv, err := s.resolveAdvertiser(ctx, integ)
	if err != nil {
		return nil, err
	}
	ad, adRaw, err := s.client.GetProductAd(ctx, integ.AccessToken, adv.SiteID, itemID)
	if err != nil {
		if meli.IsNotFound(err) {
			return nil, errs.NotFound("商品 %s 不在 Product Ads 中", itemID)
		}
		return nil, err
	}

	result := &dto.AdsSyncResult{
		ItemID:        itemID,
		AdvertiserID:  adv.AdvertiserID.String(),
		SiteID:        adv.SiteID,
		PeriodsSynced: []int{},
		PeriodsFailed: []int{},
		Errors:        []string{},
	}
	log := s.logger.With(zap.Int64("company_id", companyID), zap.String("item_id", itemID))

	today := s.now().UTC()
	dateTo := today.Format(dateLayout)
	for _, period := range model.AdsPeriods {
		dateFrom := today.AddDate(0, 0, -period).Format(dateLayout)

		metrics, section, err := s.client.GetProductAdMetrics(ctx, integ.AccessToken, adv.SiteID, itemID, meli.AdMetricsQuery{
			DateFrom: dateFrom,
			DateTo:   dateTo,
		})
		if err != nil {
			log.Warn("获取广告指标失败", zap.Int("period_days", period), zap.Error(err))
			result.PeriodsFailed = append(result.PeriodsFailed, period)
			result.Errors = append(result.Errors, fmt.Sprintf("%d 天: %s", period, errs.PublicMessage(err)))
			continue
		}

		row := buildAdsData(companyID, itemID, period, adv, ad, metrics)
		start, _ := time.Parse(dateLayout, dateFrom)
		end, _ := time.Parse(dateLayout, dateTo)
		row.DataPeriodStart = &start
		row.DataPeriodEnd = &end
		row.FullData = jsonColumn(adRaw)
		row.MetricsData = jsonColumn(section)

		if err := s.repo.Upsert(ctx, row); err != nil {
			log.Error("保存广告指标失败", zap.Int("period_days", period), zap.Error(err))
			result.PeriodsFailed = append(result.PeriodsFailed, period)
			result.Errors = append(result.Errors, fmt.Sprintf("%d 天: 保存失败", period))
			continue
		}
		result.PeriodsSynced = append(result.PeriodsSynced, period)
	}

	log.Info("广告指标同步完成",
		zap.Ints("periods_synced", result.PeriodsSynced),
		zap.Ints("periods_failed", result.PeriodsFailed))
	return result, nil
}

func buildAdsData(companyID int64, itemID string, period int, adv *meli.Advertiser, ad *meli.ProductAd, m *meli.AdMetrics) *model.ProductAdsData {
	return &model.ProductAdsData{
		CompanyID:                companyID,
		MLItemID:                 itemID,
		PeriodDays:               period,
		AdvertiserID:             adv.AdvertiserID.String(),
		SiteID:                   adv.SiteID,
		CampaignID:               ad.CampaignID.Ptr(),
		Title:                    ad.Title,
		Price:                    ad.Price,
		Status:                   ad.Status,
		Clicks:                   m.Clicks,
		Prints:                   m.Prints,
		CTR:                      m.CTR,
		Cost:                     m.Cost,
		CPC:                      m.CPC,
		ACOS:                     m.ACOS,
		TACOS:                    m.TACOS,
		ROAS:                     m.ROAS,
		CVR:                      m.CVR,
		SOV:                      m.SOV,
		OrganicUnitsQuantity:     m.OrganicUnitsQuantity,
		OrganicUnitsAmount:       m.OrganicUnitsAmount,
		OrganicItemsQuantity:     m.OrganicItemsQuantity,
		DirectItemsQuantity:      m.DirectItemsQuantity,
		DirectUnitsQuantity:      m.DirectUnitsQuantity,
		DirectAmount:             m.DirectAmount,
		IndirectItemsQuantity:    m.IndirectItemsQuantity,
		IndirectUnitsQuantity:    m.IndirectUnitsQuantity,
		IndirectAmount:           m.IndirectAmount,
		AdvertisingItemsQuantity: m.AdvertisingItemsQuantity,
		UnitsQuantity:            m.UnitsQuantity,
		TotalAmount:              m.TotalAmount,
	}
}

// GetStoredAds 本地广告指标，periodDays <= 0 时取 15 天
func (s *AdsService) GetStoredAds(ctx context.Context, companyID int64, itemID string, periodDays int) (*dto.StoredAdsResponse, error) {
	if periodDays <= 0 {
		periodDays = DefaultAdsPeriod
	}
	row, err := s.repo.GetByPeriod(ctx, companyID, itemID, periodDays)
	if err != nil {
		return nil, errs.Internal(err, "查询广告指标失败")
	}
	if row == nil {
		return nil, errs.NotFound("没有 %d 天的广告数据，请先同步", periodDays)
	}

	all, err := s.repo.ListByItem(ctx, companyID, itemID)
	if err != nil {
		return nil, errs.Internal(err, "查询广告指标失败")
	}
	periods := make([]int, 0, len(all))
	for _, r := range all {
		periods = append(periods, r.PeriodDays)
	}
	return &dto.StoredAdsResponse{ItemID: itemID, PeriodDays: periodDays, Data: row, Periods: periods}, nil
}
