package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"meli_dev_v1_202610/internal/model"
)

// ==================== 接口定义 ====================

// ProductAdsRepository 广告指标仓储接口
type ProductAdsRepository interface {
	// Upsert 按 (company_id, ml_item_id, period_days) 插入或覆盖
	Upsert(ctx context.Context, d *model.ProductAdsData) error
	GetByPeriod(ctx context.Context, companyID int64, itemID string, periodDays int) (*model.ProductAdsData, error)
	ListByItem(ctx context.Context, companyID int64, itemID string) ([]model.ProductAdsData, error)
}

// ==================== 仓储实现 ====================

type productAdsRepo struct {
	db *gorm.DB
}

// NewProductAdsRepository 创建广告指标仓储
func NewProductAdsRepository(db *gorm.DB) ProductAdsRepository {
	return &productAdsRepo{db: db}
}

func (r *productAdsRepo) Upsert(ctx context.Context, d *model.ProductAdsData) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "company_id"}, {Name: "ml_item_id"}, {Name: "period_days"},
			},
			UpdateAll: true,
		}).
		Create(d).Error
}

func (r *productAdsRepo) GetByPeriod(ctx context.Context, companyID int64, itemID string, periodDays int) (*model.ProductAdsData, error) {
	var d model.ProductAdsData
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND ml_item_id = ? AND period_days = ?", companyID, itemID, periodDays).
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &d, err
}

func (r *productAdsRepo) ListByItem(ctx context.Context, companyID int64, itemID string) ([]model.ProductAdsData, error) {
	var list []model.ProductAdsData
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND ml_item_id = ?", companyID, itemID).
		Order("period_days ASC").
		Find(&list).Error
	return list, err
}
