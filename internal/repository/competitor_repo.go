package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"meli_dev_v1_202610/internal/model"
)

// ==================== 接口定义 ====================

// CompetitorRepository 目录竞品仓储接口
type CompetitorRepository interface {
	GetByItemID(ctx context.Context, companyID int64, itemID string) (*model.CatalogCompetitor, error)
	// Upsert 按 (company_id, item_id) 插入或覆盖同步字段（manual_url 保留），返回是否新建
	Upsert(ctx context.Context, c *model.CatalogCompetitor) (bool, error)
	ListByCatalogProduct(ctx context.Context, companyID int64, catalogProductID string) ([]model.CatalogCompetitor, error)
	ListItemIDs(ctx context.Context, companyID int64, catalogProductID string) ([]string, error)
	DeleteByItemIDs(ctx context.Context, companyID int64, catalogProductID string, itemIDs []string) (int64, error)
	UpdateManualURL(ctx context.Context, companyID int64, itemID string, url *string) (int64, error)
}

// ==================== 仓储实现 ====================

type competitorRepo struct {
	db *gorm.DB
}

// NewCompetitorRepository 创建目录竞品仓储
func NewCompetitorRepository(db *gorm.DB) CompetitorRepository {
	return &competitorRepo{db: db}
}

func (r *competitorRepo) GetByItemID(ctx context.Context, companyID int64, itemID string) (*model.CatalogCompetitor, error) {
	var c model.CatalogCompetitor
	err := r.db.WithContext(ctx).Where("company_id = ? AND item_id = ?", companyID, itemID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *competitorRepo) Upsert(ctx context.Context, c *model.CatalogCompetitor) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.CatalogCompetitor
		err := tx.Where("company_id = ? AND item_id = ?", c.CompanyID, c.ItemID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(c).Error
		}
		if err != nil {
			return err
		}
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
		c.ManualURL = existing.ManualURL
		return tx.Model(c).Select(model.CompetitorSyncColumns).Updates(c).Error
	})
	return created, err
}

func (r *competitorRepo) ListByCatalogProduct(ctx context.Context, companyID int64, catalogProductID string) ([]model.CatalogCompetitor, error) {
	var list []model.CatalogCompetitor
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND catalog_product_id = ?", companyID, catalogProductID).
		Order("price ASC, id ASC").
		Find(&list).Error
	return list, err
}

func (r *competitorRepo) ListItemIDs(ctx context.Context, companyID int64, catalogProductID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.CatalogCompetitor{}).
		Where("company_id = ? AND catalog_product_id = ?", companyID, catalogProductID).
		Pluck("item_id", &ids).Error
	return ids, err
}

func (r *competitorRepo) DeleteByItemIDs(ctx context.Context, companyID int64, catalogProductID string, itemIDs []string) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Where("company_id = ? AND catalog_product_id = ? AND item_id IN ?", companyID, catalogProductID, itemIDs).
		Delete(&model.CatalogCompetitor{})
	return res.RowsAffected, res.Error
}

func (r *competitorRepo) UpdateManualURL(ctx context.Context, companyID int64, itemID string, url *string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.CatalogCompetitor{}).
		Where("company_id = ? AND item_id = ?", companyID, itemID).
		Update("manual_url", url)
	return res.RowsAffected, res.Error
}
